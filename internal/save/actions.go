package save

import (
	"context"
	"fmt"
	"log"

	"github.com/urfave/cli/v2"

	"github.com/webtonotion/webtonotion/models"
	"github.com/webtonotion/webtonotion/pkg/blocks"
	"github.com/webtonotion/webtonotion/pkg/extractor"
	"github.com/webtonotion/webtonotion/pkg/fetcher"
	"github.com/webtonotion/webtonotion/pkg/notion"
	"github.com/webtonotion/webtonotion/pkg/summarizer"
)

// SaveAction runs the full pipeline for one URL: fetch, extract, summarize,
// convert to blocks, create the bookmark page.
func SaveAction(c *cli.Context) error {
	rawURL := c.Args().First()
	if rawURL == "" {
		return cli.Exit("usage: wtn save <url>", 1)
	}

	cfg, err := models.LoadConfig(c.String("config"))
	if err != nil {
		return err
	}
	if err := cfg.RequireNotion(); err != nil {
		return err
	}
	if cfg.OpenAIAPIKey == "" {
		log.Println("OPENAI_API_KEY is not set, summaries will fall back to raw page text")
	}

	ctx := context.Background()

	log.Printf("fetching %s", rawURL)
	doc, err := fetcher.NewFetcher().GetDocument(ctx, rawURL)
	if err != nil {
		return fmt.Errorf("fetch failed: %w", err)
	}

	content, err := extractor.Extract(doc, rawURL, extractor.DefaultRules())
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}
	log.Printf("extracted %d words from %q", content.WordCount, content.Title)

	notionClient := notion.NewClient(cfg.NotionAPIKey)
	vocabulary := notionClient.TagVocabulary(ctx, cfg.NotionDatabaseID)

	sum := summarizer.NewClient(cfg.OpenAIAPIKey,
		summarizer.WithModel(cfg.OpenAIModel),
		summarizer.WithBaseURL(cfg.OpenAIBaseURL),
	)
	result := sum.Summarize(ctx, content, vocabulary)

	record := &models.BookmarkRecord{
		Title:  content.Title,
		URL:    rawURL,
		Type:   c.String("type"),
		Tags:   result.SuggestedTags,
		Blocks: blocks.Convert(result.SummarizedText),
	}

	pageID, err := notionClient.CreateBookmark(ctx, cfg.NotionDatabaseID, record)
	if err != nil {
		return fmt.Errorf("failed to save bookmark: %w", err)
	}

	fmt.Printf("Saved %q (page %s)\n", record.Title, pageID)
	return nil
}
