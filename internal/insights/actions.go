package insights

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/webtonotion/webtonotion/models"
	"github.com/webtonotion/webtonotion/pkg/db"
	"github.com/webtonotion/webtonotion/pkg/summarizer"
)

// InsightsAction generates a narrative learning profile from the mirrored
// reading history and stores it alongside the mirror.
func InsightsAction(c *cli.Context) error {
	cfg, err := models.LoadConfig(c.String("config"))
	if err != nil {
		return err
	}
	if cfg.OpenAIAPIKey == "" {
		return fmt.Errorf("OPENAI_API_KEY is not set")
	}

	store, err := db.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open mirror database: %w", err)
	}
	defer store.Close()

	if c.Bool("cached") {
		ins, err := store.LatestInsight()
		if err != nil {
			return err
		}
		if ins == nil {
			return fmt.Errorf("no profile has been generated yet")
		}
		fmt.Printf("%s\n\n(generated %s)\n", ins.Content, ins.GeneratedAt)
		return nil
	}

	history, err := store.BookmarkHistory()
	if err != nil {
		return err
	}
	if len(history) == 0 {
		return fmt.Errorf("the mirror is empty, run sync first")
	}

	sum := summarizer.NewClient(cfg.OpenAIAPIKey,
		summarizer.WithModel(cfg.OpenAIModel),
		summarizer.WithBaseURL(cfg.OpenAIBaseURL),
	)
	profile, err := sum.GenerateInsights(context.Background(), history)
	if err != nil {
		return fmt.Errorf("failed to generate profile: %w", err)
	}

	if err := store.SaveInsight(profile); err != nil {
		return err
	}

	fmt.Println(profile)
	return nil
}
