// Package extractor turns a fetched HTML document into a cleaned plain-text
// payload plus page metadata.
package extractor

import (
	"errors"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-shiori/go-readability"

	"github.com/webtonotion/webtonotion/models"
)

// ErrNoContent is returned when no content container resolves to any text.
var ErrNoContent = errors.New("no content found on this page")

// Extract produces the cleaned text payload and metadata for a page.
//
// Removal and selection run on a cloned tree, so the caller's document is
// left intact. The content root is the first ContentSelectors match, falling
// back to the whole body; an empty body fails with ErrNoContent.
func Extract(doc *goquery.Document, pageURL string, rules Rules) (*models.ExtractedContent, error) {
	if doc == nil {
		return nil, ErrNoContent
	}

	page := doc.Selection.Clone()
	for _, sel := range rules.RemoveSelectors {
		page.Find(sel).Remove()
	}

	root := page.Find("body").First()
	for _, sel := range rules.ContentSelectors {
		if s := page.Find(sel).First(); s.Length() > 0 {
			root = s
			break
		}
	}
	if root.Length() == 0 {
		return nil, ErrNoContent
	}

	text := CleanText(root.Text(), rules)
	if text == "" {
		return nil, ErrNoContent
	}

	content := &models.ExtractedContent{
		Text:      text,
		WordCount: len(strings.Fields(text)),
		Title:     strings.TrimSpace(doc.Find("title").First().Text()),
		URL:       pageURL,
	}
	if u, err := url.Parse(pageURL); err == nil {
		content.Domain = u.Hostname()
	}

	fillMetadata(doc, content)
	if metadataIncomplete(content) {
		enrichFromReadability(doc, pageURL, content)
	}
	content.Language = detectLanguage(text)

	return content, nil
}

var metaSelectors = map[string][]string{
	"description": {
		`meta[name="description"]`,
		`meta[property="og:description"]`,
	},
	"author": {
		`meta[name="author"]`,
		`meta[property="article:author"]`,
	},
	"published": {
		`meta[property="article:published_time"]`,
		`meta[name="date"]`,
		`meta[name="publish-date"]`,
	},
}

// fillMetadata reads best-effort metadata from known meta tags. Absence of
// any of these is not an error.
func fillMetadata(doc *goquery.Document, content *models.ExtractedContent) {
	content.Description = firstMeta(doc, metaSelectors["description"])
	content.Author = firstMeta(doc, metaSelectors["author"])
	content.PublishedDate = firstMeta(doc, metaSelectors["published"])
}

func firstMeta(doc *goquery.Document, selectors []string) string {
	for _, sel := range selectors {
		if v, ok := doc.Find(sel).First().Attr("content"); ok {
			if v = strings.TrimSpace(v); v != "" {
				return v
			}
		}
	}
	return ""
}

func metadataIncomplete(content *models.ExtractedContent) bool {
	return content.Title == "" || content.Description == "" ||
		content.Author == "" || content.PublishedDate == ""
}

// enrichFromReadability fills metadata gaps from go-readability's article
// view of the page. Pages without meta tags often still expose a byline and
// excerpt that readability can recover.
func enrichFromReadability(doc *goquery.Document, pageURL string, content *models.ExtractedContent) {
	html, err := goquery.OuterHtml(doc.Selection)
	if err != nil {
		return
	}

	parsedURL, err := url.Parse(pageURL)
	if err != nil {
		parsedURL = &url.URL{}
	}

	parser := readability.NewParser()
	article, err := parser.Parse(strings.NewReader(html), parsedURL)
	if err != nil {
		return
	}

	if content.Title == "" {
		content.Title = strings.TrimSpace(article.Title)
	}
	if content.Description == "" {
		content.Description = strings.TrimSpace(article.Excerpt)
	}
	if content.Author == "" {
		content.Author = strings.TrimSpace(article.Byline)
	}
	if content.PublishedDate == "" && article.PublishedTime != nil {
		content.PublishedDate = article.PublishedTime.Format(time.RFC3339)
	}
}
