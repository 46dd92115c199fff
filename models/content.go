// Package models defines the data structures shared across the save and
// sync pipelines.
package models

// ExtractedContent is the cleaned plain-text payload produced from a fetched
// page, plus whatever metadata the page exposes. It is built once per save
// and consumed by the summarizer; it is never persisted directly.
type ExtractedContent struct {
	Text      string
	WordCount int
	Title     string
	URL       string
	Domain    string

	// Best-effort metadata; empty when the page does not expose it.
	Description   string
	Author        string
	PublishedDate string
	Language      string
}

// SummaryResult is the structured output of the summarization step. When the
// model is unavailable or unparseable the pipeline substitutes a fallback
// result instead of aborting the save.
type SummaryResult struct {
	SummarizedText string   `json:"summarizedText"`
	SuggestedTags  []string `json:"suggestedTags"`
}
