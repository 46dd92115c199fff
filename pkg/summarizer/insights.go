package summarizer

import (
	"context"
	"fmt"
	"strings"

	"github.com/webtonotion/webtonotion/models"
)

const insightsSystemPrompt = "You are an expert analyst creating concise, engaging learning journey profiles."

// GenerateInsights asks the model for a short narrative profile of the
// reading history. Unlike Summarize there is no degraded fallback; a profile
// stitched together without the model would be worthless, so failures are
// returned to the caller.
func (c *Client) GenerateInsights(ctx context.Context, history []models.HistoryEntry) (string, error) {
	if len(history) == 0 {
		return "", fmt.Errorf("no reading history to analyze")
	}

	content, err := c.chat(ctx, insightsSystemPrompt, buildInsightsPrompt(history), 0, 0.7)
	if err != nil {
		return "", err
	}

	content = strings.TrimSpace(content)
	if content == "" {
		return "", fmt.Errorf("model returned an empty profile")
	}
	return content, nil
}

func buildInsightsPrompt(history []models.HistoryEntry) string {
	var b strings.Builder
	b.WriteString("Analyze the following reading history and create a brief, engaging profile of the reader's learning journey and interests:\n\n")
	b.WriteString("Reading Data:\n")
	for _, h := range history {
		fmt.Fprintf(&b, "- %q (%s) [%s]\n", h.Title, h.Date, strings.Join(h.Tags, ", "))
	}
	b.WriteString("\nCreate a concise, third-person narrative that:\n")
	b.WriteString("1. Identifies 2-3 core areas the reader is deeply exploring\n")
	b.WriteString("2. Highlights any clear transition or evolution in interests\n")
	b.WriteString("3. Points out emerging topics or new directions\n")
	b.WriteString("4. Notes any interesting patterns in how topics interconnect\n\n")
	b.WriteString("Keep the tone professional yet conversational, as if introducing the reader's interests to someone viewing their profile. Limit to 3-4 sentences.")
	return b.String()
}
