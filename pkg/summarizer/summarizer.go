// Package summarizer drives the LLM summarization contract: one prompt, one
// completion, a strict two-key JSON response, and a deterministic fallback
// when any of that fails.
package summarizer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/webtonotion/webtonotion/models"
)

const (
	defaultBaseURL = "https://api.openai.com/v1"
	defaultModel   = "gpt-4o-mini"

	maxTags = 5

	// Character clamps: how much page text goes into the prompt, and how
	// much raw text the fallback summary carries.
	promptTextLimit   = 4000
	fallbackTextLimit = 2000

	systemPrompt = "You are a helpful assistant that summarizes webpage content. Always respond with valid JSON."
)

type Client struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

type Option func(*Client)

// WithModel overrides the completion model.
func WithModel(model string) Option {
	return func(c *Client) {
		if model != "" {
			c.model = model
		}
	}
}

// WithBaseURL points the client at an alternate chat-completions endpoint.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if baseURL != "" {
			c.baseURL = strings.TrimSuffix(baseURL, "/")
		}
	}
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:     apiKey,
		model:      defaultModel,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 120 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Summarize asks the model for a markdown summary and tag suggestions.
// It never fails the caller: transport errors, non-2xx statuses and
// unparseable responses all degrade to a fallback result built from the raw
// text, with no tags. Suggested tags are passed through as the model sent
// them; the vocabulary only steers the prompt.
func (c *Client) Summarize(ctx context.Context, content *models.ExtractedContent, vocabulary []string) models.SummaryResult {
	result, err := c.complete(ctx, content, vocabulary)
	if err != nil {
		log.Printf("summarization failed, using fallback: %v", err)
		return Fallback(content)
	}

	if len(result.SuggestedTags) > maxTags {
		result.SuggestedTags = result.SuggestedTags[:maxTags]
	}
	return result
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	Temperature float64       `json:"temperature"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (c *Client) complete(ctx context.Context, content *models.ExtractedContent, vocabulary []string) (models.SummaryResult, error) {
	var result models.SummaryResult

	raw, err := c.chat(ctx, systemPrompt, buildPrompt(content, vocabulary), 2000, 0.3)
	if err != nil {
		return result, err
	}

	if err := json.Unmarshal([]byte(stripFences(raw)), &result); err != nil {
		return result, fmt.Errorf("model returned non-JSON content: %w", err)
	}
	return result, nil
}

// chat performs one chat completion and returns the first choice's message
// content. maxTokens <= 0 leaves the token budget to the endpoint.
func (c *Client) chat(ctx context.Context, system, user string, maxTokens int, temperature float64) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
		MaxTokens:   maxTokens,
		Temperature: temperature,
	})
	if err != nil {
		return "", fmt.Errorf("marshal chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build chat request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("chat completion request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("chat completion: status %d", resp.StatusCode)
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("decode chat response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}
	return parsed.Choices[0].Message.Content, nil
}

func buildPrompt(content *models.ExtractedContent, vocabulary []string) string {
	var b strings.Builder
	b.WriteString("Analyze the following webpage content and:\n")
	b.WriteString("1. Write a markdown-structured summary of at most 200 words capturing the purpose, key ideas and takeaways. Do not quote the page verbatim. Use ## and ### headings, bullet lists (-) and **bold** for structure.\n")
	fmt.Fprintf(&b, "2. Suggest up to %d relevant tags, preferring this list of existing tags: [%s]. Only coin a new tag when none of the existing ones fit.\n", maxTags, strings.Join(vocabulary, ", "))
	b.WriteString("3. Format the response as JSON:\n")
	b.WriteString("{\n    \"summarizedText\": \"...\",\n    \"suggestedTags\": [\"tag1\", \"tag2\"]\n}\n\n")
	b.WriteString("Webpage content:\n")
	fmt.Fprintf(&b, "Title: %s\nURL: %s\nText: %s", content.Title, content.URL, clamp(content.Text, promptTextLimit))
	return b.String()
}

// Fallback builds the degraded result used when the model is unavailable or
// unparseable. The save pipeline must still go through, so the summary is the
// leading slice of the raw text, or a placeholder when even that is empty.
func Fallback(content *models.ExtractedContent) models.SummaryResult {
	text := strings.TrimSpace(content.Text)
	if text == "" {
		return models.SummaryResult{
			SummarizedText: fmt.Sprintf("Summary unavailable for %q: the summarization service could not process this page.", content.Title),
			SuggestedTags:  []string{},
		}
	}
	return models.SummaryResult{
		SummarizedText: clamp(text, fallbackTextLimit),
		SuggestedTags:  []string{},
	}
}

// stripFences removes a ```json code fence if the model wrapped its JSON in
// one, which chat models do even when told not to.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// clamp truncates s to at most limit bytes without splitting a rune. Only a
// partial rune straddling the cut is trimmed; invalid bytes elsewhere in the
// text are left alone.
func clamp(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	cut := s[:limit]
	for i := 0; i < utf8.UTFMax-1; i++ {
		r, size := utf8.DecodeLastRuneInString(cut)
		if r != utf8.RuneError || size != 1 {
			break
		}
		cut = cut[:len(cut)-1]
	}
	return cut
}
