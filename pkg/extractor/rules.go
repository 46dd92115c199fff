package extractor

import "regexp"

// Rules is the static configuration table driving extraction. It is passed
// in rather than read from package globals so tests can inject alternate
// denylists.
type Rules struct {
	// RemoveSelectors are stripped from the document copy before content
	// selection.
	RemoveSelectors []string

	// ContentSelectors are tried in order; the first match becomes the
	// content root. The document body is the fallback.
	ContentSelectors []string

	// NoisePatterns erase boilerplate sentences, matched case-insensitively
	// from the phrase to the end of the line.
	NoisePatterns []*regexp.Regexp
}

var defaultNoisePhrases = []string{
	"Click here to",
	"Read more",
	"Subscribe to",
	"Follow us on",
	"Sign up for",
	"Advertisement",
	"Accept all cookies",
	"Share this article",
}

// DefaultRules returns the rule set used by the save pipeline.
func DefaultRules() Rules {
	return Rules{
		RemoveSelectors: []string{
			"script", "style", "noscript", "iframe",
			"nav", "header", "footer", "aside",
			".sidebar", ".menu", ".navigation", ".ads", ".advertisement",
			".social-share", ".comments", ".related-posts", ".popup",
			".cookie-banner", ".newsletter", ".subscribe",
			`[role="banner"]`, `[role="navigation"]`, `[role="complementary"]`,
		},
		ContentSelectors: []string{
			"main", "article", ".content", ".post", "#content", ".entry-content",
		},
		NoisePatterns: NoisePatterns(defaultNoisePhrases),
	}
}

// NoisePatterns compiles boilerplate phrases into prefix-to-end-of-line
// patterns.
func NoisePatterns(phrases []string) []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, 0, len(phrases))
	for _, phrase := range phrases {
		patterns = append(patterns, regexp.MustCompile(`(?i)`+regexp.QuoteMeta(phrase)+`[^\n]*`))
	}
	return patterns
}
