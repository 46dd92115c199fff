package extractor

import (
	"regexp"
	"strings"
)

var (
	spaceRun    = regexp.MustCompile(`[ \t\r\f\x{00a0}]+`)
	blankRun    = regexp.MustCompile(`\n{3,}`)
	dotRun      = regexp.MustCompile(`\.{3,}`)
	bangRun     = regexp.MustCompile(`!{2,}`)
	questionRun = regexp.MustCompile(`\?{2,}`)
)

// CleanText normalizes raw textContent: single spaces within lines, at most
// one blank line between paragraphs, boilerplate phrases stripped, repeated
// punctuation collapsed.
func CleanText(text string, rules Rules) string {
	text = spaceRun.ReplaceAllString(text, " ")

	for _, pattern := range rules.NoisePatterns {
		text = pattern.ReplaceAllString(text, "")
	}

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	text = strings.Join(lines, "\n")

	text = blankRun.ReplaceAllString(text, "\n\n")
	text = dotRun.ReplaceAllString(text, "...")
	text = bangRun.ReplaceAllString(text, "!")
	text = questionRun.ReplaceAllString(text, "?")

	return strings.TrimSpace(text)
}
