// Package blocks converts the summarizer's markdown output into the ordered
// block sequence the destination store accepts.
//
// This is a line-oriented parse, not a markdown parser: the store's content
// model needs two heading levels, bullet items, paragraphs and a single bold
// flag per block, nothing more.
package blocks

import (
	"regexp"
	"strings"

	"github.com/webtonotion/webtonotion/models"
)

type parseState int

const (
	stateNone parseState = iota
	stateInParagraph
)

var boldSpan = regexp.MustCompile(`\*\*(.+?)\*\*`)

// Convert parses markdown into blocks. Heading and bullet lines emit a block
// immediately; consecutive plain lines accumulate into one paragraph, joined
// by newlines, until a blank line or a structural line closes it. A trailing
// open paragraph is flushed at end of input.
func Convert(markdown string) []models.Block {
	var (
		out       []models.Block
		state     parseState
		paragraph []string
	)

	flush := func() {
		if state != stateInParagraph {
			return
		}
		text := strings.Join(paragraph, "\n")
		out = append(out, models.Block{
			Type: models.BlockParagraph,
			Text: stripBold(text),
			Bold: hasBold(text),
		})
		paragraph = nil
		state = stateNone
	}

	for _, raw := range strings.Split(markdown, "\n") {
		line := strings.TrimSpace(raw)

		switch {
		case line == "":
			flush()

		case strings.HasPrefix(line, "###"):
			flush()
			out = append(out, models.Block{
				Type: models.BlockHeading3,
				Text: stripBold(strings.TrimSpace(strings.TrimPrefix(line, "###"))),
			})

		case strings.HasPrefix(line, "##"):
			flush()
			out = append(out, models.Block{
				Type: models.BlockHeading2,
				Text: stripBold(strings.TrimSpace(strings.TrimPrefix(line, "##"))),
			})

		case strings.HasPrefix(line, "-"):
			flush()
			item := strings.TrimSpace(strings.TrimPrefix(line, "-"))
			out = append(out, models.Block{
				Type: models.BlockBulletItem,
				Text: stripBold(item),
				Bold: hasBold(item),
			})

		default:
			paragraph = append(paragraph, line)
			state = stateInParagraph
		}
	}
	flush()

	return out
}

func hasBold(s string) bool {
	return boldSpan.MatchString(s)
}

// stripBold removes ** markers, keeping the span text.
func stripBold(s string) string {
	return boldSpan.ReplaceAllString(s, "$1")
}
