package blocks

import (
	"reflect"
	"testing"

	"github.com/webtonotion/webtonotion/models"
)

func TestConvert(t *testing.T) {
	tests := []struct {
		name     string
		markdown string
		want     []models.Block
	}{
		{
			name:     "empty input",
			markdown: "",
			want:     nil,
		},
		{
			name:     "mixed structure",
			markdown: "## Title\n\nSome text\n- item one\n- **bold** item",
			want: []models.Block{
				{Type: models.BlockHeading2, Text: "Title"},
				{Type: models.BlockParagraph, Text: "Some text"},
				{Type: models.BlockBulletItem, Text: "item one"},
				{Type: models.BlockBulletItem, Text: "bold item", Bold: true},
			},
		},
		{
			name:     "heading levels",
			markdown: "## Top\n### Nested",
			want: []models.Block{
				{Type: models.BlockHeading2, Text: "Top"},
				{Type: models.BlockHeading3, Text: "Nested"},
			},
		},
		{
			name:     "consecutive plain lines form one paragraph",
			markdown: "first line\nsecond line\n\nthird line",
			want: []models.Block{
				{Type: models.BlockParagraph, Text: "first line\nsecond line"},
				{Type: models.BlockParagraph, Text: "third line"},
			},
		},
		{
			name:     "heading closes an open paragraph",
			markdown: "running text\n## Break",
			want: []models.Block{
				{Type: models.BlockParagraph, Text: "running text"},
				{Type: models.BlockHeading2, Text: "Break"},
			},
		},
		{
			name:     "bullet closes an open paragraph",
			markdown: "running text\n- a bullet",
			want: []models.Block{
				{Type: models.BlockParagraph, Text: "running text"},
				{Type: models.BlockBulletItem, Text: "a bullet"},
			},
		},
		{
			name:     "trailing paragraph is flushed",
			markdown: "## H\nlast words",
			want: []models.Block{
				{Type: models.BlockHeading2, Text: "H"},
				{Type: models.BlockParagraph, Text: "last words"},
			},
		},
		{
			name:     "bold paragraph",
			markdown: "this has **emphasis** inside",
			want: []models.Block{
				{Type: models.BlockParagraph, Text: "this has emphasis inside", Bold: true},
			},
		},
		{
			name:     "bold markers stripped from headings",
			markdown: "## **Loud** title",
			want: []models.Block{
				{Type: models.BlockHeading2, Text: "Loud title"},
			},
		},
		{
			name:     "blank lines only",
			markdown: "\n\n\n",
			want:     nil,
		},
		{
			name:     "heading without space after markers",
			markdown: "##Tight",
			want: []models.Block{
				{Type: models.BlockHeading2, Text: "Tight"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Convert(tt.markdown)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Convert(%q) = %#v, want %#v", tt.markdown, got, tt.want)
			}
		})
	}
}

func TestStripBold(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"**all bold**", "all bold"},
		{"no markers", "no markers"},
		{"**two** bold **spans**", "two bold spans"},
		{"unterminated ** marker", "unterminated ** marker"},
	}

	for _, tt := range tests {
		if got := stripBold(tt.in); got != tt.want {
			t.Errorf("stripBold(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
