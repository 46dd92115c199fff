package extractor

import (
	"errors"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

// newTestDoc parses an HTML string into a goquery document.
func newTestDoc(t *testing.T, html string) *goquery.Document {
	t.Helper()

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("failed to parse test HTML: %v", err)
	}
	return doc
}

func TestExtract_PrefersContentSelector(t *testing.T) {
	doc := newTestDoc(t, `<html><head><title>My Page</title></head><body>
		<nav>Home About Contact</nav>
		<article>The actual article text lives here.</article>
		<footer>Copyright</footer>
	</body></html>`)

	content, err := Extract(doc, "https://blog.example.com/post", DefaultRules())
	if err != nil {
		t.Fatalf("Extract() failed: %v", err)
	}

	if !strings.Contains(content.Text, "actual article text") {
		t.Errorf("Text = %q, want article content", content.Text)
	}
	if strings.Contains(content.Text, "Home About Contact") {
		t.Errorf("Text contains nav content: %q", content.Text)
	}
	if content.Title != "My Page" {
		t.Errorf("Title = %q, want %q", content.Title, "My Page")
	}
	if content.Domain != "blog.example.com" {
		t.Errorf("Domain = %q, want %q", content.Domain, "blog.example.com")
	}
	if content.WordCount != len(strings.Fields(content.Text)) {
		t.Errorf("WordCount = %d, want %d", content.WordCount, len(strings.Fields(content.Text)))
	}
}

func TestExtract_FallsBackToBody(t *testing.T) {
	// No content selector matches; the body minus denylisted elements is
	// still usable.
	doc := newTestDoc(t, `<html><body>
		<script>var x = 1;</script>
		<div>Plain body text without any content container.</div>
	</body></html>`)

	content, err := Extract(doc, "https://example.com", DefaultRules())
	if err != nil {
		t.Fatalf("Extract() failed: %v", err)
	}
	if !strings.Contains(content.Text, "Plain body text") {
		t.Errorf("Text = %q, want body fallback content", content.Text)
	}
	if strings.Contains(content.Text, "var x") {
		t.Errorf("Text contains script content: %q", content.Text)
	}
}

func TestExtract_EmptyPage(t *testing.T) {
	doc := newTestDoc(t, `<html><body><nav>only navigation</nav></body></html>`)

	_, err := Extract(doc, "https://example.com", DefaultRules())
	if !errors.Is(err, ErrNoContent) {
		t.Errorf("Extract() error = %v, want ErrNoContent", err)
	}
}

func TestExtract_DoesNotMutateDocument(t *testing.T) {
	doc := newTestDoc(t, `<html><body>
		<nav>menu</nav>
		<article>content</article>
	</body></html>`)

	if _, err := Extract(doc, "https://example.com", DefaultRules()); err != nil {
		t.Fatalf("Extract() failed: %v", err)
	}

	if doc.Find("nav").Length() == 0 {
		t.Error("Extract() removed elements from the caller's document")
	}
}

func TestExtract_Metadata(t *testing.T) {
	doc := newTestDoc(t, `<html><head>
		<title>Tagged</title>
		<meta name="description" content="A described page">
		<meta name="author" content="Jane Roe">
		<meta property="article:published_time" content="2024-03-01T10:00:00Z">
	</head><body><article>Enough text to extract.</article></body></html>`)

	content, err := Extract(doc, "https://example.com", DefaultRules())
	if err != nil {
		t.Fatalf("Extract() failed: %v", err)
	}

	if content.Description != "A described page" {
		t.Errorf("Description = %q", content.Description)
	}
	if content.Author != "Jane Roe" {
		t.Errorf("Author = %q", content.Author)
	}
	if content.PublishedDate != "2024-03-01T10:00:00Z" {
		t.Errorf("PublishedDate = %q", content.PublishedDate)
	}
}

func TestExtract_CustomRules(t *testing.T) {
	rules := Rules{
		RemoveSelectors:  []string{".promo"},
		ContentSelectors: []string{".custom-main"},
	}
	doc := newTestDoc(t, `<html><body>
		<div class="promo">Buy now</div>
		<div class="custom-main">Injected selector content.</div>
	</body></html>`)

	content, err := Extract(doc, "https://example.com", rules)
	if err != nil {
		t.Fatalf("Extract() failed: %v", err)
	}
	if content.Text != "Injected selector content." {
		t.Errorf("Text = %q", content.Text)
	}
}

func TestCleanText(t *testing.T) {
	rules := DefaultRules()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "collapses space runs",
			input: "one   two\t\tthree",
			want:  "one two three",
		},
		{
			name:  "collapses blank line runs",
			input: "para one\n\n\n\n\npara two",
			want:  "para one\n\npara two",
		},
		{
			name:  "normalizes repeated punctuation",
			input: "Wait...... what????? no!!!",
			want:  "Wait... what? no!",
		},
		{
			name:  "strips noise phrases to end of line",
			input: "Real sentence.\nClick here to unlock the full story\nAnother real one.",
			want:  "Real sentence.\n\nAnother real one.",
		},
		{
			name:  "trims",
			input: "   padded   ",
			want:  "padded",
		},
		{
			name:  "empty",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanText(tt.input, rules); got != tt.want {
				t.Errorf("CleanText(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCleanText_Properties(t *testing.T) {
	rules := DefaultRules()
	inputs := []string{
		"a\n\n\n\nb\n\n\n\n\n\nc",
		"dots.......... bangs!!!!!!! questions???????",
		"Subscribe to our newsletter today\n\n\nreal text.....",
	}

	for _, input := range inputs {
		got := CleanText(input, rules)
		if strings.Contains(got, "\n\n\n") {
			t.Errorf("CleanText(%q) contains consecutive blank lines: %q", input, got)
		}
		for _, ch := range []string{".", "!", "?"} {
			if strings.Contains(got, strings.Repeat(ch, 4)) {
				t.Errorf("CleanText(%q) contains 4+ %q: %q", input, ch, got)
			}
		}
	}
}

func TestNoisePatterns_CaseInsensitive(t *testing.T) {
	patterns := NoisePatterns([]string{"Advertisement"})
	re := patterns[0]

	for _, s := range []string{"ADVERTISEMENT continues below", "advertisement"} {
		if !re.MatchString(s) {
			t.Errorf("pattern did not match %q", s)
		}
	}
	if re.MatchString("no noise here") {
		t.Error("pattern matched clean text")
	}
}
