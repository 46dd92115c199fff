package extractor

import (
	"strings"
	"sync"

	"github.com/pemistahl/lingua-go"
)

var (
	detectorOnce sync.Once
	detector     lingua.LanguageDetector
)

// detectLanguage reports the ISO 639-1 code for the text's language, or ""
// when detection is inconclusive. The detector is built once, lazily; model
// loading is too expensive to pay on package init.
func detectLanguage(text string) string {
	detectorOnce.Do(func() {
		detector = lingua.NewLanguageDetectorBuilder().
			FromLanguages(
				lingua.English, lingua.Spanish, lingua.French, lingua.German,
				lingua.Portuguese, lingua.Japanese, lingua.Korean, lingua.Chinese,
			).
			Build()
	})

	if lang, ok := detector.DetectLanguageOf(text); ok {
		return strings.ToLower(lang.IsoCode639_1().String())
	}
	return ""
}
