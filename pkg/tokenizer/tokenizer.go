package tokenizer

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Bangla script block (U+0980 - U+09FF).
const (
	banglaRangeLow  = 0x0980
	banglaRangeHigh = 0x09FF
)

// Normalize lowercases text and applies NFC so composed and decomposed Bangla
// sequences compare equal.
func Normalize(text string) string {
	return strings.ToLower(norm.NFC.String(text))
}

// Tokenize splits text into lowercase word tokens. Splitting happens on any
// rune that is neither a letter nor a digit, which handles English word
// boundaries and whitespace-separated Bangla the same way.
func Tokenize(text string) []string {
	text = Normalize(text)

	tokens := []string{}
	var sb strings.Builder
	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			sb.WriteRune(r)
			continue
		}
		if sb.Len() > 0 {
			tokens = append(tokens, sb.String())
			sb.Reset()
		}
	}
	if sb.Len() > 0 {
		tokens = append(tokens, sb.String())
	}
	return tokens
}

func isBanglaRune(r rune) bool {
	return r >= banglaRangeLow && r <= banglaRangeHigh
}

// DetectLanguage classifies text as "bn" or "en" by counting Bangla script
// runes against ASCII letters. Mixed-script queries go to whichever script
// dominates, with "en" as the tie default.
func DetectLanguage(text string) string {
	banglaCount := 0
	englishCount := 0
	for _, r := range text {
		if isBanglaRune(r) {
			banglaCount++
		} else if r < 128 && unicode.IsLetter(r) {
			englishCount++
		}
	}
	if banglaCount > englishCount {
		return "bn"
	}
	return "en"
}

// ContainsBangla reports whether any rune of text is in the Bangla block.
func ContainsBangla(text string) bool {
	for _, r := range text {
		if isBanglaRune(r) {
			return true
		}
	}
	return false
}
