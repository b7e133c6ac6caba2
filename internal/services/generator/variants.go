package generator

import (
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Expand returns the capitalization variants of word for the policy.
// All yields the original, upper and first-letter forms in that order and keeps coinciding forms.
func Expand(word string, policy Capitalization) []string {
	switch policy {
	case CapitalizationFirst:
		return []string{CapitalizeFirst(word)}
	case CapitalizationUpper:
		return []string{ToUpper(word)}
	case CapitalizationAll:
		return []string{word, ToUpper(word), CapitalizeFirst(word)}
	default:
		return []string{word}
	}
}

// ToUpper applies full Unicode upper casing, including special casing such as ß -> SS.
func ToUpper(word string) string {
	// casers keep state and must not be shared between goroutines
	return cases.Upper(language.Und).String(word)
}

// CapitalizeFirst upper-cases the first rune of word and keeps the rest as is.
func CapitalizeFirst(word string) string {
	r, size := utf8.DecodeRuneInString(word)
	if size == 0 || r == utf8.RuneError && size == 1 {
		return word
	}
	return ToUpper(word[:size]) + word[size:]
}
