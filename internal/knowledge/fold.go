package knowledge

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Fold lowercases s and brings it to NFC so composed and decomposed
// spellings of the same letter (й, ё) compare equal.
// A cases.Caser is stateful, so one is built per call.
func Fold(s string) string {
	return cases.Lower(language.Und).String(norm.NFC.String(s))
}
