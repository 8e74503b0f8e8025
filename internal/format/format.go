package format

import (
	"strings"
	"time"
	"unicode"
)

// stampLayout is the shared filename timestamp pattern (YYYYMMDD_HHMMSS).
const stampLayout = "20060102_150405"

// Stamp formats an instant as the run timestamp token used in filenames.
// Every artifact of one run carries the same stamp.
func Stamp(t time.Time) string {
	return t.Format(stampLayout)
}

// Title capitalizes the first letter of each word and lowercases the rest.
// Word boundaries are any non-letter runes, so "zone_concept" becomes
// "Zone_Concept" and "antiInflammatory" becomes "Antiinflammatory".
func Title(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
		} else {
			b.WriteRune(r)
			prevLetter = false
		}
	}
	return b.String()
}
