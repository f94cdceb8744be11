package parser

import (
	"fmt"
	"regexp"
	"unicode/utf16"
)

var (
	phoneShapeRe = regexp.MustCompile(`^\+?\d+`)
	nonDigitRe   = regexp.MustCompile(`[^\d+]`)
)

// SenderID derives a stable identifier from a free-text sender label.
//
// Phone-shaped labels keep their digits (and leading +). Everything else
// goes through a polynomial hash over the label's UTF-16 code units with
// int32 wraparound, producing "user_<abs(hash)>". The hash is lossy and
// collision-possible; it exists to stay compatible with identifiers already
// in the store, so the recurrence must not be changed.
func SenderID(label string) string {
	if phoneShapeRe.MatchString(label) {
		return nonDigitRe.ReplaceAllString(label, "")
	}

	var hash int32
	for _, unit := range utf16.Encode([]rune(label)) {
		hash = hash*31 + int32(unit)
	}

	abs := int64(hash)
	if abs < 0 {
		abs = -abs
	}
	return fmt.Sprintf("user_%d", abs)
}
