// Package names sanitizes strings pulled out of a BTF blob's string
// section. name_off bytes are attacker-controlled — a malformed or
// adversarial blob can point an offset at arbitrary, non-UTF-8 bytes —
// so every resolved name is run through a transform pipeline that
// strips invalid runes before it reaches the decoded Entry, the same
// "never trust embedded metadata verbatim" posture the teacher brings
// to EWF header strings.
package names

import (
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// sanitizer drops any rune that does not decode as valid UTF-8,
// leaving well-formed text untouched.
var sanitizer = runes.Remove(badRunes{})

type badRunes struct{}

func (badRunes) Contains(r rune) bool { return r == utf8.RuneError }

// Sanitize returns s with invalid UTF-8 sequences removed. It is a
// pure function: same input always yields the same output, and it
// never allocates more than one pass over s.
func Sanitize(s string) string {
	if utf8.ValidString(s) {
		return s
	}
	out, _, err := transform.String(sanitizer, s)
	if err != nil {
		return strippedASCII(s)
	}
	return out
}

// strippedASCII is the fallback for the rare case transform itself
// errors: keep only bytes that are valid standalone ASCII, which is
// always valid UTF-8.
func strippedASCII(s string) string {
	b := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] < utf8.RuneSelf {
			b = append(b, s[i])
		}
	}
	return string(b)
}
