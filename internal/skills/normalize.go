// Package skills implements skill-name normalization and the
// user-versus-required skill matcher used by gap reports.
package skills

import (
	"strings"
	"unicode"
)

// Normalize reduces a skill name to a canonical comparison token: only
// letters, digits, '+', '#' and '.' are kept, lowercased. Symbols are
// preserved because they are load-bearing in skill names (C++, C#, .NET,
// Node.js); whitespace and other punctuation vary too much across sources
// to keep. Normalize is pure and idempotent; empty input yields "".
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '+' || r == '#' || r == '.' {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}
