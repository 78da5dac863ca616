package user

import "strings"

// Smart quote characters that autocorrect tends to substitute into email
// addresses; storage always uses the plain apostrophe.
var apostrophes = strings.NewReplacer(
	"‘", "'",
	"’", "'",
	"ʼ", "'",
)

// NormalizeUsername returns the canonical store key for a username:
// surrounding whitespace removed, upper-cased.
func NormalizeUsername(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

// NormalizeEmail returns the canonical store form of an email address:
// trimmed, lower-cased, smart quotes folded to the plain apostrophe.
func NormalizeEmail(raw string) string {
	return apostrophes.Replace(strings.ToLower(strings.TrimSpace(raw)))
}
