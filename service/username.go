package service

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// DeriveUsername builds a login handle from the lowercase first letter of
// each space-separated part of the owner's name: "Steven Thomas Williams"
// becomes "stw". A blank name yields "".
func DeriveUsername(owner string) string {
	var b strings.Builder
	for _, part := range strings.Fields(owner) {
		r, _ := utf8.DecodeRuneInString(part)
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}
