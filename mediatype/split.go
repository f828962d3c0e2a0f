package mediatype

import (
	"regexp"
	"strings"
)

// mediaTypeRe is the anchored type/subtype grammar over the HTTP token
// alphabet. The alphabet contains a backtick, hence the interpreted string
// literal.
var mediaTypeRe = regexp.MustCompile("^([A-Za-z0-9!#$%^&*_+{}|'.`~-]+)/([A-Za-z0-9!#$%^&*_+{}|'.`~-]+)$")

// Split splits a type/subtype media-type token into its components,
// normalized to lowercase. ok is false when token does not match the grammar
// exactly: a missing or second slash, an empty component, characters outside
// the token alphabet, or surrounding whitespace. Callers must treat a failed
// split as matching nothing.
func Split(token string) (typ, subtype string, ok bool) {
	m := mediaTypeRe.FindStringSubmatch(token)
	if m == nil {
		return "", "", false
	}
	return strings.ToLower(m[1]), strings.ToLower(m[2]), true
}

// IsMediaType reports whether s is a syntactically valid type/subtype token.
func IsMediaType(s string) bool {
	_, _, ok := Split(s)
	return ok
}
