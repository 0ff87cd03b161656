package disposition

import (
	"bytes"
	"unicode/utf8"
)

// extendedValue is the decomposition of an RFC 5987 extended parameter value,
// charset'language'value. The value bytes are still percent-encoded and
// alias the header slice.
//
// The declared charset is recorded but never acted on. Decoding always
// assumes UTF-8, which is the only charset RFC 7578 form submissions use in
// practice.
type extendedValue struct {
	charset  string
	language string // empty when the language tag is omitted
	value    []byte
}

// parseExtendedValue splits the bytes following the *= of an extended
// parameter into charset, language tag, and the still-encoded value. It fails
// when either apostrophe delimiter is missing or the charset or language
// segment is not valid UTF-8 text.
//
// The value runs to the next semicolon or the end of the input, and then is
// cut at the first space byte, even an interior one. Values carrying a space
// that should have been percent-encoded lose their tail here; see the
// package tests for a record of that behavior.
func parseExtendedValue(in []byte) (extendedValue, bool) {
	in = trimLeftWS(in)

	q1 := bytes.IndexByte(in, '\'')
	if q1 < 0 || !utf8.Valid(in[:q1]) {
		return extendedValue{}, false
	}
	charset := string(in[:q1])

	rest := in[q1+1:]
	q2 := bytes.IndexByte(rest, '\'')
	if q2 < 0 || !utf8.Valid(rest[:q2]) {
		return extendedValue{}, false
	}
	language := string(rest[:q2])

	value := rest[q2+1:]
	if semi := bytes.IndexByte(value, ';'); semi >= 0 {
		value = value[:semi]
	}
	if sp := bytes.IndexByte(value, ' '); sp >= 0 {
		value = value[:sp]
	}

	return extendedValue{
		charset:  charset,
		language: language,
		value:    value,
	}, true
}
