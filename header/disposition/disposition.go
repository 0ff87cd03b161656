package disposition

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// ErrNotPresent is returned by accessors and extraction functions when the
// requested parameter could not be recovered from the header. No distinction
// is made between a header that is missing entirely, a parameter that was
// never set, and a parameter that was set but too mangled to decode.
var ErrNotPresent = errors.New("disposition parameter is not present")

// contentDisposition is the header field the Parse function reads from the
// caller's header lookup.
const contentDisposition = "Content-Disposition"

// Attribute identifies a form parameter of the Content-disposition header
// that the extraction engine knows how to locate.
type Attribute int

// The parameters that matter for a form-data part.
const (
	// Name is the name of the form field the part carries.
	Name Attribute = iota

	// Filename is the original name of an uploaded file, when the part
	// carries one.
	Filename
)

var (
	namePrefix     = []byte("name")
	filenamePrefix = []byte("filename")
)

// prefix returns the lowercase parameter name used for case-insensitive
// matching within the header.
func (a Attribute) prefix() []byte {
	if a == Filename {
		return filenamePrefix
	}
	return namePrefix
}

// parsedField is one located occurrence of a parameter, before precedence has
// been applied. The value bytes alias the header slice for a plain
// occurrence; an extended occurrence holds its fully decoded bytes instead.
type parsedField struct {
	value      []byte
	isExtended bool
	isEscaped  bool
}

// ExtractFrom scans the raw value of a Content-disposition header for the
// attribute and returns its decoded text.
//
// The whole header is scanned, not just up to the first hit, because an
// extended occurrence (name*=utf-8''...) overrides a plain occurrence
// (name=...) of the same parameter no matter which of the two appears first.
// Among plain occurrences the leftmost one wins. Occurrences that cannot be
// decoded, whether from broken quoting, a missing RFC 5987 delimiter, or
// bytes that are not valid UTF-8, are skipped as if they were never there.
//
// It returns ErrNotPresent when no usable occurrence of the attribute exists
// in the header.
func (a Attribute) ExtractFrom(header []byte) (string, error) {
	prefix := a.prefix()

	var regular *parsedField
	rest := header
	for {
		field, tail, found := findNextField(rest, prefix)
		if !found {
			break
		}
		if field.isExtended {
			// extended wins outright; its value is already decoded
			return string(field.value), nil
		}
		if regular == nil {
			f := field
			regular = &f
		}
		rest = tail
	}

	if regular == nil {
		return "", ErrNotPresent
	}
	if regular.isEscaped {
		return unescapeQuotes(regular.value)
	}
	if !utf8.Valid(regular.value) {
		return "", ErrNotPresent
	}
	return string(regular.value), nil
}

// unescapeQuotes converts a quoted-string body that contained escaped quotes
// by rewriting each \" sequence to a bare quote.
func unescapeQuotes(value []byte) (string, error) {
	if !utf8.Valid(value) {
		return "", ErrNotPresent
	}
	return strings.ReplaceAll(string(value), `\"`, `"`), nil
}

// RawHeader is the header lookup a Disposition is parsed from. The header
// package implements it, as does net/textproto-style storage with a thin
// adapter. Raw returns the raw bytes of the named field's body and whether
// the field is present at all; the name is matched without regard to letter
// case.
type RawHeader interface {
	Raw(name string) ([]byte, bool)
}

// Disposition holds the decoded form parameters of one part. Each parameter
// is independently optional and the zero value reports both as absent.
type Disposition struct {
	fieldName string
	fileName  string

	hasFieldName bool
	hasFileName  bool
}

// Parse looks up the Content-disposition field in the given header and
// extracts both form parameters from it. A header without the field yields a
// Disposition with both parameters absent.
func Parse(h RawHeader) Disposition {
	raw, ok := h.Raw(contentDisposition)
	if !ok {
		return Disposition{}
	}
	return ParseValue(raw)
}

// ParseValue extracts both form parameters directly from the raw value of a
// Content-disposition header. The input bytes are only read for the duration
// of the call; the returned Disposition holds its own copies of the decoded
// text.
func ParseValue(value []byte) Disposition {
	var d Disposition
	if name, err := Name.ExtractFrom(value); err == nil {
		d.fieldName = name
		d.hasFieldName = true
	}
	if fn, err := Filename.ExtractFrom(value); err == nil {
		d.fileName = fn
		d.hasFileName = true
	}
	return d
}

// New returns a Disposition describing a plain form field with the given
// name.
func New(fieldName string) Disposition {
	return Disposition{
		fieldName:    fieldName,
		hasFieldName: true,
	}
}

// NewFile returns a Disposition describing a file upload field with the given
// field name and original file name.
func NewFile(fieldName, fileName string) Disposition {
	return Disposition{
		fieldName:    fieldName,
		fileName:     fileName,
		hasFieldName: true,
		hasFileName:  true,
	}
}

// FieldName returns the name of the form field.
//
// It returns ErrNotPresent if no usable name parameter was found.
func (d Disposition) FieldName() (string, error) {
	if !d.hasFieldName {
		return "", ErrNotPresent
	}
	return d.fieldName, nil
}

// Filename returns the original file name of an uploaded file.
//
// It returns ErrNotPresent if no usable filename parameter was found, which
// is the usual case for parts that are not file uploads.
func (d Disposition) Filename() (string, error) {
	if !d.hasFileName {
		return "", ErrNotPresent
	}
	return d.fileName, nil
}
