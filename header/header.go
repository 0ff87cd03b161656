// Package header parses the header block of a multipart/form-data body part
// into an ordered list of fields with case-insensitive lookup. It is the
// bridge between whatever framing split the body into parts and the
// disposition package, which wants the raw bytes of one header field.
package header

import (
	"errors"
	"strings"

	"github.com/zostay/go-formdata/header/disposition"
)

// Errors returned by various Header methods and functions.
var (
	// ErrNoSuchField is returned by Header methods when the operation being
	// performed failed because the field named does not exist.
	ErrNoSuchField = errors.New("no such header field")

	// ErrManyFields is returned by Header methods when the operation being
	// performed found multiple fields with the given name where it expected
	// one.
	ErrManyFields = errors.New("many header fields found")
)

// These are the headers a multipart/form-data part actually carries, per RFC
// 7578.
const (
	ContentDisposition      = "Content-Disposition"
	ContentType             = "Content-Type"
	ContentTransferEncoding = "Content-Transfer-Encoding"
)

// Header is the parsed header block of one multipart body part. It preserves
// the order of the fields as received and looks fields up by name without
// regard to letter case.
type Header struct {
	fields []*Field
}

// Len returns the number of fields in the header.
func (h *Header) Len() int {
	return len(h.fields)
}

// GetField returns the nth field in the header, or nil when the index is out
// of range.
func (h *Header) GetField(n int) *Field {
	if n < 0 || n >= len(h.fields) {
		return nil
	}
	return h.fields[n]
}

// GetIndexesNamed returns the indexes of all fields with the given name,
// matched case-insensitively.
func (h *Header) GetIndexesNamed(name string) []int {
	var ixs []int
	for i, f := range h.fields {
		if strings.EqualFold(f.name, name) {
			ixs = append(ixs, i)
		}
	}
	return ixs
}

// Get retrieves the string value of the named field.
//
// If the named field is not set in the header, it will return an empty
// string with ErrNoSuchField. If there are multiple fields with the given
// name, it will return the first value found and return ErrManyFields.
func (h *Header) Get(name string) (string, error) {
	ixs := h.GetIndexesNamed(name)
	if len(ixs) == 0 {
		return "", ErrNoSuchField
	}

	b := h.fields[ixs[0]].Body()
	if len(ixs) > 1 {
		return b, ErrManyFields
	}

	return b, nil
}

// Raw looks up the named field and returns the raw bytes of its body along
// with whether the field is present at all. When the field is repeated, the
// first occurrence is used. This is the lookup the disposition package
// consumes.
func (h *Header) Raw(name string) ([]byte, bool) {
	ixs := h.GetIndexesNamed(name)
	if len(ixs) == 0 {
		return nil, false
	}
	return h.fields[ixs[0]].Raw(), true
}

// ContentDisposition extracts the form parameters from the
// Content-disposition field of the header. A part without the field, or with
// one too mangled to parse, yields a Disposition reporting both parameters
// absent.
func (h *Header) ContentDisposition() disposition.Disposition {
	return disposition.Parse(h)
}
