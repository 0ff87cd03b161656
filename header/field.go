package header

import "fmt"

// Field is a single header field of a multipart body part. The name is kept
// as it appeared in the input; the body is kept as raw bytes so that
// parameter extraction can work on exactly what was received.
type Field struct {
	name string
	body []byte
}

// Name returns the name of the header field.
func (f *Field) Name() string {
	return f.name
}

// Body returns the body of the header field as a string.
func (f *Field) Body() string {
	return string(f.body)
}

// Raw returns the raw bytes of the header field body. The returned slice
// aliases the parsed input and must not be modified.
func (f *Field) Raw() []byte {
	return f.body
}

// String returns the complete header field as a string.
func (f *Field) String() string {
	return fmt.Sprintf("%s: %s", f.name, f.body)
}

// Bytes returns the complete header field as a slice of bytes.
func (f *Field) Bytes() []byte {
	return []byte(f.String())
}
