package header

// Break represents the line break separating the fields of a part header.
type Break string

// Constants for use when selecting a line break for parsing a header block.
// Multipart bodies on the wire always use CRLF, but bodies that have passed
// through other tooling sometimes arrive with something else.
const (
	CRLF Break = "\x0d\x0a" // \r\n - what RFC 7578 bodies actually use
	LF   Break = "\x0a"     // \n - Unix/Linux/BSD linebreak
	CR   Break = "\x0d"     // \r - old Macs
	LFCR Break = "\x0a\x0d" // \n\r - for weirdos
)

// String returns the break as a string.
func (b Break) String() string {
	return string(b)
}

// Bytes returns the break as a slice of bytes.
func (b Break) Bytes() []byte {
	return []byte(b)
}
