package header

import (
	"bytes"
	"errors"
)

// MaxFields is the maximum number of fields Parse will accept in a single
// part header. A form-data part legitimately carries only a handful of
// fields, so anything past this is assumed to be garbage or an attempt to
// waste memory.
const MaxFields = 32

// ErrTooManyFields is returned by Parse when the header block holds more
// than MaxFields fields.
var ErrTooManyFields = errors.New("too many fields in part header")

// BadStartError is returned when the header block begins with text that does
// not appear to be a header field. This text is preserved in the error
// object, and parsing continues past it, so the error is recoverable: the
// Header returned alongside it is still usable.
type BadStartError struct {
	BadStart []byte // the text skipped at the start of the header
}

// Error returns the error message.
func (err *BadStartError) Error() string {
	return "part header starts with text that does not appear to be a header field"
}

// Parse parses the given bytes as the header block of one multipart body
// part, using the given line break. Parsing stops at the first blank line,
// so it is fine to hand this the whole part, header and body both.
//
// This does not follow the RFC grammar precisely. It accepts input the
// specification would reject as part of the effort this library makes in
// being liberal in what it accepts. A line that starts with a space or tab,
// or that contains no colon, is folded into the field before it as a
// continuation. If such lines appear before the first field, they are
// skipped and a BadStartError is returned along with the parsed Header.
func Parse(block []byte, lb Break) (*Header, error) {
	lines, err := parseLines(block, lb.Bytes())

	var badStartErr *BadStartError // recoverable
	var finalErr error
	if errors.As(err, &badStartErr) {
		finalErr = badStartErr
	} else if err != nil {
		return nil, err
	}

	if len(lines) > MaxFields {
		return nil, ErrTooManyFields
	}

	fields := make([]*Field, len(lines))
	for i, line := range lines {
		fields[i] = parseFieldLine(line, lb.Bytes())
	}

	return &Header{fields: fields}, finalErr
}

// parseLines splits the block into one element per header field, folding
// continuation lines into the field they continue and stopping at the first
// blank line.
func parseLines(block, lb []byte) ([][]byte, error) {
	lines := make([][]byte, 0, 4)
	var err *BadStartError
	for _, line := range bytes.SplitAfter(block, lb) {
		if len(line) == 0 || bytes.Equal(line, lb) {
			// blank line: the body starts here
			break
		}

		if line[0] == ' ' || line[0] == '\t' || !bytes.ContainsRune(line, ':') {
			// Start with a continuation? Weird, uh...
			if len(lines) == 0 {
				if err != nil {
					err.BadStart = append(err.BadStart, line...)
				} else {
					err = &BadStartError{line}
				}
				continue
			}

			lines[len(lines)-1] = append(lines[len(lines)-1], line...)
		} else {
			lines = append(lines, line)
		}
	}

	if err != nil {
		return lines, err
	}
	return lines, nil
}

// parseFieldLine takes a single header field line, including any folded
// continuation lines, and constructs a Field from it.
func parseFieldLine(line, lb []byte) *Field {
	raw := bytes.TrimRight(line, string(lb))

	off := 1
	ix := bytes.IndexByte(raw, ':')
	if ix < 0 {
		ix = len(raw)
		off = 0
	}

	name := string(bytes.TrimSpace(unfold(raw[:ix], lb)))
	body := bytes.TrimSpace(unfold(raw[ix+off:], lb))

	return &Field{name: name, body: body}
}

// unfold removes the line breaks a folded field line carries inside it.
func unfold(b, lb []byte) []byte {
	if !bytes.Contains(b, lb) {
		return b
	}
	return bytes.ReplaceAll(b, lb, nil)
}
