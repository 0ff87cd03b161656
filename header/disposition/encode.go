package disposition

import "strings"

// String renders the disposition as a canonical Content-disposition value
// for a form-data part. A parameter value made of printable ASCII is written
// in the quoted form with any quotes escaped; anything else is written in the
// RFC 8187 extended form with a utf-8 charset and percent-encoding.
//
// Values produced here parse back to the same Disposition, so this pairs
// with ParseValue for round-tripping.
func (d Disposition) String() string {
	b := &strings.Builder{}
	b.WriteString("form-data")
	if d.hasFieldName {
		writeParam(b, "name", d.fieldName)
	}
	if d.hasFileName {
		writeParam(b, "filename", d.fileName)
	}
	return b.String()
}

// Bytes returns the rendered Content-disposition value as a slice of bytes.
func (d Disposition) Bytes() []byte {
	return []byte(d.String())
}

func writeParam(b *strings.Builder, name, value string) {
	b.WriteString("; ")
	b.WriteString(name)
	if isQuotable(value) {
		b.WriteString(`="`)
		b.WriteString(escapeQuotes(value))
		b.WriteByte('"')
		return
	}
	b.WriteString(`*=utf-8''`)
	writePctEncoded(b, value)
}

// isQuotable reports whether the value can be carried in a quoted string,
// which we limit to printable ASCII with no backslashes. A backslash sitting
// next to a quote changes how the closing quote is read, so the quoted form
// cannot carry backslashes faithfully; those values go extended instead.
func isQuotable(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] > 0x7e || s[i] == '\\' {
			return false
		}
	}
	return true
}

// escapeQuotes escapes bare quotes as \", the exact inverse of the
// unescaping applied when a quoted value is extracted.
func escapeQuotes(s string) string {
	return strings.ReplaceAll(s, `"`, `\"`)
}

const upperhex = "0123456789ABCDEF"

// writePctEncoded writes s percent-encoded, leaving attr-char bytes (RFC
// 5987 Section 3.2.1) bare. url.PathEscape will not escape "=", and
// url.QueryEscape turns " " into "+", so neither produces a valid ext-value
// and the encoding is done by hand.
func writePctEncoded(b *strings.Builder, s string) {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isAttrChar(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&0xf])
	}
}

func isAttrChar(c byte) bool {
	switch {
	case c >= '0' && c <= '9',
		c >= 'A' && c <= 'Z',
		c >= 'a' && c <= 'z':
		return true
	}
	switch c {
	case '!', '#', '$', '&', '+', '-', '.', '^', '_', '`', '|', '~':
		return true
	}
	return false
}
