package disposition

import (
	"bytes"
	"unicode/utf8"
)

// isWS reports whether b is an ASCII whitespace byte.
func isWS(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\f', '\r':
		return true
	}
	return false
}

// trimLeftWS returns the longest suffix of b with no leading ASCII
// whitespace. An all-whitespace input yields an empty slice.
func trimLeftWS(b []byte) []byte {
	i := 0
	for i < len(b) && isWS(b[i]) {
		i++
	}
	return b[i:]
}

// trimLeftWSThen trims leading ASCII whitespace and, when the next byte is
// delim, returns everything after it. The second return is false when the
// trimmed input is empty or starts with some other byte.
func trimLeftWSThen(b []byte, delim byte) ([]byte, bool) {
	b = trimLeftWS(b)
	if len(b) == 0 || b[0] != delim {
		return nil, false
	}
	return b[1:], true
}

// percentDecode decodes %XX escape triples in the input, passing all other
// bytes through unchanged. An input without a percent sign is returned as-is
// without copying. A percent sign that is not followed by two hex digits is
// copied through literally rather than treated as an error, so this function
// always produces a result.
func percentDecode(in []byte) []byte {
	if bytes.IndexByte(in, '%') < 0 {
		return in
	}

	out := make([]byte, 0, len(in))
	for i := 0; i < len(in); {
		if in[i] == '%' && i+2 < len(in) {
			hi, okHi := unhex(in[i+1])
			lo, okLo := unhex(in[i+2])
			if okHi && okLo {
				out = append(out, hi<<4|lo)
				i += 3
				continue
			}
		}
		out = append(out, in[i])
		i++
	}
	return out
}

func unhex(b byte) (byte, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, true
	}
	return 0, false
}

// parseValue scans the bytes immediately following the = of a plain
// parameter and returns the value's bytes, still aliasing the input.
//
// A quoted value runs to the closing quote and may contain semicolons,
// spaces, and backslash-escaped quotes; a quote preceded by an odd run of
// backslashes does not terminate it. escaped reports whether at least one
// escaped quote was consumed, so the caller knows to unescape. A quoted value
// with no closing quote fails.
//
// An unquoted value runs to the first semicolon or space, or to the end of
// the input, and always succeeds.
func parseValue(in []byte) (value []byte, escaped, ok bool) {
	if rest, found := trimLeftWSThen(in, '"'); found {
		k := bytes.IndexByte(rest, '"')
		if k < 0 {
			return nil, false, false
		}
		for {
			run := 0
			for run < k && rest[k-run-1] == '\\' {
				run++
			}
			if run%2 == 0 {
				break
			}
			escaped = true
			next := bytes.IndexByte(rest[k+1:], '"')
			if next < 0 {
				return nil, false, false
			}
			k += 1 + next
		}
		return rest[:k], escaped, true
	}

	rest := trimLeftWS(in)
	j := bytes.IndexAny(rest, "; ")
	if j < 0 {
		j = len(rest)
	}
	return rest[:j], false, true
}

// findNextField locates the next occurrence of the named parameter in the
// header, walking the semicolon-delimited parameter list and matching the
// parameter name without regard to letter case. On a match it returns the
// parsed field along with the unconsumed remainder of the header, which the
// caller feeds back in to keep scanning for further occurrences.
//
// A prefix match that does not turn out to be the parameter, such as the
// name appearing inside some longer token, is stepped over and the walk
// continues. The third return is false once the header is exhausted.
func findNextField(header, prefix []byte) (parsedField, []byte, bool) {
	header = trimLeftWS(header)

	for len(header) > 0 {
		if header[0] != ';' {
			semi := bytes.IndexByte(header, ';')
			if semi < 0 {
				return parsedField{}, nil, false
			}
			header = header[semi:]
		}

		header = trimLeftWS(header[1:])

		if hasPrefixFold(header, prefix) {
			if field, rest, ok := parseField(header, prefix); ok {
				return field, rest, true
			}
		}

		semi := bytes.IndexByte(header, ';')
		if semi < 0 {
			break
		}
		header = header[semi:]
	}

	return parsedField{}, nil, false
}

// hasPrefixFold reports whether b starts with prefix under ASCII
// case-insensitive comparison.
func hasPrefixFold(b, prefix []byte) bool {
	return len(b) >= len(prefix) && bytes.EqualFold(b[:len(prefix)], prefix)
}

// parseField parses one candidate occurrence whose prefix already matched.
// The parameter name may be followed by whitespace, then an optional * for
// the extended form, then the mandatory =. A missing = means the prefix was
// a coincidence and the candidate is not a field at all.
//
// For the extended form the value is decoded here in full: split per RFC
// 5987, percent-decoded, and checked as UTF-8. Failure anywhere in that chain
// discards just this occurrence and the locator scans on.
func parseField(header, prefix []byte) (parsedField, []byte, bool) {
	suffix := header[len(prefix):]
	rest := trimLeftWS(suffix)

	isExtended := false
	if len(rest) > 0 && rest[0] == '*' {
		rest = trimLeftWS(rest[1:])
		isExtended = true
	}

	rest, ok := trimLeftWSThen(rest, '=')
	if !ok {
		return parsedField{}, nil, false
	}

	if isExtended {
		ev, ok := parseExtendedValue(rest)
		if !ok {
			return parsedField{}, nil, false
		}
		decoded := percentDecode(ev.value)
		if !utf8.Valid(decoded) {
			return parsedField{}, nil, false
		}
		return parsedField{value: decoded, isExtended: true}, suffix, true
	}

	value, escaped, ok := parseValue(rest)
	if !ok {
		return parsedField{}, nil, false
	}
	return parsedField{value: value, isEscaped: escaped}, suffix, true
}
