// Package disposition extracts form parameters from the raw value of a
// Content-disposition header as found on multipart/form-data body parts. It
// understands the plain key=value and key="quoted value" parameter forms as
// well as the RFC 5987/8187 extended form key*=charset'language'value, and it
// applies the standard precedence rule: an extended occurrence of a parameter
// always beats a plain occurrence of the same parameter, wherever each
// appears in the header.
//
// The parser is deliberately forgiving. A malformed occurrence of a parameter
// is skipped rather than treated as fatal and scanning simply continues with
// the rest of the header. The only failure mode callers ever see is an absent
// parameter.
package disposition
