// Package formdata provides tools for working with the headers of
// multipart/form-data body parts as defined by RFC 7578. The focus of this
// module is narrow on purpose: given the raw header of a single part, recover
// the two pieces of information a form upload actually cares about, the
// submitted field name and, when present, the original file name.
//
// Browsers and HTTP clients are not terribly consistent about how they write
// the Content-disposition header. In the wild you will see the plain
// parameter forms from RFC 2183 and RFC 6266 (name=value and name="a quoted
// value"), the extended form from RFC 5987 and RFC 8187
// (name*=charset'language'percent-encoded-value), duplicated parameters,
// inconsistent letter case, stray whitespace, and escaping that only
// approximately follows any specification. This library leans liberal in what
// it accepts: rather than rejecting a header that strays from the grammar, it
// scans past anything it cannot make sense of and reports a parameter only
// when a usable occurrence is found.
//
// The work happens in two packages. The header package parses the raw header
// block of one part into an ordered set of fields with case-insensitive
// lookup. The header/disposition package is the extraction engine itself: it
// locates a named parameter inside the semicolon-delimited parameter list,
// resolves the precedence between extended and plain occurrences, unescapes
// quoted strings, and percent-decodes extended values. If you already hold
// the raw bytes of a Content-disposition value from elsewhere, you can use
// the disposition package directly and skip the header package entirely.
//
// Everything here is pure computation over byte slices. Nothing blocks,
// nothing is cached, and no state is shared, so all functions and methods may
// be used concurrently on independent inputs without coordination.
package formdata
