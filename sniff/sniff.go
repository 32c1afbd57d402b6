// Package sniff implements the peek-then-resume format detection
// SPEC_FULL.md §12 adds around splitstream.Config.Preamble: callers that
// don't already know a stream's format can peek its first few bytes,
// classify them, and hand the peeked bytes back as Preamble so no byte
// is read twice.
package sniff

import (
	"errors"
	"io"

	"github.com/rickardp/splitstream"
)

// ErrEmptyStream is returned when r reaches EOF without producing any
// non-whitespace byte to classify.
var ErrEmptyStream = errors.New("sniff: empty stream")

// ErrUnrecognizedFormat is returned when the first non-whitespace byte
// matches none of the three formats' leading-byte sets.
var ErrUnrecognizedFormat = errors.New("sniff: unrecognized leading byte")

// DetectPreamble peeks r one byte at a time until it finds a byte that
// identifies the stream's format, classifying by leading non-whitespace
// byte: '<' is XML; '{', '[', a digit, '"', 't', 'f', '-', or 'n' is
// JSON; any other recognized UBJSON scalar marker is UBJSON. It returns
// the format and every byte peeked (including skipped whitespace), which
// the caller should pass back as Config.Preamble so DetectPreamble's own
// reads aren't lost:
//
//	format, preamble, err := sniff.DetectPreamble(r)
//	s, err := splitstream.New(r, splitstream.Config{Format: format, Preamble: preamble})
//
// '{' and '[' are claimed by JSON rather than UBJSON because the two
// formats share those leading bytes; a caller that already knows the
// stream is UBJSON has no need to sniff it.
func DetectPreamble(r io.Reader) (splitstream.Format, []byte, error) {
	var peeked []byte
	var one [1]byte
	for {
		n, err := r.Read(one[:])
		if n == 1 {
			b := one[0]
			peeked = append(peeked, b)
			if isSniffSpace(b) {
				continue
			}
			if f, ok := classify(b); ok {
				return f, peeked, nil
			}
			return "", peeked, ErrUnrecognizedFormat
		}
		if err != nil {
			if err == io.EOF {
				// everything peeked so far (if anything) was whitespace
				return "", peeked, ErrEmptyStream
			}
			return "", peeked, err
		}
	}
}

func isSniffSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\n'
}

func classify(b byte) (splitstream.Format, bool) {
	switch {
	case b == '<':
		return splitstream.XML, true
	case b == '{' || b == '[' || b == '"' || b == 't' || b == 'f' || b == 'n' || b == '-' || (b >= '0' && b <= '9'):
		return splitstream.JSON, true
	case isUBJSONScalarMarker(b):
		return splitstream.UBJSON, true
	}
	return "", false
}

func isUBJSONScalarMarker(b byte) bool {
	switch b {
	case 'Z', 'N', 'T', 'F', 'i', 'U', 'I', 'l', 'L', 'd', 'D', 'C', 'S', 'H':
		return true
	}
	return false
}
