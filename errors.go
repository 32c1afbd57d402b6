package splitstream

import "fmt"

// Format identifies which recognizer a Splitter drives.
type Format string

// Supported formats, per spec.md §6.
const (
	XML    Format = "xml"
	JSON   Format = "json"
	UBJSON Format = "ubjson"
)

// ConfigurationError is returned synchronously from New when the supplied
// Config cannot be used to construct a Splitter: an unknown format, or a
// negative BufSize/StartDepth. It is never raised mid-stream.
type ConfigurationError struct {
	Field string
	Value interface{}
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("splitstream: invalid configuration: %s=%v", e.Field, e.Value)
}

// ReaderError wraps a failure returned by the underlying io.Reader. It
// terminates iteration; the caller observes it on the Scan call that
// triggered the failing read.
type ReaderError struct {
	Err error
}

func (e *ReaderError) Error() string {
	return fmt.Sprintf("splitstream: reader error: %v", e.Err)
}

func (e *ReaderError) Unwrap() error {
	return e.Err
}

// ParseError reports a byte that cannot appear in any valid recognizer
// state. It is only ever surfaced when Config.Strict is true; by default
// the engine silently terminates iteration instead (spec.md §7).
type ParseError struct {
	Format Format
	Offset int64
	Byte   byte
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("splitstream: %s: unexpected byte 0x%02x at offset %d", e.Format, e.Byte, e.Offset)
}
