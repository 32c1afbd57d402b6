package splitstream

import (
	"github.com/klauspost/cpuid"
	"github.com/pbnjay/memory"
)

// minBufSize is the smallest chunk size the engine will ever request from
// the reader on its own initiative. Callers may still set BufSize as low
// as 1 explicitly (spec.md §3: "Values as small as 1 must work").
const minBufSize = 512

// maxDefaultBufSize bounds how large the memory/cpu-scaled default in
// fillDefaults is allowed to grow, independent of how much RAM the host
// reports.
const maxDefaultBufSize = 1 << 20 // 1 MiB

// Config holds the split configuration described in spec.md §3.
type Config struct {
	// Format selects the recognizer: XML, JSON or UBJSON.
	Format Format

	// BufSize is the chunk size requested from the Reader on each refill.
	// Zero means "implementation default" (see fillDefaults).
	BufSize int

	// StartDepth is the nesting level at which documents are emitted.
	// Zero means top-level documents; a positive value extracts children
	// of a surrounding wrapper (spec.md §4.2, the <logfile>/<logent> case).
	StartDepth int

	// Preamble is virtually prepended to the reader's bytes before any
	// byte is actually read (spec.md §3), e.g. for resuming after a
	// format-sniffing peek (see the sniff package).
	Preamble []byte

	// Strict turns on ParseError reporting for unrecognized bytes and for
	// a partial trailing document at EOF, instead of the default silent
	// discard (spec.md §7, §9 Open Questions).
	Strict bool
}

// validate checks the synchronous, construction-time error conditions
// from spec.md §7. It never touches the reader.
func (c Config) validate() error {
	switch c.Format {
	case XML, JSON, UBJSON:
	default:
		return &ConfigurationError{Field: "Format", Value: c.Format}
	}
	if c.BufSize < 0 {
		return &ConfigurationError{Field: "BufSize", Value: c.BufSize}
	}
	if c.StartDepth < 0 {
		return &ConfigurationError{Field: "StartDepth", Value: c.StartDepth}
	}
	return nil
}

// fillDefaults resolves BufSize when the caller left it at zero. The
// default is scaled to the host the way eutils sizes its own internal
// buffers relative to the machine rather than a single hardcoded
// constant: more logical cores (cpuid.CPU.LogicalCores) and more total
// memory (memory.TotalMemory) both push the default chunk size up, on
// the theory that a bigger host will also be handed bigger documents.
func (c Config) fillDefaults() Config {
	if c.BufSize != 0 {
		return c
	}
	size := minBufSize
	if cores := cpuid.CPU.LogicalCores; cores > 1 {
		size *= cores
	}
	if total := memory.TotalMemory(); total > 0 {
		// One byte of chunk per 64 KiB of RAM, capped below.
		scaled := int(total / (64 * 1024))
		if scaled > size {
			size = scaled
		}
	}
	if size > maxDefaultBufSize {
		size = maxDefaultBufSize
	}
	c.BufSize = size
	return c
}
