package splitstream

import "io"

// Splitter is the Emit Interface of spec.md §4.5: a pull-driven, single-
// threaded iterator over the documents in a byte stream. It follows the
// bufio.Scanner idiom rather than eutils' own channel+goroutine producer
// pattern (CreateXMLStreamer) because spec.md §5 explicitly forbids the
// engine from running any internal thread — control must return to the
// caller between documents, synchronously.
//
// Usage:
//
//	s, err := New(r, Config{Format: JSON})
//	for s.Scan() {
//	    doc := s.Bytes() // valid only until the next Scan call
//	}
//	if err := s.Err(); err != nil { ... }
//
// Bytes returned by Bytes borrow the Splitter's internal buffer (the
// zero-copy discipline spec.md §9 calls for); callers that need a document
// to outlive the next Scan call must copy it themselves.
type Splitter struct {
	r        io.Reader
	cfg      Config
	buf      *buffer
	rec      recognizer
	done     bool
	err      error
	last     []byte
	consumed int64 // bytes fed to the recognizer so far, for ParseError.Offset
}

// New validates cfg and constructs a Splitter over r. It never reads from
// r; all I/O happens lazily, on Scan.
func New(r io.Reader, cfg Config) (*Splitter, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg = cfg.fillDefaults()

	s := &Splitter{
		r:   r,
		cfg: cfg,
		buf: newBuffer(cfg.BufSize),
	}
	s.buf.seed(cfg.Preamble)
	s.rec = newRecognizer(cfg.Format, cfg.StartDepth)
	return s, nil
}

// Scan advances to the next document. It returns false at end of stream
// or on error (distinguish with Err); Bytes is valid only after a Scan
// that returned true, and only until the next call to Scan.
func (s *Splitter) Scan() bool {
	if s.done {
		return false
	}
	s.buf.compactIfIdle()

	for {
		if !s.buf.pending() {
			n, err := s.buf.fill(s.r, s.cfg.BufSize)
			if n == 0 {
				s.done = true
				if err != nil && err != io.EOF {
					s.err = &ReaderError{Err: err}
					return false
				}
				// Under-delivery (EOF mid-document) is not an error by
				// default (spec.md §7); the partial pending document is
				// discarded silently. Strict mode opts into surfacing it
				// instead (SPEC_FULL.md §12).
				if s.cfg.Strict && s.buf.anchor != s.buf.cursor {
					s.err = &ParseError{Format: s.cfg.Format, Offset: s.consumed}
				}
				return false
			}
		}

		b := s.buf.next()
		s.consumed++
		sig, perr := s.rec.feed(b)
		if perr != nil {
			s.done = true
			if s.cfg.Strict {
				if pe, ok := perr.(*ParseError); ok {
					pe.Offset = s.consumed - 1
				}
				s.err = perr
			}
			return false
		}

		switch sig {
		case sigMore:
			// no bookkeeping
		case sigSkip:
			s.buf.advanceAnchor(s.buf.cursor)
		case sigBoundary:
			s.buf.advanceAnchor(s.buf.cursor - 1)
		case sigEnded:
			s.last = s.buf.slice()
			s.buf.advanceAnchor(s.buf.cursor)
			return true
		case sigEndedRewind:
			s.last = s.buf.data[s.buf.anchor : s.buf.cursor-1]
			s.buf.cursor--
			s.buf.advanceAnchor(s.buf.cursor)
			return true
		}
	}
}

// Bytes returns the document produced by the most recent successful Scan.
func (s *Splitter) Bytes() []byte {
	return s.last
}

// Err returns the first non-EOF error encountered, if any.
func (s *Splitter) Err() error {
	return s.err
}

func newRecognizer(f Format, startDepth int) recognizer {
	switch f {
	case XML:
		return newXMLRecognizer(startDepth)
	case JSON:
		return newJSONRecognizer(startDepth)
	case UBJSON:
		return newUBJSONRecognizer(startDepth)
	default:
		// unreachable: Config.validate already rejected unknown formats
		panic("splitstream: unknown format " + string(f))
	}
}
