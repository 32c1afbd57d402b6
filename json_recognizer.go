package splitstream

// jsonRecognizer implements spec.md §4.3. depth counts unclosed {/[ and,
// like the XML recognizer's depth, is never reset between documents —
// only startDepth-relative transitions matter.
//
// Top-level bare scalars (numbers, true/false/null, strings) are
// supported as a best-effort extension per spec.md §4.3 and §9's open
// question — no bundled test exercises them, but they're cheap to get
// right once the object/array machinery exists. A bare number has no
// self-delimiting terminator, so ending one requires looking one byte
// past it; sigEndedRewind (see recognizer.go) lets the engine un-consume
// that byte instead of needing an explicit pushback buffer.
type jsonRecognizer struct {
	depth      int
	startDepth int
	anchored   bool

	st int

	scalarString bool // true if the string in progress IS the whole document
	literal      string
	literalIdx   int
}

const (
	jsonScan int = iota
	jsonString
	jsonStringEscape
	jsonNumber
	jsonLiteral
)

func newJSONRecognizer(startDepth int) *jsonRecognizer {
	return &jsonRecognizer{startDepth: startDepth}
}

func (r *jsonRecognizer) passThrough() (signal, error) {
	return passThrough(r.anchored), nil
}

func isJSONSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\n'
}

func isJSONNumberByte(b byte) bool {
	switch b {
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9', '-', '+', '.', 'e', 'E':
		return true
	}
	return false
}

func (r *jsonRecognizer) feed(b byte) (signal, error) {
	switch r.st {
	case jsonScan:
		return r.feedScan(b)
	case jsonString:
		return r.feedString(b)
	case jsonStringEscape:
		r.st = jsonString
		return r.passThrough()
	case jsonNumber:
		return r.feedNumber(b)
	case jsonLiteral:
		return r.feedLiteral(b)
	default:
		panic("splitstream: bad json state")
	}
}

func (r *jsonRecognizer) feedScan(b byte) (signal, error) {
	switch {
	case b == '{' || b == '[':
		wasAnchored := r.anchored
		if !wasAnchored && r.depth == r.startDepth {
			r.anchored = true
		}
		r.depth++
		if !wasAnchored && r.anchored {
			return sigBoundary, nil
		}
		return r.passThrough()

	case b == '}' || b == ']':
		if r.depth > 0 {
			r.depth--
		}
		if r.depth == r.startDepth && r.anchored {
			r.anchored = false
			return sigEnded, nil
		}
		return r.passThrough()

	case b == '"':
		wasAnchored := r.anchored
		begins := !wasAnchored && r.depth == r.startDepth
		if begins {
			r.anchored = true
		}
		r.st = jsonString
		r.scalarString = begins
		if begins {
			return sigBoundary, nil
		}
		return r.passThrough()

	case isJSONSpace(b):
		return r.passThrough()

	default:
		if !r.anchored && r.depth == r.startDepth {
			switch b {
			case 't':
				r.anchored = true
				r.st = jsonLiteral
				r.literal, r.literalIdx = "rue", 0
				return sigBoundary, nil
			case 'f':
				r.anchored = true
				r.st = jsonLiteral
				r.literal, r.literalIdx = "alse", 0
				return sigBoundary, nil
			case 'n':
				r.anchored = true
				r.st = jsonLiteral
				r.literal, r.literalIdx = "ull", 0
				return sigBoundary, nil
			case '-':
				r.anchored = true
				r.st = jsonNumber
				return sigBoundary, nil
			default:
				if b >= '0' && b <= '9' {
					r.anchored = true
					r.st = jsonNumber
					return sigBoundary, nil
				}
			}
			// not a recognizable document start; treat as filler so a
			// stray byte between documents doesn't wedge the stream.
			return sigSkip, nil
		}
		return r.passThrough()
	}
}

func (r *jsonRecognizer) feedString(b byte) (signal, error) {
	switch b {
	case '\\':
		r.st = jsonStringEscape
		return r.passThrough()
	case '"':
		r.st = jsonScan
		if r.scalarString {
			r.anchored = false
			return sigEnded, nil
		}
		return r.passThrough()
	default:
		return r.passThrough()
	}
}

func (r *jsonRecognizer) feedNumber(b byte) (signal, error) {
	if isJSONNumberByte(b) {
		return r.passThrough()
	}
	r.st = jsonScan
	r.anchored = false
	return sigEndedRewind, nil
}

func (r *jsonRecognizer) feedLiteral(b byte) (signal, error) {
	if b != r.literal[r.literalIdx] {
		// malformed literal; abandon this document candidate rather than
		// wedge the stream waiting for bytes that will never come.
		r.st = jsonScan
		r.anchored = false
		return sigSkip, nil
	}
	r.literalIdx++
	if r.literalIdx == len(r.literal) {
		r.st = jsonScan
		r.anchored = false
		return sigEnded, nil
	}
	return r.passThrough()
}
