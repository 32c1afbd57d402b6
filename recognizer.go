package splitstream

// signal is what a recognizer reports after consuming one byte, per
// spec.md §4.1/§4.2-§4.4. The Split Engine never looks inside a
// recognizer's private state; it only reacts to these four outcomes
// (plus sigEndedRewind, an engine-level refinement documented below).
type signal int

const (
	// sigMore means the byte was consumed as ordinary content of the
	// document already in progress; no anchor bookkeeping is needed.
	sigMore signal = iota

	// sigSkip means the byte is filler (inter-document whitespace, a
	// wrapper's own tag, a no-op marker) that belongs to no document.
	sigSkip

	// sigBoundary means this byte is the first byte of a new pending
	// document; the engine sets anchor to this byte's position.
	sigBoundary

	// sigEnded means the document in progress ends at this byte,
	// inclusive; the engine emits [anchor, cursor) and clears anchor.
	sigEnded

	// sigEndedRewind is like sigEnded, except this byte does NOT belong
	// to the document that just ended (it's the start of whatever comes
	// next). Only the JSON recognizer's bare-scalar extension uses this,
	// to end a number at the first byte that can't extend it.
	sigEndedRewind
)

// recognizer is the shared capability every format-specific state machine
// implements. feed reports an error only for ParseError conditions; the
// engine decides whether to surface it (Config.Strict) or simply stop.
type recognizer interface {
	feed(b byte) (signal, error)
}

// passThrough is shared by all three recognizers for "this byte doesn't
// change document boundaries, but does it belong to the pending document
// or to inter-document filler?" — the one distinction every state in
// every format eventually collapses to once structural classification is
// done for the byte.
func passThrough(inDoc bool) signal {
	if inDoc {
		return sigMore
	}
	return sigSkip
}
