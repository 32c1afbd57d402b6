package splitstream

import "io"

// buffer is the growable byte region described in spec.md §3: an ordered
// byte sequence with three indices, anchor ≤ cursor ≤ end ≤ len(data).
// Compaction and growth mirror eutils/xml.go's nextBuffer: the unconsumed
// remainder is copied to the front of the array before the next read, and
// the array doubles in size instead of being reallocated on every call.
type buffer struct {
	data   []byte
	anchor int
	cursor int
	end    int
}

// newBuffer allocates a buffer sized to hold at least one read chunk.
func newBuffer(chunk int) *buffer {
	if chunk < minBufSize {
		chunk = minBufSize
	}
	return &buffer{data: make([]byte, chunk)}
}

// seed virtually prepends bytes to the buffer before any reader call, used
// for Config.Preamble.
func (b *buffer) seed(p []byte) {
	if len(p) == 0 {
		return
	}
	b.ensure(len(p))
	n := copy(b.data[b.end:], p)
	b.end += n
}

// pending reports whether there are unread bytes already buffered.
func (b *buffer) pending() bool {
	return b.cursor < b.end
}

// next returns the byte the recognizer should see next and advances
// cursor past it. Caller must only call this when pending() is true.
func (b *buffer) next() byte {
	c := b.data[b.cursor]
	b.cursor++
	return c
}

// slice returns the currently pending document candidate, [anchor, cursor).
func (b *buffer) slice() []byte {
	return b.data[b.anchor:b.cursor]
}

// advanceAnchor moves anchor to idx, discarding the bytes before it from
// the next emitted slice (used for skip/boundary signals).
func (b *buffer) advanceAnchor(idx int) {
	b.anchor = idx
}

// compactIfIdle shifts [anchor, end) down to index 0 when there is no
// document in flight (anchor == cursor) and anchor is anywhere past the
// front; there is no minimum drift before it copies. This keeps long-running
// splits of many small documents from growing the backing array forever.
func (b *buffer) compactIfIdle() {
	if b.anchor == 0 {
		return
	}
	if b.anchor != b.cursor {
		// A document is mid-flight; compacting now would be safe (it only
		// rebases indices) but is only worth the copy once we're idle.
		return
	}
	b.shiftToFront()
}

// shiftToFront discards bytes before anchor unconditionally, rebasing all
// three indices. Safe to call whether or not a document is in flight: the
// bytes in [anchor, end) are exactly the ones still reachable.
func (b *buffer) shiftToFront() {
	if b.anchor == 0 {
		return
	}
	n := copy(b.data, b.data[b.anchor:b.end])
	b.end = n
	b.cursor -= b.anchor
	b.anchor = 0
}

// ensure grows the backing array (geometric doubling, per spec.md §4.1)
// so that at least extra more bytes can be appended at end, compacting
// first if that alone makes enough room.
func (b *buffer) ensure(extra int) {
	if b.end+extra <= len(b.data) {
		return
	}
	b.shiftToFront()
	if b.end+extra <= len(b.data) {
		return
	}
	newCap := len(b.data)
	if newCap == 0 {
		newCap = minBufSize
	}
	for newCap < b.end+extra {
		newCap *= 2
	}
	grown := make([]byte, newCap)
	copy(grown, b.data[:b.end])
	b.data = grown
}

// fill reads up to chunk bytes from r into the tail of the buffer,
// growing it first if there's no room. Returns the number of bytes read;
// zero means EOF.
func (b *buffer) fill(r io.Reader, chunk int) (int, error) {
	b.ensure(chunk)
	n, err := r.Read(b.data[b.end : b.end+chunk])
	if n < 0 {
		n = 0
	}
	b.end += n
	return n, err
}
