// Package buffer implements the SBE Buffer Window: the
// (buffer, capacity, base offset, acting block length, acting version,
// position) tuple every flyweight wraps. It centralises bounds checking so
// message, composite, group and var-data flyweights never touch a raw slice
// index directly.
package buffer

import "github.com/arloliu/sbe/errs"

// Window is a non-owning view over a caller-supplied byte slice. It never
// copies or reallocates the underlying buffer; callers must keep buf alive
// for the Window's lifetime.
type Window struct {
	buf                []byte
	base               int
	capacity           int
	actingBlockLength  int
	actingVersion      int
	position           int
}

// Wrap creates a Window over buf for an encode pass: base is the start of the
// message/composite, capacity is the usable length of buf, and position
// starts at base.
func Wrap(buf []byte, base, capacity int) (*Window, error) {
	if base < 0 || capacity < 0 || base > len(buf) || capacity > len(buf) || base > capacity {
		return nil, errs.ErrBufferTooShortForFlyweight
	}

	return &Window{buf: buf, base: base, capacity: capacity, position: base}, nil
}

// WrapForDecode creates a Window over buf for a decode pass, recording the
// sender's actingBlockLength and actingVersion so optional-field presence can
// be derived later.
func WrapForDecode(buf []byte, base, actingBlockLength, actingVersion, capacity int) (*Window, error) {
	w, err := Wrap(buf, base, capacity)
	if err != nil {
		return nil, err
	}
	w.actingBlockLength = actingBlockLength
	w.actingVersion = actingVersion

	return w, nil
}

// Bytes returns the underlying buffer. The caller must not retain it beyond
// the Window's lifetime in a way that aliases it for writing elsewhere.
func (w *Window) Bytes() []byte { return w.buf }

// Base returns the byte offset within Bytes() where this window's fixed
// block begins.
func (w *Window) Base() int { return w.base }

// Capacity returns the usable length of the underlying buffer.
func (w *Window) Capacity() int { return w.capacity }

// Position returns the current message-relative write/read cursor. Position
// is not composite-relative: composites and fixed-block fields are accessed
// by explicit offset added to Base, while Position only ever tracks the end
// of the last sequentially-consumed group or var-data field.
func (w *Window) Position() int { return w.position }

// SetPosition forcibly repositions the cursor. Used by Message.WrapForEncode/
// WrapForDecode to seed position at base+blockLength, and by Group/VarData
// flyweights that must resynchronise a shared cursor. Never bounds-checked on
// its own; callers establish the invariant via Advance.
func (w *Window) SetPosition(pos int) { w.position = pos }

// ActingBlockLength returns the block length the encoder used, read from the
// message/group header during decode. Zero if this window was built for encode.
func (w *Window) ActingBlockLength() int { return w.actingBlockLength }

// ActingVersion returns the schema version the encoder used. Zero if this
// window was built for encode (meaning "current version").
func (w *Window) ActingVersion() int { return w.actingVersion }

// Advance moves position forward by n bytes, failing with
// errs.ErrBufferTooShort if position+n would exceed capacity. On failure,
// position is left unchanged.
func (w *Window) Advance(n int) error {
	if n < 0 {
		return errs.ErrBufferTooShort
	}
	if w.position+n > w.capacity {
		return errs.ErrBufferTooShort
	}
	w.position += n

	return nil
}

// EncodedLength returns position - base, the total number of bytes this
// window's flyweight has produced or consumed so far.
func (w *Window) EncodedLength() int {
	return w.position - w.base
}

// InBounds reports whether [offset, offset+length) lies within capacity.
func (w *Window) InBounds(offset, length int) bool {
	return offset >= 0 && length >= 0 && offset+length <= w.capacity
}

// CheckBounds returns errs.ErrBufferTooShort unless [offset, offset+length)
// lies within capacity.
func (w *Window) CheckBounds(offset, length int) error {
	if !w.InBounds(offset, length) {
		return errs.ErrBufferTooShort
	}

	return nil
}
