package flyweight

import (
	"github.com/arloliu/sbe/buffer"
	"github.com/arloliu/sbe/endian"
	"github.com/arloliu/sbe/errs"
)

// groupState is the group iteration state machine:
//
//	Unwrapped -> WrapForEncode/WrapForDecode -> Wrapped(count, index=-1)
//	Wrapped/Iterating -- Next() while index+1<count --> Iterating(index=k)
//	Wrapped/Iterating -- Next() while index+1==count  --> Exhausted
//	Exhausted/Unwrapped -- Next() --> error
type groupState uint8

const (
	groupUnwrapped groupState = iota
	groupWrapped
	groupIterating
	groupExhausted
)

// Group is the flyweight for a repeating group: a dimension header
// followed by count fixed-size entries, each optionally followed by nested
// groups and var-data. A Group shares its parent Message's buffer.Window — it
// never owns a position of its own — so that the cursor advances correctly
// across parent, group and nested group in call-stack order.
type Group struct {
	win         *buffer.Window
	engine      endian.EndianEngine
	dim         DimensionCodec
	blockLength int
	count       int
	index       int
	entryOffset int
	state       groupState
}

// NewGroup creates an unwrapped Group over the given shared window, which
// must be the Window of the enclosing Message or parent Group entry.
func NewGroup(win *buffer.Window, engine endian.EndianEngine, dim DimensionCodec) *Group {
	return &Group{win: win, engine: engine, dim: dim, index: -1}
}

// WrapForEncode writes the dimension header (blockLength, count) at the
// window's current position and transitions to Wrapped, ready for count
// calls to Next(). blockLength is the schema's nominal fixed-block size for
// one entry of this group.
func (g *Group) WrapForEncode(blockLength, count int) error {
	dimOffset := g.win.Position()
	if err := g.win.Advance(g.dim.Size()); err != nil {
		return errs.ErrBufferTooShort
	}
	buf := g.win.Bytes()
	if err := g.dim.WriteBlockLength(buf, dimOffset, g.engine, blockLength); err != nil {
		return err
	}
	if err := g.dim.WriteNumInGroup(buf, dimOffset, g.engine, count); err != nil {
		return err
	}

	g.blockLength = blockLength
	g.count = count
	g.index = -1
	g.state = groupWrapped

	return nil
}

// WrapForDecode reads the dimension header at the window's current position
// and transitions to Wrapped. The block length captured is the encoder's, not
// the receiver's nominal schema block length — Next() always advances by the
// encoder's value so schema-evolution padding is skipped, never
// misinterpreted as group data.
func (g *Group) WrapForDecode() error {
	dimOffset := g.win.Position()
	buf := g.win.Bytes()
	blockLength, err := g.dim.ReadBlockLength(buf, dimOffset, g.engine)
	if err != nil {
		return err
	}
	count, err := g.dim.ReadNumInGroup(buf, dimOffset, g.engine)
	if err != nil {
		return err
	}
	if err := g.win.Advance(g.dim.Size()); err != nil {
		return errs.ErrBufferTooShort
	}

	g.blockLength = blockLength
	g.count = count
	g.index = -1
	g.state = groupWrapped

	return nil
}

// Count returns the number of entries in this group (numInGroup).
func (g *Group) Count() int { return g.count }

// BlockLength returns the per-entry fixed block length: the nominal schema
// value on encode, or the encoder's declared value on decode.
func (g *Group) BlockLength() int { return g.blockLength }

// Index returns the zero-based index of the current entry, or -1 before the
// first Next() call.
func (g *Group) Index() int { return g.index }

// HasNext reports whether a further Next() call would succeed.
func (g *Group) HasNext() bool {
	return (g.state == groupWrapped || g.state == groupIterating) && g.index+1 < g.count
}

// Next advances to the next entry, returning its absolute fixed-block start
// offset. The caller (generated code, or the OTF decoder) MUST fully consume
// — or explicitly skip — any nested groups and var-data belonging to the
// previous entry before calling Next() again: Next() advances the shared
// position by exactly blockLength, so any unconsumed variable-length tail
// from the previous entry corrupts every subsequent read.
func (g *Group) Next() (int, error) {
	if g.state != groupWrapped && g.state != groupIterating {
		return 0, errs.ErrGroupNotIterating
	}
	if g.index+1 >= g.count {
		g.state = groupExhausted

		return 0, errs.ErrGroupExhausted
	}

	entryOffset := g.win.Position()
	if err := g.win.Advance(g.blockLength); err != nil {
		return 0, errs.ErrBufferTooShortForNextGroupIndex
	}

	g.entryOffset = entryOffset
	g.index++
	g.state = groupIterating

	return entryOffset, nil
}

// EntryOffset returns the absolute start offset of the current entry's fixed
// block. Valid only in the Iterating state.
func (g *Group) EntryOffset() int { return g.entryOffset }

// Window returns the shared buffer.Window, for constructing nested Group or
// VarData flyweights over the current entry.
func (g *Group) Window() *buffer.Window { return g.win }

// Engine returns the endian engine this group's dimension header and any
// little-endian-agnostic caller logic should use.
func (g *Group) Engine() endian.EndianEngine { return g.engine }
