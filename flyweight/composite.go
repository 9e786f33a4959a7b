package flyweight

import "github.com/arloliu/sbe/endian"

// Composite is the flyweight for a fixed-size named tuple of sub-fields at
// known static offsets: the message header, a group's dimension
// header, and any user-defined composite type. Unlike Message and Group, a
// Composite is stateless — it tracks no position of its own; every sub-field
// accessor knows its static offset relative to the composite's start.
type Composite struct {
	buf    []byte
	offset int
	engine endian.EndianEngine
}

// NewComposite wraps buf at the given absolute offset. buf is typically the
// full message buffer (Message.Window().Bytes()); offset is the composite's
// start within it.
func NewComposite(buf []byte, offset int, engine endian.EndianEngine) Composite {
	return Composite{buf: buf, offset: offset, engine: engine}
}

// Buf returns the underlying buffer this composite was wrapped over.
func (c Composite) Buf() []byte { return c.buf }

// Offset returns this composite's absolute start offset within Buf().
func (c Composite) Offset() int { return c.offset }

// Engine returns the endian engine used for this composite's multi-byte sub-fields.
func (c Composite) Engine() endian.EndianEngine { return c.engine }

// FieldOffset returns the absolute offset of a sub-field declared at rel
// bytes from this composite's start. Generated accessors call
// primitive.GetT(c.Buf(), c.FieldOffset(rel), c.Engine()).
func (c Composite) FieldOffset(rel int) int { return c.offset + rel }
