package flyweight

import (
	"github.com/arloliu/sbe/buffer"
	"github.com/arloliu/sbe/endian"
	"github.com/arloliu/sbe/errs"
	"github.com/arloliu/sbe/primitive"
)

// VarData is the flyweight for a trailing variable-length data field:
// a schema-declared length prefix (U8/U16/U32) followed by that many
// raw bytes. Var-data is always sequential and always trailing — it shares
// its parent Message or Group entry's buffer.Window so position advances
// correctly relative to any sibling var-data field or the next group entry.
type VarData struct {
	win        *buffer.Window
	engine     endian.EndianEngine
	lengthType primitive.Type // Uint8, Uint16 or Uint32
}

// NewVarData creates a VarData over the given shared window. lengthType must
// be one of primitive.Uint8, primitive.Uint16 or primitive.Uint32 — the
// schema-declared width of this field's length prefix.
func NewVarData(win *buffer.Window, engine endian.EndianEngine, lengthType primitive.Type) *VarData {
	return &VarData{win: win, engine: engine, lengthType: lengthType}
}

// maxLength returns the largest length value lengthType's domain can hold.
func (v *VarData) maxLength() uint64 {
	switch v.lengthType {
	case primitive.Uint8:
		return 1<<8 - 1
	case primitive.Uint16:
		return 1<<16 - 1
	default:
		return 1<<32 - 1
	}
}

// lengthSize returns the wire size in bytes of this field's length prefix.
func (v *VarData) lengthSize() int {
	return v.lengthType.Size()
}

// Set writes data as a length-prefixed var-data field at the window's current
// position, advancing position by len(prefix)+len(data). Fails with
// errs.ErrLengthTooLarge if len(data) does not fit lengthType's domain, or
// errs.ErrBufferTooShort if the buffer has no room for prefix+data. On
// failure position is left unchanged and no bytes are written.
func (v *VarData) Set(data []byte) error {
	if uint64(len(data)) > v.maxLength() {
		return errs.ErrLengthTooLarge
	}

	lenOffset := v.win.Position()
	total := v.lengthSize() + len(data)
	if err := v.win.Advance(total); err != nil {
		return errs.ErrBufferTooShort
	}

	buf := v.win.Bytes()
	if err := v.writeLength(buf, lenOffset, len(data)); err != nil {
		v.win.SetPosition(lenOffset)

		return err
	}
	copy(buf[lenOffset+v.lengthSize():lenOffset+total], data)

	return nil
}

func (v *VarData) writeLength(buf []byte, offset, length int) error {
	switch v.lengthType {
	case primitive.Uint8:
		return primitive.SetUint8(buf, offset, uint8(length)) //nolint:gosec
	case primitive.Uint16:
		return primitive.SetUint16(buf, offset, uint16(length), v.engine) //nolint:gosec
	default:
		return primitive.SetUint32(buf, offset, uint32(length), v.engine) //nolint:gosec
	}
}

func (v *VarData) readLength(buf []byte, offset int) (int, error) {
	switch v.lengthType {
	case primitive.Uint8:
		n, err := primitive.GetUint8(buf, offset)

		return int(n), err
	case primitive.Uint16:
		n, err := primitive.GetUint16(buf, offset, v.engine)

		return int(n), err
	default:
		n, err := primitive.GetUint32(buf, offset, v.engine)

		return int(n), err
	}
}

// Get returns a zero-copy view of this var-data field's payload, advancing
// position past the length prefix and the payload. The
// returned slice aliases the underlying buffer and must not outlive it.
func (v *VarData) Get() ([]byte, error) {
	lenOffset := v.win.Position()
	buf := v.win.Bytes()

	length, err := v.readLength(buf, lenOffset)
	if err != nil {
		return nil, err
	}

	total := v.lengthSize() + length
	if err := v.win.Advance(total); err != nil {
		return nil, errs.ErrBufferTooShort
	}

	start := lenOffset + v.lengthSize()

	return buf[start : start+length : start+length], nil
}
