package ir

import (
	"math"

	"github.com/arloliu/sbe/endian"
	"github.com/arloliu/sbe/errs"
	"github.com/arloliu/sbe/flyweight"
	"github.com/arloliu/sbe/primitive"
)

// tokenBlockLength is the fixed-block wire size of one TokenCodec entry:
// five int32 fields, a uint16 array capacity, and six single-byte
// enum/bit-range fields. The string and constant attributes follow as
// var-data.
const tokenBlockLength = 28

const (
	tokenOffTokenOffset    = 0
	tokenOffTokenSize      = 4
	tokenOffFieldID        = 8
	tokenOffVersion        = 12
	tokenOffComponentCount = 16
	tokenOffArrayCapacity  = 20
	tokenOffSignal         = 22
	tokenOffPrimitiveType  = 23
	tokenOffByteOrder      = 24
	tokenOffPresence       = 25
	tokenOffLsb            = 26
	tokenOffMsb            = 27
)

// frameBlockLength is FrameCodec's fixed-block wire size: the irId,
// irVersion and schemaVersion int32 fields. The package, namespace and
// semantic-version strings follow as var-data.
const frameBlockLength = 12

const (
	frameOffIrID          = 0
	frameOffIrVersion     = 4
	frameOffSchemaVersion = 8
)

// SupportedIrVersion is the only irVersion this runtime understands.
const SupportedIrVersion = 0

// Frame is the decoded FrameCodec header of a persisted IR stream.
type Frame struct {
	IrID           int32
	IrVersion      int32
	SchemaVersion  int32
	PackageName    string
	NamespaceName  string
	SemanticVer    string
}

// encodeFrame writes a Frame at base, in the engine byte order, returning the
// number of bytes its fixed block and three var-data strings occupied.
func encodeFrame(buf []byte, base int, engine endian.EndianEngine, f Frame) (int, error) {
	m := flyweight.NewMessage(engine)
	if err := m.WrapForEncode(buf, base, frameBlockLength, len(buf)); err != nil {
		return 0, err
	}

	if err := primitive.SetInt32(buf, base+frameOffIrID, f.IrID, engine); err != nil {
		return 0, err
	}
	if err := primitive.SetInt32(buf, base+frameOffIrVersion, f.IrVersion, engine); err != nil {
		return 0, err
	}
	if err := primitive.SetInt32(buf, base+frameOffSchemaVersion, f.SchemaVersion, engine); err != nil {
		return 0, err
	}

	for _, s := range []string{f.PackageName, f.NamespaceName, f.SemanticVer} {
		vd := flyweight.NewVarData(m.Window(), engine, primitive.Uint16)
		if err := vd.Set([]byte(s)); err != nil {
			return 0, err
		}
	}

	return m.EncodedLength(), nil
}

// decodeFrame reads a Frame at base, returning the Frame and the number of
// bytes its fixed block plus var-data occupied.
func decodeFrame(buf []byte, base int, engine endian.EndianEngine) (Frame, int, error) {
	m := flyweight.NewMessage(engine)
	if err := m.WrapForDecode(buf, base, frameBlockLength, 0, len(buf)); err != nil {
		return Frame{}, 0, err
	}

	irID, err := primitive.GetInt32(buf, base+frameOffIrID, engine)
	if err != nil {
		return Frame{}, 0, err
	}
	irVersion, err := primitive.GetInt32(buf, base+frameOffIrVersion, engine)
	if err != nil {
		return Frame{}, 0, err
	}
	schemaVersion, err := primitive.GetInt32(buf, base+frameOffSchemaVersion, engine)
	if err != nil {
		return Frame{}, 0, err
	}

	strs := make([]string, 3)
	for i := range strs {
		vd := flyweight.NewVarData(m.Window(), engine, primitive.Uint16)
		b, err := vd.Get()
		if err != nil {
			return Frame{}, 0, err
		}
		strs[i] = string(b)
	}

	f := Frame{
		IrID: irID, IrVersion: irVersion, SchemaVersion: schemaVersion,
		PackageName: strs[0], NamespaceName: strs[1], SemanticVer: strs[2],
	}
	if f.IrVersion != SupportedIrVersion {
		return Frame{}, 0, errs.ErrIRVersionUnsupported
	}

	return f, m.EncodedLength(), nil
}

// valueBytes renders v (of primitive type t) as a self-contained byte image:
// the type's native wire width in engine byte order for scalars, or the raw
// byte slice for a multi-character CHAR value. decodeValueBytes reverses this
// given the same t.
func valueBytes(t primitive.Type, engine endian.EndianEngine, v primitive.Value) []byte {
	switch t {
	case primitive.Char:
		if b := v.AsBytes(); b != nil {
			return b
		}

		return []byte{byte(v.AsInt())}
	case primitive.Int8:
		return []byte{byte(v.AsInt())} //nolint:gosec
	case primitive.Uint8:
		return []byte{byte(v.AsUint())} //nolint:gosec
	case primitive.Int16, primitive.Uint16:
		b := make([]byte, 2)
		engine.PutUint16(b, uint16(v.AsUint())) //nolint:gosec

		return b
	case primitive.Int32, primitive.Uint32:
		b := make([]byte, 4)
		engine.PutUint32(b, uint32(v.AsUint())) //nolint:gosec

		return b
	case primitive.Int64, primitive.Uint64:
		b := make([]byte, 8)
		engine.PutUint64(b, v.AsUint())

		return b
	case primitive.Float32:
		b := make([]byte, 4)
		engine.PutUint32(b, math.Float32bits(float32(v.AsFloat())))

		return b
	case primitive.Float64:
		b := make([]byte, 8)
		engine.PutUint64(b, math.Float64bits(v.AsFloat()))

		return b
	default:
		return nil
	}
}

//nolint:cyclop
func decodeValueBytes(t primitive.Type, engine endian.EndianEngine, data []byte) primitive.Value {
	if len(data) == 0 {
		return primitive.Value{}
	}

	switch t {
	case primitive.Char:
		if len(data) == 1 {
			return primitive.IntValue(primitive.Char, int64(data[0]))
		}

		return primitive.BytesValue(data)
	case primitive.Int8:
		if len(data) < 1 {
			return primitive.Value{}
		}

		return primitive.IntValue(primitive.Int8, int64(int8(data[0])))
	case primitive.Uint8:
		if len(data) < 1 {
			return primitive.Value{}
		}

		return primitive.UintValue(primitive.Uint8, uint64(data[0]))
	case primitive.Int16:
		return primitive.IntValue(primitive.Int16, int64(int16(engine.Uint16(data))))
	case primitive.Uint16:
		return primitive.UintValue(primitive.Uint16, uint64(engine.Uint16(data)))
	case primitive.Int32:
		return primitive.IntValue(primitive.Int32, int64(int32(engine.Uint32(data))))
	case primitive.Uint32:
		return primitive.UintValue(primitive.Uint32, uint64(engine.Uint32(data)))
	case primitive.Int64:
		return primitive.IntValue(primitive.Int64, int64(engine.Uint64(data)))
	case primitive.Uint64:
		return primitive.UintValue(primitive.Uint64, engine.Uint64(data))
	case primitive.Float32:
		return primitive.DoubleValue(primitive.Float32, float64(math.Float32frombits(engine.Uint32(data))))
	case primitive.Float64:
		return primitive.DoubleValue(primitive.Float64, math.Float64frombits(engine.Uint64(data)))
	default:
		return primitive.Value{}
	}
}

// encodeToken writes one Token's TokenCodec representation at base, returning
// the number of bytes its fixed block and every var-data attribute occupied.
func encodeToken(buf []byte, base int, engine endian.EndianEngine, tok Token) (int, error) {
	m := flyweight.NewMessage(engine)
	if err := m.WrapForEncode(buf, base, tokenBlockLength, len(buf)); err != nil {
		return 0, err
	}

	type fixedWrite struct {
		off int
		val int32
	}
	for _, w := range []fixedWrite{
		{tokenOffTokenOffset, int32(tok.Offset)}, //nolint:gosec
		{tokenOffTokenSize, int32(tok.Size)},     //nolint:gosec
		{tokenOffFieldID, int32(tok.FieldID)},    //nolint:gosec
		{tokenOffVersion, int32(tok.Version)},    //nolint:gosec
		{tokenOffComponentCount, int32(tok.ComponentTokenCount)}, //nolint:gosec
	} {
		if err := primitive.SetInt32(buf, base+w.off, w.val, engine); err != nil {
			return 0, err
		}
	}
	if err := primitive.SetUint16(buf, base+tokenOffArrayCapacity, uint16(tok.ArrayCapacity), engine); err != nil { //nolint:gosec
		return 0, err
	}
	if err := primitive.SetUint8(buf, base+tokenOffSignal, uint8(tok.Signal)); err != nil {
		return 0, err
	}
	if err := primitive.SetUint8(buf, base+tokenOffPrimitiveType, uint8(tok.PrimitiveType)); err != nil {
		return 0, err
	}
	if err := primitive.SetUint8(buf, base+tokenOffByteOrder, uint8(tok.ByteOrder)); err != nil {
		return 0, err
	}
	if err := primitive.SetUint8(buf, base+tokenOffPresence, uint8(tok.Presence)); err != nil {
		return 0, err
	}
	if err := primitive.SetUint8(buf, base+tokenOffLsb, tok.Lsb); err != nil {
		return 0, err
	}
	if err := primitive.SetUint8(buf, base+tokenOffMsb, tok.Msb); err != nil {
		return 0, err
	}

	strs := []string{
		tok.Name, tok.Description, tok.ReferencedName,
		tok.CharacterEncoding, tok.Epoch, tok.TimeUnit, tok.SemanticType,
	}
	for _, s := range strs {
		vd := flyweight.NewVarData(m.Window(), engine, primitive.Uint16)
		if err := vd.Set([]byte(s)); err != nil {
			return 0, err
		}
	}

	// An unset constant is persisted as a zero-length value so it round-trips
	// back to the zero Value rather than a typed zero, which would read as a
	// declared min/max of 0.
	values := []primitive.Value{tok.Min, tok.Max, tok.Null, tok.Const}
	for _, v := range values {
		var img []byte
		if !v.IsNone() {
			img = valueBytes(tok.PrimitiveType, engine, v)
		}
		vd := flyweight.NewVarData(m.Window(), engine, primitive.Uint16)
		if err := vd.Set(img); err != nil {
			return 0, err
		}
	}

	return m.EncodedLength(), nil
}

//nolint:cyclop
func decodeToken(buf []byte, base int, engine endian.EndianEngine) (Token, int, error) {
	m := flyweight.NewMessage(engine)
	if err := m.WrapForDecode(buf, base, tokenBlockLength, 0, len(buf)); err != nil {
		return Token{}, 0, err
	}

	readI32 := func(off int) (int32, error) { return primitive.GetInt32(buf, base+off, engine) }
	tokenOffset, err := readI32(tokenOffTokenOffset)
	if err != nil {
		return Token{}, 0, err
	}
	tokenSize, err := readI32(tokenOffTokenSize)
	if err != nil {
		return Token{}, 0, err
	}
	fieldID, err := readI32(tokenOffFieldID)
	if err != nil {
		return Token{}, 0, err
	}
	version, err := readI32(tokenOffVersion)
	if err != nil {
		return Token{}, 0, err
	}
	componentCount, err := readI32(tokenOffComponentCount)
	if err != nil {
		return Token{}, 0, err
	}
	arrayCapacity, err := primitive.GetUint16(buf, base+tokenOffArrayCapacity, engine)
	if err != nil {
		return Token{}, 0, err
	}
	signalRaw, err := primitive.GetUint8(buf, base+tokenOffSignal)
	if err != nil {
		return Token{}, 0, err
	}
	typeRaw, err := primitive.GetUint8(buf, base+tokenOffPrimitiveType)
	if err != nil {
		return Token{}, 0, err
	}
	byteOrderRaw, err := primitive.GetUint8(buf, base+tokenOffByteOrder)
	if err != nil {
		return Token{}, 0, err
	}
	presenceRaw, err := primitive.GetUint8(buf, base+tokenOffPresence)
	if err != nil {
		return Token{}, 0, err
	}
	lsb, err := primitive.GetUint8(buf, base+tokenOffLsb)
	if err != nil {
		return Token{}, 0, err
	}
	msb, err := primitive.GetUint8(buf, base+tokenOffMsb)
	if err != nil {
		return Token{}, 0, err
	}

	strs := make([]string, 7)
	for i := range strs {
		vd := flyweight.NewVarData(m.Window(), engine, primitive.Uint16)
		b, err := vd.Get()
		if err != nil {
			return Token{}, 0, err
		}
		strs[i] = string(b)
	}

	primType := primitive.Type(typeRaw)
	values := make([]primitive.Value, 4)
	for i := range values {
		vd := flyweight.NewVarData(m.Window(), engine, primitive.Uint16)
		b, err := vd.Get()
		if err != nil {
			return Token{}, 0, err
		}
		values[i] = decodeValueBytes(primType, engine, b)
	}

	tok := Token{
		Signal:              Signal(signalRaw),
		PrimitiveType:       primType,
		Presence:            primitive.Presence(presenceRaw),
		ByteOrder:           ByteOrder(byteOrderRaw),
		Offset:              int(tokenOffset),
		Size:                int(tokenSize),
		FieldID:             int(fieldID),
		Version:             int(version),
		ComponentTokenCount: int(componentCount),
		ArrayCapacity:       int(arrayCapacity),
		Name:                strs[0],
		Description:         strs[1],
		ReferencedName:      strs[2],
		CharacterEncoding:   strs[3],
		Epoch:               strs[4],
		TimeUnit:            strs[5],
		SemanticType:        strs[6],
		Min:                 values[0],
		Max:                 values[1],
		Null:                values[2],
		Const:               values[3],
		Lsb:                 lsb,
		Msb:                 msb,
	}

	return tok, m.EncodedLength(), nil
}
