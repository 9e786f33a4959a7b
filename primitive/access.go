package primitive

import (
	"math"

	"github.com/arloliu/sbe/endian"
	"github.com/arloliu/sbe/errs"
)

// The Get/Set family below gives bit-exact, endian-aware access to every
// primitive type in the SBE closed set. Each has three forms:
//
//   - GetT(buf, offset, engine) (T, error)        — safe, bounds-checked
//   - GetTUnsafe(buf, offset, engine) T            — unsafe, caller-validated
//   - GetTNullChecking(buf, offset, engine) T       — returns the type's null
//     sentinel instead of an error when offset is out of range; used for
//     OPTIONAL fields trailing a truncated block.
//
// Set has safe and unsafe forms only; there is no "null-checking" variant for
// encode since writes never need a null fallback. CHAR is the exception to
// both rules: it has GetChar, GetCharUnsafe and SetChar only.

// GetInt8 reads a signed 8-bit value at offset, bounds-checked.
func GetInt8(buf []byte, offset int) (int8, error) {
	if offset < 0 || offset+1 > len(buf) {
		return 0, errs.ErrBufferTooShort
	}

	return GetInt8Unsafe(buf, offset), nil
}

// GetInt8Unsafe reads a signed 8-bit value at offset without bounds checking.
func GetInt8Unsafe(buf []byte, offset int) int8 {
	return int8(buf[offset])
}

// GetInt8NullChecking reads a signed 8-bit value, returning the INT8 null
// sentinel if offset is out of range.
func GetInt8NullChecking(buf []byte, offset int) int8 {
	v, err := GetInt8(buf, offset)
	if err != nil {
		return int8(Null(Int8).AsInt())
	}

	return v
}

// SetInt8 writes a signed 8-bit value at offset, bounds-checked.
func SetInt8(buf []byte, offset int, val int8) error {
	if offset < 0 || offset+1 > len(buf) {
		return errs.ErrBufferTooShort
	}
	SetInt8Unsafe(buf, offset, val)

	return nil
}

// SetInt8Unsafe writes a signed 8-bit value at offset without bounds checking.
func SetInt8Unsafe(buf []byte, offset int, val int8) {
	buf[offset] = byte(val)
}

// GetUint8 reads an unsigned 8-bit value at offset, bounds-checked.
func GetUint8(buf []byte, offset int) (uint8, error) {
	if offset < 0 || offset+1 > len(buf) {
		return 0, errs.ErrBufferTooShort
	}

	return buf[offset], nil
}

// GetUint8Unsafe reads an unsigned 8-bit value at offset without bounds checking.
func GetUint8Unsafe(buf []byte, offset int) uint8 {
	return buf[offset]
}

// GetUint8NullChecking reads an unsigned 8-bit value, returning the UINT8 null
// sentinel if offset is out of range.
func GetUint8NullChecking(buf []byte, offset int) uint8 {
	v, err := GetUint8(buf, offset)
	if err != nil {
		return uint8(Null(Uint8).AsUint())
	}

	return v
}

// SetUint8 writes an unsigned 8-bit value at offset, bounds-checked.
func SetUint8(buf []byte, offset int, val uint8) error {
	if offset < 0 || offset+1 > len(buf) {
		return errs.ErrBufferTooShort
	}
	buf[offset] = val

	return nil
}

// SetUint8Unsafe writes an unsigned 8-bit value at offset without bounds checking.
func SetUint8Unsafe(buf []byte, offset int, val uint8) {
	buf[offset] = val
}

// GetChar reads a single CHAR byte at offset, bounds-checked.
func GetChar(buf []byte, offset int) (byte, error) {
	return GetUint8(buf, offset)
}

// GetCharUnsafe reads a single CHAR byte at offset without bounds checking.
func GetCharUnsafe(buf []byte, offset int) byte {
	return buf[offset]
}

// SetChar writes a single CHAR byte at offset, bounds-checked.
func SetChar(buf []byte, offset int, val byte) error {
	return SetUint8(buf, offset, val)
}

// GetInt16 reads a signed 16-bit value at offset using engine's byte order, bounds-checked.
func GetInt16(buf []byte, offset int, engine endian.EndianEngine) (int16, error) {
	if offset < 0 || offset+2 > len(buf) {
		return 0, errs.ErrBufferTooShort
	}

	return GetInt16Unsafe(buf, offset, engine), nil
}

// GetInt16Unsafe reads a signed 16-bit value without bounds checking.
func GetInt16Unsafe(buf []byte, offset int, engine endian.EndianEngine) int16 {
	return int16(engine.Uint16(buf[offset : offset+2]))
}

// GetInt16NullChecking reads a signed 16-bit value, returning the INT16 null
// sentinel if offset is out of range.
func GetInt16NullChecking(buf []byte, offset int, engine endian.EndianEngine) int16 {
	v, err := GetInt16(buf, offset, engine)
	if err != nil {
		return int16(Null(Int16).AsInt())
	}

	return v
}

// SetInt16 writes a signed 16-bit value at offset, bounds-checked.
func SetInt16(buf []byte, offset int, val int16, engine endian.EndianEngine) error {
	if offset < 0 || offset+2 > len(buf) {
		return errs.ErrBufferTooShort
	}
	SetInt16Unsafe(buf, offset, val, engine)

	return nil
}

// SetInt16Unsafe writes a signed 16-bit value without bounds checking.
func SetInt16Unsafe(buf []byte, offset int, val int16, engine endian.EndianEngine) {
	engine.PutUint16(buf[offset:offset+2], uint16(val))
}

// GetUint16 reads an unsigned 16-bit value at offset, bounds-checked.
func GetUint16(buf []byte, offset int, engine endian.EndianEngine) (uint16, error) {
	if offset < 0 || offset+2 > len(buf) {
		return 0, errs.ErrBufferTooShort
	}

	return engine.Uint16(buf[offset : offset+2]), nil
}

// GetUint16Unsafe reads an unsigned 16-bit value without bounds checking.
func GetUint16Unsafe(buf []byte, offset int, engine endian.EndianEngine) uint16 {
	return engine.Uint16(buf[offset : offset+2])
}

// GetUint16NullChecking reads an unsigned 16-bit value, returning the UINT16
// null sentinel if offset is out of range.
func GetUint16NullChecking(buf []byte, offset int, engine endian.EndianEngine) uint16 {
	v, err := GetUint16(buf, offset, engine)
	if err != nil {
		return uint16(Null(Uint16).AsUint())
	}

	return v
}

// SetUint16 writes an unsigned 16-bit value at offset, bounds-checked.
func SetUint16(buf []byte, offset int, val uint16, engine endian.EndianEngine) error {
	if offset < 0 || offset+2 > len(buf) {
		return errs.ErrBufferTooShort
	}
	engine.PutUint16(buf[offset:offset+2], val)

	return nil
}

// SetUint16Unsafe writes an unsigned 16-bit value without bounds checking.
func SetUint16Unsafe(buf []byte, offset int, val uint16, engine endian.EndianEngine) {
	engine.PutUint16(buf[offset:offset+2], val)
}

// GetInt32 reads a signed 32-bit value at offset, bounds-checked.
func GetInt32(buf []byte, offset int, engine endian.EndianEngine) (int32, error) {
	if offset < 0 || offset+4 > len(buf) {
		return 0, errs.ErrBufferTooShort
	}

	return GetInt32Unsafe(buf, offset, engine), nil
}

// GetInt32Unsafe reads a signed 32-bit value without bounds checking.
func GetInt32Unsafe(buf []byte, offset int, engine endian.EndianEngine) int32 {
	return int32(engine.Uint32(buf[offset : offset+4]))
}

// GetInt32NullChecking reads a signed 32-bit value, returning the INT32 null
// sentinel if offset is out of range.
func GetInt32NullChecking(buf []byte, offset int, engine endian.EndianEngine) int32 {
	v, err := GetInt32(buf, offset, engine)
	if err != nil {
		return int32(Null(Int32).AsInt())
	}

	return v
}

// SetInt32 writes a signed 32-bit value at offset, bounds-checked.
func SetInt32(buf []byte, offset int, val int32, engine endian.EndianEngine) error {
	if offset < 0 || offset+4 > len(buf) {
		return errs.ErrBufferTooShort
	}
	SetInt32Unsafe(buf, offset, val, engine)

	return nil
}

// SetInt32Unsafe writes a signed 32-bit value without bounds checking.
func SetInt32Unsafe(buf []byte, offset int, val int32, engine endian.EndianEngine) {
	engine.PutUint32(buf[offset:offset+4], uint32(val))
}

// GetUint32 reads an unsigned 32-bit value at offset, bounds-checked.
func GetUint32(buf []byte, offset int, engine endian.EndianEngine) (uint32, error) {
	if offset < 0 || offset+4 > len(buf) {
		return 0, errs.ErrBufferTooShort
	}

	return engine.Uint32(buf[offset : offset+4]), nil
}

// GetUint32Unsafe reads an unsigned 32-bit value without bounds checking.
func GetUint32Unsafe(buf []byte, offset int, engine endian.EndianEngine) uint32 {
	return engine.Uint32(buf[offset : offset+4])
}

// GetUint32NullChecking reads an unsigned 32-bit value, returning the UINT32
// null sentinel if offset is out of range.
func GetUint32NullChecking(buf []byte, offset int, engine endian.EndianEngine) uint32 {
	v, err := GetUint32(buf, offset, engine)
	if err != nil {
		return uint32(Null(Uint32).AsUint())
	}

	return v
}

// SetUint32 writes an unsigned 32-bit value at offset, bounds-checked.
func SetUint32(buf []byte, offset int, val uint32, engine endian.EndianEngine) error {
	if offset < 0 || offset+4 > len(buf) {
		return errs.ErrBufferTooShort
	}
	engine.PutUint32(buf[offset:offset+4], val)

	return nil
}

// SetUint32Unsafe writes an unsigned 32-bit value without bounds checking.
func SetUint32Unsafe(buf []byte, offset int, val uint32, engine endian.EndianEngine) {
	engine.PutUint32(buf[offset:offset+4], val)
}

// GetInt64 reads a signed 64-bit value at offset, bounds-checked.
func GetInt64(buf []byte, offset int, engine endian.EndianEngine) (int64, error) {
	if offset < 0 || offset+8 > len(buf) {
		return 0, errs.ErrBufferTooShort
	}

	return GetInt64Unsafe(buf, offset, engine), nil
}

// GetInt64Unsafe reads a signed 64-bit value without bounds checking.
func GetInt64Unsafe(buf []byte, offset int, engine endian.EndianEngine) int64 {
	return int64(engine.Uint64(buf[offset : offset+8]))
}

// GetInt64NullChecking reads a signed 64-bit value, returning the INT64 null
// sentinel if offset is out of range.
func GetInt64NullChecking(buf []byte, offset int, engine endian.EndianEngine) int64 {
	v, err := GetInt64(buf, offset, engine)
	if err != nil {
		return Null(Int64).AsInt()
	}

	return v
}

// SetInt64 writes a signed 64-bit value at offset, bounds-checked.
func SetInt64(buf []byte, offset int, val int64, engine endian.EndianEngine) error {
	if offset < 0 || offset+8 > len(buf) {
		return errs.ErrBufferTooShort
	}
	SetInt64Unsafe(buf, offset, val, engine)

	return nil
}

// SetInt64Unsafe writes a signed 64-bit value without bounds checking.
func SetInt64Unsafe(buf []byte, offset int, val int64, engine endian.EndianEngine) {
	engine.PutUint64(buf[offset:offset+8], uint64(val))
}

// GetUint64 reads an unsigned 64-bit value at offset, bounds-checked.
func GetUint64(buf []byte, offset int, engine endian.EndianEngine) (uint64, error) {
	if offset < 0 || offset+8 > len(buf) {
		return 0, errs.ErrBufferTooShort
	}

	return engine.Uint64(buf[offset : offset+8]), nil
}

// GetUint64Unsafe reads an unsigned 64-bit value without bounds checking.
func GetUint64Unsafe(buf []byte, offset int, engine endian.EndianEngine) uint64 {
	return engine.Uint64(buf[offset : offset+8])
}

// GetUint64NullChecking reads an unsigned 64-bit value, returning the UINT64
// null sentinel if offset is out of range.
func GetUint64NullChecking(buf []byte, offset int, engine endian.EndianEngine) uint64 {
	v, err := GetUint64(buf, offset, engine)
	if err != nil {
		return Null(Uint64).AsUint()
	}

	return v
}

// SetUint64 writes an unsigned 64-bit value at offset, bounds-checked.
func SetUint64(buf []byte, offset int, val uint64, engine endian.EndianEngine) error {
	if offset < 0 || offset+8 > len(buf) {
		return errs.ErrBufferTooShort
	}
	engine.PutUint64(buf[offset:offset+8], val)

	return nil
}

// SetUint64Unsafe writes an unsigned 64-bit value without bounds checking.
func SetUint64Unsafe(buf []byte, offset int, val uint64, engine endian.EndianEngine) {
	engine.PutUint64(buf[offset:offset+8], val)
}

// GetFloat32 reads an IEEE-754 32-bit float at offset, bounds-checked. The
// byte-swap (if any) is applied to the value's bitwise uint32 image.
func GetFloat32(buf []byte, offset int, engine endian.EndianEngine) (float32, error) {
	if offset < 0 || offset+4 > len(buf) {
		return 0, errs.ErrBufferTooShort
	}

	return GetFloat32Unsafe(buf, offset, engine), nil
}

// GetFloat32Unsafe reads an IEEE-754 32-bit float without bounds checking.
func GetFloat32Unsafe(buf []byte, offset int, engine endian.EndianEngine) float32 {
	return math.Float32frombits(engine.Uint32(buf[offset : offset+4]))
}

// GetFloat32NullChecking reads a 32-bit float, returning NaN (the FLOAT null
// sentinel) if offset is out of range.
func GetFloat32NullChecking(buf []byte, offset int, engine endian.EndianEngine) float32 {
	v, err := GetFloat32(buf, offset, engine)
	if err != nil {
		return float32(Null(Float32).AsFloat())
	}

	return v
}

// SetFloat32 writes an IEEE-754 32-bit float at offset, bounds-checked.
func SetFloat32(buf []byte, offset int, val float32, engine endian.EndianEngine) error {
	if offset < 0 || offset+4 > len(buf) {
		return errs.ErrBufferTooShort
	}
	SetFloat32Unsafe(buf, offset, val, engine)

	return nil
}

// SetFloat32Unsafe writes an IEEE-754 32-bit float without bounds checking.
func SetFloat32Unsafe(buf []byte, offset int, val float32, engine endian.EndianEngine) {
	engine.PutUint32(buf[offset:offset+4], math.Float32bits(val))
}

// GetFloat64 reads an IEEE-754 64-bit double at offset, bounds-checked.
func GetFloat64(buf []byte, offset int, engine endian.EndianEngine) (float64, error) {
	if offset < 0 || offset+8 > len(buf) {
		return 0, errs.ErrBufferTooShort
	}

	return GetFloat64Unsafe(buf, offset, engine), nil
}

// GetFloat64Unsafe reads an IEEE-754 64-bit double without bounds checking.
func GetFloat64Unsafe(buf []byte, offset int, engine endian.EndianEngine) float64 {
	return math.Float64frombits(engine.Uint64(buf[offset : offset+8]))
}

// GetFloat64NullChecking reads a 64-bit double, returning NaN (the DOUBLE
// null sentinel) if offset is out of range.
func GetFloat64NullChecking(buf []byte, offset int, engine endian.EndianEngine) float64 {
	v, err := GetFloat64(buf, offset, engine)
	if err != nil {
		return Null(Float64).AsFloat()
	}

	return v
}

// SetFloat64 writes an IEEE-754 64-bit double at offset, bounds-checked.
func SetFloat64(buf []byte, offset int, val float64, engine endian.EndianEngine) error {
	if offset < 0 || offset+8 > len(buf) {
		return errs.ErrBufferTooShort
	}
	SetFloat64Unsafe(buf, offset, val, engine)

	return nil
}

// SetFloat64Unsafe writes an IEEE-754 64-bit double without bounds checking.
func SetFloat64Unsafe(buf []byte, offset int, val float64, engine endian.EndianEngine) {
	engine.PutUint64(buf[offset:offset+8], math.Float64bits(val))
}

// GetBytes returns a zero-copy view of length bytes at offset, bounds-checked.
// Used for CHAR arrays and var-data payloads.
func GetBytes(buf []byte, offset, length int) ([]byte, error) {
	if offset < 0 || length < 0 || offset+length > len(buf) {
		return nil, errs.ErrBufferTooShort
	}

	return buf[offset : offset+length : offset+length], nil
}

// SetBytes copies src into buf at offset, bounds-checked.
func SetBytes(buf []byte, offset int, src []byte) error {
	if offset < 0 || offset+len(src) > len(buf) {
		return errs.ErrBufferTooShort
	}
	copy(buf[offset:offset+len(src)], src)

	return nil
}

// ElementOffset returns the offset of element index within a fixed-length
// array field of capacity elements whose first element lives at offset.
// Fails with errs.ErrIndexOutOfRange when index is outside [0, capacity);
// generated array accessors call this before the element's Get/Set.
func ElementOffset(offset, index, capacity int, t Type) (int, error) {
	if index < 0 || index >= capacity {
		return 0, errs.ErrIndexOutOfRange
	}

	return offset + index*t.Size(), nil
}
