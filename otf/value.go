package otf

import (
	"math"

	"github.com/arloliu/sbe/errs"
	"github.com/arloliu/sbe/ir"
	"github.com/arloliu/sbe/primitive"
)

// ReadValue decodes the scalar a type token describes from its zero-copy
// data view (as handed to OnEncoding/OnEnum/OnBitSet), honouring the token's
// primitive type and byte order. Multi-element CHAR arrays come back as a
// bytes Value; other array types should be indexed element-wise by the caller
// using the token's primitive size.
func ReadValue(tok ir.Token, data []byte) (primitive.Value, error) {
	engine := tok.ByteOrder.Engine()
	size := tok.PrimitiveType.Size()
	if len(data) < size {
		return primitive.Value{}, errs.ErrBufferTooShort
	}

	switch tok.PrimitiveType {
	case primitive.Char:
		if len(data) > 1 {
			return primitive.BytesValue(data), nil
		}

		return primitive.IntValue(primitive.Char, int64(data[0])), nil
	case primitive.Int8:
		return primitive.IntValue(primitive.Int8, int64(int8(data[0]))), nil
	case primitive.Int16:
		return primitive.IntValue(primitive.Int16, int64(int16(engine.Uint16(data)))), nil
	case primitive.Int32:
		return primitive.IntValue(primitive.Int32, int64(int32(engine.Uint32(data)))), nil
	case primitive.Int64:
		return primitive.IntValue(primitive.Int64, int64(engine.Uint64(data))), nil
	case primitive.Uint8:
		return primitive.UintValue(primitive.Uint8, uint64(data[0])), nil
	case primitive.Uint16:
		return primitive.UintValue(primitive.Uint16, uint64(engine.Uint16(data))), nil
	case primitive.Uint32:
		return primitive.UintValue(primitive.Uint32, uint64(engine.Uint32(data))), nil
	case primitive.Uint64:
		return primitive.UintValue(primitive.Uint64, engine.Uint64(data)), nil
	case primitive.Float32:
		return primitive.DoubleValue(primitive.Float32, float64(math.Float32frombits(engine.Uint32(data)))), nil
	case primitive.Float64:
		return primitive.DoubleValue(primitive.Float64, math.Float64frombits(engine.Uint64(data))), nil
	default:
		return primitive.Value{}, errs.ErrInvalidToken
	}
}

// MatchEnum maps an enum field's encoded wire value to its VALID_VALUE token,
// as handed to OnEnum. Returns errs.ErrUnknownEnumValue when the wire value
// matches no declared value.
func MatchEnum(data []byte, typeToken ir.Token, validValues []ir.Token) (ir.Token, error) {
	value, err := ReadValue(typeToken, data)
	if err != nil {
		return ir.Token{}, err
	}

	for _, vv := range validValues {
		if vv.Const.AsUint() == value.AsUint() {
			return vv, nil
		}
	}

	return ir.Token{}, errs.ErrUnknownEnumValue
}

// ActiveChoices filters a bit set's CHOICE tokens (as handed to OnBitSet)
// down to those whose bit or bit range is non-zero in the encoded word,
// honouring reversed ranges.
func ActiveChoices(data []byte, setToken ir.Token, choices []ir.Token) ([]ir.Token, error) {
	word, err := ReadValue(setToken, data)
	if err != nil {
		return nil, err
	}
	width := primitive.BitWidth(setToken.PrimitiveType.Size() * 8) //nolint:gosec

	var active []ir.Token
	for _, c := range choices {
		if primitive.ExtractChoiceRange(word.AsUint(), width, c.Lsb, c.Msb) != 0 {
			active = append(active, c)
		}
	}

	return active, nil
}
