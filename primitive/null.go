package primitive

import "math"

// Null returns the SBE null sentinel for t, as a Value of the matching kind.
// CHAR's null is the zero byte; FLOAT/DOUBLE's null is NaN.
func Null(t Type) Value {
	switch t {
	case Char:
		return IntValue(Char, 0)
	case Int8:
		return IntValue(Int8, -128)
	case Int16:
		return IntValue(Int16, -32768)
	case Int32:
		return IntValue(Int32, -(1 << 31))
	case Int64:
		return IntValue(Int64, math.MinInt64)
	case Uint8:
		return UintValue(Uint8, 255)
	case Uint16:
		return UintValue(Uint16, 65535)
	case Uint32:
		return UintValue(Uint32, 1<<32-1)
	case Uint64:
		return UintValue(Uint64, math.MaxUint64)
	case Float32:
		return DoubleValue(Float32, math.NaN())
	case Float64:
		return DoubleValue(Float64, math.NaN())
	default:
		return Value{}
	}
}

// Min returns the SBE minimum valid value for t (the smallest value a
// REQUIRED field of this type may legally carry). For signed integer types
// this is one above the null sentinel; unsigned integer types have a minimum
// of 0, since their null sentinel is the type's maximum value.
func Min(t Type) Value {
	switch t {
	case Char:
		return IntValue(Char, 1)
	case Int8:
		return IntValue(Int8, -127)
	case Int16:
		return IntValue(Int16, -32767)
	case Int32:
		return IntValue(Int32, -(1<<31)+1)
	case Int64:
		return IntValue(Int64, math.MinInt64+1)
	case Uint8:
		return UintValue(Uint8, 0)
	case Uint16:
		return UintValue(Uint16, 0)
	case Uint32:
		return UintValue(Uint32, 0)
	case Uint64:
		return UintValue(Uint64, 0)
	case Float32:
		return DoubleValue(Float32, -math.MaxFloat32)
	case Float64:
		return DoubleValue(Float64, -math.MaxFloat64)
	default:
		return Value{}
	}
}

// Max returns the SBE maximum valid value for t.
func Max(t Type) Value {
	switch t {
	case Char:
		return IntValue(Char, 255)
	case Int8:
		return IntValue(Int8, 127)
	case Int16:
		return IntValue(Int16, 32767)
	case Int32:
		return IntValue(Int32, (1<<31)-1)
	case Int64:
		return IntValue(Int64, math.MaxInt64)
	case Uint8:
		return UintValue(Uint8, 254)
	case Uint16:
		return UintValue(Uint16, 65534)
	case Uint32:
		return UintValue(Uint32, 1<<32-2)
	case Uint64:
		return UintValue(Uint64, math.MaxUint64-1)
	case Float32:
		return DoubleValue(Float32, math.MaxFloat32)
	case Float64:
		return DoubleValue(Float64, math.MaxFloat64)
	default:
		return Value{}
	}
}

// IsNullFloat32 reports whether v is the FLOAT null sentinel (NaN).
func IsNullFloat32(v float32) bool {
	return math.IsNaN(float64(v))
}

// IsNullFloat64 reports whether v is the DOUBLE null sentinel (NaN).
func IsNullFloat64(v float64) bool {
	return math.IsNaN(v)
}
