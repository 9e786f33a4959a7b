// Package primitive implements the SBE primitive encoding layer: endian-aware,
// null-value-aware access to scalar types, arrays, and the scaled sub-bit-range
// ("choice") encoding used by bit sets.
//
// Every Get/Set pair comes in a safe form (bounds-checked, returns errs.ErrBufferTooShort
// on violation, never writes a partial value) and an Unsafe form (no bounds
// check, for callers that pre-validated the buffer and want to stay on the
// hot path). SetChar, GetBytes and SetBytes come in the safe form only.
package primitive

import "fmt"

// Type is the closed set of SBE primitive wire types.
type Type uint8

const (
	None Type = iota
	Char
	Int8
	Int16
	Int32
	Int64
	Uint8
	Uint16
	Uint32
	Uint64
	Float32
	Float64
)

// Presence is the SBE field presence attribute.
type Presence uint8

const (
	// Required fields are always present on the wire; their null value, if
	// read, means "absent" but MUST NOT legally appear in a valid message.
	Required Presence = iota
	// Optional fields may legitimately carry the type's null value.
	Optional
	// Constant fields are never encoded; the value comes from the schema.
	Constant
)

func (p Presence) String() string {
	switch p {
	case Required:
		return "required"
	case Optional:
		return "optional"
	case Constant:
		return "constant"
	default:
		return "unknown"
	}
}

// Size returns the wire size in bytes of the given type. Returns 0 for None.
func (t Type) Size() int {
	switch t {
	case Char, Int8, Uint8:
		return 1
	case Int16, Uint16:
		return 2
	case Int32, Uint32, Float32:
		return 4
	case Int64, Uint64, Float64:
		return 8
	default:
		return 0
	}
}

func (t Type) String() string {
	switch t {
	case Char:
		return "char"
	case Int8:
		return "int8"
	case Int16:
		return "int16"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case Uint8:
		return "uint8"
	case Uint16:
		return "uint16"
	case Uint32:
		return "uint32"
	case Uint64:
		return "uint64"
	case Float32:
		return "float"
	case Float64:
		return "double"
	default:
		return "none"
	}
}

// ParseType maps an SBE schema type name to a Type. Returns an error for any
// name outside the closed primitive set.
func ParseType(name string) (Type, error) {
	switch name {
	case "char":
		return Char, nil
	case "int8":
		return Int8, nil
	case "int16":
		return Int16, nil
	case "int32":
		return Int32, nil
	case "int64":
		return Int64, nil
	case "uint8":
		return Uint8, nil
	case "uint16":
		return Uint16, nil
	case "uint32":
		return Uint32, nil
	case "uint64":
		return Uint64, nil
	case "float":
		return Float32, nil
	case "double":
		return Float64, nil
	default:
		return None, fmt.Errorf("primitive: unknown type name %q", name)
	}
}
