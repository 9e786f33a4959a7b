package primitive

// Value is a tagged union carrying one of {int64, uint64, double, bytes},
// discriminated by Type. It carries IR token min/max/null/const constants
// and OTF-decoded scalars without resorting to `any`.
type Value struct {
	typ   Type
	asInt int64
	asU   uint64
	asF   float64
	bytes []byte // set only when typ == Char and the value is a multi-byte array
}

// Type returns the primitive type this value was constructed with.
func (v Value) Type() Type { return v.typ }

// IntValue builds a Value holding a signed integer reading of t.
func IntValue(t Type, n int64) Value {
	return Value{typ: t, asInt: n, asU: uint64(n)}
}

// UintValue builds a Value holding an unsigned integer reading of t.
func UintValue(t Type, n uint64) Value {
	return Value{typ: t, asInt: int64(n), asU: n}
}

// DoubleValue builds a Value holding a floating point reading of t.
func DoubleValue(t Type, f float64) Value {
	return Value{typ: t, asF: f}
}

// BytesValue builds a Value holding a CHAR array (e.g. a fixed-length char[N]
// or a const string from the schema).
func BytesValue(b []byte) Value {
	return Value{typ: Char, bytes: b}
}

// AsInt returns the value's signed integer interpretation.
func (v Value) AsInt() int64 { return v.asInt }

// AsUint returns the value's unsigned integer interpretation.
func (v Value) AsUint() uint64 { return v.asU }

// AsFloat returns the value's floating point interpretation.
func (v Value) AsFloat() float64 { return v.asF }

// AsBytes returns the value's byte-array interpretation (only meaningful for
// multi-character CHAR values); returns nil otherwise.
func (v Value) AsBytes() []byte { return v.bytes }

// IsNone reports whether this Value carries no encoding (the zero Value, or
// one explicitly constructed for PrimitiveType NONE).
func (v Value) IsNone() bool { return v.typ == None }
