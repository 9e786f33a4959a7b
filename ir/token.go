package ir

import (
	"github.com/arloliu/sbe/endian"
	"github.com/arloliu/sbe/primitive"
)

// ByteOrder is the IR token's persisted byte-order attribute. It is a
// closed two-value enum on the wire, unlike endian.EndianEngine which is an
// open interface — Engine() bridges the two for callers that need to drive
// primitive.GetT/SetT with this token's declared order.
type ByteOrder uint8

const (
	LittleEndian ByteOrder = iota
	BigEndian
)

// Engine returns the endian.EndianEngine matching this ByteOrder.
func (b ByteOrder) Engine() endian.EndianEngine {
	if b == BigEndian {
		return endian.GetBigEndianEngine()
	}

	return endian.GetLittleEndianEngine()
}

func (b ByteOrder) String() string {
	if b == BigEndian {
		return "bigEndian"
	}

	return "littleEndian"
}

// Token is the in-memory representation of one IR element. A
// properly nested sequence of tokens — built once by DecodeBytes and shared
// read-only thereafter — is everything the otf package needs to walk
// an arbitrary encoded message.
type Token struct {
	Signal        Signal
	PrimitiveType primitive.Type
	Presence      primitive.Presence
	ByteOrder     ByteOrder

	// Offset is the byte offset of this token's encoding from the start of
	// its enclosing composite or message.
	Offset int
	// Size is the wire size in bytes of this token's encoding; 0 for
	// structural markers (BEGIN_*/END_*) that carry no encoding of their own.
	Size int
	// FieldID is the schema-declared field/template id this token belongs to.
	FieldID int
	// Version is the schema version in which this token was introduced,
	// used for schema-evolution presence checks.
	Version int
	// ComponentTokenCount is the number of tokens (including this one) to
	// skip to reach this token's next sibling — lets a walker jump over an
	// entire sub-tree without interpreting it.
	ComponentTokenCount int
	// ArrayCapacity is > 1 when this ENCODING token is a fixed-length array;
	// the visitor then receives one call covering ArrayCapacity*primitive size.
	ArrayCapacity int

	Name           string
	Description    string
	ReferencedName string

	Min   primitive.Value
	Max   primitive.Value
	Null  primitive.Value
	Const primitive.Value
	// Lsb/Msb bound a CHOICE token's bit range within its enclosing bit set;
	// Lsb > Msb denotes a reversed range.
	Lsb uint8
	Msb uint8

	CharacterEncoding string
	Epoch             string
	TimeUnit          string
	SemanticType      string
}

// IsChoice reports whether this token is a bit-set choice (a single bit or
// bit range within a BEGIN_SET/END_SET container), derived purely from
// Signal — never from comparing against a null sentinel.
func (t Token) IsChoice() bool {
	return t.Signal == SignalChoice
}

// EndSignal returns the End* signal that closes this token's Begin* signal,
// and false if t is not a Begin* token.
func (t Token) EndSignal() (Signal, bool) {
	switch t.Signal {
	case SignalBeginMessage:
		return SignalEndMessage, true
	case SignalBeginComposite:
		return SignalEndComposite, true
	case SignalBeginField:
		return SignalEndField, true
	case SignalBeginGroup:
		return SignalEndGroup, true
	case SignalBeginVarData:
		return SignalEndVarData, true
	case SignalBeginEnum:
		return SignalEndEnum, true
	case SignalBeginSet:
		return SignalEndSet, true
	default:
		return SignalNone, false
	}
}
