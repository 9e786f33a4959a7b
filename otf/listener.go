// Package otf implements On-The-Fly decoding: a visitor-driven walker
// that consumes an encoded message using only a schema's IR token stream — no
// per-message generated code. Build a token stream with package ir, wrap the
// message bytes, and Decode emits one callback per field, group, composite
// boundary and var-data field, honouring schema-evolution rules along the way.
package otf

import "github.com/arloliu/sbe/ir"

// TokenListener receives one callback per structural event as Decode walks a
// message. Implementations MUST NOT mutate the buffer slices or token slices
// handed to them; both alias the decoder's working state.
//
// Any callback may return a non-nil error to halt the walk; Decode then
// returns the bytes consumed so far together with that error.
//
// Embed NopListener to implement only the callbacks a consumer cares about.
type TokenListener interface {
	// OnBeginMessage is emitted once, before any field of the message.
	OnBeginMessage(token ir.Token) error

	// OnEndMessage is emitted once, after every field, group and var-data
	// field has been walked.
	OnEndMessage(token ir.Token) error

	// OnEncoding is emitted for a primitive field, a fixed-length array field
	// (one call covering the whole array, data length = arrayCapacity ×
	// primitive size) or a composite member. data is a zero-copy view of the
	// encoded bytes; it is nil for a CONSTANT field, whose value lives in
	// typeToken.Const instead.
	OnEncoding(fieldToken ir.Token, data []byte, typeToken ir.Token, actingVersion int) error

	// OnEnum is emitted for an enum field. data views the underlying encoded
	// primitive; enumTokens[0] is the BEGIN_ENUM token carrying the
	// underlying encoding, followed by the VALID_VALUE tokens in schema
	// order, for mapping the wire value to a name (see MatchEnum).
	OnEnum(fieldToken ir.Token, data []byte, enumTokens []ir.Token, actingVersion int) error

	// OnBitSet is emitted for a bit-set ("choice") field. data views the
	// underlying encoded word; setTokens[0] is the BEGIN_SET token, followed
	// by the CHOICE tokens (see ActiveChoices).
	OnBitSet(fieldToken ir.Token, data []byte, setTokens []ir.Token, actingVersion int) error

	// OnBeginComposite / OnEndComposite bracket a composite used as a field.
	// A group's dimension composite is consumed internally by the group walk
	// and never emitted through these callbacks.
	OnBeginComposite(fieldToken, compositeToken ir.Token) error
	OnEndComposite(fieldToken, compositeToken ir.Token) error

	// OnGroupHeader is emitted once per group, after its dimension composite
	// has been read and before the first entry.
	OnGroupHeader(token ir.Token, numInGroup int) error

	// OnBeginGroup / OnEndGroup bracket each of a group's numInGroup entries.
	OnBeginGroup(token ir.Token, index, numInGroup int) error
	OnEndGroup(token ir.Token, index, numInGroup int) error

	// OnVarData is emitted for a var-data field. data is a zero-copy view of
	// the payload (length bytes, excluding the length prefix); typeToken is
	// the payload's ENCODING token, carrying its character encoding.
	OnVarData(fieldToken ir.Token, data []byte, length int, typeToken ir.Token) error
}

// NopListener implements TokenListener with no-op callbacks. Embed it and
// override only the events of interest, the way the walk tests here do.
type NopListener struct{}

var _ TokenListener = NopListener{}

func (NopListener) OnBeginMessage(ir.Token) error { return nil }
func (NopListener) OnEndMessage(ir.Token) error   { return nil }

func (NopListener) OnEncoding(ir.Token, []byte, ir.Token, int) error { return nil }

func (NopListener) OnEnum(ir.Token, []byte, []ir.Token, int) error { return nil }

func (NopListener) OnBitSet(ir.Token, []byte, []ir.Token, int) error { return nil }

func (NopListener) OnBeginComposite(ir.Token, ir.Token) error { return nil }
func (NopListener) OnEndComposite(ir.Token, ir.Token) error   { return nil }

func (NopListener) OnGroupHeader(ir.Token, int) error { return nil }

func (NopListener) OnBeginGroup(ir.Token, int, int) error { return nil }
func (NopListener) OnEndGroup(ir.Token, int, int) error   { return nil }

func (NopListener) OnVarData(ir.Token, []byte, int, ir.Token) error { return nil }
