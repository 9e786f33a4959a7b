// Package flyweight implements the SBE flyweight runtime: thin,
// non-owning accessors over a buffer.Window that generated per-message code
// wraps to provide position tracking, group iteration and var-data access.
//
// Every flyweight in this package is a stack-shaped value: construct
// it by wrapping a buffer, use it for a single encode or decode pass, then
// discard it. None of them own the underlying buffer.
package flyweight

import (
	"github.com/arloliu/sbe/buffer"
	"github.com/arloliu/sbe/endian"
	"github.com/arloliu/sbe/errs"
)

// Message is the flyweight for a message's root fixed block.
// Generated per-message types embed a Message and add field accessors that
// call into the primitive package at static offsets within the block.
type Message struct {
	win    *buffer.Window
	engine endian.EndianEngine
}

// NewMessage creates an unwrapped Message that encodes/decodes using engine
// for all multi-byte fields.
func NewMessage(engine endian.EndianEngine) *Message {
	return &Message{engine: engine}
}

// WrapForEncode wraps buf for encoding a new message instance. Position is
// seeded to base+blockLength (the nominal schema block length for this
// template), ready for the first group or var-data field to append after the
// fixed block.
func (m *Message) WrapForEncode(buf []byte, base, blockLength, capacity int) error {
	if base+blockLength > capacity {
		return errs.ErrBufferTooShortForFlyweight
	}

	win, err := buffer.Wrap(buf, base, capacity)
	if err != nil {
		return err
	}
	win.SetPosition(base + blockLength)
	m.win = win

	return nil
}

// WrapForDecode wraps buf for decoding an existing message instance using the
// sender's actingBlockLength and actingVersion (read from the message header
// by the caller). Position is seeded to base+actingBlockLength: fields beyond
// the encoder's declared block length are schema additions the sender never
// wrote and must read as null.
func (m *Message) WrapForDecode(buf []byte, base, actingBlockLength, actingVersion, capacity int) error {
	if base+actingBlockLength > capacity {
		return errs.ErrBufferTooShortForFlyweight
	}

	win, err := buffer.WrapForDecode(buf, base, actingBlockLength, actingVersion, capacity)
	if err != nil {
		return err
	}
	win.SetPosition(base + actingBlockLength)
	m.win = win

	return nil
}

// Reset detaches the message from its buffer. A subsequent WrapForEncode or
// WrapForDecode starts a fresh pass; until then the message has no window and
// must not be handed to Group or VarData constructors.
func (m *Message) Reset() { m.win = nil }

// Window returns the shared buffer.Window this message's groups and var-data
// flyweights must be constructed over, so they all advance the same cursor.
func (m *Message) Window() *buffer.Window { return m.win }

// Engine returns the endian engine used for this message's multi-byte fields.
func (m *Message) Engine() endian.EndianEngine { return m.engine }

// Base returns the absolute offset of this message's fixed block.
func (m *Message) Base() int { return m.win.Base() }

// ActingBlockLength returns the block length the encoder used. Zero for a
// message wrapped with WrapForEncode (there is no "sender" — use the nominal
// blockLength passed to WrapForEncode directly).
func (m *Message) ActingBlockLength() int { return m.win.ActingBlockLength() }

// ActingVersion returns the schema version the encoder used.
func (m *Message) ActingVersion() int { return m.win.ActingVersion() }

// EncodedLength returns the total number of bytes produced (encode) or
// consumed (decode) by this message, from Base() to the current position:
// block + all groups + all var-data.
func (m *Message) EncodedLength() int { return m.win.EncodedLength() }

// FieldOffsetPresent reports whether a field at the given static offset
// within the fixed block was actually written by the encoder, i.e. whether
// offset lies strictly before actingBlockLength. Generated decode accessors
// for OPTIONAL trailing fields use this to decide between reading the wire
// value and returning the type's null sentinel.
func (m *Message) FieldOffsetPresent(offset int) bool {
	abl := m.win.ActingBlockLength()
	if abl == 0 {
		// Encode-side window, or a decode window wrapped with an acting
		// block length of 0; treat as always present.
		return true
	}

	return offset < abl
}

// VersionPresent reports whether a field introduced in sinceVersion is
// present given the sender's actingVersion: the
// field exists if it was part of the schema no later than the version the
// sender used.
func VersionPresent(sinceVersion, actingVersion int) bool {
	return sinceVersion <= actingVersion
}
