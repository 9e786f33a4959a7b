// Package errs defines the sentinel errors returned by the sbe packages.
//
// Every exported function in primitive, buffer, flyweight, ir and otf returns
// one of these sentinels (optionally wrapped with fmt.Errorf's %w) instead of
// panicking. A thin "unsafe" form of the same operation, documented on a
// per-function basis, panics instead for callers that have already validated
// the buffer and want to skip the bounds check.
package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrBufferTooShort is returned when an access would read or write past
	// the end of the buffer's declared capacity. The two more specific
	// variants below wrap it, so errors.Is(err, ErrBufferTooShort) matches
	// every buffer-shortage failure regardless of where it was raised.
	ErrBufferTooShort = errors.New("sbe: buffer too short")

	// ErrBufferTooShortForFlyweight is returned by wrap/wrapForDecode when the
	// buffer cannot hold even the fixed block at the requested base offset.
	ErrBufferTooShortForFlyweight = fmt.Errorf("%w to wrap flyweight", ErrBufferTooShort)

	// ErrBufferTooShortForNextGroupIndex is returned by Group.Next when
	// advancing to the next entry would move position past capacity.
	ErrBufferTooShortForNextGroupIndex = fmt.Errorf("%w for next group index", ErrBufferTooShort)

	// ErrUnknownEnumValue is returned when a decoded primitive value does not
	// match any VALID_VALUE token of the enum's token stream.
	ErrUnknownEnumValue = errors.New("sbe: unknown enum value")

	// ErrIndexOutOfRange is returned by fixed-array accessors when index >= capacity.
	ErrIndexOutOfRange = errors.New("sbe: index out of range")

	// ErrLengthTooLarge is returned when a var-data length does not fit the
	// schema's declared length-prefix type (e.g. > 65535 for a uint16 length).
	ErrLengthTooLarge = errors.New("sbe: length exceeds length type domain")

	// ErrCountOutOfRange is returned when a repeating group's numInGroup falls
	// outside the schema's declared [min, max] for that group.
	ErrCountOutOfRange = errors.New("sbe: group count out of range")

	// ErrIRVersionUnsupported is returned when a persisted IR frame's irVersion
	// is not 0, the only version this runtime understands.
	ErrIRVersionUnsupported = errors.New("sbe: unsupported IR version")

	// ErrTruncatedIR is returned when an IR token stream ends before a
	// BEGIN/END pair is closed.
	ErrTruncatedIR = errors.New("sbe: truncated IR token stream")

	// ErrGroupNotIterating is returned by Group.Next when called before
	// WrapForEncode/WrapForDecode or again after the group is exhausted.
	ErrGroupNotIterating = errors.New("sbe: group is not in an iterating state")

	// ErrGroupExhausted is returned by Group.Next once all entries have been visited.
	ErrGroupExhausted = errors.New("sbe: group iteration already exhausted")

	// ErrInvalidToken is returned by the IR codec or OTF decoder when a token
	// stream is structurally malformed (unmatched BEGIN/END, unexpected signal).
	ErrInvalidToken = errors.New("sbe: invalid or malformed IR token")

	// ErrTemplateNotFound is returned by Registry lookups for an unknown
	// (templateID[, version]) pair.
	ErrTemplateNotFound = errors.New("sbe: template not found in IR registry")

	// ErrNestingTooDeep is returned by the OTF decoder when a token stream
	// nests groups or composites beyond the decoder's configured maximum
	// depth, guarding the walk against malformed or hostile streams.
	ErrNestingTooDeep = errors.New("sbe: token stream nesting exceeds maximum depth")

	// ErrVisitorMutation is a defensive error an implementer-supplied Visitor
	// may return to signal it detected reentrant mutation of the buffer or
	// token stream it is walking; the OTF decoder never raises it itself.
	ErrVisitorMutation = errors.New("sbe: visitor must not mutate the buffer or token stream being walked")
)
