package ir

import (
	"github.com/arloliu/sbe/endian"
	"github.com/arloliu/sbe/errs"
)

// DecodeBytes parses a persisted IR stream (a FrameCodec header followed by a
// sequence of TokenCodec entries) into a Registry: read the frame, reject
// any irVersion other than 0, read header tokens up to and including the
// closing END_COMPOSITE, then repeatedly read one message's tokens up to and
// including its closing END_MESSAGE until the buffer is exhausted.
func DecodeBytes(data []byte) (*Registry, error) {
	engine := endian.GetLittleEndianEngine()

	frame, n, err := decodeFrame(data, 0, engine)
	if err != nil {
		return nil, err
	}
	offset := n

	header, offset, err := decodeTokensUntil(data, offset, SignalEndComposite)
	if err != nil {
		return nil, err
	}

	interner := NewInterner()
	internTokenNames(interner, header)

	var messages [][]Token
	for offset < len(data) {
		msgTokens, next, err := decodeTokensUntil(data, offset, SignalEndMessage)
		if err != nil {
			return nil, err
		}
		internTokenNames(interner, msgTokens)
		messages = append(messages, msgTokens)
		offset = next
	}

	return newRegistry(frame, header, messages), nil
}

// decodeTokensUntil decodes tokens starting at offset until it decodes one
// whose Signal equals stop (inclusive), or the buffer runs out. Returns the
// decoded tokens and the offset immediately after the terminating token.
func decodeTokensUntil(data []byte, offset int, stop Signal) ([]Token, int, error) {
	var tokens []Token
	for offset < len(data) {
		tok, n, err := decodeToken(data, offset, endian.GetLittleEndianEngine())
		if err != nil {
			return nil, 0, err
		}
		tokens = append(tokens, tok)
		offset += n
		if tok.Signal == stop {
			return tokens, offset, nil
		}
	}

	return nil, 0, errs.ErrTruncatedIR
}
