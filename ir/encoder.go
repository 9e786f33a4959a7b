package ir

import (
	"errors"

	"github.com/arloliu/sbe/endian"
	"github.com/arloliu/sbe/errs"
	"github.com/arloliu/sbe/internal/pool"
)

// EncodeBytes serialises frame, header and messages into the same wire
// format DecodeBytes reads back: a FrameCodec block followed by the header
// tokens (ending in an END_COMPOSITE token) followed by each message's
// tokens in turn (each ending in an END_MESSAGE token). Encode scratch space
// comes from a pooled buffer that grows and retries whenever it proves too
// small; any other encode failure is returned immediately.
func EncodeBytes(frame Frame, header []Token, messages [][]Token) ([]byte, error) {
	engine := endian.GetLittleEndianEngine()

	bb := pool.GetStreamBuffer()
	defer pool.PutStreamBuffer(bb)

	for {
		bb.SetLength(bb.Cap())
		offset, err := encodeAll(bb.B, engine, frame, header, messages)
		if err == nil {
			out := make([]byte, offset)
			copy(out, bb.B[:offset])

			return out, nil
		}
		if !isBufferTooShort(err) {
			return nil, err
		}
		bb.Grow(bb.Cap())
	}
}

func isBufferTooShort(err error) bool {
	return errors.Is(err, errs.ErrBufferTooShort)
}

func encodeAll(buf []byte, engine endian.EndianEngine, frame Frame, header []Token, messages [][]Token) (int, error) {
	offset, err := encodeFrame(buf, 0, engine, frame)
	if err != nil {
		return 0, err
	}

	for _, tok := range header {
		n, err := encodeToken(buf, offset, engine, tok)
		if err != nil {
			return 0, err
		}
		offset += n
	}

	for _, msgTokens := range messages {
		for _, tok := range msgTokens {
			n, err := encodeToken(buf, offset, engine, tok)
			if err != nil {
				return 0, err
			}
			offset += n
		}
	}

	return offset, nil
}
