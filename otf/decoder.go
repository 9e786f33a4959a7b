package otf

import (
	"github.com/arloliu/sbe/errs"
	"github.com/arloliu/sbe/internal/options"
	"github.com/arloliu/sbe/ir"
	"github.com/arloliu/sbe/primitive"
)

// Decoder walks encoded messages against an IR token stream. A Decoder holds
// only configuration — it is stateless across Decode calls and safe for
// concurrent use; each call owns its own cursor.
type Decoder struct {
	maxDepth int
}

// NewDecoder creates a Decoder with the given options.
func NewDecoder(opts ...Option) (*Decoder, error) {
	d := &Decoder{maxDepth: defaultMaxDepth}
	if err := options.Apply(d, opts...); err != nil {
		return nil, err
	}

	return d, nil
}

// Decode walks buf against a message token stream, emitting listener
// callbacks for every structural event. buf must start at the
// message's root block — the caller reads the header first (see
// HeaderDecoder) and passes the header's actingBlockLength and actingVersion
// here. If actingBlockLength is 0, the token stream's own root block length
// is used.
//
// Returns the number of bytes consumed. On error the walk halts and the
// partial byte count is still returned.
func (d *Decoder) Decode(
	buf []byte,
	actingVersion, actingBlockLength int,
	tokens []ir.Token,
	listener TokenListener,
) (int, error) {
	if len(tokens) == 0 || tokens[0].Signal != ir.SignalBeginMessage {
		return 0, errs.ErrInvalidToken
	}

	w := &walker{
		buf:           buf,
		tokens:        tokens,
		listener:      listener,
		actingVersion: actingVersion,
		maxDepth:      d.maxDepth,
	}
	err := w.walkMessage(actingBlockLength)

	return w.pos, err
}

// Decode walks buf with a default-configured Decoder. See Decoder.Decode.
func Decode(
	buf []byte,
	actingVersion, actingBlockLength int,
	tokens []ir.Token,
	listener TokenListener,
) (int, error) {
	d := &Decoder{maxDepth: defaultMaxDepth}

	return d.Decode(buf, actingVersion, actingBlockLength, tokens, listener)
}

// walker is the per-Decode cursor pair: pos tracks the buffer, and the token
// index is threaded through the walk functions so sibling structures advance
// it past entire sub-trees via ComponentTokenCount.
type walker struct {
	buf           []byte
	tokens        []ir.Token
	listener      TokenListener
	pos           int
	actingVersion int
	maxDepth      int
}

func (w *walker) walkMessage(actingBlockLength int) error {
	msgToken := w.tokens[0]
	blockLength := actingBlockLength
	if blockLength == 0 {
		blockLength = msgToken.Size
	}
	if blockLength > len(w.buf) {
		return errs.ErrBufferTooShort
	}

	if err := w.listener.OnBeginMessage(msgToken); err != nil {
		return err
	}

	idx := 1
	if err := w.walkFields(&idx, 0, blockLength, 1); err != nil {
		return err
	}
	w.pos = blockLength

	if err := w.walkGroups(&idx, 1); err != nil {
		return err
	}
	if err := w.walkData(&idx); err != nil {
		return err
	}

	if idx >= len(w.tokens) || w.tokens[idx].Signal != ir.SignalEndMessage {
		return errs.ErrInvalidToken
	}

	return w.listener.OnEndMessage(w.tokens[idx])
}

// walkFields consumes consecutive BEGIN_FIELD sub-trees. base is the absolute
// buffer offset of the enclosing fixed block; blockLimit is the block length
// the encoder actually wrote, so fields added after the encoder's schema
// version — whose encodings lie at or past the limit — are skipped and read
// as absent.
func (w *walker) walkFields(idx *int, base, blockLimit, depth int) error {
	for *idx < len(w.tokens) && w.tokens[*idx].Signal == ir.SignalBeginField {
		field := w.tokens[*idx]
		next := *idx + field.ComponentTokenCount
		if field.ComponentTokenCount < 3 || next > len(w.tokens) {
			return errs.ErrInvalidToken
		}
		if field.Version <= w.actingVersion {
			if err := w.walkField(field, *idx, base, blockLimit, depth); err != nil {
				return err
			}
		}
		*idx = next
	}

	return nil
}

func (w *walker) walkField(field ir.Token, idx, base, blockLimit, depth int) error {
	typeTok := w.tokens[idx+1]

	if typeTok.Presence != primitive.Constant && typeTok.Offset+encodedSize(typeTok) > blockLimit {
		// Encoder at an older version never wrote this field.
		return nil
	}

	switch typeTok.Signal {
	case ir.SignalEncoding:
		return w.emitEncoding(field, typeTok, base)
	case ir.SignalBeginEnum:
		data, err := w.slice(base+typeTok.Offset, encodedSize(typeTok))
		if err != nil {
			return err
		}

		return w.listener.OnEnum(field, data, w.subTree(idx+1), w.actingVersion)
	case ir.SignalBeginSet:
		data, err := w.slice(base+typeTok.Offset, encodedSize(typeTok))
		if err != nil {
			return err
		}

		return w.listener.OnBitSet(field, data, w.subTree(idx+1), w.actingVersion)
	case ir.SignalBeginComposite:
		return w.walkComposite(field, idx+1, base+typeTok.Offset, depth)
	default:
		return errs.ErrInvalidToken
	}
}

func (w *walker) emitEncoding(field, typeTok ir.Token, base int) error {
	if typeTok.Presence == primitive.Constant {
		// Constants occupy no wire bytes; the value is typeTok.Const.
		return w.listener.OnEncoding(field, nil, typeTok, w.actingVersion)
	}

	data, err := w.slice(base+typeTok.Offset, encodedSize(typeTok))
	if err != nil {
		return err
	}

	return w.listener.OnEncoding(field, data, typeTok, w.actingVersion)
}

// walkComposite emits a composite used as a field, member by member.
// compIdx is the BEGIN_COMPOSITE token; absBase is the composite's absolute
// start offset in the buffer.
func (w *walker) walkComposite(field ir.Token, compIdx, absBase, depth int) error {
	if depth > w.maxDepth {
		return errs.ErrNestingTooDeep
	}

	comp := w.tokens[compIdx]
	if err := w.listener.OnBeginComposite(field, comp); err != nil {
		return err
	}

	end := compIdx + comp.ComponentTokenCount - 1
	for i := compIdx + 1; i < end; {
		tok := w.tokens[i]
		next := i + tok.ComponentTokenCount
		if tok.Version > w.actingVersion {
			i = next
			continue
		}

		switch tok.Signal {
		case ir.SignalEncoding:
			if err := w.emitEncoding(tok, tok, absBase); err != nil {
				return err
			}
		case ir.SignalBeginComposite:
			if err := w.walkComposite(tok, i, absBase+tok.Offset, depth+1); err != nil {
				return err
			}
		case ir.SignalBeginEnum:
			data, err := w.slice(absBase+tok.Offset, encodedSize(tok))
			if err != nil {
				return err
			}
			if err := w.listener.OnEnum(tok, data, w.subTree(i), w.actingVersion); err != nil {
				return err
			}
		case ir.SignalBeginSet:
			data, err := w.slice(absBase+tok.Offset, encodedSize(tok))
			if err != nil {
				return err
			}
			if err := w.listener.OnBitSet(tok, data, w.subTree(i), w.actingVersion); err != nil {
				return err
			}
		default:
			return errs.ErrInvalidToken
		}
		i = next
	}

	return w.listener.OnEndComposite(field, comp)
}

// walkGroups consumes consecutive BEGIN_GROUP sub-trees at the current
// buffer position. The dimension composite is read exactly once per group,
// before OnGroupHeader, and is never re-emitted as a composite field.
func (w *walker) walkGroups(idx *int, depth int) error {
	for *idx < len(w.tokens) && w.tokens[*idx].Signal == ir.SignalBeginGroup {
		group := w.tokens[*idx]
		next := *idx + group.ComponentTokenCount
		if group.ComponentTokenCount <= 0 || next > len(w.tokens) {
			return errs.ErrInvalidToken
		}
		if group.Version > w.actingVersion {
			// The encoder's schema predates this group: nothing on the wire.
			*idx = next
			continue
		}
		if depth > w.maxDepth {
			return errs.ErrNestingTooDeep
		}

		if err := w.walkGroup(group, *idx, depth); err != nil {
			return err
		}
		*idx = next
	}

	return nil
}

func (w *walker) walkGroup(group ir.Token, idx, depth int) error {
	dimIdx := idx + 1
	if dimIdx+2 >= len(w.tokens) || w.tokens[dimIdx].Signal != ir.SignalBeginComposite {
		return errs.ErrInvalidToken
	}
	blockLengthTok := w.tokens[dimIdx+1]
	numInGroupTok := w.tokens[dimIdx+2]

	blockLength, err := w.readUint(blockLengthTok, w.pos+blockLengthTok.Offset)
	if err != nil {
		return err
	}
	numInGroup, err := w.readUint(numInGroupTok, w.pos+numInGroupTok.Offset)
	if err != nil {
		return err
	}
	if err := checkCountRange(numInGroupTok, numInGroup); err != nil {
		return err
	}

	if err := w.listener.OnGroupHeader(group, numInGroup); err != nil {
		return err
	}

	if err := w.advance(w.tokens[dimIdx].Size); err != nil {
		return err
	}

	fieldsIdx := dimIdx + w.tokens[dimIdx].ComponentTokenCount
	for e := 0; e < numInGroup; e++ {
		if err := w.listener.OnBeginGroup(group, e, numInGroup); err != nil {
			return err
		}

		i := fieldsIdx
		entryBase := w.pos
		if err := w.walkFields(&i, entryBase, blockLength, depth+1); err != nil {
			return err
		}
		// Advance by the encoder's block length, not the receiver's nominal
		// one: a newer encoder's extra trailing bytes per entry are skipped.
		if err := w.advance(blockLength); err != nil {
			return err
		}
		if err := w.walkGroups(&i, depth+1); err != nil {
			return err
		}
		if err := w.walkData(&i); err != nil {
			return err
		}

		if err := w.listener.OnEndGroup(group, e, numInGroup); err != nil {
			return err
		}
	}

	return nil
}

// walkData consumes consecutive BEGIN_VAR_DATA sub-trees at the current
// buffer position.
func (w *walker) walkData(idx *int) error {
	for *idx < len(w.tokens) && w.tokens[*idx].Signal == ir.SignalBeginVarData {
		varData := w.tokens[*idx]
		next := *idx + varData.ComponentTokenCount
		if varData.ComponentTokenCount <= 0 || *idx+3 >= len(w.tokens) {
			return errs.ErrInvalidToken
		}
		if varData.Version > w.actingVersion {
			*idx = next
			continue
		}

		lengthTok := w.tokens[*idx+2]
		dataTok := w.tokens[*idx+3]

		length, err := w.readUint(lengthTok, w.pos+lengthTok.Offset)
		if err != nil {
			return err
		}
		lengthSize := lengthTok.PrimitiveType.Size()

		payload, err := w.slice(w.pos+lengthSize, length)
		if err != nil {
			return err
		}
		if err := w.listener.OnVarData(varData, payload, length, dataTok); err != nil {
			return err
		}
		if err := w.advance(lengthSize + length); err != nil {
			return err
		}

		*idx = next
	}

	return nil
}

// slice returns a bounds-checked zero-copy view of buf[offset:offset+length].
func (w *walker) slice(offset, length int) ([]byte, error) {
	if offset < 0 || length < 0 || offset+length > len(w.buf) {
		return nil, errs.ErrBufferTooShort
	}

	return w.buf[offset : offset+length : offset+length], nil
}

func (w *walker) advance(n int) error {
	if n < 0 || w.pos+n > len(w.buf) {
		return errs.ErrBufferTooShort
	}
	w.pos += n

	return nil
}

// readUint reads the unsigned scalar a dimension or length-prefix token
// describes, at the given absolute offset, in the token's own byte order.
func (w *walker) readUint(tok ir.Token, offset int) (int, error) {
	engine := tok.ByteOrder.Engine()
	switch tok.PrimitiveType {
	case primitive.Uint8:
		v, err := primitive.GetUint8(w.buf, offset)

		return int(v), err
	case primitive.Uint16:
		v, err := primitive.GetUint16(w.buf, offset, engine)

		return int(v), err
	case primitive.Uint32:
		v, err := primitive.GetUint32(w.buf, offset, engine)

		return int(v), err
	default:
		return 0, errs.ErrInvalidToken
	}
}

// subTree returns an enum's or set's tokens without the closing END_* token:
// element 0 is the BEGIN_ENUM/BEGIN_SET token carrying the underlying
// encoding, followed by its VALID_VALUE or CHOICE tokens.
func (w *walker) subTree(idx int) []ir.Token {
	return w.tokens[idx : idx+w.tokens[idx].ComponentTokenCount-1]
}

// encodedSize returns the wire footprint of a type token: Size already folds
// in the array capacity for fixed-length arrays.
func encodedSize(tok ir.Token) int {
	if tok.Size > 0 {
		return tok.Size
	}
	if tok.ArrayCapacity > 1 {
		return tok.ArrayCapacity * tok.PrimitiveType.Size()
	}

	return tok.PrimitiveType.Size()
}

// checkCountRange validates numInGroup against the dimension token's declared
// [min, max], when the schema declares one.
func checkCountRange(tok ir.Token, count int) error {
	if !tok.Min.IsNone() && uint64(count) < tok.Min.AsUint() {
		return errs.ErrCountOutOfRange
	}
	if !tok.Max.IsNone() && uint64(count) > tok.Max.AsUint() {
		return errs.ErrCountOutOfRange
	}

	return nil
}
