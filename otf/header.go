package otf

import (
	"github.com/arloliu/sbe/errs"
	"github.com/arloliu/sbe/ir"
)

// Header carries the four standard message-header fields every SBE message
// is framed with: the values a caller feeds to Decoder.Decode as
// actingBlockLength and actingVersion, plus the template/schema identity used
// to pick a token stream from an ir.Registry.
type Header struct {
	BlockLength int
	TemplateID  int
	SchemaID    int
	Version     int
}

// HeaderDecoder reads a message header using the header-composite tokens from
// a decoded IR stream (ir.Registry.Header). Field offsets come from the
// tokens themselves, so schemas with non-standard header layouts — extra
// members, explicit offsets, padding — decode without special cases.
type HeaderDecoder struct {
	size        int
	blockLength ir.Token
	templateID  ir.Token
	schemaID    ir.Token
	version     ir.Token
}

// NewHeaderDecoder builds a HeaderDecoder from a header composite's token
// stream. The composite must contain encodings named blockLength, templateId,
// schemaId and version; anything else (checksums, padding members) is ignored.
func NewHeaderDecoder(tokens []ir.Token) (*HeaderDecoder, error) {
	if len(tokens) == 0 || tokens[0].Signal != ir.SignalBeginComposite {
		return nil, errs.ErrInvalidToken
	}

	h := &HeaderDecoder{size: tokens[0].Size}
	var haveBlockLength, haveTemplateID, haveSchemaID, haveVersion bool
	for _, tok := range tokens {
		if tok.Signal != ir.SignalEncoding {
			continue
		}
		switch tok.Name {
		case "blockLength":
			h.blockLength, haveBlockLength = tok, true
		case "templateId":
			h.templateID, haveTemplateID = tok, true
		case "schemaId":
			h.schemaID, haveSchemaID = tok, true
		case "version":
			h.version, haveVersion = tok, true
		}
	}
	if !haveBlockLength || !haveTemplateID || !haveSchemaID || !haveVersion {
		return nil, errs.ErrInvalidToken
	}

	return h, nil
}

// EncodedLength returns the header composite's wire size: the offset at which
// the message root block begins.
func (h *HeaderDecoder) EncodedLength() int { return h.size }

// Decode reads the header fields from buf starting at offset.
func (h *HeaderDecoder) Decode(buf []byte, offset int) (Header, error) {
	w := &walker{buf: buf}

	blockLength, err := w.readUint(h.blockLength, offset+h.blockLength.Offset)
	if err != nil {
		return Header{}, err
	}
	templateID, err := w.readUint(h.templateID, offset+h.templateID.Offset)
	if err != nil {
		return Header{}, err
	}
	schemaID, err := w.readUint(h.schemaID, offset+h.schemaID.Offset)
	if err != nil {
		return Header{}, err
	}
	version, err := w.readUint(h.version, offset+h.version.Offset)
	if err != nil {
		return Header{}, err
	}

	return Header{
		BlockLength: blockLength,
		TemplateID:  templateID,
		SchemaID:    schemaID,
		Version:     version,
	}, nil
}
