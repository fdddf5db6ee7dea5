package console

import (
	"errors"
	"fmt"
	"math"
	"time"

	"google.golang.org/protobuf/encoding/protowire"
)

// Campos do frame do console (formato wire do protobuf):
//
//	1 kind  varint
//	2 text  bytes
//	3 r     fixed32 (float)
//	4 g     fixed32
//	5 b     fixed32
//	6 at    varint (unix ms)
const (
	fieldKind protowire.Number = 1
	fieldText protowire.Number = 2
	fieldR    protowire.Number = 3
	fieldG    protowire.Number = 4
	fieldB    protowire.Number = 5
	fieldAt   protowire.Number = 6
)

var ErrBadFrame = errors.New("frame de console inválido")

// EncodeLine serializa uma linha para envio pela ponte.
func EncodeLine(line Line) []byte {
	b := make([]byte, 0, 32+len(line.Text))

	b = protowire.AppendTag(b, fieldKind, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(line.Kind))

	b = protowire.AppendTag(b, fieldText, protowire.BytesType)
	b = protowire.AppendString(b, line.Text)

	for i, f := range []protowire.Number{fieldR, fieldG, fieldB} {
		b = protowire.AppendTag(b, f, protowire.Fixed32Type)
		b = protowire.AppendFixed32(b, math.Float32bits(line.Color[i]))
	}

	if !line.At.IsZero() {
		b = protowire.AppendTag(b, fieldAt, protowire.VarintType)
		b = protowire.AppendVarint(b, uint64(line.At.UnixMilli()))
	}
	return b
}

// DecodeLine lê um frame. Campos desconhecidos são ignorados.
func DecodeLine(data []byte) (Line, error) {
	var line Line
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return Line{}, fmt.Errorf("%w: %v", ErrBadFrame, protowire.ParseError(n))
		}
		data = data[n:]

		switch {
		case num == fieldKind && typ == protowire.VarintType:
			v, m := protowire.ConsumeVarint(data)
			if m < 0 {
				return Line{}, fmt.Errorf("%w: kind: %v", ErrBadFrame, protowire.ParseError(m))
			}
			line.Kind = Kind(v)
			n = m
		case num == fieldText && typ == protowire.BytesType:
			v, m := protowire.ConsumeString(data)
			if m < 0 {
				return Line{}, fmt.Errorf("%w: text: %v", ErrBadFrame, protowire.ParseError(m))
			}
			line.Text = v
			n = m
		case num >= fieldR && num <= fieldB && typ == protowire.Fixed32Type:
			v, m := protowire.ConsumeFixed32(data)
			if m < 0 {
				return Line{}, fmt.Errorf("%w: cor: %v", ErrBadFrame, protowire.ParseError(m))
			}
			line.Color[num-fieldR] = math.Float32frombits(v)
			n = m
		case num == fieldAt && typ == protowire.VarintType:
			v, m := protowire.ConsumeVarint(data)
			if m < 0 {
				return Line{}, fmt.Errorf("%w: at: %v", ErrBadFrame, protowire.ParseError(m))
			}
			line.At = time.UnixMilli(int64(v))
			n = m
		default:
			n = protowire.ConsumeFieldValue(num, typ, data)
			if n < 0 {
				return Line{}, fmt.Errorf("%w: campo %d: %v", ErrBadFrame, num, protowire.ParseError(n))
			}
		}
		data = data[n:]
	}
	return line, nil
}
