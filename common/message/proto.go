// Package message encodes pick results in protobuf wire format.
//
// The layout matches this schema, so journals can also be read with any
// protobuf toolchain:
//
//	message Hit  { fixed32 min_depth = 1; fixed32 max_depth = 2; repeated uint32 names = 3; }
//	message Pick { sint64 x = 1; sint64 y = 2; repeated Hit hits = 3; int64 unix_nano = 4; }
//
// A journal is a sequence of varint length-prefixed Pick messages.
package message

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"google.golang.org/protobuf/encoding/protowire"
)

var ErrTruncated = errors.New("message: truncated record")

const maxRecordSize = 64 << 20

const (
	hitMinDepth protowire.Number = 1
	hitMaxDepth protowire.Number = 2
	hitNames    protowire.Number = 3

	pickX        protowire.Number = 1
	pickY        protowire.Number = 2
	pickHits     protowire.Number = 3
	pickUnixNano protowire.Number = 4
)

type Hit struct {
	MinDepth uint32
	MaxDepth uint32
	Names    []uint32
}

type Pick struct {
	X, Y     int
	UnixNano int64
	Hits     []Hit
}

func appendHit(b []byte, h Hit) []byte {
	b = protowire.AppendTag(b, hitMinDepth, protowire.Fixed32Type)
	b = protowire.AppendFixed32(b, h.MinDepth)
	b = protowire.AppendTag(b, hitMaxDepth, protowire.Fixed32Type)
	b = protowire.AppendFixed32(b, h.MaxDepth)
	if len(h.Names) > 0 {
		var packed []byte
		for _, n := range h.Names {
			packed = protowire.AppendVarint(packed, uint64(n))
		}
		b = protowire.AppendTag(b, hitNames, protowire.BytesType)
		b = protowire.AppendBytes(b, packed)
	}
	return b
}

// Encode returns the wire form of a single pick.
func Encode(p Pick) []byte {
	var b []byte
	b = protowire.AppendTag(b, pickX, protowire.VarintType)
	b = protowire.AppendVarint(b, protowire.EncodeZigZag(int64(p.X)))
	b = protowire.AppendTag(b, pickY, protowire.VarintType)
	b = protowire.AppendVarint(b, protowire.EncodeZigZag(int64(p.Y)))
	for _, h := range p.Hits {
		b = protowire.AppendTag(b, pickHits, protowire.BytesType)
		b = protowire.AppendBytes(b, appendHit(nil, h))
	}
	if p.UnixNano != 0 {
		b = protowire.AppendTag(b, pickUnixNano, protowire.VarintType)
		b = protowire.AppendVarint(b, uint64(p.UnixNano))
	}
	return b
}

func decodeHit(data []byte) (Hit, error) {
	var h Hit
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return h, protowire.ParseError(n)
		}
		data = data[n:]
		switch {
		case num == hitMinDepth && typ == protowire.Fixed32Type:
			v, m := protowire.ConsumeFixed32(data)
			if m < 0 {
				return h, protowire.ParseError(m)
			}
			h.MinDepth, n = v, m
		case num == hitMaxDepth && typ == protowire.Fixed32Type:
			v, m := protowire.ConsumeFixed32(data)
			if m < 0 {
				return h, protowire.ParseError(m)
			}
			h.MaxDepth, n = v, m
		case num == hitNames && typ == protowire.BytesType:
			packed, m := protowire.ConsumeBytes(data)
			if m < 0 {
				return h, protowire.ParseError(m)
			}
			for len(packed) > 0 {
				v, k := protowire.ConsumeVarint(packed)
				if k < 0 {
					return h, protowire.ParseError(k)
				}
				h.Names = append(h.Names, uint32(v))
				packed = packed[k:]
			}
			n = m
		case num == hitNames && typ == protowire.VarintType:
			v, m := protowire.ConsumeVarint(data)
			if m < 0 {
				return h, protowire.ParseError(m)
			}
			h.Names = append(h.Names, uint32(v))
			n = m
		default:
			n = protowire.ConsumeFieldValue(num, typ, data)
			if n < 0 {
				return h, protowire.ParseError(n)
			}
		}
		data = data[n:]
	}
	return h, nil
}

// Decode parses the wire form produced by Encode. Unknown fields are skipped.
func Decode(data []byte) (Pick, error) {
	var p Pick
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return p, protowire.ParseError(n)
		}
		data = data[n:]
		switch {
		case num == pickX && typ == protowire.VarintType:
			v, m := protowire.ConsumeVarint(data)
			if m < 0 {
				return p, protowire.ParseError(m)
			}
			p.X, n = int(protowire.DecodeZigZag(v)), m
		case num == pickY && typ == protowire.VarintType:
			v, m := protowire.ConsumeVarint(data)
			if m < 0 {
				return p, protowire.ParseError(m)
			}
			p.Y, n = int(protowire.DecodeZigZag(v)), m
		case num == pickHits && typ == protowire.BytesType:
			raw, m := protowire.ConsumeBytes(data)
			if m < 0 {
				return p, protowire.ParseError(m)
			}
			h, err := decodeHit(raw)
			if err != nil {
				return p, fmt.Errorf("hit %d: %w", len(p.Hits), err)
			}
			p.Hits = append(p.Hits, h)
			n = m
		case num == pickUnixNano && typ == protowire.VarintType:
			v, m := protowire.ConsumeVarint(data)
			if m < 0 {
				return p, protowire.ParseError(m)
			}
			p.UnixNano, n = int64(v), m
		default:
			n = protowire.ConsumeFieldValue(num, typ, data)
			if n < 0 {
				return p, protowire.ParseError(n)
			}
		}
		data = data[n:]
	}
	return p, nil
}

// AppendDelimited appends the length-prefixed wire form of p to b.
func AppendDelimited(b []byte, p Pick) []byte {
	return protowire.AppendBytes(b, Encode(p))
}

// Reader reads length-prefixed picks from a journal stream.
type Reader struct {
	r *bufio.Reader
}

func NewReader(r io.Reader) *Reader {
	return &Reader{r: bufio.NewReader(r)}
}

// Next returns the next pick, or io.EOF at a clean end of stream.
func (rd *Reader) Next() (Pick, error) {
	size, err := binary.ReadUvarint(rd.r)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Pick{}, io.EOF
		}
		return Pick{}, fmt.Errorf("%w: %v", ErrTruncated, err)
	}
	if size > maxRecordSize {
		return Pick{}, fmt.Errorf("message: record of %d bytes exceeds limit", size)
	}
	buf := make([]byte, size)
	if _, err := io.ReadFull(rd.r, buf); err != nil {
		return Pick{}, fmt.Errorf("%w: %v", ErrTruncated, err)
	}
	return Decode(buf)
}
