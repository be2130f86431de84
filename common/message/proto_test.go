package message

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"
)

func TestEncodeDecodePick(t *testing.T) {
	p := Pick{
		X: -3, Y: 480, UnixNano: 1700000000000000000,
		Hits: []Hit{
			{MinDepth: 10, MaxDepth: 0xffffffff, Names: []uint32{1, 111000}},
			{MinDepth: 5, MaxDepth: 6},
		},
	}
	got, err := Decode(Encode(p))
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestDecodeSkipsUnknownFields(t *testing.T) {
	b := Encode(Pick{X: 1, Y: 2})
	b = protowire.AppendTag(b, 99, protowire.BytesType)
	b = protowire.AppendBytes(b, []byte("future"))
	got, err := Decode(b)
	require.NoError(t, err)
	assert.Equal(t, Pick{X: 1, Y: 2}, got)
}

func TestDecodeUnpackedNames(t *testing.T) {
	var hit []byte
	hit = protowire.AppendTag(hit, hitNames, protowire.VarintType)
	hit = protowire.AppendVarint(hit, 7)
	hit = protowire.AppendTag(hit, hitNames, protowire.VarintType)
	hit = protowire.AppendVarint(hit, 8)
	var b []byte
	b = protowire.AppendTag(b, pickHits, protowire.BytesType)
	b = protowire.AppendBytes(b, hit)

	got, err := Decode(b)
	require.NoError(t, err)
	require.Len(t, got.Hits, 1)
	assert.Equal(t, []uint32{7, 8}, got.Hits[0].Names)
}

func TestDecodeMalformed(t *testing.T) {
	b := Encode(Pick{X: 1, Hits: []Hit{{Names: []uint32{1}}}})
	_, err := Decode(b[:len(b)-1])
	assert.Error(t, err)
}

func TestReaderStream(t *testing.T) {
	var buf []byte
	buf = AppendDelimited(buf, Pick{X: 1})
	buf = AppendDelimited(buf, Pick{X: 2, Hits: []Hit{{Names: []uint32{4}}}})

	r := NewReader(bytes.NewReader(buf))
	a, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, 1, a.X)
	b, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, 2, b.X)
	_, err = r.Next()
	assert.Equal(t, io.EOF, err)
}

func TestReaderTruncated(t *testing.T) {
	buf := AppendDelimited(nil, Pick{X: 1, Y: 2})
	_, err := NewReader(bytes.NewReader(buf[:len(buf)-1])).Next()
	assert.True(t, errors.Is(err, ErrTruncated))
}
