package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeHits(t *testing.T) {
	buf := []uint32{
		1, 10, 20, 7,
		0, 5, 6,
		2, 30, 40, 8, 9,
	}
	hits := DecodeHits(buf, 3)
	require.Len(t, hits, 2)
	assert.Equal(t, HitRecord{MinDepth: 10, MaxDepth: 20, Names: []uint32{7}}, hits[0])
	assert.Equal(t, HitRecord{MinDepth: 30, MaxDepth: 40, Names: []uint32{8, 9}}, hits[1])
	assert.Equal(t, uint32(9), hits[1].LastName())
	assert.Equal(t, 2, hits[1].NumNames())
	assert.Equal(t, "hit{min=30 max=40 names=[8 9]}", hits[1].String())

	buf[3] = 100
	assert.Equal(t, uint32(7), hits[0].Names[0])
}

func TestDecodeHitsEmptyAndTruncated(t *testing.T) {
	assert.Empty(t, DecodeHits(nil, 0))
	assert.Empty(t, DecodeHits([]uint32{1, 2, 3, 4}, 0))
	assert.Empty(t, DecodeHits([]uint32{1, 2, 3, 4}, -1))

	hits := DecodeHits([]uint32{1, 2, 3, 4, 3, 1, 1, 5}, 2)
	require.Len(t, hits, 1)
	assert.Equal(t, uint32(4), hits[0].LastName())

	assert.Empty(t, DecodeHits([]uint32{1, 2}, 1))
}

func TestNearestPickID(t *testing.T) {
	assert.Equal(t, InvalidPickID, NearestPickID(nil))

	hits := []HitRecord{
		{MinDepth: 50, Names: []uint32{1}},
		{MinDepth: 20, Names: []uint32{100, 2}},
		{MinDepth: 20, Names: []uint32{3}},
		{MinDepth: 90, Names: []uint32{4}},
	}
	assert.Equal(t, 2, NearestPickID(hits))
	assert.Equal(t, 3, NearestPickID(hits[2:]))
	assert.Equal(t, InvalidPickID, NearestPickID([]HitRecord{{MinDepth: 1}}))
}

func TestHitRecordLastNameEmpty(t *testing.T) {
	assert.Zero(t, HitRecord{}.LastName())
	assert.Equal(t, "hit{min=0 max=0 names=[]}", HitRecord{}.String())
}
