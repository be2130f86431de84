package scene

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"glscene/draw"
)

type recordingDeleter struct {
	deleted []uint32
	fail    map[uint32]bool
}

func (d *recordingDeleter) DeleteList(id uint32) error {
	if d.fail[id] {
		return errors.New("driver refused")
	}
	d.deleted = append(d.deleted, id)
	return nil
}

func TestReclaimerDedupes(t *testing.T) {
	r := NewReclaimer()
	assert.True(t, r.Add(3))
	assert.False(t, r.Add(3))
	assert.False(t, r.Add(draw.InvalidList))
	assert.True(t, r.Add(4))
	assert.Equal(t, []uint32{3, 4}, r.Pending())
	assert.Equal(t, 2, r.Len())

	assert.Equal(t, []uint32{3, 4}, r.Drain())
	assert.Zero(t, r.Len())
	assert.True(t, r.Add(3))
}

func TestReclaimerReleaseContinuesPastFailures(t *testing.T) {
	r := NewReclaimer()
	for _, id := range []uint32{1, 2, 3} {
		r.Add(id)
	}
	d := &recordingDeleter{fail: map[uint32]bool{2: true}}
	assert.Equal(t, 2, r.Release(d))
	assert.Equal(t, []uint32{1, 3}, d.deleted)
	assert.Zero(t, r.Len())
	assert.Zero(t, r.Release(d))
}

func TestReclaimerConcurrentAdd(t *testing.T) {
	r := NewReclaimer()
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for id := uint32(1); id <= 100; id++ {
				r.Add(id)
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 100, r.Len())
}
