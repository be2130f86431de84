package scene

import (
	"sync"

	"go.uber.org/zap"

	"glscene/draw"
)

// Reclaimer collects display list ids retired by any goroutine so that the
// graphics thread can delete them at the start of its next callback.
type Reclaimer struct {
	mu      sync.Mutex
	pending []uint32
	queued  map[uint32]struct{}
}

func NewReclaimer() *Reclaimer {
	return &Reclaimer{queued: make(map[uint32]struct{})}
}

// Add queues id for deletion. draw.InvalidList and ids already pending are
// ignored; the result reports whether id was queued.
func (r *Reclaimer) Add(id uint32) bool {
	if id == draw.InvalidList {
		return false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.queued[id]; ok {
		return false
	}
	r.queued[id] = struct{}{}
	r.pending = append(r.pending, id)
	return true
}

// Pending returns a copy of the queued ids in arrival order.
func (r *Reclaimer) Pending() []uint32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]uint32, len(r.pending))
	copy(out, r.pending)
	return out
}

func (r *Reclaimer) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.pending)
}

// Drain takes every queued id and leaves the queue empty.
func (r *Reclaimer) Drain() []uint32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := r.pending
	r.pending = nil
	clear(r.queued)
	return out
}

// Release drains the queue and deletes each list through d. Failures are
// logged and do not stop the remaining deletions. It returns the number of
// lists deleted successfully.
func (r *Reclaimer) Release(d ListDeleter) int {
	ids := r.Drain()
	if len(ids) == 0 {
		return 0
	}
	n := 0
	for _, id := range ids {
		if err := d.DeleteList(id); err != nil {
			Logger().Warn("delete display list failed", zap.Uint32("list", id), zap.Error(err))
			continue
		}
		n++
	}
	Logger().Debug("released display lists", zap.Int("requested", len(ids)), zap.Int("deleted", n))
	return n
}
