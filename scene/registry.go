package scene

import (
	"sync"

	"glscene/common"
)

// Registry holds named lists of drawables and the flattened draw list built
// from them. All methods are safe for concurrent use. Handles removed or
// replaced give their display lists to the reclaimer.
type Registry struct {
	mu        sync.Mutex
	order     []string
	lists     map[string][]Drawable
	all       []Drawable
	dirty     bool
	retired   uint64
	reclaimer *Reclaimer
}

func NewRegistry(reclaimer *Reclaimer) *Registry {
	if reclaimer == nil {
		reclaimer = NewReclaimer()
	}
	return &Registry{
		lists:     make(map[string][]Drawable),
		reclaimer: reclaimer,
	}
}

func (r *Registry) Reclaimer() *Reclaimer {
	return r.reclaimer
}

func (r *Registry) SetObject(name string, h Drawable) {
	r.SetObjects(name, h)
}

// SetObjects installs hs under name, retiring whatever was there before. Nil
// handles are dropped; if none remain the name is removed. An empty name is
// ignored.
func (r *Registry) SetObjects(name string, hs ...Drawable) {
	if name == "" {
		return
	}
	list := make([]Drawable, 0, len(hs))
	for _, h := range hs {
		if h != nil {
			list = append(list, h)
		}
	}
	if len(list) == 0 {
		r.RemoveObjects(name)
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if old, ok := r.lists[name]; ok {
		r.retire(old)
	} else {
		r.order = append(r.order, name)
	}
	r.lists[name] = list
	r.dirty = true
}

// Objects returns a copy of the list stored under name, or nil.
func (r *Registry) Objects(name string) []Drawable {
	r.mu.Lock()
	defer r.mu.Unlock()
	return common.CopySlice(r.lists[name])
}

// AllObjects returns a copy of the flattened draw list: every named list
// concatenated in the order the names were first added.
func (r *Registry) AllObjects() []Drawable {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.dirty {
		r.rebuild()
	}
	return common.CopySlice(r.all)
}

func (r *Registry) RemoveObjects(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	old, ok := r.lists[name]
	if !ok {
		return
	}
	r.retire(old)
	delete(r.lists, name)
	for i, n := range r.order {
		if n == name {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	r.dirty = true
}

func (r *Registry) RemoveAll() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, name := range r.order {
		r.retire(r.lists[name])
	}
	r.order = nil
	clear(r.lists)
	r.all = nil
	r.dirty = false
}

func (r *Registry) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return common.CopySlice(r.order)
}

// Len returns the number of names.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.order)
}

// rebuild swaps in a freshly built slice so copies handed out earlier never
// see a partial list. Caller holds r.mu.
func (r *Registry) rebuild() {
	n := 0
	for _, name := range r.order {
		n += len(r.lists[name])
	}
	all := make([]Drawable, 0, n)
	for _, name := range r.order {
		all = append(all, r.lists[name]...)
	}
	r.all = all
	r.dirty = false
}

// ReclaimDetached hands the display lists of handles in objs that are no
// longer registered to the reclaimer. The graphics thread calls it after each
// pass over a copy from AllObjects, since a handle retired during the pass
// may have compiled a fresh list after its old one was taken. Handles must be
// comparable.
func (r *Registry) ReclaimDetached(objs []Drawable) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.retired == 0 || len(objs) == 0 {
		return 0
	}
	r.retired = 0
	if r.dirty {
		r.rebuild()
	}
	live := make(map[Drawable]struct{}, len(r.all))
	for _, h := range r.all {
		live[h] = struct{}{}
	}
	n := 0
	for _, h := range objs {
		if _, ok := live[h]; ok {
			continue
		}
		if r.reclaimer.Add(h.ClearDisplayList()) {
			n++
		}
	}
	return n
}

// Caller holds r.mu.
func (r *Registry) retire(hs []Drawable) {
	for _, h := range hs {
		r.reclaimer.Add(h.ClearDisplayList())
	}
	r.retired += uint64(len(hs))
}
