// Package shapes provides ready made scene objects. A Shape is the handle
// kept in a scene registry; its Geometry says what it draws.
package shapes

import (
	"sync"

	"github.com/go-gl/mathgl/mgl64"

	"glscene/draw"
)

// Geometry emits primitives in object coordinates.
type Geometry interface {
	Emit(c draw.Canvas)
}

// Shape draws a Geometry under a transform, optionally tagged with a pick id.
// The geometry is compiled into a display list on first render and replayed
// from it afterwards.
type Shape struct {
	mu        sync.Mutex
	geom      Geometry
	pickID    int
	transform mgl64.Mat4
	list      uint32
	compiled  bool
}

func New(geom Geometry) *Shape {
	return &Shape{
		geom:      geom,
		pickID:    draw.InvalidPickID,
		transform: mgl64.Ident4(),
	}
}

func (s *Shape) Geometry() Geometry {
	return s.geom
}

func (s *Shape) PickID() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pickID
}

func (s *Shape) SetPickID(id int) {
	s.mu.Lock()
	s.pickID = id
	s.mu.Unlock()
}

func (s *Shape) Transform() mgl64.Mat4 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.transform
}

func (s *Shape) SetTransform(m mgl64.Mat4) {
	s.mu.Lock()
	s.transform = m
	s.mu.Unlock()
}

// WithPickID sets the pick id and returns s, for building scenes inline.
func (s *Shape) WithPickID(id int) *Shape {
	s.SetPickID(id)
	return s
}

// ClearDisplayList hands the compiled list over to the caller. The next
// render compiles a new one.
func (s *Shape) ClearDisplayList() uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.list
	s.list = draw.InvalidList
	s.compiled = false
	return id
}

func (s *Shape) Render(c draw.Canvas) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.geom == nil {
		return
	}
	named := s.pickID != draw.InvalidPickID
	if named {
		c.PushName(uint32(s.pickID))
	}
	c.PushTransform(s.transform)
	if !s.compiled {
		s.compiled = true
		s.list = c.GenList()
		if s.list != draw.InvalidList {
			c.NewList(s.list)
			s.geom.Emit(c)
			c.EndList()
		}
	}
	if s.list != draw.InvalidList {
		c.CallList(s.list)
	} else {
		s.geom.Emit(c)
	}
	c.PopTransform()
	if named {
		c.PopName()
	}
}
