package softgl

import (
	"context"
	"sync"

	"glscene/scene"
)

// Displayer is the render callback a surface drives, normally a
// *scene.Panel.
type Displayer interface {
	Display(ctx scene.Context) scene.Mode
}

type surfaceBase struct {
	mu      sync.Mutex
	ctx     *Context
	target  Displayer
	showing bool
	w, h    int
	modes   []scene.Mode
}

func newSurfaceBase(ctx *Context) surfaceBase {
	w, h := ctx.Size()
	return surfaceBase{ctx: ctx, showing: true, w: w, h: h}
}

// Attach sets the callback driven by Invalidate.
func (s *surfaceBase) Attach(d Displayer) {
	s.mu.Lock()
	s.target = d
	s.mu.Unlock()
}

func (s *surfaceBase) Context() *Context {
	return s.ctx
}

func (s *surfaceBase) Showing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.showing
}

func (s *surfaceBase) SetShowing(on bool) {
	s.mu.Lock()
	s.showing = on
	s.mu.Unlock()
}

func (s *surfaceBase) Size() (w, h int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w, s.h
}

// SetSize changes the reported size. The frame buffer follows only for a
// non-empty size, so shrinking to nothing keeps the last image.
func (s *surfaceBase) SetSize(w, h int) {
	s.mu.Lock()
	s.w, s.h = w, h
	s.mu.Unlock()
	if w > 0 && h > 0 {
		s.ctx.Resize(w, h)
	}
}

// Modes returns the modes reported by every Display call so far.
func (s *surfaceBase) Modes() []scene.Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]scene.Mode, len(s.modes))
	copy(out, s.modes)
	return out
}

// Surface runs the render callback on the goroutine that calls Invalidate.
// Invalidations arriving while a callback runs, including from inside it,
// are folded into one more callback after it returns.
type Surface struct {
	surfaceBase
	running bool
	pending int
}

var _ scene.Surface = (*Surface)(nil)

func NewSurface(ctx *Context) *Surface {
	return &Surface{surfaceBase: newSurfaceBase(ctx)}
}

func (s *Surface) Invalidate() {
	s.mu.Lock()
	s.pending++
	if s.running || s.target == nil {
		s.mu.Unlock()
		return
	}
	s.running = true
	for s.pending > 0 {
		s.pending = 0
		target := s.target
		s.mu.Unlock()
		mode := target.Display(s.ctx)
		s.mu.Lock()
		s.modes = append(s.modes, mode)
	}
	s.running = false
	s.mu.Unlock()
}

// PumpSurface only records invalidations. The owner plays the graphics
// thread by calling Step or Run, which makes it possible to observe a panel
// while its requests are still waiting.
type PumpSurface struct {
	surfaceBase
	pending int
	signal  chan struct{}
}

var _ scene.Surface = (*PumpSurface)(nil)

func NewPumpSurface(ctx *Context) *PumpSurface {
	return &PumpSurface{
		surfaceBase: newSurfaceBase(ctx),
		signal:      make(chan struct{}, 1),
	}
}

func (s *PumpSurface) Invalidate() {
	s.mu.Lock()
	s.pending++
	s.mu.Unlock()
	select {
	case s.signal <- struct{}{}:
	default:
	}
}

// Invalidated receives a value after one or more invalidations.
func (s *PumpSurface) Invalidated() <-chan struct{} {
	return s.signal
}

// Pending is the number of invalidations not yet served.
func (s *PumpSurface) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending
}

// Step runs the callback once and returns its mode, or Idle when nothing is
// attached.
func (s *PumpSurface) Step() scene.Mode {
	s.mu.Lock()
	if s.pending > 0 {
		s.pending--
	}
	target := s.target
	s.mu.Unlock()
	if target == nil {
		return scene.Idle
	}
	mode := target.Display(s.ctx)
	s.mu.Lock()
	s.modes = append(s.modes, mode)
	s.mu.Unlock()
	return mode
}

// Run serves invalidations until ctx is done.
func (s *PumpSurface) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-s.signal:
			for s.Pending() > 0 {
				s.Step()
			}
		}
	}
}
