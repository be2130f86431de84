package scene

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"

	"glscene/common"
)

// Mode is the kind of work one Display call performed.
type Mode int

const (
	Idle Mode = iota
	Drawing
	Selecting
	Locating
)

func (m Mode) String() string {
	switch m {
	case Idle:
		return "idle"
	case Drawing:
		return "drawing"
	case Selecting:
		return "selecting"
	case Locating:
		return "locating"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Display is the render callback. The surface calls it on the graphics
// thread with the current context, once per Invalidate or whenever the
// window needs repainting.
//
// Stale display lists are deleted first. A hidden or zero-area surface gets
// no rendering at all; pending picks and locates are answered with empty
// results. Otherwise exactly one pending request runs, locate before select,
// and a normal draw runs when neither is pending.
func (p *Panel) Display(ctx Context) Mode {
	p.reclaimer.Release(ctx)

	w, h := p.surface.Size()
	if p.isClosed() || !p.surface.Showing() || w <= 0 || h <= 0 {
		p.answerUnready()
		return Idle
	}

	mode := Drawing
	select {
	case req := <-p.locateCh:
		p.locatePass(ctx, req, w, h)
		mode = Locating
	default:
		select {
		case req := <-p.selectCh:
			p.selectPass(ctx, req, w, h)
			if p.opts.redrawAfterSelect {
				p.drawPending.Store(true)
			}
			mode = Selecting
		default:
			p.drawPending.Store(false)
			p.drawPass(ctx, w, h)
		}
	}
	Logger().Debug("display", zap.Stringer("mode", mode), zap.Int("width", w), zap.Int("height", h))

	if len(p.locateCh) > 0 || len(p.selectCh) > 0 || p.drawPending.Load() {
		p.surface.Invalidate()
	}
	return mode
}

func (p *Panel) answerUnready() {
	for {
		select {
		case req := <-p.locateCh:
			req.reply <- p.PickedPoint()
		case req := <-p.selectCh:
			req.reply <- nil
		default:
			p.drawPending.Store(false)
			return
		}
	}
}

// drawPass renders the scene with lighting into the frame buffer. An empty
// scene only clears.
func (p *Panel) drawPass(ctx Context, w, h int) {
	objs := p.registry.AllObjects()
	ctx.Viewport(0, 0, w, h)
	ctx.Clear(p.opts.background)
	if len(objs) == 0 {
		ctx.Flush()
		return
	}
	cam := p.camera.Snapshot()
	ctx.LoadProjection(cam.Projection(w, h))
	ctx.LoadModelView(mgl64.Ident4())
	ctx.Lighting(true)
	ctx.LoadModelView(cam.ViewMatrix())
	for _, d := range objs {
		d.Render(ctx)
	}
	ctx.Flush()
	p.registry.ReclaimDetached(objs)
}

// selectPass renders the scene through a one pixel pick window centred on
// the request and decodes the hit buffer.
func (p *Panel) selectPass(ctx Context, req selectRequest, w, h int) {
	objs := p.registry.AllObjects()
	cam := p.camera.Snapshot()
	view := [4]int{0, 0, w, h}

	ctx.BeginSelect(p.selectBuf)
	ctx.Viewport(0, 0, w, h)
	pick := PickMatrix(float64(req.x), float64(h-req.y), 1, 1, view)
	ctx.LoadProjection(pick.Mul4(cam.Projection(w, h)))
	ctx.Lighting(false)
	ctx.LoadModelView(cam.ViewMatrix())
	for _, d := range objs {
		d.Render(ctx)
	}
	n := ctx.EndSelect()
	p.registry.ReclaimDetached(objs)
	if n < 0 {
		Logger().Warn("selection buffer overflow",
			zap.Int("size", len(p.selectBuf)), zap.Int("x", req.x), zap.Int("y", req.y))
		n = 0
	}
	hits := DecodeHits(p.selectBuf, n)
	Logger().Debug("select pass", zap.Int("x", req.x), zap.Int("y", req.y),
		zap.Int("records", n), zap.Int("hits", len(hits)))
	req.reply <- hits
}

// locatePass draws nothing. It reads the depth left by the last draw under
// the pixel and unprojects it through the current camera. The matrices are
// reloaded because a select pass leaves the pick matrix behind.
func (p *Panel) locatePass(ctx Context, req locateRequest, w, h int) {
	cam := p.camera.Snapshot()
	ctx.Viewport(0, 0, w, h)
	ctx.LoadProjection(cam.Projection(w, h))
	ctx.LoadModelView(cam.ViewMatrix())
	point, err := p.unproject(ctx, req.x, req.y, h)
	if err != nil {
		Logger().Warn("locate failed", zap.Int("x", req.x), zap.Int("y", req.y), zap.Error(err))
		req.reply <- p.PickedPoint()
		return
	}
	p.mu.Lock()
	p.lastPoint = point
	p.mu.Unlock()
	Logger().Debug("locate pass", zap.Int("x", req.x), zap.Int("y", req.y),
		zap.Float64s("point", point[:]))
	req.reply <- point
}

// unproject reads the depth of the clicked pixel and unprojects its top left
// corner, the same point the pick window is centred on.
func (p *Panel) unproject(ctx Context, x, y, h int) (mgl64.Vec3, error) {
	row := h - 1 - y
	depth, err := ctx.ReadDepth(x, row)
	if err != nil {
		return mgl64.Vec3{}, fmt.Errorf("read depth at (%d, %d): %w", x, row, err)
	}
	win := mgl64.Vec3{float64(x), float64(h - y), float64(depth) * p.opts.depthScale}
	point, err := common.GluUnProject(win, ctx.ModelView(), ctx.Projection(), ctx.CurrentViewport())
	if err != nil {
		return mgl64.Vec3{}, fmt.Errorf("unproject %v: %w", win, err)
	}
	if !common.IsFinite(point) {
		return mgl64.Vec3{}, fmt.Errorf("unproject %v: %w", win, ErrNotInvertible)
	}
	return point, nil
}
