package scene

import (
	"sync"
	"sync/atomic"

	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"
)

type selectRequest struct {
	x, y  int
	reply chan []HitRecord
}

type locateRequest struct {
	x, y  int
	reply chan mgl64.Vec3
}

// Panel is a 3D scene shown on a Surface. Application goroutines mutate the
// scene and request draws, picks and locates; the surface's graphics thread
// runs Display to carry them out.
type Panel struct {
	surface   Surface
	camera    *Camera
	registry  *Registry
	reclaimer *Reclaimer
	opts      panelOptions

	// one outstanding request per kind
	selecting   atomic.Bool
	locateMu    sync.Mutex
	drawPending atomic.Bool
	selectCh    chan selectRequest
	locateCh    chan locateRequest

	// graphics thread only
	selectBuf []uint32

	mu         sync.Mutex
	lastPoint  mgl64.Vec3
	lastPickID int

	journal *pickJournal

	closed    chan struct{}
	closeOnce sync.Once
}

func NewPanel(surface Surface, opts ...PanelOption) *Panel {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.camera == nil {
		o.camera = NewCamera()
	}
	if o.registry == nil {
		o.registry = NewRegistry(NewReclaimer())
	}
	p := &Panel{
		surface:    surface,
		camera:     o.camera,
		registry:   o.registry,
		reclaimer:  o.registry.Reclaimer(),
		opts:       o,
		selectCh:   make(chan selectRequest, 1),
		locateCh:   make(chan locateRequest, 1),
		selectBuf:  make([]uint32, o.hitBufferSize),
		lastPickID: InvalidPickID,
		closed:     make(chan struct{}),
	}
	if o.journal != nil {
		p.journal = newPickJournal(o.journal)
	}
	Logger().Info("scene panel created",
		zap.Float64("depth_scale", o.depthScale),
		zap.Int("hit_buffer", o.hitBufferSize),
		zap.Bool("redraw_after_select", o.redrawAfterSelect))
	return p
}

func (p *Panel) Camera() *Camera {
	return p.camera
}

func (p *Panel) Registry() *Registry {
	return p.registry
}

func (p *Panel) Reclaimer() *Reclaimer {
	return p.reclaimer
}

func (p *Panel) DepthScale() float64 {
	return p.opts.depthScale
}

func (p *Panel) SetObject(name string, h Drawable) {
	p.registry.SetObject(name, h)
}

func (p *Panel) SetObjects(name string, hs ...Drawable) {
	p.registry.SetObjects(name, hs...)
}

func (p *Panel) Objects(name string) []Drawable {
	return p.registry.Objects(name)
}

func (p *Panel) AllObjects() []Drawable {
	return p.registry.AllObjects()
}

func (p *Panel) RemoveObjects(name string) {
	p.registry.RemoveObjects(name)
}

func (p *Panel) RemoveAll() {
	p.registry.RemoveAll()
}

func (p *Panel) SetCOP(v mgl64.Vec3) {
	p.camera.SetCOP(v)
}

func (p *Panel) SetVRP(v mgl64.Vec3) {
	p.camera.SetVRP(v)
}

func (p *Panel) SetVUV(v mgl64.Vec3) {
	p.camera.SetVUV(v)
}

func (p *Panel) SetPerspective(on bool) {
	p.camera.SetPerspective(on)
}

func (p *Panel) SetView(cop, vrp, vuv mgl64.Vec3, perspective bool) {
	p.camera.SetView(cop, vrp, vuv, perspective)
}

// Draw requests a redraw. It does nothing when the surface is hidden or has
// no area, and coalesces with a draw that is already pending.
func (p *Panel) Draw() {
	if p.isClosed() || !p.ready() {
		return
	}
	if p.drawPending.CompareAndSwap(false, true) {
		p.surface.Invalidate()
	}
}

// Close releases every goroutine waiting on a pick or locate; they get the
// same results as for an unready surface. Later requests return at once.
func (p *Panel) Close() error {
	err := ErrClosed
	p.closeOnce.Do(func() {
		close(p.closed)
		err = nil
	})
	return err
}

func (p *Panel) isClosed() bool {
	select {
	case <-p.closed:
		return true
	default:
		return false
	}
}

func (p *Panel) ready() bool {
	if !p.surface.Showing() {
		return false
	}
	w, h := p.surface.Size()
	return w > 0 && h > 0
}
