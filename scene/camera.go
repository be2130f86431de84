package scene

import (
	"math"
	"sync"

	"github.com/go-gl/mathgl/mgl64"

	"glscene/common"
)

const (
	DefaultViewAngle = 40.0
	DefaultNear      = 0.5
	DefaultFar       = 200.0
)

// CameraState is a value copy of the camera parameters.
type CameraState struct {
	COP, VRP, VUV mgl64.Vec3
	// ViewAngle is the vertical field of view in degrees.
	ViewAngle   float64
	Near, Far   float64
	Perspective bool
}

func DefaultCameraState() CameraState {
	return CameraState{
		COP:         mgl64.Vec3{10, 10, 10},
		VRP:         mgl64.Vec3{0, 0, 0},
		VUV:         mgl64.Vec3{0, 0, 1},
		ViewAngle:   DefaultViewAngle,
		Near:        DefaultNear,
		Far:         DefaultFar,
		Perspective: true,
	}
}

// ViewMatrix is the look-at transform from COP towards VRP with VUV up.
// COP equal to VRP, or VUV parallel to the view direction, gives an
// undefined view.
func (s CameraState) ViewMatrix() mgl64.Mat4 {
	return mgl64.LookAtV(s.COP, s.VRP, s.VUV)
}

// Projection returns the projection for a viewport of w by h pixels.
func (s CameraState) Projection(w, h int) mgl64.Mat4 {
	aspect := 1.0
	if w > 0 && h > 0 {
		aspect = float64(w) / float64(h)
	}
	if s.Perspective {
		return mgl64.Perspective(mgl64.DegToRad(s.ViewAngle), aspect, s.Near, s.Far)
	}
	halfH := math.Tan(mgl64.DegToRad(s.ViewAngle/2)) * common.Vdist(s.COP, s.VRP)
	halfW := halfH * aspect
	return mgl64.Ortho(-halfW, halfW, -halfH, halfH, s.Near, s.Far)
}

// Camera holds the viewer position and projection parameters. It is safe for
// concurrent use; vectors are copied in and out.
type Camera struct {
	mu    sync.RWMutex
	state CameraState
}

func NewCamera() *Camera {
	return &Camera{state: DefaultCameraState()}
}

func (c *Camera) SetCOP(v mgl64.Vec3) {
	c.mu.Lock()
	c.state.COP = v
	c.mu.Unlock()
}

func (c *Camera) SetVRP(v mgl64.Vec3) {
	c.mu.Lock()
	c.state.VRP = v
	c.mu.Unlock()
}

func (c *Camera) SetVUV(v mgl64.Vec3) {
	c.mu.Lock()
	c.state.VUV = v
	c.mu.Unlock()
}

func (c *Camera) COP() mgl64.Vec3 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state.COP
}

func (c *Camera) VRP() mgl64.Vec3 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state.VRP
}

func (c *Camera) VUV() mgl64.Vec3 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state.VUV
}

func (c *Camera) SetPerspective(on bool) {
	c.mu.Lock()
	c.state.Perspective = on
	c.mu.Unlock()
}

// SetView moves the viewer and sets the projection kind in one update, so a
// concurrent Snapshot never sees half of it.
func (c *Camera) SetView(cop, vrp, vuv mgl64.Vec3, perspective bool) {
	c.mu.Lock()
	c.state.COP, c.state.VRP, c.state.VUV = cop, vrp, vuv
	c.state.Perspective = perspective
	c.mu.Unlock()
}

func (c *Camera) Perspective() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state.Perspective
}

// SetViewAngle sets the field of view in degrees. Values outside (0, 180)
// are ignored.
func (c *Camera) SetViewAngle(deg float64) {
	if !(deg > 0 && deg < 180) {
		return
	}
	c.mu.Lock()
	c.state.ViewAngle = deg
	c.mu.Unlock()
}

func (c *Camera) ViewAngle() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state.ViewAngle
}

// SetClipPlanes sets the near and far clipping distances. Requires
// 0 < near < far, otherwise the call is ignored.
func (c *Camera) SetClipPlanes(near, far float64) {
	if !(near > 0 && far > near) {
		return
	}
	c.mu.Lock()
	c.state.Near, c.state.Far = near, far
	c.mu.Unlock()
}

func (c *Camera) ClipPlanes() (near, far float64) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state.Near, c.state.Far
}

// Set replaces all parameters at once.
func (c *Camera) Set(s CameraState) {
	c.mu.Lock()
	c.state = s
	c.mu.Unlock()
}

func (c *Camera) Snapshot() CameraState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

func (c *Camera) ViewMatrix() mgl64.Mat4 {
	return c.Snapshot().ViewMatrix()
}

func (c *Camera) Projection(w, h int) mgl64.Mat4 {
	return c.Snapshot().Projection(w, h)
}

// PickMatrix narrows a projection to a dx by dy pixel window centred on
// (x, y) in window coordinates. Multiply it on the left of the projection.
func PickMatrix(x, y, dx, dy float64, viewport [4]int) mgl64.Mat4 {
	return common.GluPickMatrix(x, y, dx, dy, viewport)
}
