// Package viewcontrol keeps a viewer position outside of any panel and pushes
// it to every panel it controls.
package viewcontrol

import (
	"sync"

	"github.com/go-gl/mathgl/mgl64"
)

// Target is a view that can be moved and redrawn, such as *scene.Panel.
type Target interface {
	// SetView replaces the viewer position and projection kind in one
	// update.
	SetView(cop, vrp, vuv mgl64.Vec3, perspective bool)
	Draw()
}

// ViewController holds COP, VRP, VUV and the projection kind. Vectors are
// copied in and out. COP and VRP must differ, and VUV must not be parallel to
// COP-VRP, by the time Apply is called.
type ViewController struct {
	mu          sync.Mutex
	cop         mgl64.Vec3
	vrp         mgl64.Vec3
	vuv         mgl64.Vec3
	perspective bool
	targets     []Target
}

// New views the origin from (1, 1, 1) with z up.
func New() *ViewController {
	return NewWith(mgl64.Vec3{1, 1, 1}, mgl64.Vec3{}, mgl64.Vec3{0, 0, 1})
}

func NewWith(cop, vrp, vuv mgl64.Vec3) *ViewController {
	return &ViewController{cop: cop, vrp: vrp, vuv: vuv, perspective: true}
}

func (v *ViewController) SetCOP(cop mgl64.Vec3) {
	v.mu.Lock()
	v.cop = cop
	v.mu.Unlock()
}

func (v *ViewController) SetVRP(vrp mgl64.Vec3) {
	v.mu.Lock()
	v.vrp = vrp
	v.mu.Unlock()
}

func (v *ViewController) SetVUV(vuv mgl64.Vec3) {
	v.mu.Lock()
	v.vuv = vuv
	v.mu.Unlock()
}

func (v *ViewController) COP() mgl64.Vec3 {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.cop
}

func (v *ViewController) VRP() mgl64.Vec3 {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.vrp
}

func (v *ViewController) VUV() mgl64.Vec3 {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.vuv
}

func (v *ViewController) SetPerspective(on bool) {
	v.mu.Lock()
	v.perspective = on
	v.mu.Unlock()
}

func (v *ViewController) Perspective() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.perspective
}

// AddTarget adds t to the views updated by Apply. Nil is ignored.
func (v *ViewController) AddTarget(t Target) {
	if t == nil {
		return
	}
	v.mu.Lock()
	v.targets = append(v.targets, t)
	v.mu.Unlock()
}

func (v *ViewController) RemoveTarget(t Target) {
	v.mu.Lock()
	defer v.mu.Unlock()
	for i, x := range v.targets {
		if x == t {
			v.targets = append(v.targets[:i], v.targets[i+1:]...)
			return
		}
	}
}

// Apply copies the view into every target and asks each to redraw.
func (v *ViewController) Apply() {
	v.mu.Lock()
	cop, vrp, vuv, persp := v.cop, v.vrp, v.vuv, v.perspective
	targets := make([]Target, len(v.targets))
	copy(targets, v.targets)
	v.mu.Unlock()

	for _, t := range targets {
		t.SetView(cop, vrp, vuv, persp)
		t.Draw()
	}
}
