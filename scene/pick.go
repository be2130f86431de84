package scene

import (
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

// PickHitList returns the hit records for the pixel (x, y), with y counted
// down from the top of the surface. It blocks until the graphics thread has
// run the selection pass. If another pick is in flight it returns nil at
// once, as it does when the surface is not ready or the panel is closed.
func (p *Panel) PickHitList(x, y int) []HitRecord {
	if p.isClosed() || !p.ready() {
		return nil
	}
	if !p.selecting.CompareAndSwap(false, true) {
		return nil
	}
	defer p.selecting.Store(false)

	req := selectRequest{x: x, y: y, reply: make(chan []HitRecord, 1)}
	select {
	case p.selectCh <- req:
	case <-p.closed:
		return nil
	}
	p.surface.Invalidate()

	var hits []HitRecord
	select {
	case hits = <-req.reply:
	case <-p.closed:
		return nil
	}
	if p.journal != nil {
		p.journal.record(x, y, time.Now(), hits)
	}
	return hits
}

// PickID returns the pick id of the nearest object under (x, y), or
// InvalidPickID. When several hits share the nearest depth the first one
// rendered wins. radius is ignored; picking is exact to the pixel.
func (p *Panel) PickID(x, y, radius int) int {
	id := NearestPickID(p.PickHitList(x, y))
	p.mu.Lock()
	p.lastPickID = id
	p.mu.Unlock()
	return id
}

// PickedObject returns the object whose pick id the last PickID call
// returned, or nil.
func (p *Panel) PickedObject() Drawable {
	p.mu.Lock()
	id := p.lastPickID
	p.mu.Unlock()
	if id == InvalidPickID {
		return nil
	}
	for _, d := range p.registry.AllObjects() {
		if d.PickID() == id {
			return d
		}
	}
	return nil
}

// PickedWorldCoordinates returns the world point under (x, y) on the
// nearest rendered surface. It blocks until the graphics thread has read the
// depth buffer. Callers are serialised. On failure, or when the surface is
// not ready, the previously located point is returned.
func (p *Panel) PickedWorldCoordinates(x, y int) mgl64.Vec3 {
	if p.isClosed() || !p.ready() {
		return p.PickedPoint()
	}
	p.locateMu.Lock()
	defer p.locateMu.Unlock()

	req := locateRequest{x: x, y: y, reply: make(chan mgl64.Vec3, 1)}
	select {
	case p.locateCh <- req:
	case <-p.closed:
		return p.PickedPoint()
	}
	p.surface.Invalidate()

	select {
	case v := <-req.reply:
		return v
	case <-p.closed:
		return p.PickedPoint()
	}
}

// PickedPoint returns the last located world point.
func (p *Panel) PickedPoint() mgl64.Vec3 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lastPoint
}

// PickedPointAt locates (x, y) and returns the resulting last located point.
func (p *Panel) PickedPointAt(x, y int) mgl64.Vec3 {
	p.PickedWorldCoordinates(x, y)
	return p.PickedPoint()
}
