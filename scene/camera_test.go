package scene

import (
	"math"
	"sync"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"

	"glscene/common"
)

func TestCameraDefaults(t *testing.T) {
	c := NewCamera()
	assert.Equal(t, mgl64.Vec3{10, 10, 10}, c.COP())
	assert.Equal(t, mgl64.Vec3{}, c.VRP())
	assert.Equal(t, mgl64.Vec3{0, 0, 1}, c.VUV())
	assert.True(t, c.Perspective())
	assert.Equal(t, 40.0, c.ViewAngle())
	near, far := c.ClipPlanes()
	assert.Equal(t, 0.5, near)
	assert.Equal(t, 200.0, far)
}

func TestCameraCopiesVectors(t *testing.T) {
	c := NewCamera()
	v := mgl64.Vec3{1, 2, 3}
	c.SetCOP(v)
	v[0] = 100
	assert.Equal(t, mgl64.Vec3{1, 2, 3}, c.COP())

	got := c.COP()
	got[1] = 100
	assert.Equal(t, mgl64.Vec3{1, 2, 3}, c.COP())
}

func TestCameraSetViewIsOneUpdate(t *testing.T) {
	c := NewCamera()
	c.SetViewAngle(30)
	c.SetView(mgl64.Vec3{0, 0, 5}, mgl64.Vec3{0, 0, 1}, mgl64.Vec3{0, 1, 0}, false)

	s := c.Snapshot()
	assert.Equal(t, mgl64.Vec3{0, 0, 5}, s.COP)
	assert.Equal(t, mgl64.Vec3{0, 0, 1}, s.VRP)
	assert.Equal(t, mgl64.Vec3{0, 1, 0}, s.VUV)
	assert.False(t, s.Perspective)
	assert.Equal(t, 30.0, s.ViewAngle)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			f := float64(i)
			c.SetView(mgl64.Vec3{f, 0, 1}, mgl64.Vec3{f, 0, 0}, mgl64.Vec3{0, 1, 0}, i%2 == 0)
		}
	}()
	for i := 0; i < 1000; i++ {
		s := c.Snapshot()
		if s.COP != (mgl64.Vec3{0, 0, 5}) {
			assert.Equal(t, s.COP.X(), s.VRP.X())
		}
	}
	wg.Wait()
}

func TestCameraIgnoresInvalidParameters(t *testing.T) {
	c := NewCamera()
	c.SetViewAngle(0)
	c.SetViewAngle(180)
	c.SetViewAngle(math.NaN())
	assert.Equal(t, 40.0, c.ViewAngle())
	c.SetClipPlanes(0, 10)
	c.SetClipPlanes(5, 5)
	near, far := c.ClipPlanes()
	assert.Equal(t, 0.5, near)
	assert.Equal(t, 200.0, far)
}

func TestViewMatrixLooksAtVRP(t *testing.T) {
	s := DefaultCameraState()
	eye := s.ViewMatrix().Mul4x1(s.VRP.Vec4(1))
	// VRP lies straight ahead on the -z axis in eye space
	assert.InDelta(t, 0, eye.X(), 1e-9)
	assert.InDelta(t, 0, eye.Y(), 1e-9)
	assert.InDelta(t, -s.COP.Len(), eye.Z(), 1e-9)
}

func TestOrthographicProjectionSpan(t *testing.T) {
	s := DefaultCameraState()
	s.Perspective = false
	s.COP = mgl64.Vec3{0, 0, 10}
	s.VUV = mgl64.Vec3{0, 1, 0}
	halfH := math.Tan(mgl64.DegToRad(20)) * 10

	proj := s.Projection(200, 100)
	top := proj.Mul4x1(mgl64.Vec4{0, halfH, -5, 1})
	right := proj.Mul4x1(mgl64.Vec4{2 * halfH, 0, -5, 1})
	assert.InDelta(t, 1, top.Y(), 1e-9)
	assert.InDelta(t, 1, right.X(), 1e-9)
}

func TestUnprojectRoundTrip(t *testing.T) {
	s := DefaultCameraState()
	view := [4]int{0, 0, 640, 480}
	mv := s.ViewMatrix()
	proj := s.Projection(view[2], view[3])
	for _, p := range []mgl64.Vec3{{0, 0, 0}, {1, -2, 0.5}, {-3, 2, 4}} {
		win := common.GluProject(p, mv, proj, view)
		back, err := common.GluUnProject(win, mv, proj, view)
		assert.NoError(t, err)
		assert.InDelta(t, p.X(), back.X(), 1e-6)
		assert.InDelta(t, p.Y(), back.Y(), 1e-6)
		assert.InDelta(t, p.Z(), back.Z(), 1e-6)
	}
}

func TestPickMatrixMapsPixelToClipSquare(t *testing.T) {
	view := [4]int{0, 0, 100, 50}
	pick := PickMatrix(30, 20, 1, 1, view)
	// window (30, 20) is NDC (-0.4, -0.2); the pick matrix moves it to the origin
	c := pick.Mul4x1(mgl64.Vec4{-0.4, -0.2, 0.3, 1})
	assert.InDelta(t, 0, c.X(), 1e-9)
	assert.InDelta(t, 0, c.Y(), 1e-9)
	assert.InDelta(t, 0.3, c.Z(), 1e-9)
	edge := pick.Mul4x1(mgl64.Vec4{-0.4 + 1.0/100, -0.2, 0, 1})
	assert.InDelta(t, 1, edge.X(), 1e-9)

	assert.Equal(t, mgl64.Ident4(), PickMatrix(1, 1, 0, 1, view))
}
