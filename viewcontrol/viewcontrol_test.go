package viewcontrol

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"glscene/scene"
	"glscene/softgl"
)

type recordingTarget struct {
	cop, vrp, vuv mgl64.Vec3
	perspective   bool
	views         int
	draws         int
}

func (r *recordingTarget) SetView(cop, vrp, vuv mgl64.Vec3, perspective bool) {
	r.cop, r.vrp, r.vuv, r.perspective = cop, vrp, vuv, perspective
	r.views++
}

func (r *recordingTarget) Draw() { r.draws++ }

func vecNear(t *testing.T, want, got mgl64.Vec3) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-9)
	}
}

func TestViewControllerDefaults(t *testing.T) {
	v := New()
	assert.Equal(t, mgl64.Vec3{1, 1, 1}, v.COP())
	assert.Equal(t, mgl64.Vec3{}, v.VRP())
	assert.Equal(t, mgl64.Vec3{0, 0, 1}, v.VUV())
	assert.True(t, v.Perspective())
}

func TestApplyUpdatesEveryTarget(t *testing.T) {
	v := NewWith(mgl64.Vec3{5, 0, 0}, mgl64.Vec3{1, 0, 0}, mgl64.Vec3{0, 0, 1})
	v.SetPerspective(false)
	a, b := &recordingTarget{}, &recordingTarget{}
	v.AddTarget(a)
	v.AddTarget(b)
	v.AddTarget(nil)
	v.Apply()

	for _, r := range []*recordingTarget{a, b} {
		assert.Equal(t, mgl64.Vec3{5, 0, 0}, r.cop)
		assert.Equal(t, mgl64.Vec3{1, 0, 0}, r.vrp)
		assert.Equal(t, mgl64.Vec3{0, 0, 1}, r.vuv)
		assert.False(t, r.perspective)
		assert.Equal(t, 1, r.views)
		assert.Equal(t, 1, r.draws)
	}

	v.RemoveTarget(a)
	v.Apply()
	assert.Equal(t, 1, a.draws)
	assert.Equal(t, 2, b.draws)
}

func TestAltAzCOP(t *testing.T) {
	a := NewAltAzWith(0, 90, 1, 20, 10)
	vecNear(t, mgl64.Vec3{0, 10, 0}, a.COP())

	a.SetAltitude(30)
	d := 10 * math.Cos(mgl64.DegToRad(30))
	vecNear(t, mgl64.Vec3{0, d, 5}, a.COP())

	a.SetVRP(mgl64.Vec3{1, 1, 1})
	a.SetAzimuth(0)
	vecNear(t, mgl64.Vec3{1 + d, 1, 6}, a.COP())
}

func TestAltAzClamps(t *testing.T) {
	a := NewAltAz()
	a.SetAltitude(120)
	assert.Equal(t, MaxAltitude, a.Altitude())
	a.SetAltitude(-95)
	assert.Equal(t, -MaxAltitude, a.Altitude())
	a.SetAzimuth(400)
	assert.Equal(t, MaxAzimuth, a.Azimuth())
	a.Rotate(0, -500)
	assert.Equal(t, -MaxAzimuth, a.Azimuth())
}

func TestAltAzDistance(t *testing.T) {
	a := NewAltAzWith(45, 45, 20, 1, 10)
	lo, hi := a.DistanceRange()
	assert.Equal(t, 1.0, lo)
	assert.Equal(t, 20.0, hi)

	a.SetDistance(-5)
	assert.Equal(t, 5.0, a.Distance())
	a.SetDistance(0)
	assert.Equal(t, 1.0, a.Distance())
	a.SetDistance(50)
	assert.Equal(t, 20.0, a.Distance())

	a.SetDistanceRange(3, 3)
	lo, hi = a.DistanceRange()
	assert.Equal(t, 3.0, lo)
	assert.Equal(t, 4.0, hi)
	assert.Equal(t, 4.0, a.Distance())

	a.Zoom(0.5)
	assert.Equal(t, 3.0, a.Distance())
	assert.InDelta(t, 3.0, a.COP().Sub(a.VRP()).Len(), 1e-9)
}

func TestAltAzDrivesPanel(t *testing.T) {
	surf := softgl.NewSurface(softgl.NewContext(8, 8))
	p := scene.NewPanel(surf)
	surf.Attach(p)
	defer p.Close()

	a := NewAltAzWith(0, 0, 1, 20, 4)
	a.AddTarget(p)
	a.SetAltitude(10)

	require.NotEmpty(t, surf.Modes())
	vecNear(t, a.COP(), p.Camera().COP())
	assert.Equal(t, mgl64.Vec3{0, 0, 1}, p.Camera().VUV())
}
