package sample

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"glscene/draw"
	"glscene/scene"
	"glscene/softgl"
)

func TestBuildAssignsPickIDs(t *testing.T) {
	ctx := softgl.NewContext(96, 96)
	surf := softgl.NewSurface(ctx)
	p := scene.NewPanel(surf)
	surf.Attach(p)
	t.Cleanup(func() { _ = p.Close() })

	next := Build(p)
	assert.Equal(t, FirstPickID+10, next)
	assert.Len(t, p.AllObjects(), 4+21*21+10)

	seen := map[int]bool{}
	for _, d := range p.AllObjects() {
		id := d.PickID()
		if id == scene.InvalidPickID {
			continue
		}
		assert.False(t, seen[id], "duplicate pick id %d", id)
		seen[id] = true
		assert.GreaterOrEqual(t, id, FirstPickID)
		assert.Less(t, id, next)
	}
	assert.Len(t, seen, next-FirstPickID)

	p.SetCOP(mgl64.Vec3{0, 0, 30})
	p.SetVRP(mgl64.Vec3{})
	p.SetVUV(mgl64.Vec3{0, 1, 0})

	id := p.PickID(48, 48, 1)
	assert.GreaterOrEqual(t, id, FirstPickID)
	assert.Less(t, id, next)
	require.NotNil(t, p.PickedObject())

	assert.Equal(t, scene.InvalidPickID, p.PickID(1, 1, 1))

	img := ctx.Image()
	assert.NotEqual(t, draw.Black.NRGBA(), img.NRGBAAt(48, 48))
}

func TestOrientationKeepsBasisOrthonormal(t *testing.T) {
	m := orientation(mgl64.Vec3{1, 0, 0}, mgl64.Vec3{0, 0.5, 1}, mgl64.Vec3{3, 4, 5})
	assert.InDelta(t, 0, m.Col(3).Vec3().Sub(mgl64.Vec3{3, 4, 5}).Len(), 1e-12)
	x, y, z := m.Col(0).Vec3(), m.Col(1).Vec3(), m.Col(2).Vec3()
	assert.InDelta(t, 1, x.Len(), 1e-12)
	assert.InDelta(t, 1, y.Len(), 1e-12)
	assert.InDelta(t, 1, z.Len(), 1e-12)
	assert.InDelta(t, 0, x.Dot(y), 1e-12)
	assert.InDelta(t, 0, y.Dot(z), 1e-12)
	assert.InDelta(t, 1, z.Dot(x.Cross(y)), 1e-12)
}
