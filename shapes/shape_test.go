package shapes

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"glscene/draw"
	"glscene/scene"
	"glscene/softgl"
)

func TestShapeCompilesListOnce(t *testing.T) {
	ctx := softgl.NewContext(32, 32)
	s := NewCube(mgl64.Vec3{}, 1, draw.White)

	s.Render(ctx)
	s.Render(ctx)
	assert.Equal(t, 1, ctx.Lists())

	id := s.ClearDisplayList()
	assert.NotEqual(t, draw.InvalidList, id)
	assert.True(t, ctx.HasList(id))
	assert.Equal(t, draw.InvalidList, s.ClearDisplayList())

	s.Render(ctx)
	assert.Equal(t, 2, ctx.Lists())
	require.NoError(t, ctx.DeleteList(id))
	assert.Equal(t, 1, ctx.Lists())
}

func TestShapePushesPickIDInSelection(t *testing.T) {
	ctx := softgl.NewContext(32, 32)
	ctx.LoadProjection(mgl64.Ortho(-2, 2, -2, 2, -2, 2))
	ctx.LoadModelView(mgl64.Ident4())

	tagged := NewCube(mgl64.Vec3{}, 1, draw.White).WithPickID(42)
	untagged := NewCube(mgl64.Vec3{}, 1, draw.White)
	buf := make([]uint32, 64)

	ctx.BeginSelect(buf)
	tagged.Render(ctx)
	untagged.Render(ctx)
	n := ctx.EndSelect()

	// the untagged cube leaves a record without names
	require.Equal(t, 2, n)
	assert.Equal(t, uint32(1), buf[0])
	assert.Equal(t, uint32(42), buf[3])

	hits := scene.DecodeHits(buf, n)
	require.Len(t, hits, 1)
	assert.Equal(t, uint32(42), hits[0].LastName())
	assert.Equal(t, 42, scene.NearestPickID(hits))
}

func TestShapeTransform(t *testing.T) {
	s := NewCross(mgl64.Vec3{}, 1, draw.White)
	assert.Equal(t, mgl64.Ident4(), s.Transform())
	m := mgl64.Translate3D(1, 2, 3)
	s.SetTransform(m)
	assert.Equal(t, m, s.Transform())
	assert.Equal(t, draw.InvalidPickID, s.PickID())
}

func TestGeometryEmitsIntoFrame(t *testing.T) {
	ctx := softgl.NewContext(16, 16)
	ctx.Clear(draw.Black)
	ctx.LoadProjection(mgl64.Ortho(-1, 1, -1, 1, -1, 1))
	ctx.LoadModelView(mgl64.Ident4())

	red := draw.RGBA(255, 0, 0, 255)
	q := NewQuad([4]mgl64.Vec3{{-1, -1, 0}, {1, -1, 0}, {1, 1, 0}, {-1, 1, 0}}, red)
	q.Render(ctx)

	img := ctx.Image()
	assert.Equal(t, red.NRGBA(), img.NRGBAAt(8, 8))
	d, err := ctx.ReadDepth(8, 8)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, d, 1e-6)
}

func TestPolylineNeedsTwoPoints(t *testing.T) {
	ctx := softgl.NewContext(8, 8)
	ctx.Clear(draw.Black)
	before := ctx.Image()
	NewPolyline([]mgl64.Vec3{{0, 0, 0}}, draw.White, 1).Render(ctx)
	assert.Equal(t, before.Pix, ctx.Image().Pix)
}

func TestWireGeometryVertexCounts(t *testing.T) {
	for _, tc := range []struct {
		name  string
		geom  Geometry
		verts int
	}{
		{"outline", Outline{Min: mgl64.Vec3{-1, -1, -1}, Max: mgl64.Vec3{1, 1, 1}, Color: draw.White}, 24},
		{"circle", Circle{Radius: 2, Color: draw.White}, 80},
		{"cross", Cross{Size: 1, Color: draw.White}, 6},
	} {
		t.Run(tc.name, func(t *testing.T) {
			dl := draw.NewDisplayList(0)
			tc.geom.Emit(dl)
			assert.Equal(t, tc.verts+2, dl.Len())
		})
	}
}
