package draw

import (
	"image/color"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type traceCanvas struct {
	calls    []string
	vertices int
	names    []uint32
}

func (t *traceCanvas) DepthMask(bool) { t.calls = append(t.calls, "depthmask") }
func (t *traceCanvas) Texture(bool)   { t.calls = append(t.calls, "texture") }
func (t *traceCanvas) Begin(p Primitive, _ ...float32) {
	t.calls = append(t.calls, "begin "+p.String())
}
func (t *traceCanvas) Vertex(_, _, _ float32, _ Color) { t.vertices++ }
func (t *traceCanvas) Normal(_, _, _ float32)          {}
func (t *traceCanvas) End()                            { t.calls = append(t.calls, "end") }
func (t *traceCanvas) PushTransform(mgl64.Mat4)        { t.calls = append(t.calls, "push") }
func (t *traceCanvas) PopTransform()                   { t.calls = append(t.calls, "pop") }
func (t *traceCanvas) PushName(n uint32)               { t.names = append(t.names, n) }
func (t *traceCanvas) PopName()                        { t.calls = append(t.calls, "popname") }
func (t *traceCanvas) GenList() uint32                 { return InvalidList }
func (t *traceCanvas) NewList(uint32)                  {}
func (t *traceCanvas) EndList()                        {}
func (t *traceCanvas) CallList(uint32)                 { t.calls = append(t.calls, "call") }

func TestColorIntRoundTrip(t *testing.T) {
	c := RGBA(10, 20, 30, 40)
	var d Color
	d.FromInt(c.Int())
	assert.Equal(t, c, d)
	assert.Equal(t, uint32(0x281e140a), c.Int())
}

func TestColorConversions(t *testing.T) {
	assert.Equal(t, [4]float32{1, 0, 0, 1}, RGBA(255, 0, 0, 255).Floats())
	assert.Equal(t, RGBA(0, 128, 0, 255), FromColor(color.RGBA{G: 128, A: 255}))
	assert.Equal(t, RGBA(127, 127, 127, 255), DarkenCol(White))
	assert.Equal(t, Black, LerpCol(Black, White, 0))
	assert.Equal(t, White, LerpCol(Black, White, 255))
	assert.Equal(t, uint8(7), TransCol(White, 7).A())
}

func TestCalcBoxColors(t *testing.T) {
	cols := make([]Color, 6)
	CalcBoxColors(cols, White, White)
	assert.Equal(t, MultCol(White, 250), cols[0])
	assert.Equal(t, cols[2], cols[4])
	assert.Equal(t, cols[3], cols[5])

	short := make([]Color, 3)
	CalcBoxColors(short, White, White)
	assert.Equal(t, Color{}, short[0])
}

func TestDrawBoxEmitsSixQuads(t *testing.T) {
	cols := make([]Color, 6)
	CalcBoxColors(cols, White, White)
	tc := &traceCanvas{}
	DrawBox(tc, 0, 0, 0, 1, 1, 1, cols)
	assert.Equal(t, []string{"begin quads", "end"}, tc.calls)
	assert.Equal(t, 24, tc.vertices)
}

func TestDisplayListReplay(t *testing.T) {
	dl := NewDisplayList(0)
	dl.PushName(7)
	dl.PushTransform(mgl64.Ident4())
	DrawBoxWire(dl, 0, 0, 0, 1, 1, 1, White, 2)
	dl.PopTransform()
	dl.PopName()
	dl.CallList(3)
	require.Greater(t, dl.Len(), 24)

	tc := &traceCanvas{}
	dl.Replay(tc)
	assert.Equal(t, []uint32{7}, tc.names)
	assert.Equal(t, 24, tc.vertices)
	assert.Equal(t, []string{"push", "begin lines", "end", "pop", "popname", "call"}, tc.calls)

	dl.Clear()
	assert.Zero(t, dl.Len())
	dl.Replay(nil)
}

func TestPrimitive(t *testing.T) {
	assert.Equal(t, 3, DrawTris.VertexCount())
	assert.Equal(t, 4, DrawQuads.VertexCount())
	assert.Equal(t, float32(1), PrimSize(nil))
	assert.Equal(t, float32(2.5), PrimSize([]float32{2.5}))
}
