// Package softgl is a small software implementation of the scene graphics
// context. It rasterises points, lines, triangles and quads into an RGBA
// image with a depth buffer, and implements selection mode with a name stack
// and hit records laid out the way OpenGL does.
//
// Triangles that cross the eye plane are dropped rather than clipped.
package softgl

import (
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"

	"glscene/draw"
	"glscene/scene"
)

const maxListDepth = 64

type vertex struct {
	clip mgl64.Vec4
	col  draw.Color
}

type Context struct {
	w, h  int
	color *image.NRGBA
	depth []float32

	viewport   [4]int
	projection mgl64.Mat4
	modelview  mgl64.Mat4
	stack      []mgl64.Mat4

	lighting  bool
	depthMask bool
	texture   bool

	inBegin  bool
	prim     draw.Primitive
	primSize float32
	normal   mgl64.Vec3
	verts    []vertex

	nextList    uint32
	lists       map[uint32]*draw.DisplayList
	recording   *draw.DisplayList
	recordingID uint32
	listDepth   int

	sel selection

	frames int
}

var _ scene.Context = (*Context)(nil)

func NewContext(w, h int) *Context {
	c := &Context{
		projection: mgl64.Ident4(),
		modelview:  mgl64.Ident4(),
		depthMask:  true,
		normal:     mgl64.Vec3{0, 0, 1},
		lists:      make(map[uint32]*draw.DisplayList),
	}
	c.Resize(w, h)
	return c
}

// Resize reallocates the frame buffer and resets the viewport. Sizes that
// match the current buffer leave it untouched.
func (c *Context) Resize(w, h int) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	if c.color != nil && w == c.w && h == c.h {
		return
	}
	c.w, c.h = w, h
	c.color = image.NewNRGBA(image.Rect(0, 0, w, h))
	c.depth = make([]float32, w*h)
	for i := range c.depth {
		c.depth[i] = 1
	}
	c.viewport = [4]int{0, 0, w, h}
}

func (c *Context) Size() (w, h int) {
	return c.w, c.h
}

// Image returns a copy of the colour buffer.
func (c *Context) Image() *image.NRGBA {
	out := image.NewNRGBA(c.color.Rect)
	copy(out.Pix, c.color.Pix)
	return out
}

func (c *Context) WritePNG(w io.Writer) error {
	if err := png.Encode(w, c.color); err != nil {
		return fmt.Errorf("encode frame: %w", err)
	}
	return nil
}

// Frames counts Flush calls.
func (c *Context) Frames() int {
	return c.frames
}

func (c *Context) Viewport(x, y, w, h int) {
	c.viewport = [4]int{x, y, w, h}
}

func (c *Context) CurrentViewport() [4]int {
	return c.viewport
}

func (c *Context) LoadProjection(m mgl64.Mat4) {
	c.projection = m
}

func (c *Context) LoadModelView(m mgl64.Mat4) {
	c.modelview = m
}

func (c *Context) Projection() mgl64.Mat4 {
	return c.projection
}

func (c *Context) ModelView() mgl64.Mat4 {
	return c.modelview
}

func (c *Context) Clear(bg draw.Color) {
	px := bg.NRGBA()
	for i := 0; i < len(c.color.Pix); i += 4 {
		c.color.Pix[i+0] = px.R
		c.color.Pix[i+1] = px.G
		c.color.Pix[i+2] = px.B
		c.color.Pix[i+3] = px.A
	}
	for i := range c.depth {
		c.depth[i] = 1
	}
}

func (c *Context) Lighting(enabled bool) {
	c.lighting = enabled
}

func (c *Context) Flush() {
	c.frames++
}

// ReadDepth returns the depth at window coordinates (x, y), origin bottom
// left.
func (c *Context) ReadDepth(x, y int) (float32, error) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return 0, fmt.Errorf("%w: (%d, %d) in %dx%d", ErrOutOfBounds, x, y, c.w, c.h)
	}
	return c.depth[(c.h-1-y)*c.w+x], nil
}

func (c *Context) DepthMask(state bool) {
	if c.recording != nil {
		c.recording.DepthMask(state)
		return
	}
	c.depthMask = state
}

func (c *Context) Texture(state bool) {
	if c.recording != nil {
		c.recording.Texture(state)
		return
	}
	c.texture = state
}

func (c *Context) Begin(prim draw.Primitive, size ...float32) {
	if c.recording != nil {
		c.recording.Begin(prim, size...)
		return
	}
	c.inBegin = true
	c.prim = prim
	c.primSize = draw.PrimSize(size)
	c.verts = c.verts[:0]
}

func (c *Context) Normal(x, y, z float32) {
	if c.recording != nil {
		c.recording.Normal(x, y, z)
		return
	}
	c.normal = mgl64.Vec3{float64(x), float64(y), float64(z)}
}

func (c *Context) Vertex(x, y, z float32, col draw.Color) {
	if c.recording != nil {
		c.recording.Vertex(x, y, z, col)
		return
	}
	if !c.inBegin {
		return
	}
	eye := c.modelview.Mul4x1(mgl64.Vec4{float64(x), float64(y), float64(z), 1})
	if c.lighting && !c.sel.active {
		col = c.shade(col)
	}
	c.verts = append(c.verts, vertex{clip: c.projection.Mul4x1(eye), col: col})
	if len(c.verts) == c.prim.VertexCount() {
		c.emit()
		c.verts = c.verts[:0]
	}
}

func (c *Context) End() {
	if c.recording != nil {
		c.recording.End()
		return
	}
	c.inBegin = false
	c.verts = c.verts[:0]
}

// shade applies the headlight: a white light at the eye looking down -z,
// over a strong ambient term.
func (c *Context) shade(col draw.Color) draw.Color {
	n := c.modelview.Mat3().Mul3x1(c.normal)
	if l := n.Len(); l > 0 {
		n = n.Mul(1 / l)
	}
	diffuse := n.Z()
	if diffuse < 0 {
		diffuse = -diffuse
	}
	k := 0.7 + 0.3*diffuse
	return draw.Color{
		uint8(float64(col[0]) * k),
		uint8(float64(col[1]) * k),
		uint8(float64(col[2]) * k),
		col[3],
	}
}

func (c *Context) PushTransform(m mgl64.Mat4) {
	if c.recording != nil {
		c.recording.PushTransform(m)
		return
	}
	c.stack = append(c.stack, c.modelview)
	c.modelview = c.modelview.Mul4(m)
}

func (c *Context) PopTransform() {
	if c.recording != nil {
		c.recording.PopTransform()
		return
	}
	if len(c.stack) == 0 {
		scene.Logger().Warn("softgl: transform stack underflow")
		return
	}
	c.modelview = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

func (c *Context) PushName(name uint32) {
	if c.recording != nil {
		c.recording.PushName(name)
		return
	}
	c.sel.pushName(name)
}

func (c *Context) PopName() {
	if c.recording != nil {
		c.recording.PopName()
		return
	}
	c.sel.popName()
}

func (c *Context) BeginSelect(buf []uint32) {
	c.sel.begin(buf)
}

func (c *Context) EndSelect() int {
	return c.sel.end()
}

func (c *Context) emit() {
	switch c.prim {
	case draw.DrawPoints:
		c.point(c.verts[0])
	case draw.DrawLines:
		c.line(c.verts[0], c.verts[1])
	case draw.DrawTris:
		c.triangle(c.verts[0], c.verts[1], c.verts[2])
	case draw.DrawQuads:
		c.triangle(c.verts[0], c.verts[1], c.verts[2])
		c.triangle(c.verts[0], c.verts[2], c.verts[3])
	}
}

func (c *Context) debugf(msg string, fields ...zap.Field) {
	scene.Logger().Debug("softgl: "+msg, fields...)
}
