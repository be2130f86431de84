// Package canvas is the OpenGL 2.1 fixed-function backend of scene.Context.
// A Context is only usable on the goroutine that owns the GL context.
package canvas

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"

	"glscene/draw"
	"glscene/scene"
)

var (
	ErrGL          = errors.New("gl error")
	ErrUnknownList = errors.New("unknown display list")
)

var primModes = [...]uint32{
	draw.DrawPoints: gl.POINTS,
	draw.DrawLines:  gl.LINES,
	draw.DrawTris:   gl.TRIANGLES,
	draw.DrawQuads:  gl.QUADS,
}

type Context struct {
	// the hit buffer stays pinned while GL holds its address
	pinner    runtime.Pinner
	selecting bool
}

var _ scene.Context = (*Context)(nil)

func NewContext() *Context {
	return &Context{}
}

func (c *Context) DepthMask(state bool) {
	gl.DepthMask(state)
}

func (c *Context) Texture(state bool) {
	if state {
		gl.Enable(gl.TEXTURE_2D)
	} else {
		gl.Disable(gl.TEXTURE_2D)
	}
}

func (c *Context) Begin(prim draw.Primitive, size ...float32) {
	if int(prim) < 0 || int(prim) >= len(primModes) {
		scene.Logger().Warn("canvas: unknown primitive", zap.Int("prim", int(prim)))
		return
	}
	s := draw.PrimSize(size)
	switch prim {
	case draw.DrawPoints:
		gl.PointSize(s)
	case draw.DrawLines:
		gl.LineWidth(s)
	}
	gl.Begin(primModes[prim])
}

func (c *Context) Vertex(x, y, z float32, col draw.Color) {
	gl.Color4ub(col.R(), col.G(), col.B(), col.A())
	gl.Vertex3f(x, y, z)
}

func (c *Context) Normal(x, y, z float32) {
	gl.Normal3f(x, y, z)
}

func (c *Context) End() {
	gl.End()
}

func (c *Context) PushTransform(m mgl64.Mat4) {
	gl.MatrixMode(gl.MODELVIEW)
	gl.PushMatrix()
	gl.MultMatrixd(&m[0])
}

func (c *Context) PopTransform() {
	gl.MatrixMode(gl.MODELVIEW)
	gl.PopMatrix()
}

func (c *Context) PushName(name uint32) {
	gl.PushName(name)
}

func (c *Context) PopName() {
	gl.PopName()
}

func (c *Context) GenList() uint32 {
	id := gl.GenLists(1)
	if id == 0 {
		scene.Logger().Warn("canvas: no display list available", zap.Error(checkError("gen lists")))
		return draw.InvalidList
	}
	return id
}

func (c *Context) NewList(id uint32) {
	gl.NewList(id, gl.COMPILE)
}

func (c *Context) EndList() {
	gl.EndList()
}

func (c *Context) CallList(id uint32) {
	gl.CallList(id)
}

func (c *Context) DeleteList(id uint32) error {
	if !gl.IsList(id) {
		return fmt.Errorf("delete list %d: %w", id, ErrUnknownList)
	}
	gl.DeleteLists(id, 1)
	return checkError("delete list")
}

func (c *Context) Viewport(x, y, w, h int) {
	gl.Viewport(int32(x), int32(y), int32(w), int32(h))
}

func (c *Context) LoadProjection(m mgl64.Mat4) {
	gl.MatrixMode(gl.PROJECTION)
	gl.LoadMatrixd(&m[0])
	gl.MatrixMode(gl.MODELVIEW)
}

func (c *Context) LoadModelView(m mgl64.Mat4) {
	gl.MatrixMode(gl.MODELVIEW)
	gl.LoadMatrixd(&m[0])
}

func (c *Context) Clear(bg draw.Color) {
	f := bg.Floats()
	gl.ClearColor(f[0], f[1], f[2], f[3])
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

var (
	ambient  = [4]float32{0.7, 0.7, 0.7, 1}
	diffuse  = [4]float32{0.3, 0.3, 0.3, 1}
	position = [4]float32{0, 0, 1, 0}
)

// Lighting sets up a headlight: a directional light along the eye axis.
// The model-view matrix must be the identity when it is enabled.
func (c *Context) Lighting(enabled bool) {
	gl.Enable(gl.DEPTH_TEST)
	if !enabled {
		gl.Disable(gl.LIGHTING)
		gl.Disable(gl.BLEND)
		gl.ShadeModel(gl.FLAT)
		return
	}
	gl.LightModelfv(gl.LIGHT_MODEL_AMBIENT, &ambient[0])
	gl.LightModeli(gl.LIGHT_MODEL_COLOR_CONTROL, gl.SEPARATE_SPECULAR_COLOR)
	gl.Lightfv(gl.LIGHT0, gl.DIFFUSE, &diffuse[0])
	gl.Lightfv(gl.LIGHT0, gl.POSITION, &position[0])
	gl.Enable(gl.LIGHT0)
	gl.Enable(gl.LIGHTING)
	gl.ColorMaterial(gl.FRONT_AND_BACK, gl.AMBIENT_AND_DIFFUSE)
	gl.Enable(gl.COLOR_MATERIAL)
	gl.Enable(gl.NORMALIZE)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.ShadeModel(gl.SMOOTH)
}

func (c *Context) Flush() {
	gl.Flush()
	if err := checkError("frame"); err != nil {
		scene.Logger().Warn("canvas: render error", zap.Error(err))
	}
}

func (c *Context) BeginSelect(buf []uint32) {
	if len(buf) == 0 || c.selecting {
		return
	}
	c.pinner.Pin(&buf[0])
	gl.SelectBuffer(int32(len(buf)), &buf[0])
	gl.RenderMode(gl.SELECT)
	gl.InitNames()
	c.selecting = true
}

func (c *Context) EndSelect() int {
	if !c.selecting {
		return 0
	}
	n := gl.RenderMode(gl.RENDER)
	c.pinner.Unpin()
	c.selecting = false
	return int(n)
}

func (c *Context) ReadDepth(x, y int) (float32, error) {
	v := c.CurrentViewport()
	if x < v[0] || y < v[1] || x >= v[0]+v[2] || y >= v[1]+v[3] {
		return 0, fmt.Errorf("read depth (%d, %d): outside viewport %v", x, y, v)
	}
	var d float32
	gl.ReadPixels(int32(x), int32(y), 1, 1, gl.DEPTH_COMPONENT, gl.FLOAT, gl.Ptr(&d))
	if err := checkError("read depth"); err != nil {
		return 0, err
	}
	return d, nil
}

func (c *Context) ModelView() mgl64.Mat4 {
	var m mgl64.Mat4
	gl.GetDoublev(gl.MODELVIEW_MATRIX, &m[0])
	return m
}

func (c *Context) Projection() mgl64.Mat4 {
	var m mgl64.Mat4
	gl.GetDoublev(gl.PROJECTION_MATRIX, &m[0])
	return m
}

func (c *Context) CurrentViewport() [4]int {
	var v [4]int32
	gl.GetIntegerv(gl.VIEWPORT, &v[0])
	return [4]int{int(v[0]), int(v[1]), int(v[2]), int(v[3])}
}
