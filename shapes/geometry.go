package shapes

import (
	"github.com/go-gl/mathgl/mgl64"

	"glscene/draw"
)

// Box is an axis aligned box with a top colour and a side colour.
type Box struct {
	Min, Max mgl64.Vec3
	Top      draw.Color
	Side     draw.Color
}

func (b Box) Emit(c draw.Canvas) {
	cols := make([]draw.Color, 6)
	draw.CalcBoxColors(cols, b.Top, b.Side)
	draw.DrawBox(c,
		float32(b.Min[0]), float32(b.Min[1]), float32(b.Min[2]),
		float32(b.Max[0]), float32(b.Max[1]), float32(b.Max[2]), cols)
}

// Cube returns a box of edge length size centred on center.
func Cube(center mgl64.Vec3, size float64, col draw.Color) Box {
	h := size / 2
	d := mgl64.Vec3{h, h, h}
	return Box{Min: center.Sub(d), Max: center.Add(d), Top: col, Side: col}
}

// Outline is the wireframe of an axis aligned box.
type Outline struct {
	Min, Max mgl64.Vec3
	Color    draw.Color
	Width    float32
}

func (o Outline) Emit(c draw.Canvas) {
	draw.DrawBoxWire(c,
		float32(o.Min[0]), float32(o.Min[1]), float32(o.Min[2]),
		float32(o.Max[0]), float32(o.Max[1]), float32(o.Max[2]), o.Color, o.Width)
}

// Circle is a ring in the plane z = Center.Z.
type Circle struct {
	Center mgl64.Vec3
	Radius float32
	Color  draw.Color
	Width  float32
}

func (r Circle) Emit(c draw.Canvas) {
	draw.DrawCircle(c, float32(r.Center[0]), float32(r.Center[1]), float32(r.Center[2]), r.Radius, r.Color, r.Width)
}

// Quad is a flat four sided polygon. Corners go around the edge.
type Quad struct {
	Corners [4]mgl64.Vec3
	Color   draw.Color
}

func (q Quad) Emit(c draw.Canvas) {
	var pts [4][3]float32
	for i, p := range q.Corners {
		pts[i] = [3]float32{float32(p[0]), float32(p[1]), float32(p[2])}
	}
	c.Begin(draw.DrawQuads)
	draw.AppendQuad(c, pts, q.Color)
	c.End()
}

// Rect returns the quad spanning origin, origin+u+v with edges u and v.
func Rect(origin, u, v mgl64.Vec3, col draw.Color) Quad {
	return Quad{
		Corners: [4]mgl64.Vec3{origin, origin.Add(u), origin.Add(u).Add(v), origin.Add(v)},
		Color:   col,
	}
}

type Polyline struct {
	Points []mgl64.Vec3
	Color  draw.Color
	Width  float32
}

func (p Polyline) Emit(c draw.Canvas) {
	if len(p.Points) < 2 {
		return
	}
	c.Begin(draw.DrawLines, p.Width)
	for i := 1; i < len(p.Points); i++ {
		a, b := p.Points[i-1], p.Points[i]
		c.Vertex(float32(a[0]), float32(a[1]), float32(a[2]), p.Color)
		c.Vertex(float32(b[0]), float32(b[1]), float32(b[2]), p.Color)
	}
	c.End()
}

// Cross marks a point with three axis aligned strokes.
type Cross struct {
	Center mgl64.Vec3
	Size   float32
	Color  draw.Color
	Width  float32
}

func (x Cross) Emit(c draw.Canvas) {
	draw.DrawCross(c, float32(x.Center[0]), float32(x.Center[1]), float32(x.Center[2]), x.Size, x.Color, x.Width)
}

// Grid is a square lattice in the plane z = Origin.Z.
type Grid struct {
	Origin mgl64.Vec3
	Cells  int
	Size   float32
	Color  draw.Color
}

func (g Grid) Emit(c draw.Canvas) {
	draw.DrawGridXY(c, float32(g.Origin[0]), float32(g.Origin[1]), float32(g.Origin[2]),
		g.Cells, g.Cells, g.Size, g.Color, 1)
}

// Group draws several geometries as one, so they share a pick id and a
// display list.
type Group []Geometry

func (g Group) Emit(c draw.Canvas) {
	for _, child := range g {
		if child != nil {
			child.Emit(c)
		}
	}
}
