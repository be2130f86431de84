package shapes

import (
	"github.com/go-gl/mathgl/mgl64"

	"glscene/draw"
)

func NewCube(center mgl64.Vec3, size float64, col draw.Color) *Shape {
	return New(Cube(center, size, col))
}

func NewBox(lo, hi mgl64.Vec3, top, side draw.Color) *Shape {
	return New(Box{Min: lo, Max: hi, Top: top, Side: side})
}

func NewOutline(lo, hi mgl64.Vec3, col draw.Color, width float32) *Shape {
	return New(Outline{Min: lo, Max: hi, Color: col, Width: width})
}

func NewCircle(center mgl64.Vec3, radius float32, col draw.Color, width float32) *Shape {
	return New(Circle{Center: center, Radius: radius, Color: col, Width: width})
}

func NewQuad(corners [4]mgl64.Vec3, col draw.Color) *Shape {
	return New(Quad{Corners: corners, Color: col})
}

func NewPolyline(points []mgl64.Vec3, col draw.Color, width float32) *Shape {
	pts := make([]mgl64.Vec3, len(points))
	copy(pts, points)
	return New(Polyline{Points: pts, Color: col, Width: width})
}

func NewCross(center mgl64.Vec3, size float32, col draw.Color) *Shape {
	return New(Cross{Center: center, Size: size, Color: col, Width: 1})
}

func NewGroup(children ...Geometry) *Shape {
	return New(Group(children))
}
