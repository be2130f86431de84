// Package sample builds the demo scene: cubes, squares, axes and a floor
// grid with pick ids counting up from FirstPickID.
package sample

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"glscene/draw"
	"glscene/scene"
	"glscene/shapes"
)

const FirstPickID = 111000

var (
	red   = draw.RGBAf(0.9, 0.4, 0.4, 1)
	green = draw.RGBAf(0.4, 0.9, 0.4, 1)
	blue  = draw.RGBAf(0.4, 0.4, 0.9, 1)
	white = draw.White
	gray  = draw.RGBAf(0.4, 0.4, 0.4, 1)
)

// orientation returns the transform placing the local x axis along base,
// the local y axis in the base/up plane and the origin at center.
func orientation(base, up, center mgl64.Vec3) mgl64.Mat4 {
	x := base.Normalize()
	z := x.Cross(up).Normalize()
	y := z.Cross(x)
	return mgl64.Translate3D(center[0], center[1], center[2]).Mul4(mgl64.Mat4{
		x[0], x[1], x[2], 0,
		y[0], y[1], y[2], 0,
		z[0], z[1], z[2], 0,
		0, 0, 0, 1,
	})
}

// Build fills the panel with the demo objects and returns the next unused
// pick id.
func Build(p *scene.Panel) int {
	id := FirstPickID

	p.SetObject("Object 0", shapes.NewCube(mgl64.Vec3{0, 0, 0}, 0.1, white).WithPickID(id))
	id++
	for i, c := range []mgl64.Vec3{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}} {
		cube := shapes.NewCube(c, 0.8, draw.TransCol(red, 128)).WithPickID(id)
		id++
		p.SetObject(fmt.Sprintf("Object %d", i+1), cube)
	}

	const size = 10
	for i := -size; i <= size; i++ {
		col := red
		switch {
		case i <= -size/2:
			col = green
		case i <= 0:
			col = white
		case i <= size/2:
			col = blue
		}
		for j := -size; j <= size; j++ {
			p.SetObjects(fmt.Sprintf("Obj:%d, %d", i, j),
				shapes.NewCube(mgl64.Vec3{0, float64(j), float64(i)}, 0.7, draw.TransCol(col, 51)))
		}
	}

	moved := shapes.NewCube(mgl64.Vec3{}, 0.7, blue).WithPickID(id)
	id++
	moved.SetTransform(orientation(mgl64.Vec3{1, 0, 0}, mgl64.Vec3{0, 0.5, 1}, mgl64.Vec3{3, 4, 5}))
	p.SetObject("Moved Object", moved)

	p.SetObject("Square", shapes.New(shapes.Rect(
		mgl64.Vec3{2, -1.5, -1.5}, mgl64.Vec3{0, 3, 0}, mgl64.Vec3{0, 0, 3}, gray)).WithPickID(id))
	id++

	square := shapes.New(shapes.Rect(
		mgl64.Vec3{-1.5, -1.5, 0}, mgl64.Vec3{3, 0, 0}, mgl64.Vec3{0, 3, 0}, white)).WithPickID(id)
	id++
	square.SetTransform(mgl64.Translate3D(4, 4, 4))
	p.SetObject("Square 2", square)

	p.SetObject("Axes", shapes.NewGroup(
		shapes.Polyline{Points: []mgl64.Vec3{{0, 0, 0}, {5, 0, 0}}, Color: red, Width: 2},
		shapes.Polyline{Points: []mgl64.Vec3{{0, 0, 0}, {0, 5, 0}}, Color: green, Width: 2},
		shapes.Polyline{Points: []mgl64.Vec3{{0, 0, 0}, {0, 0, 5}}, Color: blue, Width: 2},
	).WithPickID(id))
	id++

	p.SetObject("Origin", shapes.NewCross(mgl64.Vec3{}, 0.5, white).WithPickID(id))
	id++

	p.SetObject("Ring", shapes.NewCircle(mgl64.Vec3{}, 2, draw.IntToCol(id, 255), 2).WithPickID(id))
	id++

	p.SetObject("Path", shapes.NewPolyline([]mgl64.Vec3{
		{2, -1.5, -1.5}, {3, 4, 5}, {4, 4, 4},
	}, draw.DarkenCol(white), 1))

	p.SetObject("Bounds", shapes.NewOutline(
		mgl64.Vec3{-1, -11, -11}, mgl64.Vec3{6, 11, 11}, draw.DarkenCol(gray), 1))

	p.SetObject("Floor", shapes.New(shapes.Grid{
		Origin: mgl64.Vec3{-10, -10, -11},
		Cells:  20,
		Size:   1,
		Color:  gray,
	}))
	p.SetObject("Base", shapes.NewBox(
		mgl64.Vec3{-10, -10, -11.3}, mgl64.Vec3{10, 10, -11.05}, gray, draw.DarkenCol(gray)))
	return id
}
