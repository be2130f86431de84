package draw

import (
	"math"
)

var boxInds = [6 * 4]int{
	7, 6, 5, 4,
	0, 1, 2, 3,
	1, 5, 6, 2,
	3, 7, 4, 0,
	2, 6, 7, 3,
	0, 4, 5, 1,
}

// boxNormals follows the face order of boxInds with z as the up axis.
var boxNormals = [6][3]float32{
	{0, 0, 1},
	{0, 0, -1},
	{1, 0, 0},
	{-1, 0, 0},
	{0, 1, 0},
	{0, -1, 0},
}

// AppendBox emits the six faces of an axis aligned box as quads. fcol holds
// one colour per face, top first. Must be called between Begin(DrawQuads) and
// End.
func AppendBox(c Canvas, minx, miny, minz, maxx, maxy, maxz float32, fcol []Color) {
	if c == nil || len(fcol) < 6 {
		return
	}
	verts := [8][3]float32{
		{minx, miny, minz},
		{maxx, miny, minz},
		{maxx, maxy, minz},
		{minx, maxy, minz},
		{minx, miny, maxz},
		{maxx, miny, maxz},
		{maxx, maxy, maxz},
		{minx, maxy, maxz},
	}
	in := 0
	for i := 0; i < 6; i++ {
		n := boxNormals[i]
		c.Normal(n[0], n[1], n[2])
		for k := 0; k < 4; k++ {
			v := verts[boxInds[in]]
			c.Vertex(v[0], v[1], v[2], fcol[i])
			in++
		}
	}
}

// AppendBoxWire emits the twelve edges of a box as line pairs.
func AppendBoxWire(c Canvas, minx, miny, minz, maxx, maxy, maxz float32, col Color) {
	if c == nil {
		return
	}
	// Bottom
	c.Vertex(minx, miny, minz, col)
	c.Vertex(maxx, miny, minz, col)
	c.Vertex(maxx, miny, minz, col)
	c.Vertex(maxx, maxy, minz, col)
	c.Vertex(maxx, maxy, minz, col)
	c.Vertex(minx, maxy, minz, col)
	c.Vertex(minx, maxy, minz, col)
	c.Vertex(minx, miny, minz, col)

	// Top
	c.Vertex(minx, miny, maxz, col)
	c.Vertex(maxx, miny, maxz, col)
	c.Vertex(maxx, miny, maxz, col)
	c.Vertex(maxx, maxy, maxz, col)
	c.Vertex(maxx, maxy, maxz, col)
	c.Vertex(minx, maxy, maxz, col)
	c.Vertex(minx, maxy, maxz, col)
	c.Vertex(minx, miny, maxz, col)

	// Sides
	c.Vertex(minx, miny, minz, col)
	c.Vertex(minx, miny, maxz, col)
	c.Vertex(maxx, miny, minz, col)
	c.Vertex(maxx, miny, maxz, col)
	c.Vertex(maxx, maxy, minz, col)
	c.Vertex(maxx, maxy, maxz, col)
	c.Vertex(minx, maxy, minz, col)
	c.Vertex(minx, maxy, maxz, col)
}

// AppendQuad emits one quad with a flat normal computed from its first three
// corners.
func AppendQuad(c Canvas, corners [4][3]float32, col Color) {
	if c == nil {
		return
	}
	ax, ay, az := corners[1][0]-corners[0][0], corners[1][1]-corners[0][1], corners[1][2]-corners[0][2]
	bx, by, bz := corners[2][0]-corners[0][0], corners[2][1]-corners[0][1], corners[2][2]-corners[0][2]
	nx, ny, nz := ay*bz-az*by, az*bx-ax*bz, ax*by-ay*bx
	if l := float32(math.Sqrt(float64(nx*nx + ny*ny + nz*nz))); l > 0 {
		nx, ny, nz = nx/l, ny/l, nz/l
	}
	c.Normal(nx, ny, nz)
	for _, p := range corners {
		c.Vertex(p[0], p[1], p[2], col)
	}
}

func AppendCross(c Canvas, x, y, z, s float32, col Color) {
	if c == nil {
		return
	}
	c.Vertex(x-s, y, z, col)
	c.Vertex(x+s, y, z, col)
	c.Vertex(x, y-s, z, col)
	c.Vertex(x, y+s, z, col)
	c.Vertex(x, y, z-s, col)
	c.Vertex(x, y, z+s, col)
}

// AppendCircle emits a circle of radius r in the plane z = const as line
// segments.
func AppendCircle(c Canvas, x, y, z, r float32, col Color) {
	if c == nil {
		return
	}
	const numSeg = 40
	var dir [numSeg * 2]float32
	for i := 0; i < numSeg; i++ {
		a := float64(i) / numSeg * math.Pi * 2
		dir[i*2] = float32(math.Cos(a))
		dir[i*2+1] = float32(math.Sin(a))
	}
	i := 0
	j := numSeg - 1
	for i < numSeg {
		c.Vertex(x+dir[j*2+0]*r, y+dir[j*2+1]*r, z, col)
		c.Vertex(x+dir[i*2+0]*r, y+dir[i*2+1]*r, z, col)
		j = i
		i++
	}
}

// DrawGridXY draws a w by h grid of square cells in the plane z = oz.
func DrawGridXY(c Canvas, ox, oy, oz float32, w, h int, size float32, col Color, lineWidth float32) {
	if c == nil {
		return
	}
	c.Begin(DrawLines, lineWidth)
	for i := 0; i <= h; i++ {
		c.Vertex(ox, oy+float32(i)*size, oz, col)
		c.Vertex(ox+float32(w)*size, oy+float32(i)*size, oz, col)
	}
	for i := 0; i <= w; i++ {
		c.Vertex(ox+float32(i)*size, oy, oz, col)
		c.Vertex(ox+float32(i)*size, oy+float32(h)*size, oz, col)
	}
	c.End()
}

func DrawBox(c Canvas, minx, miny, minz, maxx, maxy, maxz float32, fcol []Color) {
	if c == nil {
		return
	}
	c.Begin(DrawQuads)
	AppendBox(c, minx, miny, minz, maxx, maxy, maxz, fcol)
	c.End()
}

func DrawBoxWire(c Canvas, minx, miny, minz, maxx, maxy, maxz float32, col Color, lineWidth float32) {
	if c == nil {
		return
	}
	c.Begin(DrawLines, lineWidth)
	AppendBoxWire(c, minx, miny, minz, maxx, maxy, maxz, col)
	c.End()
}

func DrawCross(c Canvas, x, y, z, size float32, col Color, lineWidth float32) {
	if c == nil {
		return
	}
	c.Begin(DrawLines, lineWidth)
	AppendCross(c, x, y, z, size, col)
	c.End()
}

func DrawCircle(c Canvas, x, y, z, r float32, col Color, lineWidth float32) {
	if c == nil {
		return
	}
	c.Begin(DrawLines, lineWidth)
	AppendCircle(c, x, y, z, r, col)
	c.End()
}
