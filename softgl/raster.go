package softgl

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"glscene/common"
	"glscene/draw"
)

const minW = 1e-9

// ndc is a vertex after the perspective divide.
type ndc struct {
	x, y, z float64
	col     draw.Color
}

func toNDC(v vertex) (ndc, bool) {
	w := v.clip.W()
	if w <= minW {
		return ndc{}, false
	}
	return ndc{x: v.clip.X() / w, y: v.clip.Y() / w, z: v.clip.Z() / w, col: v.col}, true
}

// window maps NDC x, y to window coordinates and z to depth in [0, 1].
func (c *Context) window(p ndc) (x, y, z float64) {
	vp := c.viewport
	x = float64(vp[0]) + (p.x+1)*0.5*float64(vp[2])
	y = float64(vp[1]) + (p.y+1)*0.5*float64(vp[3])
	z = (p.z + 1) * 0.5
	return x, y, z
}

func (c *Context) triangle(va, vb, vc vertex) {
	a, okA := toNDC(va)
	b, okB := toNDC(vb)
	d, okC := toNDC(vc)
	if !okA || !okB || !okC {
		return
	}
	if c.sel.active {
		c.selectTriangle(a, b, d)
		return
	}

	ax, ay, az := c.window(a)
	bx, by, bz := c.window(b)
	cx, cy, cz := c.window(d)
	area := edge(ax, ay, bx, by, cx, cy)
	if math.Abs(area) < 1e-12 {
		return
	}
	minX := clampInt(int(math.Floor(min(ax, bx, cx))), 0, c.w-1)
	maxX := clampInt(int(math.Ceil(max(ax, bx, cx))), 0, c.w-1)
	minY := clampInt(int(math.Floor(min(ay, by, cy))), 0, c.h-1)
	maxY := clampInt(int(math.Ceil(max(ay, by, cy))), 0, c.h-1)
	for py := minY; py <= maxY; py++ {
		for px := minX; px <= maxX; px++ {
			sx, sy := float64(px)+0.5, float64(py)+0.5
			w0 := edge(bx, by, cx, cy, sx, sy) / area
			w1 := edge(cx, cy, ax, ay, sx, sy) / area
			w2 := edge(ax, ay, bx, by, sx, sy) / area
			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}
			z := w0*az + w1*bz + w2*cz
			col := lerp3(a.col, b.col, d.col, w0, w1, w2)
			c.plot(px, py, z, col)
		}
	}
}

func (c *Context) line(va, vb vertex) {
	a, okA := toNDC(va)
	b, okB := toNDC(vb)
	if !okA || !okB {
		return
	}
	if c.sel.active {
		c.selectLine(a, b)
		return
	}
	ax, ay, az := c.window(a)
	bx, by, bz := c.window(b)
	steps := int(math.Ceil(math.Max(math.Abs(bx-ax), math.Abs(by-ay))))
	if steps < 1 {
		steps = 1
	}
	half := int(c.primSize) / 2
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := ax + (bx-ax)*t
		y := ay + (by-ay)*t
		z := az + (bz-az)*t
		col := draw.LerpCol(a.col, b.col, uint8(t*255))
		for dy := -half; dy <= half; dy++ {
			for dx := -half; dx <= half; dx++ {
				c.plot(int(math.Floor(x))+dx, int(math.Floor(y))+dy, z, col)
			}
		}
	}
}

func (c *Context) point(v vertex) {
	p, ok := toNDC(v)
	if !ok {
		return
	}
	if c.sel.active {
		if math.Abs(p.x) <= 1 && math.Abs(p.y) <= 1 {
			z := (p.z + 1) * 0.5
			c.sel.hitRange(z, z)
		}
		return
	}
	x, y, z := c.window(p)
	size := int(c.primSize)
	x0 := int(math.Floor(x)) - size/2
	y0 := int(math.Floor(y)) - size/2
	for dy := 0; dy < size; dy++ {
		for dx := 0; dx < size; dx++ {
			c.plot(x0+dx, y0+dy, z, p.col)
		}
	}
}

// plot writes one fragment at window pixel (px, py) after the depth test.
func (c *Context) plot(px, py int, z float64, col draw.Color) {
	if px < 0 || py < 0 || px >= c.w || py >= c.h || z < 0 || z > 1 {
		return
	}
	row := c.h - 1 - py
	idx := row*c.w + px
	if float32(z) >= c.depth[idx] {
		return
	}
	if c.depthMask {
		c.depth[idx] = float32(z)
	}
	off := row*c.color.Stride + px*4
	pix := c.color.Pix[off : off+4 : off+4]
	if col[3] == 255 {
		pix[0], pix[1], pix[2], pix[3] = col[0], col[1], col[2], 255
		return
	}
	// src-alpha, one-minus-src-alpha
	sa := uint32(col[3])
	for i := 0; i < 3; i++ {
		pix[i] = uint8((uint32(col[i])*sa + uint32(pix[i])*(255-sa)) / 255)
	}
	pix[3] = uint8(common.Clamp(uint32(pix[3])+sa, 0, 255))
}

// selectTriangle records a hit if the triangle overlaps the clip square
// [-1, 1]x[-1, 1], which in a selection pass is the pick window.
func (c *Context) selectTriangle(a, b, d ndc) {
	pts := [3][2]float64{{a.x, a.y}, {b.x, b.y}, {d.x, d.y}}
	if !triangleOverlapsSquare(pts) {
		return
	}
	zs := [3]float64{(a.z + 1) * 0.5, (b.z + 1) * 0.5, (d.z + 1) * 0.5}
	area := edge(a.x, a.y, b.x, b.y, d.x, d.y)
	if math.Abs(area) > 1e-12 {
		w0 := edge(b.x, b.y, d.x, d.y, 0, 0) / area
		w1 := edge(d.x, d.y, a.x, a.y, 0, 0) / area
		w2 := edge(a.x, a.y, b.x, b.y, 0, 0) / area
		if w0 >= 0 && w1 >= 0 && w2 >= 0 {
			z := w0*zs[0] + w1*zs[1] + w2*zs[2]
			if z >= 0 && z <= 1 {
				c.sel.hitRange(z, z)
			}
			return
		}
	}
	lo, hi := min(zs[0], zs[1], zs[2]), max(zs[0], zs[1], zs[2])
	if hi < 0 || lo > 1 {
		return
	}
	c.sel.hitRange(common.Clamp(lo, 0, 1), common.Clamp(hi, 0, 1))
}

func (c *Context) selectLine(a, b ndc) {
	t0, t1, ok := clipSegment(a.x, a.y, b.x, b.y)
	if !ok {
		return
	}
	z0 := (a.z + (b.z-a.z)*t0 + 1) * 0.5
	z1 := (a.z + (b.z-a.z)*t1 + 1) * 0.5
	lo, hi := min(z0, z1), max(z0, z1)
	if hi < 0 || lo > 1 {
		return
	}
	c.sel.hitRange(common.Clamp(lo, 0, 1), common.Clamp(hi, 0, 1))
}

// triangleOverlapsSquare is a separating axis test against [-1, 1]^2.
func triangleOverlapsSquare(p [3][2]float64) bool {
	for axis := 0; axis < 2; axis++ {
		lo := min(p[0][axis], p[1][axis], p[2][axis])
		hi := max(p[0][axis], p[1][axis], p[2][axis])
		if lo > 1 || hi < -1 {
			return false
		}
	}
	corners := [4][2]float64{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}
	for i := 0; i < 3; i++ {
		q, r := p[i], p[(i+1)%3]
		n := mgl64.Vec2{q[1] - r[1], r[0] - q[0]}
		tlo, thi := math.Inf(1), math.Inf(-1)
		for _, v := range p {
			d := n.Dot(mgl64.Vec2{v[0], v[1]})
			tlo, thi = math.Min(tlo, d), math.Max(thi, d)
		}
		slo, shi := math.Inf(1), math.Inf(-1)
		for _, v := range corners {
			d := n.Dot(mgl64.Vec2{v[0], v[1]})
			slo, shi = math.Min(slo, d), math.Max(shi, d)
		}
		if tlo > shi || thi < slo {
			return false
		}
	}
	return true
}

// clipSegment clips the segment to [-1, 1]^2 (Liang-Barsky) and returns the
// parameter range that remains.
func clipSegment(x0, y0, x1, y1 float64) (t0, t1 float64, ok bool) {
	t0, t1 = 0, 1
	dx, dy := x1-x0, y1-y0
	p := [4]float64{-dx, dx, -dy, dy}
	q := [4]float64{x0 + 1, 1 - x0, y0 + 1, 1 - y0}
	for i := 0; i < 4; i++ {
		if p[i] == 0 {
			if q[i] < 0 {
				return 0, 0, false
			}
			continue
		}
		r := q[i] / p[i]
		if p[i] < 0 {
			t0 = math.Max(t0, r)
		} else {
			t1 = math.Min(t1, r)
		}
	}
	if t0 > t1 {
		return 0, 0, false
	}
	return t0, t1, true
}

func edge(ax, ay, bx, by, px, py float64) float64 {
	return (bx-ax)*(py-ay) - (by-ay)*(px-ax)
}

func lerp3(a, b, c draw.Color, w0, w1, w2 float64) draw.Color {
	var out draw.Color
	for i := 0; i < 4; i++ {
		v := float64(a[i])*w0 + float64(b[i])*w1 + float64(c[i])*w2
		out[i] = uint8(common.Clamp(math.Round(v), 0, 255))
	}
	return out
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return common.Clamp(v, lo, hi)
}
