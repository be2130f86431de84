package draw

import (
	"image/color"
)

// Color is a packed 8-bit RGBA colour.
type Color [4]uint8

func (c Color) R() uint8 {
	return c[0]
}

func (c Color) G() uint8 {
	return c[1]
}

func (c Color) B() uint8 {
	return c[2]
}

func (c Color) A() uint8 {
	return c[3]
}

func (c Color) Int() uint32 {
	return uint32(c.R()) | (uint32(c.G()) << 8) | (uint32(c.B()) << 16) | (uint32(c.A()) << 24)
}

func (c *Color) FromInt(col uint32) {
	c[0] = uint8(col & 0xff)
	c[1] = uint8((col >> 8) & 0xff)
	c[2] = uint8((col >> 16) & 0xff)
	c[3] = uint8((col >> 24) & 0xff)
}

// Floats returns the colour as normalised components, the form GL expects.
func (c Color) Floats() [4]float32 {
	return [4]float32{
		float32(c[0]) / 255,
		float32(c[1]) / 255,
		float32(c[2]) / 255,
		float32(c[3]) / 255,
	}
}

// NRGBA converts to the image/color representation used by image buffers.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c[0], G: c[1], B: c[2], A: c[3]}
}

func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{n.R, n.G, n.B, n.A}
}

var (
	Black = RGBA(0, 0, 0, 255)
	White = RGBA(255, 255, 255, 255)
)

func RGBA[T int | int32 | uint8](r, g, b, a T) Color {
	return Color{uint8(r), uint8(g), uint8(b), uint8(a)}
}

func RGBAf(fr, fg, fb, fa float32) Color {
	r := int(fr * 255.0)
	g := int(fg * 255.0)
	b := int(fb * 255.0)
	a := int(fa * 255.0)
	return RGBA(r, g, b, a)
}

func bit(a, b int) int {
	return (a & (1 << b)) >> b
}

// IntToCol maps a small integer (a pick id, an index) to a distinct colour.
func IntToCol(i, a int) Color {
	r := bit(i, 1) + bit(i, 3)*2 + 1
	g := bit(i, 2) + bit(i, 4)*2 + 1
	b := bit(i, 0) + bit(i, 5)*2 + 1
	return RGBA(r*63, g*63, b*63, a)
}

func MultCol(col Color, d uint8) Color {
	r := int(col.R())
	g := int(col.G())
	b := int(col.B())
	a := int(col.A())
	di := int(d)
	return RGBA(r*di>>8, g*di>>8, b*di>>8, a)
}

func DarkenCol(col Color) (res Color) {
	i := col.Int()
	res.FromInt(((i >> 1) & 0x007f7f7f) | (i & 0xff000000))
	return res
}

func LerpCol(ca, cb Color, u uint8) Color {
	iu := int(u)
	lerp := func(a, b uint8) int {
		return (int(a)*(255-iu) + int(b)*iu) / 255
	}
	return RGBA(lerp(ca.R(), cb.R()), lerp(ca.G(), cb.G()), lerp(ca.B(), cb.B()), lerp(ca.A(), cb.A()))
}

func TransCol(c Color, a uint8) Color {
	return Color{c.R(), c.G(), c.B(), a}
}

// CalcBoxColors fills the six face colours used by AppendBox: top first, then
// the sides shaded so adjacent faces stay distinguishable without lighting.
func CalcBoxColors(colors []Color, colTop Color, colSide Color) {
	if len(colors) < 6 {
		return
	}
	colors[0] = MultCol(colTop, 250)
	colors[1] = MultCol(colSide, 140)
	colors[2] = MultCol(colSide, 165)
	colors[3] = MultCol(colSide, 217)
	colors[4] = MultCol(colSide, 165)
	colors[5] = MultCol(colSide, 217)
}
