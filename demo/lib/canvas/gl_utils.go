package canvas

import (
	"fmt"
	"image"

	"github.com/go-gl/gl/v2.1/gl"
)

// Init loads the GL entry points for the current context and returns the
// driver version string.
func Init() (string, error) {
	if err := gl.Init(); err != nil {
		return "", fmt.Errorf("init gl: %w", err)
	}
	return gl.GoStr(gl.GetString(gl.VERSION)), nil
}

var errNames = map[uint32]string{
	gl.INVALID_ENUM:      "invalid enum",
	gl.INVALID_VALUE:     "invalid value",
	gl.INVALID_OPERATION: "invalid operation",
	gl.STACK_OVERFLOW:    "stack overflow",
	gl.STACK_UNDERFLOW:   "stack underflow",
	gl.OUT_OF_MEMORY:     "out of memory",
}

// checkError drains the GL error flags and reports the first one.
func checkError(op string) error {
	code := gl.GetError()
	if code == gl.NO_ERROR {
		return nil
	}
	for gl.GetError() != gl.NO_ERROR {
	}
	name, ok := errNames[code]
	if !ok {
		name = fmt.Sprintf("0x%x", code)
	}
	return fmt.Errorf("%s: %w: %s", op, ErrGL, name)
}

// ReadImage copies the colour buffer of the current framebuffer into an
// image with the origin at the top left.
func ReadImage(w, h int) (*image.NRGBA, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("read image %dx%d: empty framebuffer", w, h)
	}
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	row := make([]uint8, 4*w)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	for y := 0; y < h; y++ {
		gl.ReadPixels(0, int32(h-1-y), int32(w), 1, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(row))
		copy(img.Pix[y*img.Stride:], row)
	}
	if err := checkError("read pixels"); err != nil {
		return nil, err
	}
	return img, nil
}
