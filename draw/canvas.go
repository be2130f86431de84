// Package draw defines the immediate-mode drawing surface that drawables emit
// themselves into, plus colour and geometry helpers shared by shapes and
// backends.
package draw

import (
	"github.com/go-gl/mathgl/mgl64"
)

type Primitive int

const (
	DrawPoints Primitive = iota
	DrawLines
	DrawTris
	DrawQuads
)

func (p Primitive) String() string {
	switch p {
	case DrawPoints:
		return "points"
	case DrawLines:
		return "lines"
	case DrawTris:
		return "tris"
	case DrawQuads:
		return "quads"
	}
	return "unknown"
}

// VertexCount is the number of vertices one primitive of this kind consumes.
func (p Primitive) VertexCount() int {
	switch p {
	case DrawPoints:
		return 1
	case DrawLines:
		return 2
	case DrawTris:
		return 3
	case DrawQuads:
		return 4
	}
	return 0
}

const (
	// InvalidList is the display list id meaning "no list".
	InvalidList uint32 = 0
	// InvalidPickID marks a drawable without a caller-assigned pick id.
	InvalidPickID = -1
)

// Canvas is what a drawable sees of the graphics context. All methods must be
// called on the graphics thread.
type Canvas interface {
	DepthMask(state bool)

	Texture(state bool)

	// Begin starts a batch of primitives. size applies to point size and
	// line width only and defaults to 1.
	Begin(prim Primitive, size ...float32)

	Vertex(x, y, z float32, col Color)

	// Normal sets the normal used by subsequent vertices.
	Normal(x, y, z float32)

	End()

	// PushTransform multiplies m onto the current model-view matrix after
	// saving it; PopTransform restores the saved matrix.
	PushTransform(m mgl64.Mat4)
	PopTransform()

	// PushName and PopName maintain the selection name stack. They have no
	// effect outside a selection pass.
	PushName(name uint32)
	PopName()

	// GenList reserves a display list id, or returns InvalidList on failure.
	GenList() uint32
	// NewList starts recording into id; commands issued until EndList are
	// stored and not executed.
	NewList(id uint32)
	EndList()
	CallList(id uint32)
}

// PrimSize resolves the optional size argument of Begin.
func PrimSize(size []float32) float32 {
	if len(size) == 0 || size[0] <= 0 {
		return 1
	}
	return size[0]
}
