package scene

import (
	"github.com/go-gl/mathgl/mgl64"

	"glscene/draw"
)

// Surface is the windowing side of a panel: something that can be shown,
// has a size in pixels and can schedule a render callback on its graphics
// thread.
type Surface interface {
	Showing() bool
	Size() (w, h int)
	// Invalidate asks for one call of Panel.Display on the graphics thread.
	// It must not call Display re-entrantly on the calling goroutine.
	Invalidate()
}

// ListDeleter frees display lists. Only valid on the graphics thread.
type ListDeleter interface {
	DeleteList(id uint32) error
}

// Context is the graphics context handed to Panel.Display. Every method must
// be called on the graphics thread.
type Context interface {
	draw.Canvas
	ListDeleter

	Viewport(x, y, w, h int)
	LoadProjection(m mgl64.Mat4)
	LoadModelView(m mgl64.Mat4)
	Clear(bg draw.Color)
	// Lighting enables the headlight lighting model, or disables lighting
	// and shading altogether.
	Lighting(enabled bool)
	Flush()

	// BeginSelect switches to selection mode with buf as the hit buffer and
	// an empty name stack. EndSelect returns to normal rendering and reports
	// the number of hit records, or a negative count on buffer overflow.
	BeginSelect(buf []uint32)
	EndSelect() int

	// ReadDepth returns the depth buffer value in [0, 1] at window
	// coordinates (x, y), origin bottom left.
	ReadDepth(x, y int) (float32, error)
	ModelView() mgl64.Mat4
	Projection() mgl64.Mat4
	CurrentViewport() [4]int
}

// Drawable is one object in the scene.
type Drawable interface {
	// Render emits the object. In a selection pass the object pushes its
	// pick id as a name around its geometry.
	Render(c draw.Canvas)
	PickID() int
	SetPickID(id int)
	SetTransform(m mgl64.Mat4)
	// ClearDisplayList returns the object's display list id, or
	// draw.InvalidList, and forgets it. The caller owns the id afterwards.
	ClearDisplayList() uint32
}
