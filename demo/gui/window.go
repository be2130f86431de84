// Package gui hosts a scene.Panel in a GLFW window. The window owns the GL
// context and runs every render callback on the main thread.
package gui

import (
	"fmt"
	"image/png"
	"os"
	"sync/atomic"

	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"

	"glscene/demo/config"
	"glscene/demo/lib/canvas"
	"glscene/scene"
	"glscene/viewcontrol"
)

const (
	rotateStep = 5.0
	zoomStep   = 1.1
)

type Window struct {
	win  *glfw.Window
	ctx  *canvas.Context
	log  *zap.Logger
	shot string

	showing atomic.Bool
	fbW     atomic.Int32
	fbH     atomic.Int32
	invalid chan struct{}

	panel *scene.Panel
	view  *viewcontrol.AltAzController
}

var _ scene.Surface = (*Window)(nil)

// NewWindow creates a window with an OpenGL 2.1 context. It must be called
// on the main thread.
func NewWindow(cfg config.WindowConfig, log *zap.Logger) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("init glfw: %w", err)
	}
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 2)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.DepthBits, 24)

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	win.MakeContextCurrent()
	version, err := canvas.Init()
	if err != nil {
		win.Destroy()
		glfw.Terminate()
		return nil, err
	}
	log.Info("opengl ready", zap.String("version", version))

	w := &Window{
		win:     win,
		ctx:     canvas.NewContext(),
		log:     log,
		shot:    cfg.Screenshot,
		invalid: make(chan struct{}, 1),
	}
	fw, fh := win.GetFramebufferSize()
	w.fbW.Store(int32(fw))
	w.fbH.Store(int32(fh))
	w.showing.Store(true)
	w.registerEvent()
	return w, nil
}

// Attach connects the panel rendered into this window and the controller
// driven by its arrow keys.
func (w *Window) Attach(panel *scene.Panel, view *viewcontrol.AltAzController) {
	w.panel = panel
	w.view = view
}

func (w *Window) Showing() bool {
	return w.showing.Load()
}

func (w *Window) Size() (int, int) {
	return int(w.fbW.Load()), int(w.fbH.Load())
}

// Invalidate is safe from any goroutine.
func (w *Window) Invalidate() {
	select {
	case w.invalid <- struct{}{}:
	default:
	}
	glfw.PostEmptyEvent()
}

// Run services render requests until the window is closed. It must be
// called on the main thread.
func (w *Window) Run() {
	w.Invalidate()
	for !w.win.ShouldClose() {
		glfw.WaitEvents()
		select {
		case <-w.invalid:
			if w.panel == nil {
				continue
			}
			if w.panel.Display(w.ctx) == scene.Drawing {
				w.win.SwapBuffers()
			}
		default:
		}
	}
}

// Screenshot writes the last rendered frame as a PNG. Main thread only.
func (w *Window) Screenshot(path string) error {
	fw, fh := w.Size()
	img, err := canvas.ReadImage(fw, fh)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("screenshot: %w", err)
	}
	defer f.Close()
	if err = png.Encode(f, img); err != nil {
		return fmt.Errorf("screenshot %s: %w", path, err)
	}
	w.log.Info("screenshot written", zap.String("path", path))
	return nil
}

func (w *Window) Close() {
	if w.panel != nil {
		_ = w.panel.Close()
	}
	w.win.Destroy()
	glfw.Terminate()
}

// toPixels converts cursor coordinates to framebuffer pixels.
func (w *Window) toPixels(cx, cy float64) (int, int) {
	ww, wh := w.win.GetSize()
	fw, fh := w.Size()
	if ww <= 0 || wh <= 0 {
		return int(cx), int(cy)
	}
	return int(cx * float64(fw) / float64(ww)), int(cy * float64(fh) / float64(wh))
}

func (w *Window) pick(x, y int) {
	if w.panel == nil {
		return
	}
	pos := w.panel.PickedWorldCoordinates(x, y)
	id := w.panel.PickID(x, y, 1)
	w.log.Info("pick",
		zap.Int("x", x),
		zap.Int("y", y),
		zap.Int("id", id),
		zap.Float64s("world", pos[:]),
	)
}

func (w *Window) registerEvent() {
	w.win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		w.fbW.Store(int32(width))
		w.fbH.Store(int32(height))
		w.Invalidate()
	})
	w.win.SetIconifyCallback(func(_ *glfw.Window, iconified bool) {
		w.showing.Store(!iconified)
		if !iconified {
			w.Invalidate()
		}
	})
	w.win.SetRefreshCallback(func(_ *glfw.Window) {
		w.Invalidate()
	})
	w.win.SetMouseButtonCallback(func(win *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		if button != glfw.MouseButtonLeft || action != glfw.Press {
			return
		}
		x, y := w.toPixels(win.GetCursorPos())
		// picking blocks until the main loop services it
		go w.pick(x, y)
	})
	w.win.SetScrollCallback(func(_ *glfw.Window, _, yoff float64) {
		if w.view == nil || yoff == 0 {
			return
		}
		if yoff > 0 {
			w.view.Zoom(1 / zoomStep)
		} else {
			w.view.Zoom(zoomStep)
		}
	})
	w.win.SetKeyCallback(func(win *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if action == glfw.Release {
			return
		}
		switch key {
		case glfw.KeyEscape:
			win.SetShouldClose(true)
			glfw.PostEmptyEvent()
		case glfw.KeyS:
			if err := w.Screenshot(w.shot); err != nil {
				w.log.Warn("screenshot failed", zap.Error(err))
			}
		}
		if w.view == nil {
			return
		}
		switch key {
		case glfw.KeyUp:
			w.view.Rotate(rotateStep, 0)
		case glfw.KeyDown:
			w.view.Rotate(-rotateStep, 0)
		case glfw.KeyLeft:
			w.view.Rotate(0, -rotateStep)
		case glfw.KeyRight:
			w.view.Rotate(0, rotateStep)
		case glfw.KeyPageUp:
			w.view.Zoom(1 / zoomStep)
		case glfw.KeyPageDown:
			w.view.Zoom(zoomStep)
		}
	})
	w.win.SetCloseCallback(func(_ *glfw.Window) {
		w.log.Info("shutting down")
	})
}
