package scene

import (
	"io"
	"os"
	"strconv"

	"go.uber.org/zap"

	"glscene/draw"
)

// DepthScaleEnv names the environment variable holding the depth scale
// applied to depth buffer reads before unprojection.
const DepthScaleEnv = "PixelDepthScale"

const DefaultHitBufferSize = 512

// InvalidPickID is returned by PickID when nothing is under the pixel.
const InvalidPickID = draw.InvalidPickID

// PanelOption configures a Panel during creation.
type PanelOption func(*panelOptions)

type panelOptions struct {
	camera            *Camera
	registry          *Registry
	depthScale        float64
	background        draw.Color
	hitBufferSize     int
	redrawAfterSelect bool
	journal           io.Writer
}

func defaultOptions() panelOptions {
	return panelOptions{
		depthScale:        depthScaleFromEnv(),
		background:        draw.Black,
		hitBufferSize:     DefaultHitBufferSize,
		redrawAfterSelect: true,
	}
}

// depthScaleFromEnv reads DepthScaleEnv. Unset gives 1; values that are not
// positive numbers are logged and ignored.
func depthScaleFromEnv() float64 {
	s, ok := os.LookupEnv(DepthScaleEnv)
	if !ok || s == "" {
		return 1
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || !(v > 0) {
		Logger().Warn("ignoring invalid depth scale", zap.String("env", DepthScaleEnv), zap.String("value", s))
		return 1
	}
	return v
}

// WithCamera shares an existing camera instead of creating a new one.
func WithCamera(c *Camera) PanelOption {
	return func(o *panelOptions) {
		o.camera = c
	}
}

// WithRegistry shares an existing registry. Its reclaimer becomes the
// panel's.
func WithRegistry(r *Registry) PanelOption {
	return func(o *panelOptions) {
		o.registry = r
	}
}

// WithDepthScale overrides the depth scale. Non-positive values are ignored.
func WithDepthScale(scale float64) PanelOption {
	return func(o *panelOptions) {
		if scale > 0 {
			o.depthScale = scale
		}
	}
}

func WithBackground(c draw.Color) PanelOption {
	return func(o *panelOptions) {
		o.background = c
	}
}

// WithHitBufferSize sets the selection buffer length in uint32 words. Sizes
// too small for one record are ignored.
func WithHitBufferSize(n int) PanelOption {
	return func(o *panelOptions) {
		if n >= 4 {
			o.hitBufferSize = n
		}
	}
}

// WithRedrawAfterSelect controls whether a selection pass is followed by a
// normal draw. Some drivers leave the frame buffer blank after selection.
func WithRedrawAfterSelect(on bool) PanelOption {
	return func(o *panelOptions) {
		o.redrawAfterSelect = on
	}
}

// WithPickJournal appends every completed pick to w as a length-delimited
// record. See ReadPickJournal.
func WithPickJournal(w io.Writer) PanelOption {
	return func(o *panelOptions) {
		o.journal = w
	}
}
