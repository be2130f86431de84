package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"go.uber.org/zap"

	"glscene/demo/config"
	"glscene/demo/gui"
	"glscene/demo/sample"
	"glscene/scene"
	"glscene/softgl"
	"glscene/viewcontrol"
)

func init() {
	// GLFW and GL calls must stay on the main thread.
	runtime.LockOSThread()
}

func main() {
	var (
		cfgPath  = flag.String("config", "glscene.yaml", "path to the YAML config file")
		headless = flag.Bool("headless", false, "render one frame with the software backend")
		out      = flag.String("out", "", "PNG written by -headless (defaults to window.screenshot)")
	)
	flag.Parse()

	if err := run(*cfgPath, *headless, *out); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cfgPath string, headless bool, out string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	log, err := cfg.Log.Build()
	if err != nil {
		return err
	}
	defer log.Sync()
	scene.SetLogger(log.Named("scene"))

	bg, err := cfg.BackgroundColor()
	if err != nil {
		return err
	}
	opts := []scene.PanelOption{
		scene.WithBackground(bg),
		scene.WithDepthScale(cfg.Scene.DepthScale),
		scene.WithHitBufferSize(cfg.Scene.HitBufferSize),
		scene.WithRedrawAfterSelect(cfg.Scene.RedrawAfterSelect),
	}
	if cfg.Pick.Journal != "" {
		f, err := os.OpenFile(cfg.Pick.Journal, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open pick journal: %w", err)
		}
		defer f.Close()
		opts = append(opts, scene.WithPickJournal(f))
	}

	view := viewcontrol.NewAltAzWith(cfg.Camera.Altitude, cfg.Camera.Azimuth,
		cfg.Camera.MinDistance, cfg.Camera.MaxDistance, cfg.Camera.Distance)
	view.SetPerspective(cfg.Camera.Perspective)

	if headless {
		if out == "" {
			out = cfg.Window.Screenshot
		}
		return runHeadless(cfg, log, opts, view, out)
	}
	return runWindow(cfg, log, opts, view)
}

func runWindow(cfg *config.Config, log *zap.Logger, opts []scene.PanelOption, view *viewcontrol.AltAzController) error {
	win, err := gui.NewWindow(cfg.Window, log)
	if err != nil {
		return err
	}
	defer win.Close()

	panel := scene.NewPanel(win, opts...)
	win.Attach(panel, view)
	n := sample.Build(panel)
	log.Info("scene built", zap.Int("objects", len(panel.AllObjects())), zap.Int("last_pick_id", n-1))

	view.AddTarget(panel)
	view.Apply()
	win.Run()
	return nil
}

func runHeadless(cfg *config.Config, log *zap.Logger, opts []scene.PanelOption, view *viewcontrol.AltAzController, out string) error {
	ctx := softgl.NewContext(cfg.Window.Width, cfg.Window.Height)
	surf := softgl.NewSurface(ctx)
	panel := scene.NewPanel(surf, opts...)
	defer panel.Close()
	surf.Attach(panel)

	sample.Build(panel)
	view.AddTarget(panel)
	view.Apply()

	x, y := cfg.Window.Width/2, cfg.Window.Height/2
	id := panel.PickID(x, y, 1)
	pos := panel.PickedWorldCoordinates(x, y)
	log.Info("centre pick", zap.Int("id", id), zap.Float64s("world", pos[:]))

	return writePNG(out, ctx)
}

func writePNG(path string, ctx *softgl.Context) error {
	if path == "-" {
		return ctx.WritePNG(os.Stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err = ctx.WritePNG(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
