package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"

	"glscene/draw"
	"glscene/scene"
)

type Config struct {
	Window WindowConfig `yaml:"window"`
	Camera CameraConfig `yaml:"camera"`
	Scene  SceneConfig  `yaml:"scene"`
	Log    LogConfig    `yaml:"log"`
	Pick   PickConfig   `yaml:"pick"`
}

type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	// Screenshot is where the S key and headless runs write a PNG.
	Screenshot string `yaml:"screenshot"`
}

type CameraConfig struct {
	Altitude    float64 `yaml:"altitude"`
	Azimuth     float64 `yaml:"azimuth"`
	Distance    float64 `yaml:"distance"`
	MinDistance float64 `yaml:"min_distance"`
	MaxDistance float64 `yaml:"max_distance"`
	Perspective bool    `yaml:"perspective"`
}

type SceneConfig struct {
	Background        string  `yaml:"background"`
	DepthScale        float64 `yaml:"depth_scale"`
	HitBufferSize     int     `yaml:"hit_buffer_size"`
	RedrawAfterSelect bool    `yaml:"redraw_after_select"`
}

// LogConfig describes the rotating log file. An empty File logs to the
// console only.
type LogConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
	Compress   bool   `yaml:"compress"`
	Console    bool   `yaml:"console"`
}

type PickConfig struct {
	Journal string `yaml:"journal"`
}

func Default() *Config {
	return &Config{
		Window: WindowConfig{Title: "glscene", Width: 800, Height: 600, Screenshot: "glscene.png"},
		Camera: CameraConfig{
			Altitude:    45,
			Azimuth:     45,
			Distance:    40,
			MinDistance: 1,
			MaxDistance: 150,
			Perspective: true,
		},
		Scene: SceneConfig{
			Background:        "black",
			DepthScale:        1,
			HitBufferSize:     scene.DefaultHitBufferSize,
			RedrawAfterSelect: true,
		},
		Log: LogConfig{
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 7,
			Console:    true,
		},
	}
}

// Load reads a YAML file over the defaults. A missing file yields the
// defaults. The PixelDepthScale environment variable overrides the file.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("read config %s: %w", path, err)
		default:
			if err = yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *Config) applyEnv() error {
	s := strings.TrimSpace(os.Getenv(scene.DepthScaleEnv))
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("%s=%q: %w", scene.DepthScaleEnv, s, err)
	}
	if v <= 0 {
		return fmt.Errorf("%s=%q: must be positive", scene.DepthScaleEnv, s)
	}
	cfg.Scene.DepthScale = v
	return nil
}

func (cfg *Config) Validate() error {
	if cfg.Window.Width <= 0 || cfg.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d: must be positive", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Scene.DepthScale <= 0 {
		return fmt.Errorf("depth_scale %v: must be positive", cfg.Scene.DepthScale)
	}
	if cfg.Scene.HitBufferSize < 4 {
		return fmt.Errorf("hit_buffer_size %d: must be at least 4", cfg.Scene.HitBufferSize)
	}
	if _, err := cfg.BackgroundColor(); err != nil {
		return err
	}
	return nil
}

func (cfg *Config) BackgroundColor() (draw.Color, error) {
	return ParseColor(cfg.Scene.Background)
}

// ParseColor accepts an SVG colour name or #rgb, #rrggbb and #rrggbbaa.
func ParseColor(s string) (draw.Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return draw.Black, nil
	}
	if !strings.HasPrefix(s, "#") {
		c, ok := colornames.Map[s]
		if !ok {
			return draw.Color{}, fmt.Errorf("unknown colour name %q", s)
		}
		return draw.FromColor(c), nil
	}
	return parseHex(s[1:])
}

func parseHex(hex string) (draw.Color, error) {
	var r, g, b, a uint8 = 0, 0, 0, 255
	switch len(hex) {
	case 3:
		for i, p := range []*uint8{&r, &g, &b} {
			v, err := strconv.ParseUint(hex[i:i+1], 16, 8)
			if err != nil {
				return draw.Color{}, fmt.Errorf("colour #%s: %w", hex, err)
			}
			*p = uint8(v * 17)
		}
	case 6, 8:
		ps := []*uint8{&r, &g, &b, &a}
		for i := 0; i < len(hex)/2; i++ {
			v, err := strconv.ParseUint(hex[2*i:2*i+2], 16, 8)
			if err != nil {
				return draw.Color{}, fmt.Errorf("colour #%s: %w", hex, err)
			}
			*ps[i] = uint8(v)
		}
	default:
		return draw.Color{}, fmt.Errorf("colour #%s: want 3, 6 or 8 hex digits", hex)
	}
	return draw.RGBA(r, g, b, a), nil
}
