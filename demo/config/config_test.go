package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"glscene/draw"
	"glscene/scene"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "glscene.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	t.Setenv(scene.DepthScaleEnv, "")
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	t.Setenv(scene.DepthScaleEnv, "")
	path := writeFile(t, `
window:
  title: picking
  width: 320
scene:
  background: "#102030"
  redraw_after_select: false
log:
  file: /tmp/glscene.log
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "picking", cfg.Window.Title)
	assert.Equal(t, 320, cfg.Window.Width)
	assert.Equal(t, 600, cfg.Window.Height)
	assert.False(t, cfg.Scene.RedrawAfterSelect)
	assert.Equal(t, scene.DefaultHitBufferSize, cfg.Scene.HitBufferSize)
	assert.Equal(t, "/tmp/glscene.log", cfg.Log.File)

	bg, err := cfg.BackgroundColor()
	require.NoError(t, err)
	assert.Equal(t, draw.RGBA(0x10, 0x20, 0x30, 0xff), bg)
}

func TestLoadRejectsBadInput(t *testing.T) {
	t.Setenv(scene.DepthScaleEnv, "")
	for name, body := range map[string]string{
		"syntax":     "window: [",
		"size":       "window:\n  width: -1\n",
		"buffer":     "scene:\n  hit_buffer_size: 2\n",
		"background": "scene:\n  background: notacolour\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeFile(t, body))
			assert.Error(t, err)
		})
	}
}

func TestDepthScaleEnvOverride(t *testing.T) {
	path := writeFile(t, "scene:\n  depth_scale: 2\n")

	t.Setenv(scene.DepthScaleEnv, "4")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4.0, cfg.Scene.DepthScale)

	t.Setenv(scene.DepthScaleEnv, "")
	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2.0, cfg.Scene.DepthScale)

	t.Setenv(scene.DepthScaleEnv, "nope")
	_, err = Load(path)
	assert.Error(t, err)

	t.Setenv(scene.DepthScaleEnv, "-3")
	_, err = Load(path)
	assert.Error(t, err)
}

func TestParseColor(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want draw.Color
	}{
		{"", draw.Black},
		{"black", draw.Black},
		{"White", draw.White},
		{"red", draw.RGBA(255, 0, 0, 255)},
		{"#fff", draw.White},
		{"#0a0", draw.RGBA(0, 170, 0, 255)},
		{"#336699", draw.RGBA(0x33, 0x66, 0x99, 0xff)},
		{"#33669980", draw.RGBA(0x33, 0x66, 0x99, 0x80)},
	} {
		got, err := ParseColor(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}

	for _, bad := range []string{"#12", "#ggg", "#12345", "ultraviolet"} {
		_, err := ParseColor(bad)
		assert.Error(t, err, bad)
	}
}
