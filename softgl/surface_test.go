package softgl

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"glscene/scene"
)

type reinvalidate struct {
	s     scene.Surface
	calls int
}

func (r *reinvalidate) Display(scene.Context) scene.Mode {
	r.calls++
	if r.calls == 1 {
		r.s.Invalidate()
	}
	return scene.Drawing
}

func TestSurfaceFoldsNestedInvalidate(t *testing.T) {
	s := NewSurface(NewContext(4, 4))
	d := &reinvalidate{s: s}
	s.Invalidate()
	assert.Zero(t, d.calls)

	s.Attach(d)
	s.Invalidate()
	assert.Equal(t, 2, d.calls)
	assert.Equal(t, []scene.Mode{scene.Drawing, scene.Drawing}, s.Modes())
}

func TestSurfaceSize(t *testing.T) {
	s := NewSurface(NewContext(4, 3))
	w, h := s.Size()
	assert.Equal(t, 4, w)
	assert.Equal(t, 3, h)
	assert.True(t, s.Showing())

	s.SetSize(0, 0)
	w, h = s.Context().Size()
	assert.Equal(t, 4, w)
	assert.Equal(t, 3, h)

	s.SetSize(6, 2)
	w, h = s.Context().Size()
	assert.Equal(t, 6, w)
	assert.Equal(t, 2, h)
}

type countDisplay struct{ n int }

func (c *countDisplay) Display(scene.Context) scene.Mode {
	c.n++
	return scene.Idle
}

func TestPumpSurface(t *testing.T) {
	s := NewPumpSurface(NewContext(4, 4))
	d := &countDisplay{}
	s.Attach(d)

	s.Invalidate()
	s.Invalidate()
	assert.Equal(t, 2, s.Pending())
	assert.Zero(t, d.n)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()
	require.Eventually(t, func() bool { return s.Pending() == 0 }, time.Second, time.Millisecond)
	cancel()
	<-done
	assert.Equal(t, []scene.Mode{scene.Idle, scene.Idle}, s.Modes())
}
