package engine_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Carmen-Shannon/oxy-vidplane/engine"
	"github.com/Carmen-Shannon/oxy-vidplane/engine/camera"
	"github.com/Carmen-Shannon/oxy-vidplane/engine/media"
	"github.com/Carmen-Shannon/oxy-vidplane/engine/renderer"
	"github.com/Carmen-Shannon/oxy-vidplane/engine/scene"
	"github.com/Carmen-Shannon/oxy-vidplane/engine/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// panicOnceRenderer panics on its first frame and renders normally afterwards.
type panicOnceRenderer struct {
	renderer.Renderer
	panicked atomic.Bool
}

func (r *panicOnceRenderer) Render(scn scene.Scene) error {
	if r.panicked.CompareAndSwap(false, true) {
		panic("broken frame")
	}
	return r.Renderer.Render(scn)
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

func newSession(t *testing.T) (session.Session, *media.ClockSource) {
	t.Helper()
	src := media.NewClockSource(media.WithDuration(30))
	cam := camera.NewCamera(camera.WithController(camera.NewCameraController()))
	sess := session.NewSession(src, cam, scene.NewScene("main", cam))
	require.NoError(t, src.Start(context.Background()))
	return sess, src
}

func TestHeadlessRunTicksRendersAndShutsDown(t *testing.T) {
	sess, src := newSession(t)

	var ticks atomic.Int32
	var closed []string
	e := engine.NewEngine(sess, engine.WithTickRate(200), engine.WithRenderFrameLimit(200))
	e.SetTickCallback(func(float32) { ticks.Add(1) })
	e.AddCloser(closerFunc(func() error { closed = append(closed, "remote"); return nil }))
	e.AddCloser(src)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- e.Run(ctx) }()

	require.Eventually(t, func() bool {
		return ticks.Load() > 2 && e.Renderer().Frames() > 2
	}, 2*time.Second, 5*time.Millisecond)

	// The session's surface is drawn once media is ready.
	frame := e.Renderer().LastFrame()
	require.NotEmpty(t, frame)
	assert.Equal(t, session.SurfaceName, frame[0].Name)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("engine did not stop")
	}

	assert.Equal(t, []string{"remote"}, closed)
	select {
	case <-e.Done():
	default:
		t.Fatal("Done not closed")
	}
}

func TestQuitJoinsCloserErrors(t *testing.T) {
	sess, _ := newSession(t)
	boom := errors.New("boom")

	e := engine.NewEngine(sess)
	e.AddCloser(closerFunc(func() error { return boom }))
	e.Quit()
	e.Quit()

	assert.ErrorIs(t, e.Run(context.Background()), boom)
}

func TestRenderLoopSurvivesPanickingFrame(t *testing.T) {
	sess, _ := newSession(t)
	flaky := &panicOnceRenderer{Renderer: renderer.NewRenderer(renderer.BackendTypeHeadless)}

	e := engine.NewEngine(sess, engine.WithRenderer(flaky), engine.WithRenderFrameLimit(200))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- e.Run(ctx) }()

	require.Eventually(t, func() bool {
		return flaky.panicked.Load() && flaky.Frames() > 2
	}, 2*time.Second, 5*time.Millisecond)

	select {
	case <-e.Done():
		t.Fatal("engine quit after a broken frame")
	default:
	}
	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("engine did not stop")
	}
}
