package main

import (
	"context"
	"fmt"
	"os"

	"github.com/Carmen-Shannon/oxy-vidplane/config"
	"github.com/Carmen-Shannon/oxy-vidplane/engine"
	"github.com/Carmen-Shannon/oxy-vidplane/engine/camera"
	"github.com/Carmen-Shannon/oxy-vidplane/engine/media"
	"github.com/Carmen-Shannon/oxy-vidplane/engine/remote"
	"github.com/Carmen-Shannon/oxy-vidplane/engine/scene"
	"github.com/Carmen-Shannon/oxy-vidplane/engine/session"
	"github.com/Carmen-Shannon/oxy-vidplane/engine/window"
	"github.com/Carmen-Shannon/oxy-vidplane/log"
	"github.com/spf13/afero"
)

// run wires the media source, scene, session, input surfaces and engine, then
// blocks until the window closes or ctx is cancelled.
func run(ctx context.Context, cfg config.Config, fs afero.Fs) error {
	log.Setup(cfg.Logs.Level, cfg.Logs.JSON, os.Stderr)

	src, err := newSource(cfg.Media, fs)
	if err != nil {
		return err
	}

	cam := camera.NewCamera(
		camera.WithAspect(float32(cfg.Window.Width)/float32(cfg.Window.Height)),
		camera.WithController(camera.NewCameraController()),
	)
	scn := scene.NewScene("main", cam)
	sess := session.NewSession(src, cam, scn, session.WithConfig(cfg.Session))
	sess.Resize(float32(cfg.Window.Width), float32(cfg.Window.Height))
	log.WithField("session", sess.ID().String()).Info("session created")

	options := []engine.EngineBuilderOption{
		engine.WithTickRate(cfg.Engine.TickRate),
		engine.WithRenderFrameLimit(cfg.Engine.FrameLimit),
		engine.WithProfiling(cfg.Engine.Profile),
	}
	if cfg.Window.Enabled {
		w, err := window.NewWindow(
			window.WithTitle(cfg.Window.Title),
			window.WithWidth(cfg.Window.Width),
			window.WithHeight(cfg.Window.Height),
		)
		if err != nil {
			_ = src.Close()
			return err
		}
		options = append(options, engine.WithWindow(w))
	}
	e := engine.NewEngine(sess, options...)

	if cfg.Remote.Enabled {
		srv := remote.NewServer(sess, remote.WithAllowedOrigins(cfg.Remote.Origins...))
		if err := srv.Start(cfg.Remote.Addr); err != nil {
			e.Quit()
			return joinRunErr(err, e.Run(ctx))
		}
		e.AddCloser(srv)
	}
	e.AddCloser(src)

	if err := src.Start(ctx); err != nil {
		e.Quit()
		return joinRunErr(fmt.Errorf("start media: %w", err), e.Run(ctx))
	}
	return e.Run(ctx)
}

// joinRunErr keeps the setup error first; shutdown errors are only logged.
func joinRunErr(setup, shutdown error) error {
	if shutdown != nil {
		log.Warnf("shutdown: %v", shutdown)
	}
	return setup
}

func newSource(cfg config.MediaConfig, fs afero.Fs) (media.Source, error) {
	switch cfg.Backend {
	case config.BackendClock:
		return media.NewClockSource(media.WithDuration(cfg.ClockDuration)), nil
	default:
		options := []media.MPVSourceBuilderOption{media.WithBinary(cfg.MPVBinary)}
		if cfg.MPVSocket != "" {
			options = append(options, media.WithExternalSocket(cfg.MPVSocket))
		} else if _, err := cfg.LocalMedia(fs); err != nil {
			return nil, err
		}
		return media.NewMPVSource(cfg.Path, options...), nil
	}
}
