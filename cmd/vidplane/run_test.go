package main

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/Carmen-Shannon/oxy-vidplane/config"
	"github.com/Carmen-Shannon/oxy-vidplane/engine/media"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func headlessConfig(t *testing.T) config.Config {
	t.Helper()
	l := config.NewLoader(afero.NewMemMapFs(), config.WithSearchPaths("/none"))
	l.Set(config.KeyMediaBackend, config.BackendClock)
	l.Set(config.KeyWindowEnabled, false)
	l.Set(config.KeyLogsLevel, "error")
	cfg, err := l.Load()
	require.NoError(t, err)
	return cfg
}

func TestRunHeadlessStopsOnCancel(t *testing.T) {
	cfg := headlessConfig(t)
	cfg.Remote.Enabled = true
	cfg.Remote.Addr = "127.0.0.1:0"

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- run(ctx, cfg, afero.NewMemMapFs()) }()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("run did not return after cancel")
	}
}

func TestRunRemoteListenFailure(t *testing.T) {
	cfg := headlessConfig(t)
	cfg.Remote.Enabled = true
	cfg.Remote.Addr = "256.0.0.1:99999"

	err := run(context.Background(), cfg, afero.NewMemMapFs())
	assert.Error(t, err)
}

func TestNewSourceChecksLocalMedia(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/videos/a.mp4", []byte("x"), 0o644))

	src, err := newSource(config.MediaConfig{Backend: config.BackendMPV, Path: "/videos/a.mp4", MPVBinary: "mpv"}, fs)
	require.NoError(t, err)
	assert.IsType(t, &media.MPVSource{}, src)

	_, err = newSource(config.MediaConfig{Backend: config.BackendMPV, Path: "/videos/b.mp4", MPVBinary: "mpv"}, fs)
	assert.Error(t, err)

	src, err = newSource(config.MediaConfig{Backend: config.BackendClock, ClockDuration: 10}, fs)
	require.NoError(t, err)
	assert.IsType(t, &media.ClockSource{}, src)
}

func TestRootCommandHelpAndDescribe(t *testing.T) {
	cmd := newRootCommand(afero.NewMemMapFs())
	assert.Contains(t, cmd.Long, "canvas stays blank")

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"config", "--describe"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), config.KeyMediaPath)
	assert.Contains(t, out.String(), "VIDPLANE_MEDIA_PATH")
}
