package config_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/Carmen-Shannon/oxy-vidplane/config"
	"github.com/Carmen-Shannon/oxy-vidplane/engine/overlay"
	"github.com/Carmen-Shannon/oxy-vidplane/engine/session"
	"github.com/Carmen-Shannon/oxy-vidplane/engine/transform"
	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const dir = "/home/user/.config/vidplane"

func newLoader(t *testing.T, toml string) (*config.Loader, afero.Fs) {
	t.Helper()
	fs := afero.NewMemMapFs()
	if toml != "" {
		require.NoError(t, afero.WriteFile(fs, dir+"/vidplane.toml", []byte(toml), 0o644))
	}
	return config.NewLoader(fs, config.WithSearchPaths(dir)), fs
}

func TestDefaultsMatchSessionDefaults(t *testing.T) {
	l, _ := newLoader(t, "")

	cfg, err := l.Load()
	require.NoError(t, err)
	assert.Empty(t, l.ConfigFileUsed())

	assert.Equal(t, session.DefaultConfig(), cfg.Session)
	assert.Equal(t, config.BackendMPV, cfg.Media.Backend)
	assert.Equal(t, "mpv", cfg.Media.MPVBinary)
	assert.True(t, cfg.Window.Enabled)
	assert.False(t, cfg.Remote.Enabled)
	assert.Equal(t, 60.0, cfg.Engine.TickRate)
	assert.Equal(t, "info", cfg.Logs.Level)
}

func TestFileOverridesDefaults(t *testing.T) {
	l, _ := newLoader(t, `
[media]
backend = "clock"
[media.clock]
duration = 42.5

[policy]
overlay = "hover-reveal"
drag = "both"
zoom = "scale"
recursive_pick = true

[overlay]
flash_duration = "250ms"

[remote]
enabled = true
origins = ["http://localhost:3000"]
`)

	cfg, err := l.Load()
	require.NoError(t, err)
	assert.Equal(t, dir+"/vidplane.toml", l.ConfigFileUsed())

	assert.Equal(t, config.BackendClock, cfg.Media.Backend)
	assert.Equal(t, 42.5, cfg.Media.ClockDuration)
	assert.Equal(t, overlay.HoverReveal, cfg.Session.OverlayPolicy)
	assert.Equal(t, transform.ModifierSwitchedBoth, cfg.Session.DragPolicy)
	assert.Equal(t, transform.ScaleSurface, cfg.Session.ZoomPolicy)
	assert.True(t, cfg.Session.RecursivePick)
	assert.Equal(t, 250*time.Millisecond, cfg.Session.FlashDuration)
	assert.True(t, cfg.Remote.Enabled)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Remote.Origins)
}

func TestEnvironmentOverridesFile(t *testing.T) {
	t.Setenv("VIDPLANE_POLICY_DRAG", "pan")
	t.Setenv("VIDPLANE_PLAYBACK_SEEK_STEP", "10")
	l, _ := newLoader(t, "[policy]\ndrag = \"orbit\"\n")

	cfg, err := l.Load()
	require.NoError(t, err)
	assert.Equal(t, transform.PanSurface, cfg.Session.DragPolicy)
	assert.Equal(t, 10.0, cfg.Session.SeekStep)
}

func TestFlagsOverrideEnvironment(t *testing.T) {
	t.Setenv("VIDPLANE_MEDIA_BACKEND", "mpv")
	l, _ := newLoader(t, "")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String(config.FlagName(config.KeyMediaBackend), "", "")
	flags.Bool(config.FlagName(config.KeyWindowEnabled), true, "")
	require.NoError(t, flags.Parse([]string{"--media-backend=clock", "--window-enabled=false"}))
	require.NoError(t, l.BindFlags(flags))

	cfg, err := l.Load()
	require.NoError(t, err)
	assert.Equal(t, config.BackendClock, cfg.Media.Backend)
	assert.False(t, cfg.Window.Enabled)
}

func TestInvalidPolicy(t *testing.T) {
	l, _ := newLoader(t, "[policy]\nzoom = \"fisheye\"\n")

	_, err := l.Load()
	assert.ErrorIs(t, err, config.ErrInvalidPolicy)
	assert.Contains(t, err.Error(), "fisheye")
}

func TestInvalidValues(t *testing.T) {
	l, _ := newLoader(t, `
[overlay]
flash_opacity = 1.5
[window]
width = 0
`)

	_, err := l.Load()
	assert.ErrorIs(t, err, config.ErrInvalidValue)
	assert.Contains(t, err.Error(), config.KeyOverlayFlashOpacity)
	assert.Contains(t, err.Error(), config.KeyWindowWidth)
}

func TestExplicitConfigFileMustExist(t *testing.T) {
	l := config.NewLoader(afero.NewMemMapFs(), config.WithConfigFile("/nowhere/vidplane.toml"))

	_, err := l.Load()
	assert.Error(t, err)
}

func TestParsePolicyNames(t *testing.T) {
	p, err := config.ParseOverlayPolicy(" Timed-Flash ")
	require.NoError(t, err)
	assert.Equal(t, overlay.TimedFlash, p)

	_, err = config.ParseDragPolicy("spin")
	assert.ErrorIs(t, err, config.ErrInvalidPolicy)

	_, err = config.ParseBackend("vlc")
	assert.ErrorIs(t, err, config.ErrInvalidPolicy)
}

func TestLocalMedia(t *testing.T) {
	_, fs := newLoader(t, "")
	require.NoError(t, afero.WriteFile(fs, "/videos/clip.mp4", []byte("x"), 0o644))

	ok, err := config.MediaConfig{Path: "/videos/clip.mp4"}.LocalMedia(fs)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = config.MediaConfig{Path: "https://example.com/clip.mp4"}.LocalMedia(fs)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = config.MediaConfig{Path: "/videos/missing.mp4"}.LocalMedia(fs)
	assert.Error(t, err)
}

func TestWriteEmitsToml(t *testing.T) {
	l, _ := newLoader(t, "")
	_, err := l.Load()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, l.Write(&buf))
	assert.Contains(t, buf.String(), "[policy]")
	assert.Contains(t, buf.String(), "timed-flash")
}

func TestFieldEnv(t *testing.T) {
	f := config.Default[config.KeyPolicyRecursivePick]
	assert.Equal(t, "VIDPLANE_POLICY_RECURSIVE_PICK", f.Env())
	assert.Len(t, config.Fields(), len(config.Default))
}
