// Package config loads vidplane settings from defaults, a TOML file,
// VIDPLANE_ environment variables and command-line flags, in increasing priority.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Carmen-Shannon/oxy-vidplane/common"
	"github.com/Carmen-Shannon/oxy-vidplane/engine/session"
	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// Name is the config file base name and the app directory name.
	Name = "vidplane"
	// EnvPrefix prefixes every environment override.
	EnvPrefix = "VIDPLANE"
)

// EnvKeyReplacer maps config keys to environment variable names.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// ErrInvalidValue is returned for a setting outside its allowed range.
var ErrInvalidValue = errors.New("invalid config value")

// MediaConfig selects and configures the media backend.
type MediaConfig struct {
	Path          string
	Backend       string
	MPVBinary     string
	MPVSocket     string
	ClockDuration float64
}

// WindowConfig configures the desktop window.
type WindowConfig struct {
	Enabled bool
	Title   string
	Width   int
	Height  int
}

// RemoteConfig configures the websocket input server.
type RemoteConfig struct {
	Enabled bool
	Addr    string
	Origins []string
}

// EngineConfig configures the tick and render loops.
type EngineConfig struct {
	TickRate   float64
	FrameLimit float64
	Profile    bool
}

// LogsConfig configures logging.
type LogsConfig struct {
	Level string
	JSON  bool
}

// Config is the fully resolved configuration.
type Config struct {
	Media   MediaConfig
	Session session.Config
	Window  WindowConfig
	Remote  RemoteConfig
	Engine  EngineConfig
	Logs    LogsConfig
}

// Loader resolves configuration from its sources. The zero value is not usable;
// create one with NewLoader.
type Loader struct {
	v     *viper.Viper
	fs    afero.Fs
	file  string
	paths []string
}

// NewLoader creates a Loader reading files through fs.
//
// Parameters:
//   - fs: the filesystem config files are read from; nil means the OS filesystem
//   - options: functional options to configure the loader
//
// Returns:
//   - *Loader: the newly created loader
func NewLoader(fs afero.Fs, options ...LoaderOption) *Loader {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	l := &Loader{
		v:     viper.New(),
		fs:    fs,
		paths: defaultSearchPaths(),
	}
	for _, option := range options {
		option(l)
	}

	l.v.SetFs(fs)
	l.v.SetConfigName(Name)
	l.v.SetConfigType("toml")
	for _, p := range l.paths {
		l.v.AddConfigPath(p)
	}

	l.v.SetEnvPrefix(EnvPrefix)
	l.v.SetEnvKeyReplacer(EnvKeyReplacer)
	for _, f := range Default {
		l.v.SetDefault(f.Key, f.Value)
		l.v.MustBindEnv(f.Key)
	}
	return l
}

// defaultSearchPaths returns the working directory and the user config directory.
func defaultSearchPaths() []string {
	paths := []string{"."}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, Name))
	}
	return paths
}

// BindFlags lets command-line flags override file and environment values. Each
// flag named after a config key, with dots replaced by dashes, is bound.
//
// Parameters:
//   - flags: the flag set to bind
//
// Returns:
//   - error: an error if binding fails
func (l *Loader) BindFlags(flags *pflag.FlagSet) error {
	for _, f := range Default {
		flag := flags.Lookup(FlagName(f.Key))
		if flag == nil {
			continue
		}
		if err := l.v.BindPFlag(f.Key, flag); err != nil {
			return fmt.Errorf("bind flag %s: %w", flag.Name, err)
		}
	}
	return nil
}

// FlagName returns the command-line flag bound to a config key.
func FlagName(key string) string {
	return strings.ReplaceAll(strings.ReplaceAll(key, ".", "-"), "_", "-")
}

// Set overrides a key with the highest priority.
func (l *Loader) Set(key string, value any) {
	l.v.Set(key, value)
}

// Load reads the config file, if any, and resolves every setting.
//
// Returns:
//   - Config: the resolved configuration
//   - error: an error if the file is unreadable or a value is invalid
func (l *Loader) Load() (Config, error) {
	if l.file != "" {
		l.v.SetConfigFile(l.file)
	}
	if err := l.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if l.file != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}
	return l.resolve()
}

// ConfigFileUsed returns the config file that was read, or "" if none.
func (l *Loader) ConfigFileUsed() string {
	return l.v.ConfigFileUsed()
}

// Write prints the effective settings as TOML.
//
// Parameters:
//   - w: the destination
//
// Returns:
//   - error: an error if encoding fails
func (l *Loader) Write(w io.Writer) error {
	return l.v.WriteConfigTo(w)
}

func (l *Loader) resolve() (Config, error) {
	v := l.v
	var cfg Config
	var err error

	cfg.Media = MediaConfig{
		Path:          v.GetString(KeyMediaPath),
		MPVBinary:     common.Coalesce(v.GetString(KeyMediaMPVBinary), "mpv"),
		MPVSocket:     v.GetString(KeyMediaMPVSocket),
		ClockDuration: v.GetFloat64(KeyMediaClockDuration),
	}
	if cfg.Media.Backend, err = ParseBackend(v.GetString(KeyMediaBackend)); err != nil {
		return Config{}, err
	}

	s := session.DefaultConfig()
	if s.OverlayPolicy, err = ParseOverlayPolicy(v.GetString(KeyPolicyOverlay)); err != nil {
		return Config{}, err
	}
	if s.DragPolicy, err = ParseDragPolicy(v.GetString(KeyPolicyDrag)); err != nil {
		return Config{}, err
	}
	if s.ZoomPolicy, err = ParseZoomPolicy(v.GetString(KeyPolicyZoom)); err != nil {
		return Config{}, err
	}
	s.RecursivePick = v.GetBool(KeyPolicyRecursivePick)
	s.Billboard = v.GetBool(KeyPolicyBillboard)
	s.SeekStep = v.GetFloat64(KeyPlaybackSeekStep)
	s.FlashOpacity = float32(v.GetFloat64(KeyOverlayFlashOpacity))
	s.FlashDuration = v.GetDuration(KeyOverlayFlashDuration)
	cfg.Session = s

	cfg.Window = WindowConfig{
		Enabled: v.GetBool(KeyWindowEnabled),
		Title:   common.Coalesce(v.GetString(KeyWindowTitle), Name),
		Width:   v.GetInt(KeyWindowWidth),
		Height:  v.GetInt(KeyWindowHeight),
	}
	cfg.Remote = RemoteConfig{
		Enabled: v.GetBool(KeyRemoteEnabled),
		Addr:    v.GetString(KeyRemoteAddr),
		Origins: v.GetStringSlice(KeyRemoteOrigins),
	}
	cfg.Engine = EngineConfig{
		TickRate:   v.GetFloat64(KeyEngineTickRate),
		FrameLimit: v.GetFloat64(KeyEngineFrameLimit),
		Profile:    v.GetBool(KeyEngineProfile),
	}
	cfg.Logs = LogsConfig{
		Level: v.GetString(KeyLogsLevel),
		JSON:  v.GetBool(KeyLogsJSON),
	}

	return cfg, cfg.validate()
}

func (c Config) validate() error {
	var errs []error
	check := func(ok bool, key string, value any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: %s = %v", ErrInvalidValue, key, value))
		}
	}
	check(c.Session.SeekStep > 0, KeyPlaybackSeekStep, c.Session.SeekStep)
	check(c.Session.FlashOpacity >= 0 && c.Session.FlashOpacity <= 1, KeyOverlayFlashOpacity, c.Session.FlashOpacity)
	check(c.Session.FlashDuration > 0 && c.Session.FlashDuration < time.Minute, KeyOverlayFlashDuration, c.Session.FlashDuration)
	check(c.Media.Backend != BackendClock || c.Media.ClockDuration > 0, KeyMediaClockDuration, c.Media.ClockDuration)
	check(c.Media.Backend != BackendMPV || c.Media.Path != "" || c.Media.MPVSocket != "", KeyMediaPath, c.Media.Path)
	check(c.Window.Width > 0, KeyWindowWidth, c.Window.Width)
	check(c.Window.Height > 0, KeyWindowHeight, c.Window.Height)
	check(c.Engine.TickRate > 0, KeyEngineTickRate, c.Engine.TickRate)
	check(c.Engine.FrameLimit >= 0, KeyEngineFrameLimit, c.Engine.FrameLimit)
	check(!c.Remote.Enabled || c.Remote.Addr != "", KeyRemoteAddr, c.Remote.Addr)
	return errors.Join(errs...)
}

// LocalMedia reports whether the media path names a file on fs that exists.
// URLs and other non-file targets report false without error.
//
// Parameters:
//   - fs: the filesystem to check
//
// Returns:
//   - bool: true if the path is an existing regular file
//   - error: an error if the path looks like a file but cannot be found
func (c MediaConfig) LocalMedia(fs afero.Fs) (bool, error) {
	if c.Path == "" || strings.Contains(c.Path, "://") {
		return false, nil
	}
	info, err := fs.Stat(c.Path)
	if err != nil {
		return false, fmt.Errorf("media %q: %w", c.Path, err)
	}
	return info.Mode().IsRegular(), nil
}
