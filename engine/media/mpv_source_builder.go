package media

import "time"

// MPVSourceBuilderOption is a functional option for configuring an MPVSource.
type MPVSourceBuilderOption func(*MPVSource)

// WithBinary sets the mpv executable. Defaults to "mpv" on PATH.
//
// Parameters:
//   - binary: executable name or path
//
// Returns:
//   - MPVSourceBuilderOption: option function to apply
func WithBinary(binary string) MPVSourceBuilderOption {
	return func(m *MPVSource) {
		if binary != "" {
			m.binary = binary
		}
	}
}

// WithArgs appends extra command-line arguments for mpv.
//
// Parameters:
//   - args: additional mpv flags
//
// Returns:
//   - MPVSourceBuilderOption: option function to apply
func WithArgs(args ...string) MPVSourceBuilderOption {
	return func(m *MPVSource) {
		m.extraArgs = append(m.extraArgs, args...)
	}
}

// WithSocketPath sets the IPC socket path. Defaults to a unique path in the temp dir.
//
// Parameters:
//   - path: the socket path
//
// Returns:
//   - MPVSourceBuilderOption: option function to apply
func WithSocketPath(path string) MPVSourceBuilderOption {
	return func(m *MPVSource) {
		m.socketPath = path
	}
}

// WithExternalSocket attaches to an mpv that is already running with
// --input-ipc-server instead of launching one. Close leaves that player running.
//
// Parameters:
//   - path: the running player's socket path
//
// Returns:
//   - MPVSourceBuilderOption: option function to apply
func WithExternalSocket(path string) MPVSourceBuilderOption {
	return func(m *MPVSource) {
		m.socketPath = path
		m.external = true
	}
}

// WithPollInterval sets how often playback state is refreshed from mpv.
//
// Parameters:
//   - d: the poll interval; non-positive values are ignored
//
// Returns:
//   - MPVSourceBuilderOption: option function to apply
func WithPollInterval(d time.Duration) MPVSourceBuilderOption {
	return func(m *MPVSource) {
		if d > 0 {
			m.pollInterval = d
		}
	}
}

// WithReadyTimeout sets how long to wait for a duration before warning that the
// media is unavailable.
//
// Parameters:
//   - d: the timeout; non-positive values are ignored
//
// Returns:
//   - MPVSourceBuilderOption: option function to apply
func WithReadyTimeout(d time.Duration) MPVSourceBuilderOption {
	return func(m *MPVSource) {
		if d > 0 {
			m.readyTimeout = d
		}
	}
}
