//go:build !windows

package media

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"net"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeMPV answers the subset of mpv's JSON IPC used by MPVSource.
type fakeMPV struct {
	mu        sync.Mutex
	listener  net.Listener
	path      string
	loaded    bool
	duration  float64
	timePos   float64
	paused    bool
	commands  [][]any
	withEvent bool
}

func newFakeMPV(t *testing.T, loaded bool) *fakeMPV {
	t.Helper()
	dir, err := os.MkdirTemp("", "vp")
	require.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(dir) })

	path := filepath.Join(dir, "mpv.sock")
	l, err := net.Listen("unix", path)
	require.NoError(t, err)

	f := &fakeMPV{listener: l, path: path, loaded: loaded, duration: 120, paused: true, withEvent: true}
	go f.serve()
	t.Cleanup(func() { l.Close() })
	return f
}

func (f *fakeMPV) serve() {
	for {
		conn, err := f.listener.Accept()
		if err != nil {
			return
		}
		go f.handle(conn)
	}
}

func (f *fakeMPV) handle(conn net.Conn) {
	defer conn.Close()
	reader := bufio.NewReader(conn)
	line, err := reader.ReadBytes('\n')
	if err != nil {
		return
	}
	var cmd ipcCommand
	if err := json.Unmarshal(line, &cmd); err != nil {
		return
	}
	resp := f.apply(cmd.Command)

	f.mu.Lock()
	withEvent := f.withEvent
	f.mu.Unlock()
	if withEvent {
		_, _ = conn.Write([]byte(`{"event":"property-change","name":"time-pos","data":1}` + "\n"))
	}
	payload, _ := json.Marshal(resp)
	_, _ = conn.Write(append(payload, '\n'))
}

func (f *fakeMPV) apply(args []any) ipcResponse {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.commands = append(f.commands, args)

	name, _ := args[0].(string)
	switch name {
	case "get_property":
		if !f.loaded {
			return ipcResponse{Error: errPropertyUnavailable}
		}
		switch args[1] {
		case "duration":
			return ipcResponse{Data: f.duration, Error: "success"}
		case "time-pos":
			return ipcResponse{Data: f.timePos, Error: "success"}
		case "pause":
			return ipcResponse{Data: f.paused, Error: "success"}
		}
		return ipcResponse{Error: errPropertyUnavailable}
	case "set_property":
		if args[1] == "pause" {
			f.paused, _ = args[2].(bool)
		}
	case "seek":
		f.timePos, _ = args[1].(float64)
	case "loadfile":
		f.loaded = true
	}
	return ipcResponse{Error: "success"}
}

func (f *fakeMPV) count(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.commands {
		if c[0] == name {
			n++
		}
	}
	return n
}

func (f *fakeMPV) state() (pos float64, paused bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.timePos, f.paused
}

func TestIPCSkipsEventLines(t *testing.T) {
	f := newFakeMPV(t, true)
	client := &ipcClient{socketPath: f.path}

	data, err := client.command("get_property", "duration")
	require.NoError(t, err)
	assert.Equal(t, 120.0, data)
}

func TestIPCReportsMPVErrorsWithoutRetry(t *testing.T) {
	f := newFakeMPV(t, false)
	client := &ipcClient{socketPath: f.path}

	_, err := client.command("get_property", "duration")
	require.Error(t, err)
	assert.Contains(t, err.Error(), errPropertyUnavailable)
	assert.Equal(t, 1, f.count("get_property"))
}

func TestMPVSourceAttachesAndBecomesReady(t *testing.T) {
	f := newFakeMPV(t, false)
	src := NewMPVSource("clip.mp4", WithExternalSocket(f.path), WithPollInterval(10*time.Millisecond))

	ready := make(chan struct{})
	src.OnReady(func() { close(ready) })

	require.NoError(t, src.Start(context.Background()))
	t.Cleanup(func() { _ = src.Close() })

	select {
	case <-ready:
	case <-time.After(2 * time.Second):
		t.Fatal("source never became ready")
	}
	assert.Equal(t, 120.0, src.Duration())
	assert.True(t, src.Paused())
	assert.Equal(t, 1, f.count("loadfile"))
}

func TestMPVSourceForwardsCommands(t *testing.T) {
	f := newFakeMPV(t, true)
	src := NewMPVSource("clip.mp4", WithExternalSocket(f.path), WithPollInterval(time.Hour))
	require.NoError(t, src.Start(context.Background()))
	require.Eventually(t, src.Ready, time.Second, 5*time.Millisecond)

	src.Play()
	assert.False(t, src.Paused())
	require.Eventually(t, func() bool {
		_, paused := f.state()
		return !paused
	}, time.Second, 5*time.Millisecond)

	src.SetCurrentTime(30)
	assert.Equal(t, 30.0, src.CurrentTime())
	src.SetCurrentTime(500)
	assert.Equal(t, 120.0, src.CurrentTime())

	require.NoError(t, src.Close())
	pos, _ := f.state()
	assert.Equal(t, 120.0, pos)
	assert.Zero(t, f.count("quit"))

	// Commands after Close are dropped.
	src.Pause()
	assert.Equal(t, 2, f.count("seek"))
}

func TestMPVSourcePollKeepsUnappliedLocalState(t *testing.T) {
	f := newFakeMPV(t, true)
	src := NewMPVSource("clip.mp4", WithExternalSocket(f.path), WithPollInterval(time.Hour))
	require.NoError(t, src.Start(context.Background()))
	t.Cleanup(func() { _ = src.Close() })
	require.Eventually(t, src.Ready, time.Second, 5*time.Millisecond)

	// A seek mpv has not answered yet.
	src.mu.Lock()
	src.timePos = 30
	src.paused = false
	src.issued++
	src.mu.Unlock()

	src.poll()
	assert.Equal(t, 30.0, src.CurrentTime())
	assert.False(t, src.Paused())

	src.mu.Lock()
	src.applied = src.issued
	src.mu.Unlock()

	src.poll()
	assert.Zero(t, src.CurrentTime())
	assert.True(t, src.Paused())
}

func TestMPVSourceRapidSeeksAccumulate(t *testing.T) {
	f := newFakeMPV(t, true)
	src := NewMPVSource("clip.mp4", WithExternalSocket(f.path), WithPollInterval(time.Millisecond))
	require.NoError(t, src.Start(context.Background()))
	t.Cleanup(func() { _ = src.Close() })
	require.Eventually(t, src.Ready, time.Second, 5*time.Millisecond)

	for range 3 {
		src.SetCurrentTime(src.CurrentTime() + 5)
	}
	assert.Equal(t, 15.0, src.CurrentTime())
	require.Eventually(t, func() bool {
		pos, _ := f.state()
		return pos == 15
	}, time.Second, 5*time.Millisecond)
}

func TestMPVSourceSocketNeverReady(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	src := NewMPVSource("clip.mp4", WithExternalSocket(filepath.Join(os.TempDir(), "vidplane-missing.sock")))
	err := src.Start(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSocketNotReady))
	assert.NoError(t, src.Close())
}

func TestMPVSourceMissingBinary(t *testing.T) {
	src := NewMPVSource("clip.mp4", WithBinary(filepath.Join(os.TempDir(), "no-such-mpv")))
	err := src.Start(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "start mpv")
}

func TestSanitizeMediaTarget(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "file", in: " Sample Videos/../Sample Videos/sample4.mp4 ", want: "Sample Videos/sample4.mp4"},
		{name: "url", in: "https://example.com/a.mp4", want: "https://example.com/a.mp4"},
		{name: "empty", in: "  ", wantErr: true},
		{name: "flag", in: "--script=x.lua", wantErr: true},
		{name: "control", in: "a\nb", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := sanitizeMediaTarget(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
