package media

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/oxy-vidplane/log"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

const (
	socketWaitRetries = 10
	socketWaitDelay   = 300 * time.Millisecond
	quitTimeout       = 3 * time.Second
)

// MPVSource drives an external mpv process over its JSON IPC socket. Playback state
// is polled into a cache so reads never block; commands are queued on a single-worker
// pool so they reach mpv in the order they were issued.
type MPVSource struct {
	mu *sync.Mutex

	path         string
	binary       string
	extraArgs    []string
	socketPath   string
	external     bool
	pollInterval time.Duration
	readyTimeout time.Duration

	ipc    *ipcClient
	cmd    *exec.Cmd
	exited chan struct{}
	stop   chan struct{}
	wg     sync.WaitGroup

	pool     worker.DynamicWorkerPool
	taskID   atomic.Int64
	inflight sync.WaitGroup

	timePos  float64
	duration float64
	paused   bool

	// issued counts local commands; applied is the newest one mpv has answered.
	// Polls leave timePos and paused alone while the two differ.
	issued  uint64
	applied uint64

	started bool
	closed  bool
	ready   readyLatch
}

var _ Source = &MPVSource{}

// NewMPVSource creates an MPVSource for the given media file or URL. Nothing is
// launched until Start.
//
// Parameters:
//   - path: the media to open
//   - options: functional options to configure the source
//
// Returns:
//   - *MPVSource: the newly created source
func NewMPVSource(path string, options ...MPVSourceBuilderOption) *MPVSource {
	m := &MPVSource{
		mu:           &sync.Mutex{},
		path:         path,
		binary:       "mpv",
		pollInterval: 250 * time.Millisecond,
		readyTimeout: 10 * time.Second,
		paused:       true,
		stop:         make(chan struct{}),
		exited:       make(chan struct{}),
	}
	for _, option := range options {
		option(m)
	}
	if m.socketPath == "" {
		m.socketPath = filepath.Join(os.TempDir(), fmt.Sprintf("vidplane-%s.sock", uuid.NewString()))
	}
	m.ipc = &ipcClient{socketPath: m.socketPath}
	return m
}

// Start launches mpv paused and looping (unless attached to an external socket),
// waits for its IPC socket and begins polling. The ready notification fires once
// mpv reports a duration.
func (m *MPVSource) Start(ctx context.Context) error {
	m.mu.Lock()
	if m.started {
		m.mu.Unlock()
		return nil
	}
	m.started = true
	m.mu.Unlock()

	if !m.external {
		if err := m.launch(); err != nil {
			return err
		}
	}

	if err := m.waitForSocket(ctx); err != nil {
		if !m.external {
			select {
			case <-m.exited:
			default:
				log.Warnf("media: killing mpv, socket never became ready")
				_ = killProcess(m.cmd)
			}
		}
		return fmt.Errorf("%w: %v", ErrSocketNotReady, err)
	}

	if m.external {
		// An attached player may hold a different file.
		if _, err := m.ipc.command("loadfile", m.path, "replace"); err != nil {
			return fmt.Errorf("load %s: %w", m.path, err)
		}
		_, _ = m.ipc.command("set_property", "pause", true)
		_, _ = m.ipc.command("set_property", "loop-file", "inf")
	}

	m.mu.Lock()
	m.pool = worker.NewDynamicWorkerPool(1, 64, 1*time.Second)
	m.mu.Unlock()

	m.wg.Add(1)
	go m.pollLoop()
	return nil
}

// launch starts the mpv process. The media is validated so it cannot be read as a flag.
func (m *MPVSource) launch() error {
	target, err := sanitizeMediaTarget(m.path)
	if err != nil {
		return fmt.Errorf("invalid media target: %w", err)
	}

	args := []string{
		"--no-terminal",
		"--really-quiet",
		fmt.Sprintf("--input-ipc-server=%s", m.socketPath),
		"--pause",
		"--loop-file=inf",
		"--keep-open=yes",
		"--idle=yes",
		"--force-window=yes",
	}
	args = append(args, m.extraArgs...)
	args = append(args, "--", target)

	m.cmd = exec.Command(m.binary, args...)
	m.cmd.SysProcAttr = sysProcAttr()
	m.cmd.Stdout = nil
	m.cmd.Stderr = nil
	m.cmd.Stdin = nil

	if err := m.cmd.Start(); err != nil {
		return fmt.Errorf("start mpv: %w", err)
	}

	go func() {
		_ = m.cmd.Wait()
		close(m.exited)
	}()
	return nil
}

// waitForSocket polls until the IPC socket accepts connections.
func (m *MPVSource) waitForSocket(ctx context.Context) error {
	for range socketWaitRetries {
		conn, err := net.Dial("unix", m.socketPath)
		if err == nil {
			conn.Close()
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-m.exited:
			return errors.New("mpv exited before socket was ready")
		case <-time.After(socketWaitDelay):
		}
	}
	return fmt.Errorf("socket %s not ready after %d attempts", m.socketPath, socketWaitRetries)
}

// pollLoop refreshes the cached playback state until Close.
func (m *MPVSource) pollLoop() {
	defer m.wg.Done()

	ticker := time.NewTicker(m.pollInterval)
	defer ticker.Stop()
	deadline := time.Now().Add(m.readyTimeout)
	warned := false

	m.poll()
	for {
		select {
		case <-m.stop:
			return
		case <-m.exited:
			log.Warn("media: mpv exited")
			return
		case <-ticker.C:
			m.poll()
			if !warned && !m.Ready() && time.Now().After(deadline) {
				log.Warnf("media: no duration from mpv after %s, media unavailable", m.readyTimeout)
				warned = true
			}
		}
	}
}

// poll reads duration, time-pos and pause into the cache. Position and pause are
// kept as-is while a local command is still waiting on mpv.
func (m *MPVSource) poll() {
	duration, err := m.floatProperty("duration")
	if err != nil {
		if !strings.Contains(err.Error(), errPropertyUnavailable) {
			log.Debugf("media: poll duration: %v", err)
		}
		return
	}
	m.mu.Lock()
	gen, settled := m.issued, m.applied == m.issued
	m.mu.Unlock()

	pos, _ := m.floatProperty("time-pos")

	paused, err := m.ipc.command("get_property", "pause")
	m.mu.Lock()
	if math.IsNaN(duration) || math.IsInf(duration, 0) || duration < 0 {
		duration = 0
	}
	m.duration = duration
	if settled && m.issued == gen {
		m.timePos = lo.Clamp(pos, 0, duration)
		if p, ok := paused.(bool); err == nil && ok {
			m.paused = p
		}
	}
	m.mu.Unlock()

	if duration > 0 && m.ready.fire() {
		log.Infof("media: %s ready (%.1fs)", m.path, duration)
	}
}

// floatProperty reads a numeric mpv property.
func (m *MPVSource) floatProperty(name string) (float64, error) {
	data, err := m.ipc.command("get_property", name)
	if err != nil {
		return 0, err
	}
	val, ok := data.(float64)
	if !ok {
		return 0, fmt.Errorf("property %s: expected float64, got %T", name, data)
	}
	return val, nil
}

// dispatch queues an mpv command on the worker pool. Commands before Start or after
// Close are dropped.
//
// Parameters:
//   - gen: the local command generation, marked applied once mpv answers
//   - args: the mpv command
func (m *MPVSource) dispatch(gen uint64, args ...any) {
	m.mu.Lock()
	pool, closed := m.pool, m.closed
	if pool == nil || closed {
		m.applied = max(m.applied, gen)
		m.mu.Unlock()
		return
	}
	m.inflight.Add(1)
	m.mu.Unlock()

	pool.SubmitTask(worker.Task{
		ID:      int(m.taskID.Add(1)),
		Payload: args,
		Do: func() (any, error) {
			defer m.inflight.Done()
			data, err := m.ipc.command(args...)
			if err != nil {
				log.Warnf("media: mpv %v: %v", args[0], err)
			}
			m.mu.Lock()
			m.applied = max(m.applied, gen)
			m.mu.Unlock()
			return data, err
		},
	})
}

func (m *MPVSource) Play() {
	m.mu.Lock()
	m.paused = false
	m.issued++
	gen := m.issued
	m.mu.Unlock()
	m.dispatch(gen, "set_property", "pause", false)
}

func (m *MPVSource) Pause() {
	m.mu.Lock()
	m.paused = true
	m.issued++
	gen := m.issued
	m.mu.Unlock()
	m.dispatch(gen, "set_property", "pause", true)
}

func (m *MPVSource) CurrentTime() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.timePos
}

func (m *MPVSource) SetCurrentTime(seconds float64) {
	if math.IsNaN(seconds) {
		return
	}
	m.mu.Lock()
	seconds = lo.Clamp(seconds, 0, m.duration)
	m.timePos = seconds
	m.issued++
	gen := m.issued
	m.mu.Unlock()
	m.dispatch(gen, "seek", seconds, "absolute")
}

func (m *MPVSource) Duration() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.duration
}

func (m *MPVSource) Paused() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.paused
}

func (m *MPVSource) OnReady(f func()) {
	m.ready.subscribe(f)
}

func (m *MPVSource) Ready() bool {
	return m.ready.isFired()
}

// SocketPath returns the IPC socket path.
func (m *MPVSource) SocketPath() string {
	return m.socketPath
}

// Close stops polling, drains queued commands and shuts mpv down. An attached
// external player is left running.
func (m *MPVSource) Close() error {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return nil
	}
	m.closed = true
	started, pool := m.started, m.pool
	m.mu.Unlock()

	close(m.stop)
	m.wg.Wait()
	if pool != nil {
		m.inflight.Wait()
		pool.Stop()
	}
	if !started || m.external || m.cmd == nil {
		return nil
	}

	_, _ = m.ipc.command("quit")
	select {
	case <-m.exited:
	case <-time.After(quitTimeout):
		_ = killProcess(m.cmd)
	}
	_ = os.Remove(m.socketPath)
	return nil
}

// sanitizeMediaTarget validates that a path or URL is safe to pass to mpv.
func sanitizeMediaTarget(target string) (string, error) {
	t := strings.TrimSpace(target)
	if t == "" {
		return "", errors.New("empty media path")
	}
	if strings.ContainsAny(t, "\x00\n\r") {
		return "", errors.New("invalid control characters in media path")
	}
	if strings.HasPrefix(t, "-") {
		return "", errors.New("media path must not start with '-'")
	}
	if strings.Contains(t, "://") {
		return t, nil
	}
	return filepath.Clean(t), nil
}
