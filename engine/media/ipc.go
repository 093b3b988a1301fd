package media

import (
	"bufio"
	"encoding/json"
	"fmt"
	"net"
	"strings"
	"sync"
	"time"
)

// ipcCommand is the JSON structure sent to mpv's IPC socket.
type ipcCommand struct {
	Command []any `json:"command"`
}

// ipcResponse is the JSON structure received from mpv's IPC socket.
// Asynchronous event lines carry Event and are skipped.
type ipcResponse struct {
	Data  any    `json:"data"`
	Error string `json:"error"`
	Event string `json:"event"`
}

const (
	ipcMaxRetries   = 3
	ipcRetryDelay   = 100 * time.Millisecond
	ipcReadDeadline = 1 * time.Second
)

// errPropertyUnavailable is mpv's reply for properties of media that is not loaded yet.
const errPropertyUnavailable = "property unavailable"

// ipcClient sends newline-delimited JSON commands to an mpv socket, one connection per command.
type ipcClient struct {
	mu         sync.Mutex
	socketPath string
}

// command sends a command with retries for transient connection errors.
//
// Parameters:
//   - args: the mpv command and its arguments
//
// Returns:
//   - any: the response's data field
//   - error: non-nil if every attempt failed or mpv reported an error
func (c *ipcClient) command(args ...any) (any, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var lastErr error
	for attempt := range ipcMaxRetries {
		if attempt > 0 {
			time.Sleep(ipcRetryDelay)
		}
		data, err := sendIPC(c.socketPath, args)
		if err == nil {
			return data, nil
		}
		// mpv answered; retrying will not change the answer.
		if isMPVError(err) {
			return nil, err
		}
		lastErr = err
	}
	return nil, fmt.Errorf("ipc command failed after %d attempts: %w", ipcMaxRetries, lastErr)
}

// mpvError is an error reported by mpv itself rather than the transport.
type mpvError string

func (e mpvError) Error() string {
	return "mpv error: " + string(e)
}

func isMPVError(err error) bool {
	_, ok := err.(mpvError)
	return ok
}

// sendIPC performs a single command round trip.
func sendIPC(socketPath string, args []any) (any, error) {
	conn, err := net.DialTimeout("unix", socketPath, ipcReadDeadline)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}
	defer conn.Close()

	payload, err := json.Marshal(ipcCommand{Command: args})
	if err != nil {
		return nil, fmt.Errorf("marshal: %w", err)
	}
	if _, err := conn.Write(append(payload, '\n')); err != nil {
		return nil, fmt.Errorf("write: %w", err)
	}
	if err := conn.SetReadDeadline(time.Now().Add(ipcReadDeadline)); err != nil {
		return nil, fmt.Errorf("set deadline: %w", err)
	}

	reader := bufio.NewReader(conn)
	for {
		line, err := reader.ReadBytes('\n')
		if len(strings.TrimSpace(string(line))) > 0 {
			var resp ipcResponse
			if uerr := json.Unmarshal(line, &resp); uerr != nil {
				return nil, fmt.Errorf("unmarshal: %w", uerr)
			}
			if resp.Event == "" {
				if resp.Error != "" && resp.Error != "success" {
					return nil, mpvError(resp.Error)
				}
				return resp.Data, nil
			}
		}
		if err != nil {
			return nil, fmt.Errorf("read: %w", err)
		}
	}
}
