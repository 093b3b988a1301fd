package remote

import (
	"errors"
	"fmt"

	"github.com/Carmen-Shannon/oxy-vidplane/common"
	"github.com/Carmen-Shannon/oxy-vidplane/engine/input"
	"github.com/Carmen-Shannon/oxy-vidplane/engine/session"
)

// ErrUnknownType is returned for a message whose type is not recognized.
var ErrUnknownType = errors.New("remote: unknown message type")

// Message is a browser-style input event sent by a client. Field names follow the
// DOM event properties they come from.
type Message struct {
	Type   string  `json:"type"`
	Code   string  `json:"code,omitempty"`
	Button int     `json:"button,omitempty"`
	X      float32 `json:"x,omitempty"`
	Y      float32 `json:"y,omitempty"`
	DeltaY float32 `json:"deltaY,omitempty"`
	Width  float32 `json:"width,omitempty"`
	Height float32 `json:"height,omitempty"`
}

// Message types.
const (
	TypeKeyDown     = "keydown"
	TypeKeyUp       = "keyup"
	TypePointerDown = "pointerdown"
	TypePointerMove = "pointermove"
	TypePointerUp   = "pointerup"
	TypeClick       = "click"
	TypeWheel       = "wheel"
	TypeResize      = "resize"
	// TypeSnapshot asks for the current state without sending input.
	TypeSnapshot = "snapshot"
)

// Reply is sent back after every message.
type Reply struct {
	Type       string            `json:"type"`
	Connection string            `json:"connection"`
	Snapshot   *session.Snapshot `json:"snapshot,omitempty"`
	Error      string            `json:"error,omitempty"`
}

// Reply types.
const (
	ReplySnapshot = "snapshot"
	ReplyError    = "error"
)

var pointerKinds = map[string]input.EventKind{
	TypePointerDown: input.PointerDown,
	TypePointerMove: input.PointerMove,
	TypePointerUp:   input.PointerUp,
	TypeClick:       input.Click,
}

// toEvent converts a message to an input event.
//
// Parameters:
//   - m: the decoded message
//
// Returns:
//   - input.Event: the event to hand to the session
//   - bool: false when the message carries no input (snapshot requests, keys the player ignores)
//   - error: ErrUnknownType for an unrecognized type
func toEvent(m Message) (input.Event, bool, error) {
	switch m.Type {
	case TypeKeyDown, TypeKeyUp:
		key, ok := common.KeyFromBrowserCode(m.Code)
		if !ok {
			return input.Event{}, false, nil
		}
		kind := input.KeyDown
		if m.Type == TypeKeyUp {
			kind = input.KeyUp
		}
		return input.Event{Kind: kind, Key: key}, true, nil

	case TypePointerDown, TypePointerMove, TypePointerUp, TypeClick:
		return input.Event{Kind: pointerKinds[m.Type], Button: m.Button, X: m.X, Y: m.Y}, true, nil

	case TypeWheel:
		return input.Event{Kind: input.Wheel, DeltaY: m.DeltaY}, true, nil

	case TypeResize:
		return input.Event{Kind: input.Resize, Width: m.Width, Height: m.Height}, true, nil

	case TypeSnapshot:
		return input.Event{}, false, nil
	}
	return input.Event{}, false, fmt.Errorf("%w: %q", ErrUnknownType, m.Type)
}
