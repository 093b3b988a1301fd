package remote

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-vidplane/common"
	"github.com/Carmen-Shannon/oxy-vidplane/engine/input"
	"github.com/stretchr/testify/assert"
)

func TestToEvent(t *testing.T) {
	tests := []struct {
		name string
		msg  Message
		want input.Event
		ok   bool
	}{
		{"space down", Message{Type: TypeKeyDown, Code: "Space"}, input.Event{Kind: input.KeyDown, Key: common.KeySpace}, true},
		{"arrow up", Message{Type: TypeKeyUp, Code: "ArrowLeft"}, input.Event{Kind: input.KeyUp, Key: common.KeyLeft}, true},
		{"unmapped key", Message{Type: TypeKeyDown, Code: "F13"}, input.Event{}, false},
		{"pointer down", Message{Type: TypePointerDown, Button: 0, X: 10, Y: 20}, input.Event{Kind: input.PointerDown, X: 10, Y: 20}, true},
		{"pointer move", Message{Type: TypePointerMove, X: 1, Y: 2}, input.Event{Kind: input.PointerMove, X: 1, Y: 2}, true},
		{"right click", Message{Type: TypeClick, Button: 2, X: 5, Y: 6}, input.Event{Kind: input.Click, Button: 2, X: 5, Y: 6}, true},
		{"wheel", Message{Type: TypeWheel, DeltaY: -120}, input.Event{Kind: input.Wheel, DeltaY: -120}, true},
		{"resize", Message{Type: TypeResize, Width: 800, Height: 600}, input.Event{Kind: input.Resize, Width: 800, Height: 600}, true},
		{"snapshot", Message{Type: TypeSnapshot}, input.Event{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok, err := toEvent(tt.msg)
			assert.NoError(t, err)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToEventUnknownType(t *testing.T) {
	_, ok, err := toEvent(Message{Type: "touchstart"})
	assert.False(t, ok)
	assert.ErrorIs(t, err, ErrUnknownType)
}
