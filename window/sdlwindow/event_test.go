package sdlwindow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/veandco/go-sdl2/sdl"
)

func TestTranslateEvent(t *testing.T) {
	tests := []struct {
		name  string
		event sdl.Event
		want  Event
	}{
		{"quit", &sdl.QuitEvent{Type: sdl.QUIT}, Event{Kind: EventClose}},
		{"close", &sdl.WindowEvent{Type: sdl.WINDOWEVENT, Event: sdl.WINDOWEVENT_CLOSE}, Event{Kind: EventClose}},
		{"escape", &sdl.KeyboardEvent{Type: sdl.KEYDOWN, Keysym: sdl.Keysym{Sym: sdl.K_ESCAPE}}, Event{Kind: EventKeyPress, Key: sdl.K_ESCAPE}},
		{"key release", &sdl.KeyboardEvent{Type: sdl.KEYUP, Keysym: sdl.Keysym{Sym: sdl.K_ESCAPE}}, Event{Kind: EventOther}},
		{"resize", &sdl.WindowEvent{Type: sdl.WINDOWEVENT, Event: sdl.WINDOWEVENT_RESIZED, Data1: 1024, Data2: 768}, Event{Kind: EventResize, Width: 1024, Height: 768}},
		{"minimize", &sdl.WindowEvent{Type: sdl.WINDOWEVENT, Event: sdl.WINDOWEVENT_MINIMIZED}, Event{Kind: EventOther}},
		{"mouse", &sdl.MouseMotionEvent{Type: sdl.MOUSEMOTION}, Event{Kind: EventOther}},
		{"none", nil, Event{Kind: EventOther}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, translateEvent(test.event))
		})
	}
}
