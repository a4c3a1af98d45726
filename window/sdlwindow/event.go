package sdlwindow

import (
	"github.com/veandco/go-sdl2/sdl"
)

type EventKind int

const (
	EventOther EventKind = iota
	EventClose
	EventKeyPress
	EventResize
)

type Event struct {
	Kind EventKind
	// Key is set for EventKeyPress
	Key sdl.Keycode
	// Width and Height are set for EventResize
	Width  int
	Height int
}

// WaitEvent blocks until SDL delivers the next event.
func (w *Window) WaitEvent() Event {
	return translateEvent(sdl.WaitEvent())
}

func translateEvent(event sdl.Event) Event {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		return Event{Kind: EventClose}
	case *sdl.KeyboardEvent:
		if e.Type == sdl.KEYDOWN {
			return Event{Kind: EventKeyPress, Key: e.Keysym.Sym}
		}
	case *sdl.WindowEvent:
		switch e.Event {
		case sdl.WINDOWEVENT_CLOSE:
			return Event{Kind: EventClose}
		case sdl.WINDOWEVENT_RESIZED:
			return Event{Kind: EventResize, Width: int(e.Data1), Height: int(e.Data2)}
		}
	}

	return Event{Kind: EventOther}
}
