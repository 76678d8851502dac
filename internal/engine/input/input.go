// Package input handles SDL2 input events.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// EventType identifies a viewer input event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventExpose
	EventText
	EventKeyDown
	EventMouseMove
	EventMouseDown
	EventMouseUp
)

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Key    sdl.Scancode
	Char   rune
	Width  int
	Height int
	MouseX int
	MouseY int
	Button uint8
}

// Input converts SDL events into viewer events.
type Input struct {
	events []Event
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events: make([]Event, 0, 16),
	}
}

// Wait blocks until at least one event arrives, then drains the queue.
// The returned slice is reused by the next call.
func (i *Input) Wait() []Event {
	i.events = i.events[:0]

	for event := sdl.WaitEvent(); event != nil; event = sdl.PollEvent() {
		i.events = Convert(i.events, event)
	}
	return i.events
}

// Convert appends the viewer events for one SDL event to dst.
// Text input yields one EventText per character.
func Convert(dst []Event, event sdl.Event) []Event {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		dst = append(dst, Event{Type: EventQuit})

	case *sdl.WindowEvent:
		switch e.Event {
		case sdl.WINDOWEVENT_SIZE_CHANGED:
			dst = append(dst, Event{
				Type:   EventWindowResize,
				Width:  int(e.Data1),
				Height: int(e.Data2),
			})
		case sdl.WINDOWEVENT_EXPOSED:
			dst = append(dst, Event{Type: EventExpose})
		}

	case *sdl.TextInputEvent:
		for _, r := range e.GetText() {
			dst = append(dst, Event{Type: EventText, Char: r})
		}

	case *sdl.KeyboardEvent:
		if e.Type == sdl.KEYDOWN {
			dst = append(dst, Event{
				Type: EventKeyDown,
				Key:  e.Keysym.Scancode,
			})
		}

	case *sdl.MouseMotionEvent:
		dst = append(dst, Event{
			Type:   EventMouseMove,
			MouseX: int(e.X),
			MouseY: int(e.Y),
		})

	case *sdl.MouseButtonEvent:
		evt := Event{
			MouseX: int(e.X),
			MouseY: int(e.Y),
			Button: e.Button,
		}
		if e.Type == sdl.MOUSEBUTTONDOWN {
			evt.Type = EventMouseDown
		} else {
			evt.Type = EventMouseUp
		}
		dst = append(dst, evt)
	}

	return dst
}
