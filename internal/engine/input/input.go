// Package input handles SDL2 input events and resolves keys into actions.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// Event types surfaced to the frame loop.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventKeyUp
)

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Key    sdl.Scancode
	Width  int
	Height int
}

// Input handles all input processing.
type Input struct {
	bindings Bindings
	events   []Event

	state    ActionState
	previous ActionState

	mouseDX float32
	mouseDY float32
}

// New creates a new input handler.
func New(bindings Bindings) *Input {
	if bindings == nil {
		bindings = DefaultBindings()
	}
	return &Input{
		bindings: bindings,
		events:   make([]Event, 0, 16),
	}
}

// Update polls SDL events, samples the keyboard and resolves actions.
// Returns true if the window asked to close.
func (i *Input) Update() bool {
	i.events = i.events[:0] // Clear previous events
	i.mouseDX, i.mouseDY = 0, 0
	quit := false

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			i.events = append(i.events, Event{Type: EventQuit})
			quit = true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_RESIZED {
				i.events = append(i.events, Event{
					Type:   EventWindowResize,
					Width:  int(e.Data1),
					Height: int(e.Data2),
				})
			}

		case *sdl.KeyboardEvent:
			if e.Repeat != 0 {
				continue
			}
			if e.Type == sdl.KEYDOWN {
				i.events = append(i.events, Event{Type: EventKeyDown, Key: e.Keysym.Scancode})
			} else if e.Type == sdl.KEYUP {
				i.events = append(i.events, Event{Type: EventKeyUp, Key: e.Keysym.Scancode})
			}

		case *sdl.MouseMotionEvent:
			i.mouseDX += float32(e.XRel)
			i.mouseDY += float32(e.YRel)
		}
	}

	i.advance(Resolve(sdl.GetKeyboardState(), i.bindings))
	return quit
}

// advance records a new frame's action state.
func (i *Input) advance(s ActionState) {
	i.previous = i.state
	i.state = s
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

// State returns the actions held this frame.
func (i *Input) State() ActionState {
	return i.state
}

// Pressed reports whether an action went down this frame.
func (i *Input) Pressed(a Action) bool {
	return i.state.Held(a) && !i.previous.Held(a)
}

// MouseDelta returns the relative mouse motion accumulated during the last Update.
func (i *Input) MouseDelta() (dx, dy float32) {
	return i.mouseDX, i.mouseDY
}
