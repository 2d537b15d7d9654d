package input

import (
	"fmt"
	"sort"

	"github.com/veandco/go-sdl2/sdl"
)

// Action is a named input the application responds to.
type Action uint8

// Recognized actions.
const (
	ToggleSharpen Action = iota
	ToggleBoxBlur
	MoveForward
	MoveBack
	MoveLeft
	MoveRight
	Screenshot
	Quit

	actionCount
)

var actionNames = [actionCount]string{
	ToggleSharpen: "toggle_sharpen",
	ToggleBoxBlur: "toggle_boxblur",
	MoveForward:   "forward",
	MoveBack:      "back",
	MoveLeft:      "left",
	MoveRight:     "right",
	Screenshot:    "screenshot",
	Quit:          "quit",
}

// String returns the config name of the action.
func (a Action) String() string {
	if a < actionCount {
		return actionNames[a]
	}
	return fmt.Sprintf("action(%d)", a)
}

// ParseAction looks up an action by its config name.
func ParseAction(name string) (Action, bool) {
	for a, n := range actionNames {
		if n == name {
			return Action(a), true
		}
	}
	return 0, false
}

// ActionState is the set of actions held during one frame.
type ActionState uint32

// Held reports whether the action is held.
func (s ActionState) Held(a Action) bool {
	return s&(1<<a) != 0
}

// With returns the state with the action held.
func (s ActionState) With(a Action) ActionState {
	return s | 1<<a
}

// Axis returns +1, -1 or 0 for a pair of opposing actions.
func (s ActionState) Axis(positive, negative Action) float32 {
	var v float32
	if s.Held(positive) {
		v++
	}
	if s.Held(negative) {
		v--
	}
	return v
}

// Bindings maps each action to the scancodes that trigger it.
type Bindings map[Action][]sdl.Scancode

// DefaultBindings returns the built-in key layout.
func DefaultBindings() Bindings {
	return Bindings{
		ToggleSharpen: {sdl.SCANCODE_1},
		ToggleBoxBlur: {sdl.SCANCODE_2},
		MoveForward:   {sdl.SCANCODE_W},
		MoveBack:      {sdl.SCANCODE_S},
		MoveLeft:      {sdl.SCANCODE_A},
		MoveRight:     {sdl.SCANCODE_D},
		Screenshot:    {sdl.SCANCODE_F12},
		Quit:          {sdl.SCANCODE_ESCAPE},
	}
}

// BindingsFromConfig overrides the defaults with key names from the config,
// using SDL key names such as "W", "F12" or "Escape".
func BindingsFromConfig(keys map[string]string) (Bindings, error) {
	b := DefaultBindings()

	// sorted so errors are reported deterministically
	names := make([]string, 0, len(keys))
	for name := range keys {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		action, ok := ParseAction(name)
		if !ok {
			return nil, fmt.Errorf("unknown action %q", name)
		}
		code := sdl.GetScancodeFromName(keys[name])
		if code == sdl.SCANCODE_UNKNOWN {
			return nil, fmt.Errorf("action %s: unknown key %q", name, keys[name])
		}
		b[action] = []sdl.Scancode{code}
	}
	return b, nil
}

// Resolve turns a keyboard state table, indexed by scancode, into actions.
func Resolve(keys []uint8, b Bindings) ActionState {
	var s ActionState
	for action, codes := range b {
		for _, code := range codes {
			if int(code) < len(keys) && keys[code] != 0 {
				s = s.With(action)
				break
			}
		}
	}
	return s
}
