package simulation

import "github.com/aaratha/rope-survivor/pkg/physics"

// InputState is the per-frame input handed to World.Step.
// Adapters feed it from their raw event stream and call EndFrame after each Step.
type InputState struct {
	Pointer  physics.Vec2 // pointer position in world coordinates
	Delta    physics.Vec2 // pointer motion since the last frame, in screen units
	Held     bool
	Viewport physics.Vec2 // width, height; zero keeps the configured viewport

	ResetRequested bool
	PauseToggled   bool

	screen physics.Vec2
	moved  bool
}

// MoveTo records the pointer at screen position screen, which maps to world.
// Screen motion since the previous call accumulates into Delta.
func (in *InputState) MoveTo(world, screen physics.Vec2) {
	if in.moved {
		in.Delta = in.Delta.Add(screen.Sub(in.screen))
	}
	in.Pointer = world
	in.screen = screen
	in.moved = true
}

func (in *InputState) Press() {
	in.Held = true
}

func (in *InputState) Release() {
	in.Held = false
}

func (in *InputState) RequestReset() {
	in.ResetRequested = true
}

func (in *InputState) TogglePause() {
	in.PauseToggled = true
}

// EndFrame clears per-frame motion and edge flags; Pointer and Held persist
func (in *InputState) EndFrame() {
	in.Delta = physics.Vec2{}
	in.ResetRequested = false
	in.PauseToggled = false
}
