// Package viz runs the simulation live in a terminal.
//
// The package implements an interactive TUI using the Bubble Tea framework:
//
//   - [App]: preset menu that hands off to a live model
//   - [Model]: steps a world every frame and draws it
//   - [Canvas]: Braille-based pixel canvas with per-cell colour
//
// The world is sized to the canvas, one braille dot per [DefaultScale]
// world units, and follows the terminal when it is resized.
//
// # Key Bindings
//
//	Click - Spawn a batch at the pointer
//	S     - Spawn a batch at the centre
//	Space - Pause/Resume simulation
//	N     - Single step while paused
//	R     - Reset and replay the preset's taps
//	C     - Clear all balls
//	T     - Cycle color themes
//	?     - Show help overlay
//	Esc   - Back to the preset menu
package viz
