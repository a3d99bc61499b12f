// Package viz renders the draping sheet in the terminal.
//
// The interactive view is a Bubble Tea program around a stepping
// session:
//
//   - [Model]: the live view, started through [Run]
//   - [Canvas]: Braille-based pixel canvas for high-fidelity rendering
//   - [Camera]: orbiting projection, also the inverse mapping that
//     turns mouse clicks into picking rays
//   - [Still]: one-shot render of a frame for non-interactive output
//
// # Key Bindings
//
//	Space - Pause/Resume simulation
//	R     - Rebuild the sheet
//	Tab   - Cycle tunable parameters
//	G     - Toggle GIF recording
//	?     - Show help overlay
//
// Dragging with the mouse picks the nearest particle under the cursor
// and tows it until release.
//
// # Recording
//
// The G key toggles GIF recording; on stop the animation is written to
// cloth.gif in the current directory.
package viz
