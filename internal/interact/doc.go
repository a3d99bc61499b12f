// Package interact turns pointer and hand-pinch input into solver
// pins.
//
// Input arrives event-driven between ticks; only the latest observed
// value matters. Each tick the simulation asks [Controller.Pins] for
// the current pin set, so intermediate samples never queue.
//
//   - [Drag]: a two-state pointer machine. Picking selects the nearest
//     particle and fixes a drag plane; moves reproject onto that plane.
//   - [Pinch]: two independent hand channels pinning mirrored sheet
//     corners through an exponential smoothing filter.
package interact
