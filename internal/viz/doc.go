// Package viz previews the display in a terminal.
//
// [TermDisplay] implements the same Display interface as the hardware
// panel and shows each flushed frame on a Braille [Canvas], one dot per
// device pixel, so a 128x64 panel fits in 64x16 cells. [Model] drives a
// simulation loop from a Bubble Tea program.
//
// # Key Bindings
//
//	Space - Pause/Resume simulation
//	R     - Reset to initial state
//	Q     - Quit
package viz
