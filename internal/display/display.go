// Package display defines the monochrome surface the renderer draws on and
// the startup indicator, together with in-memory implementations.
//
// Hardware bring-up (pins, I2C, driver init) lives outside this module. A
// device driver only has to satisfy [Display] and [Indicator].
package display

import "context"

// Display is a W×H monochrome pixel grid with the origin at the top-left.
// Calls never fail; writes outside the grid are dropped by the device.
type Display interface {
	Clear()
	SetPixel(x, y int)
	HLine(x, y, length int)
	Flush()
}

// Indicator signals power-on once before the simulation starts.
type Indicator interface {
	Flash(ctx context.Context) error
}
