package interact

import "github.com/san-kum/clothsim/internal/cloth"

// Controller merges the pointer-drag and hand-pinch sources into the
// pin set consumed once at the start of each tick. Input events update
// the sources between ticks; only the latest state is ever read.
type Controller struct {
	Drag  *Drag
	Pinch *Pinch

	pins []cloth.Pin
}

func NewController(g cloth.Grid) *Controller {
	return &Controller{Drag: NewDrag(), Pinch: NewPinch(g)}
}

// Pins returns the current pin set. The backing slice is reused, so
// callers must not retain it across ticks.
func (c *Controller) Pins() []cloth.Pin {
	c.pins = c.pins[:0]
	if pin, ok := c.Drag.Pin(); ok {
		c.pins = append(c.pins, pin)
	}
	c.pins = c.Pinch.Pins(c.pins)
	return c.pins
}
