package sim

import (
	"errors"
	"fmt"
)

// ErrUnstable reports that a particle position went non-finite, which
// usually means the constraint solve blew up.
var ErrUnstable = errors.New("sheet diverged")

// TickError tags a failure with the tick it happened on.
type TickError struct {
	Tick int
	Time float64
	Err  error
}

func (e TickError) Error() string {
	return fmt.Sprintf("tick %d (t=%.4f): %v", e.Tick, e.Time, e.Err)
}

func (e TickError) Unwrap() error { return e.Err }
