package state

import (
	"sync/atomic"

	"github.com/google/uuid"
)

var created uint64

// newID hands out a fresh identifier for a shape.
func newID() string {
	atomic.AddUint64(&created, 1)
	return uuid.NewString()
}

// ShapesCreated reports how many shapes have been constructed by this
// process. Useful for spotting leaks from helper shapes in long sessions.
func ShapesCreated() uint64 {
	return atomic.LoadUint64(&created)
}
