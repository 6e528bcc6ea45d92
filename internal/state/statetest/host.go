// Package statetest provides test doubles for the state package.
package statetest

// Host is an in-memory state.Host. It records capture ownership and how
// often a repaint was requested.
type Host struct {
	Captured      bool
	Captures      int
	Releases      int
	Invalidations int
}

func (h *Host) IsCaptured() bool {
	return h.Captured
}

func (h *Host) Capture() {
	h.Captured = true
	h.Captures++
}

func (h *Host) ReleaseCapture() {
	h.Captured = false
	h.Releases++
}

func (h *Host) Invalidate() {
	h.Invalidations++
}

// Reset clears the counters but keeps the capture state.
func (h *Host) Reset() {
	h.Captures, h.Releases, h.Invalidations = 0, 0, 0
}
