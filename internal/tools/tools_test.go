package tools

import (
	"testing"

	"LineEditor/internal/state"
	"LineEditor/internal/state/statetest"
)

type fixture struct {
	drawing *state.Canvas
	overlay *state.Canvas
	host    *statetest.Host
}

// newFixture returns a 600x600 drawing canvas snapping to 15/15 with a test
// host, plus an empty overlay.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		drawing: state.NewCanvas("drawing"),
		overlay: state.NewCanvas("overlay"),
		host:    &statetest.Host{},
	}
	f.drawing.Host = f.host
	return f
}

func (f *fixture) down(x, y float64) { f.drawing.Dispatch(state.InputDown, x, y) }
func (f *fixture) up(x, y float64) { f.drawing.Dispatch(state.InputUp, x, y) }
func (f *fixture) move(x, y float64) { f.drawing.Dispatch(state.InputMove, x, y) }
