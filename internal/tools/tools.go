// Package tools holds the pointer-driven state machines that create and edit
// shapes on a drawing canvas: the selection, line and rectangle tools.
//
// Every tool subscribes to the drawing canvas input stream when it is built
// and ignores events while disabled. Tools do not enforce mutual exclusion;
// the editor enables one tool at a time.
package tools

import (
	"LineEditor/internal/state"
)

// Style is applied to every shape a drawing tool creates.
type Style struct {
	Stroke    *state.Color
	Thickness float64
	StartCap  state.LineCap
	EndCap    state.LineCap
}

// invalidate asks the drawing and overlay canvases to repaint.
func invalidate(drawing, overlay *state.Canvas) {
	drawing.Invalidate()
	overlay.Invalidate()
}

// cloneColor copies a color so shapes never share a mutable stroke.
func cloneColor(c *state.Color) *state.Color {
	if c == nil {
		return nil
	}
	cp := *c
	return &cp
}
