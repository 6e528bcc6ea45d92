package tools

import (
	"log/slog"

	"LineEditor/internal/state"
)

// selectionFlags are independent: a shape can be hovered while another is
// selected and being moved.
type selectionFlags uint8

const (
	flagHover selectionFlags = 1 << iota
	flagSelected
	flagMove
)

// SelectionTool picks shapes that own bounds, drags them, and highlights the
// shape under the cursor.
//
// Hit testing walks the drawing canvas children in list order and the first
// match wins, so on overlap the oldest shape is picked.
type SelectionTool struct {
	drawing *state.Canvas
	overlay *state.Canvas
	flags   selectionFlags
	last    state.Point

	selected state.Shape
	hover    state.Shape
	enabled  bool
}

// NewSelectionTool creates a disabled selection tool.
func NewSelectionTool(drawing, overlay *state.Canvas) *SelectionTool {
	t := &SelectionTool{drawing: drawing, overlay: overlay}
	drawing.Subscribe(t)
	return t
}

func (t *SelectionTool) IsEnabled() bool {
	return t.enabled
}

// SetEnabled turns the tool on or off. Turning it off resets the hover and
// the selection.
func (t *SelectionTool) SetEnabled(enabled bool) {
	if t.enabled && !enabled {
		t.Reset()
	}
	t.enabled = enabled
}

// Selected returns the selected shape, or nil.
func (t *SelectionTool) Selected() state.Shape {
	return t.selected
}

// Hovered returns the highlighted shape under the cursor, or nil.
func (t *SelectionTool) Hovered() state.Shape {
	return t.hover
}

// Moving reports whether a drag of the selection is in progress.
func (t *SelectionTool) Moving() bool {
	return t.is(flagMove)
}

func (t *SelectionTool) HandleInput(in state.Input) {
	if !t.enabled {
		return
	}
	switch in.Kind {
	case state.InputDown:
		t.down(in.Pos)
	case state.InputUp:
		t.up()
	case state.InputMove:
		t.move(in.Pos)
	}
}

// HitTest returns the first child of the drawing canvas whose bounds contain
// (x, y), or nil.
func (t *SelectionTool) HitTest(x, y float64) state.Shape {
	for _, c := range t.drawing.Children {
		if b := c.Bounds(); b != nil && b.Contains(x, y) {
			return c
		}
	}
	return nil
}

func (t *SelectionTool) is(f selectionFlags) bool {
	return t.flags&f == f
}

func (t *SelectionTool) down(p state.Point) {
	render := false

	if t.is(flagSelected) {
		t.hideSelected()
		render = true
	}
	if t.is(flagHover) {
		t.hideHover()
		render = true
	}

	if hit := t.HitTest(p.X, p.Y); hit != nil {
		t.selected = hit
		t.showSelected()
		t.last = p
		t.flags |= flagMove
		t.drawing.Capture()
		render = true
		slog.Debug("shape selected", "id", hit.ID(), "at", p)
	}

	if render {
		invalidate(t.drawing, t.overlay)
	}
}

func (t *SelectionTool) up() {
	if !t.drawing.IsCaptured() || !t.is(flagMove) {
		return
	}
	t.flags &^= flagMove
	t.drawing.ReleaseCapture()
}

func (t *SelectionTool) move(p state.Point) {
	if t.drawing.IsCaptured() {
		if t.is(flagMove) {
			t.drag(p)
		}
		return
	}
	t.updateHover(p)
}

func (t *SelectionTool) drag(p state.Point) {
	if t.selected == nil {
		return
	}
	dx, dy := p.X-t.last.X, p.Y-t.last.Y
	t.last = p
	b := t.selected.Bounds()
	b.Move(dx, dy)
	b.Update()
	invalidate(t.drawing, t.overlay)
}

func (t *SelectionTool) updateHover(p state.Point) {
	render := false
	result := t.HitTest(p.X, p.Y)

	if t.is(flagHover) {
		if t.is(flagSelected) {
			if t.hover == t.selected || t.hover == result {
				return
			}
		} else if result == t.hover {
			return
		}
		t.hideHover()
		render = true
	}

	if result != nil && (!t.is(flagSelected) || result != t.selected) {
		t.hover = result
		t.showHover()
		render = true
	}

	if render {
		invalidate(t.drawing, t.overlay)
	}
}

// Reset hides and forgets both the hover and the selection, ending any drag
// in progress.
func (t *SelectionTool) Reset() {
	render := false

	if t.is(flagMove) && t.drawing.IsCaptured() {
		t.drawing.ReleaseCapture()
	}

	if t.hover != nil {
		t.hover.Bounds().Hide()
		t.hover = nil
		render = true
	}
	if t.selected != nil {
		t.selected.Bounds().Hide()
		t.selected = nil
		render = true
	}
	t.flags = 0

	if render {
		invalidate(t.drawing, t.overlay)
	}
}

func (t *SelectionTool) showHover() {
	t.hover.Bounds().Show()
	t.flags |= flagHover
}

func (t *SelectionTool) hideHover() {
	t.hover.Bounds().Hide()
	t.hover = nil
	t.flags &^= flagHover
}

func (t *SelectionTool) showSelected() {
	t.selected.Bounds().Show()
	t.flags |= flagSelected
}

func (t *SelectionTool) hideSelected() {
	t.selected.Bounds().Hide()
	t.selected = nil
	t.flags &^= flagSelected
}

// Forget drops references to shapes that left the drawing canvas. Their
// bounds are not touched. A drag of a forgotten selection ends and gives the
// pointer back.
func (t *SelectionTool) Forget(shapes ...state.Shape) {
	for _, s := range shapes {
		if s == nil {
			continue
		}
		if s == t.hover {
			t.hover = nil
			t.flags &^= flagHover
		}
		if s == t.selected {
			if t.is(flagMove) && t.drawing.IsCaptured() {
				t.drawing.ReleaseCapture()
			}
			t.selected = nil
			t.flags &^= flagSelected | flagMove
		}
	}
}
