package tools

import (
	"log/slog"

	"LineEditor/internal/bounds"
	"LineEditor/internal/state"
)

type rectangleState int

const (
	rectangleNone rectangleState = iota
	rectangleBottomRight
)

// RectangleTool draws rectangles with the same gesture as LineTool: the
// first down anchors TopLeft, drags move BottomRight, the next down while
// captured finishes.
type RectangleTool struct {
	Style Style
	// Selectable attaches RectangleBounds to new rectangles so the selection
	// tool can pick and move them. Without it rectangles are inert.
	Selectable bool

	drawing *state.Canvas
	overlay *state.Canvas
	mode    rectangleState
	rect    *state.RectangleShape
	enabled bool
}

// NewRectangleTool creates a disabled rectangle tool.
func NewRectangleTool(drawing, overlay *state.Canvas) *RectangleTool {
	def := state.NewRectangleShape()
	t := &RectangleTool{
		Style: Style{
			Stroke:    def.Stroke,
			Thickness: def.StrokeThickness,
		},
		drawing: drawing,
		overlay: overlay,
	}
	drawing.Subscribe(t)
	return t
}

func (t *RectangleTool) IsEnabled() bool {
	return t.enabled
}

// SetEnabled turns the tool on or off, finishing any rectangle in progress
// when it is turned off.
func (t *RectangleTool) SetEnabled(enabled bool) {
	if t.enabled && !enabled && t.mode == rectangleBottomRight {
		t.finish()
	}
	t.enabled = enabled
}

// Drawing reports whether a rectangle is being dragged.
func (t *RectangleTool) Drawing() bool {
	return t.mode == rectangleBottomRight
}

// Current returns the rectangle of the active or most recent gesture.
func (t *RectangleTool) Current() *state.RectangleShape {
	return t.rect
}

func (t *RectangleTool) HandleInput(in state.Input) {
	if !t.enabled {
		return
	}
	switch in.Kind {
	case state.InputDown:
		t.down(in.Pos)
		t.drag(in.Pos)
	case state.InputUp:
		t.drag(in.Pos)
	case state.InputMove:
		if t.drawing.IsCaptured() {
			t.drag(in.Pos)
		}
	}
}

func (t *RectangleTool) down(p state.Point) {
	if t.drawing.IsCaptured() {
		t.finish()
		return
	}

	rect := state.NewRectangleShape()
	rect.TopLeft.Set(p.X, p.Y)
	rect.BottomRight.Set(p.X, p.Y)
	rect.Stroke = cloneColor(t.Style.Stroke)
	rect.StrokeThickness = t.Style.Thickness

	t.drawing.Add(rect)
	if t.Selectable {
		b := bounds.NewRectangleBounds(rect, t.overlay, t.drawing)
		rect.SetBounds(b)
		b.Update()
		b.Show()
	}

	t.rect = rect
	t.drawing.Capture()
	invalidate(t.drawing, t.overlay)
	t.mode = rectangleBottomRight
	slog.Debug("rectangle started", "id", rect.ID(), "at", p)
}

func (t *RectangleTool) drag(p state.Point) {
	if t.mode != rectangleBottomRight {
		return
	}
	t.rect.BottomRight.Set(p.X, p.Y)
	if b := t.rect.Bounds(); b != nil {
		b.Update()
	}
	invalidate(t.drawing, t.overlay)
}

func (t *RectangleTool) finish() {
	if t.rect != nil {
		if b := t.rect.Bounds(); b != nil {
			b.Hide()
		}
		slog.Debug("rectangle finished", "id", t.rect.ID(), "box", t.rect.Box())
	}
	invalidate(t.drawing, t.overlay)
	t.mode = rectangleNone
	t.drawing.ReleaseCapture()
}
