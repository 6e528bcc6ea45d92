package tools

import (
	"log/slog"

	"LineEditor/internal/bounds"
	"LineEditor/internal/state"
)

type lineState int

const (
	lineNone lineState = iota
	lineEnd
)

// LineTool draws lines. The first pointer-down starts a line with both
// endpoints at the pointer and captures the pointer; every following down,
// up or captured move drags the second endpoint; the next pointer-down while
// captured finishes the line.
type LineTool struct {
	Style Style

	drawing *state.Canvas
	overlay *state.Canvas
	mode    lineState
	line    *state.LineShape
	enabled bool
}

// NewLineTool creates a disabled line tool that adds lines to drawing and
// their bounds helpers to overlay.
func NewLineTool(drawing, overlay *state.Canvas) *LineTool {
	def := state.NewLineShape()
	t := &LineTool{
		Style: Style{
			Stroke:    def.Stroke,
			Thickness: def.StrokeThickness,
			StartCap:  def.StartCap,
			EndCap:    def.EndCap,
		},
		drawing: drawing,
		overlay: overlay,
	}
	drawing.Subscribe(t)
	return t
}

func (t *LineTool) IsEnabled() bool {
	return t.enabled
}

// SetEnabled turns the tool on or off. Disabling it in the middle of a
// gesture finishes the line where it is.
func (t *LineTool) SetEnabled(enabled bool) {
	if t.enabled && !enabled && t.mode == lineEnd {
		t.finish()
	}
	t.enabled = enabled
}

// Drawing reports whether a line is being dragged.
func (t *LineTool) Drawing() bool {
	return t.mode == lineEnd
}

// Current returns the line of the active or most recent gesture.
func (t *LineTool) Current() *state.LineShape {
	return t.line
}

func (t *LineTool) HandleInput(in state.Input) {
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

func (t *LineTool) down(p state.Point) {
	if t.drawing.IsCaptured() {
		t.finish()
		return
	}

	line := state.NewLineShape()
	line.Point1.Set(p.X, p.Y)
	line.Point2.Set(p.X, p.Y)
	line.Stroke = cloneColor(t.Style.Stroke)
	line.StrokeThickness = t.Style.Thickness
	line.StartCap = t.Style.StartCap
	line.EndCap = t.Style.EndCap

	t.drawing.Add(line)
	b := bounds.NewLineBounds(line, t.overlay, t.drawing)
	line.SetBounds(b)
	b.Update()
	b.Show()

	t.line = line
	t.drawing.Capture()
	invalidate(t.drawing, t.overlay)
	t.mode = lineEnd
	slog.Debug("line started", "id", line.ID(), "at", p)
}

func (t *LineTool) drag(p state.Point) {
	if t.mode != lineEnd {
		return
	}
	t.line.Point2.Set(p.X, p.Y)
	t.line.Bounds().Update()
	invalidate(t.drawing, t.overlay)
}

func (t *LineTool) finish() {
	if t.line != nil {
		if b := t.line.Bounds(); b != nil {
			b.Hide()
		}
		slog.Debug("line finished", "id", t.line.ID(),
			"from", t.line.Point1.Point(), "to", t.line.Point2.Point())
	}
	invalidate(t.drawing, t.overlay)
	t.mode = lineNone
	t.drawing.ReleaseCapture()
}
