package ui

import (
	"image/color"

	"LineEditor/internal/editor"
	"LineEditor/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// CanvasWidget shows the editor canvases and turns fyne pointer events into
// the editor input stream. It is the capture and repaint host of the drawing
// canvas.
type CanvasWidget struct {
	widget.BaseWidget
	editor   *editor.Editor
	captured bool

	batching int
	dirty    bool

	// OnChange runs after every repaint request, e.g. to refresh a status bar.
	OnChange func()
}

var _ fyne.Widget = (*CanvasWidget)(nil)
var _ fyne.Draggable = (*CanvasWidget)(nil)
var _ desktop.Mouseable = (*CanvasWidget)(nil)
var _ desktop.Hoverable = (*CanvasWidget)(nil)
var _ state.Host = (*CanvasWidget)(nil)

// NewCanvasWidget wires the widget into ed as host of all three canvases.
func NewCanvasWidget(ed *editor.Editor) *CanvasWidget {
	w := &CanvasWidget{editor: ed}
	w.ExtendBaseWidget(w)
	ed.Drawing.Host = w
	ed.Background.Host = repaintOnly{w}
	ed.Overlay.Host = repaintOnly{w}
	return w
}

func (w *CanvasWidget) IsCaptured() bool {
	return w.captured
}

func (w *CanvasWidget) Capture() {
	w.captured = true
}

func (w *CanvasWidget) ReleaseCapture() {
	w.captured = false
}

// Invalidate repaints the widget, or marks it dirty inside Batch.
func (w *CanvasWidget) Invalidate() {
	if w.batching > 0 {
		w.dirty = true
		return
	}
	w.repaint()
}

// Batch runs fn and repaints at most once afterwards, however many canvases
// fn invalidated.
func (w *CanvasWidget) Batch(fn func()) {
	w.batching++
	defer func() {
		w.batching--
		if w.batching == 0 && w.dirty {
			w.dirty = false
			w.repaint()
		}
	}()
	fn()
}

func (w *CanvasWidget) repaint() {
	w.Refresh()
	if w.OnChange != nil {
		w.OnChange()
	}
}

// repaintOnly hosts the background and overlay canvases, which never take
// pointer capture.
type repaintOnly struct{ w *CanvasWidget }

func (repaintOnly) IsCaptured() bool { return false }
func (repaintOnly) Capture() {}
func (repaintOnly) ReleaseCapture() {}
func (r repaintOnly) Invalidate() { r.w.Invalidate() }

func (w *CanvasWidget) dispatch(kind state.InputKind, pos fyne.Position) {
	w.Batch(func() {
		w.editor.Drawing.Dispatch(kind, float64(pos.X), float64(pos.Y))
	})
}

func (w *CanvasWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		w.dispatch(state.InputDown, e.Position)
	}
}

func (w *CanvasWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		w.dispatch(state.InputUp, e.Position)
	}
}

func (w *CanvasWidget) MouseMoved(e *desktop.MouseEvent) {
	w.dispatch(state.InputMove, e.Position)
}

// Dragged reports moves while a button is held; fyne sends these instead of
// MouseMoved.
func (w *CanvasWidget) Dragged(e *fyne.DragEvent) {
	w.dispatch(state.InputMove, e.Position)
}

func (w *CanvasWidget) DragEnd() {}

func (w *CanvasWidget) MouseIn(*desktop.MouseEvent) {}

func (w *CanvasWidget) MouseOut() {}

func (w *CanvasWidget) MinSize() fyne.Size {
	d := w.editor.Drawing
	return fyne.NewSize(float32(d.Width), float32(d.Height))
}

func (w *CanvasWidget) CreateRenderer() fyne.WidgetRenderer {
	r := &canvasRenderer{board: w}
	r.background = canvas.NewRectangle(color.White)
	r.build()
	return r
}

type canvasRenderer struct {
	board      *CanvasWidget
	background *canvas.Rectangle
	objects    []fyne.CanvasObject
}

// build converts every canvas child into fyne objects, back to front.
func (r *canvasRenderer) build() {
	objects := []fyne.CanvasObject{r.background}
	for _, c := range r.board.editor.Canvases() {
		objects = appendCanvas(objects, c)
	}
	r.objects = objects
}

func appendCanvas(objects []fyne.CanvasObject, c *state.Canvas) []fyne.CanvasObject {
	if c.Background != nil {
		bg := canvas.NewRectangle(*c.Background)
		bg.Resize(fyne.NewSize(float32(c.Width), float32(c.Height)))
		objects = append(objects, bg)
	}
	for _, s := range c.Children {
		switch v := s.(type) {
		case *state.Canvas:
			objects = appendCanvas(objects, v)
		case *state.LineShape:
			if v.Stroke != nil {
				objects = append(objects, segment(*v.Stroke, v.StrokeThickness, v.Point1.Point(), v.Point2.Point()))
			}
		case *state.RectangleShape:
			if v.Stroke == nil {
				continue
			}
			b := v.Box()
			rect := canvas.NewRectangle(color.Transparent)
			rect.StrokeColor = *v.Stroke
			rect.StrokeWidth = float32(v.StrokeThickness)
			rect.Move(fyne.NewPos(float32(b.Min.X), float32(b.Min.Y)))
			rect.Resize(fyne.NewSize(float32(b.Width()), float32(b.Height())))
			objects = append(objects, rect)
		case *state.PolygonShape:
			if v.Stroke == nil {
				continue
			}
			pts := v.Vertices()
			for i := range pts {
				objects = append(objects, segment(*v.Stroke, v.StrokeThickness, pts[i], pts[(i+1)%len(pts)]))
			}
		}
	}
	return objects
}

func segment(stroke state.Color, thickness float64, a, b state.Point) *canvas.Line {
	l := canvas.NewLine(stroke)
	l.StrokeWidth = float32(thickness)
	l.Position1 = fyne.NewPos(float32(a.X), float32(a.Y))
	l.Position2 = fyne.NewPos(float32(b.X), float32(b.Y))
	return l
}

func (r *canvasRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *canvasRenderer) Refresh() {
	r.build()
	canvas.Refresh(r.board)
}

func (r *canvasRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
}

func (r *canvasRenderer) MinSize() fyne.Size {
	return r.board.MinSize()
}

func (r *canvasRenderer) Destroy() {}
