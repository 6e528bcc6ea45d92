package ui

import (
	"fmt"
	"image/color"

	"LineEditor/internal/editor"
	"LineEditor/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

var toolNames = map[editor.ToolKind]string{
	editor.ToolSelection: "Select",
	editor.ToolLine:      "Line",
	editor.ToolRectangle: "Rectangle",
}

// palette is offered for the stroke of new lines.
var palette = []state.Color{
	{A: 0xFF},
	{A: 0xFF, R: 0xFF},
	{A: 0xFF, G: 0x80},
	{A: 0xFF, B: 0xFF},
	{A: 0xFF, R: 0xFF, G: 0xA5},
}

type colorSwatch struct {
	widget.BaseWidget
	Color    state.Color
	OnTapped func(state.Color)
}

func newColorSwatch(c state.Color, tapped func(state.Color)) *colorSwatch {
	s := &colorSwatch{Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(s.Color)
	rect.SetMinSize(fyne.NewSize(24, 24))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Color)
	}
}

// Toolbar holds the controls above the canvas. Sync brings them in line with
// the editor after a keyboard shortcut changed its state.
type Toolbar struct {
	Content *fyne.Container

	ed     *editor.Editor
	tools  *widget.RadioGroup
	snap   *widget.Check
	status *widget.Label
}

// NewToolbar builds the tool picker, snap switch and command buttons for the
// editor shown by board.
func NewToolbar(win fyne.Window, board *CanvasWidget) *Toolbar {
	ed := board.editor
	tb := &Toolbar{ed: ed, status: widget.NewLabel("")}

	tb.tools = widget.NewRadioGroup(
		[]string{toolNames[editor.ToolSelection], toolNames[editor.ToolLine], toolNames[editor.ToolRectangle]},
		func(name string) {
			for kind, n := range toolNames {
				if n == name && ed.ActiveTool() != kind {
					board.Batch(func() {
						ed.UseTool(kind)
						ed.Render()
					})
				}
			}
		})
	tb.tools.Horizontal = true
	tb.tools.Required = true

	tb.snap = widget.NewCheck("Snap", func(on bool) {
		if ed.Drawing.EnableSnap != on {
			ed.ToggleSnap()
			tb.Sync()
		}
	})

	onColorTapped := func(c state.Color) {
		ed.Line.Style.Stroke = &c
	}
	colorBox := container.NewHBox()
	for _, c := range palette {
		colorBox.Add(newColorSwatch(c, onColorTapped))
	}

	thickness := widget.NewSlider(1, 60)
	thickness.SetValue(ed.Line.Style.Thickness)
	thickness.OnChanged = func(v float64) {
		ed.Line.Style.Thickness = v
	}
	sliderContainer := container.New(layout.NewGridWrapLayout(fyne.NewSize(120, 35)), thickness)

	del := widget.NewButton("Delete", func() { board.Batch(func() { ed.Delete() }) })
	clr := widget.NewButton("Clear", func() { board.Batch(ed.Clear) })
	pdf := widget.NewButton("Export PDF", func() { exportPDF(win, ed) })
	png := widget.NewButton("Export PNG", func() { exportPNG(win, ed) })

	tb.Content = container.NewHBox(
		widget.NewLabel("Tool:"),
		tb.tools,
		widget.NewSeparator(),
		tb.snap,
		widget.NewSeparator(),
		widget.NewLabel("Line:"),
		colorBox,
		sliderContainer,
		widget.NewSeparator(),
		del, clr,
		widget.NewSeparator(),
		pdf, png,
		layout.NewSpacer(),
		tb.status,
	)
	tb.Sync()
	return tb
}

// Sync updates the controls and the status text from the editor.
func (tb *Toolbar) Sync() {
	name := toolNames[tb.ed.ActiveTool()]
	if tb.tools.Selected != name {
		tb.tools.SetSelected(name)
	}
	if tb.snap.Checked != tb.ed.Drawing.EnableSnap {
		tb.snap.SetChecked(tb.ed.Drawing.EnableSnap)
	}
	snap := "off"
	if tb.ed.Drawing.EnableSnap {
		snap = fmt.Sprintf("%gx%g", tb.ed.Drawing.SnapX, tb.ed.Drawing.SnapY)
	}
	tb.status.SetText(fmt.Sprintf("%s | snap %s | %d shapes", name, snap, tb.ed.Drawing.Len()))
}
