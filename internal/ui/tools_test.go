package ui

import (
	"testing"

	"LineEditor/internal/config"
	"LineEditor/internal/editor"
	"LineEditor/internal/state"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/stretchr/testify/assert"
)

func TestToolbarSync(t *testing.T) {
	test.NewTempApp(t)
	ed := editor.New(config.Default())
	tb := NewToolbar(test.NewTempWindow(t, widget.NewLabel("")), NewCanvasWidget(ed))

	assert.Equal(t, "Line", tb.tools.Selected)
	assert.True(t, tb.snap.Checked)
	assert.Equal(t, "Line | snap 15x15 | 0 shapes", tb.status.Text)

	ed.HandleKey("S")
	ed.HandleKey("G")
	tb.Sync()
	assert.Equal(t, "Select", tb.tools.Selected)
	assert.False(t, tb.snap.Checked)
	assert.Equal(t, "Select | snap off | 0 shapes", tb.status.Text)
}

func TestToolbarDrivesEditor(t *testing.T) {
	test.NewTempApp(t)
	ed := editor.New(config.Default())
	tb := NewToolbar(test.NewTempWindow(t, widget.NewLabel("")), NewCanvasWidget(ed))

	tb.tools.SetSelected("Rectangle")
	assert.Equal(t, editor.ToolRectangle, ed.ActiveTool())

	tb.snap.SetChecked(false)
	assert.False(t, ed.Drawing.EnableSnap)
}

func TestToolbarSyncsOnRepaint(t *testing.T) {
	test.NewTempApp(t)
	ed := editor.New(config.Default())
	board := NewCanvasWidget(ed)
	tb := NewToolbar(test.NewTempWindow(t, widget.NewLabel("")), board)
	board.OnChange = tb.Sync

	press(board, 30, 30)
	assert.Equal(t, "Line | snap 15x15 | 1 shapes", tb.status.Text)

	board.Batch(func() {
		ed.HandleKey("S")
		ed.Render()
	})
	assert.Equal(t, "Select", tb.tools.Selected)
	assert.Equal(t, "Select | snap 15x15 | 1 shapes", tb.status.Text)
}

func TestColorSwatchTapped(t *testing.T) {
	test.NewTempApp(t)
	red := state.Color{A: 0xFF, R: 0xFF}
	var got state.Color
	s := newColorSwatch(red, func(c state.Color) { got = c })
	test.Tap(s)
	assert.Equal(t, red, got)
}
