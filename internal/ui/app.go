package ui

import (
	"LineEditor/internal/editor"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
)

// RunApp opens the editor window and blocks until it is closed.
func RunApp(ed *editor.Editor) {
	myApp := app.New()
	myWindow := myApp.NewWindow("Line Editor")

	board := NewCanvasWidget(ed)
	toolbar := NewToolbar(myWindow, board)
	board.OnChange = toolbar.Sync

	myWindow.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		board.Batch(func() {
			if ed.HandleKey(string(ev.Name)) {
				ed.Render()
			}
		})
	})

	content := container.NewBorder(toolbar.Content, nil, nil, nil, container.NewScroll(board))
	myWindow.SetContent(content)
	myWindow.Resize(fyne.NewSize(float32(ed.Drawing.Width)+40, float32(ed.Drawing.Height)+80))
	myWindow.ShowAndRun()
}
