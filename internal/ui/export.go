package ui

import (
	"io"
	"log/slog"

	"LineEditor/internal/editor"
	"LineEditor/internal/export"
	"LineEditor/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
)

type writeFunc func(w io.Writer, canvases ...*state.Canvas) error

func exportPDF(win fyne.Window, ed *editor.Editor) {
	saveAs(win, ed, "drawing.pdf", export.WritePDF)
}

func exportPNG(win fyne.Window, ed *editor.Editor) {
	saveAs(win, ed, "drawing.png", export.WritePNG)
}

// saveAs asks for a destination and writes the drawing and background
// canvases to it. The bounds overlay is left out.
func saveAs(win fyne.Window, ed *editor.Editor, name string, write writeFunc) {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, win)
			return
		}
		if writer == nil {
			return
		}
		defer func() {
			if err := writer.Close(); err != nil {
				slog.Error("close export", "uri", writer.URI(), "err", err)
			}
		}()
		if err := write(writer, ed.Background, ed.Drawing); err != nil {
			slog.Error("export failed", "uri", writer.URI(), "err", err)
			dialog.ShowError(err, win)
			return
		}
		slog.Info("exported drawing", "uri", writer.URI(), "shapes", ed.Drawing.Len())
	}, win)
	d.SetFileName(name)
	d.Show()
}
