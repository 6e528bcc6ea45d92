package export

import (
	"fmt"
	"io"
	"os"

	"LineEditor/internal/state"

	"github.com/jung-kurt/gofpdf"
)

// PDF writes the canvases to a single-page PDF file at path.
func PDF(path string, canvases ...*state.Canvas) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WritePDF(f, canvases...); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// WritePDF renders the canvases to w as one page sized to the largest
// canvas, one point per canvas unit.
func WritePDF(w io.Writer, canvases ...*state.Canvas) error {
	if len(canvases) == 0 {
		return ErrNoCanvas
	}
	width, height := pageSize(canvases)

	p := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: width, Ht: height},
	})
	p.SetMargins(0, 0, 0)
	p.SetAutoPageBreak(false, 0)
	p.AddPage()

	for _, c := range canvases {
		drawCanvasPDF(p, c)
	}

	if err := p.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

func drawCanvasPDF(p *gofpdf.Fpdf, c *state.Canvas) {
	if c.Background != nil {
		bg := *c.Background
		p.SetAlpha(float64(bg.A)/255, "Normal")
		p.SetFillColor(int(bg.R), int(bg.G), int(bg.B))
		p.Rect(0, 0, c.Width, c.Height, "F")
	}
	for _, s := range c.Children {
		switch v := s.(type) {
		case *state.Canvas:
			drawCanvasPDF(p, v)
		case *state.LineShape:
			if setPen(p, v.Stroke, v.StrokeThickness, v.StartCap) {
				p.Line(v.Point1.X, v.Point1.Y, v.Point2.X, v.Point2.Y)
			}
		case *state.RectangleShape:
			if setPen(p, v.Stroke, v.StrokeThickness, state.CapRound) {
				b := v.Box()
				p.Rect(b.Min.X, b.Min.Y, b.Width(), b.Height(), "D")
			}
		case *state.PolygonShape:
			if len(v.Points) < 2 || !setPen(p, v.Stroke, v.StrokeThickness, v.StartCap) {
				continue
			}
			pts := make([]gofpdf.PointType, len(v.Points))
			for i, pt := range v.Points {
				pts[i] = gofpdf.PointType{X: pt.X, Y: pt.Y}
			}
			p.Polygon(pts, "D")
		}
	}
}

// setPen configures stroke color, width and cap. It reports false when the
// shape has no stroke.
func setPen(p *gofpdf.Fpdf, stroke *state.Color, thickness float64, lineCap state.LineCap) bool {
	if stroke == nil {
		return false
	}
	p.SetAlpha(float64(stroke.A)/255, "Normal")
	p.SetDrawColor(int(stroke.R), int(stroke.G), int(stroke.B))
	p.SetLineWidth(thickness)
	p.SetLineCapStyle(pdfCap(lineCap))
	return true
}

// pdfCap maps a cap to the PDF cap styles; PDF has no triangle cap.
func pdfCap(c state.LineCap) string {
	switch c {
	case state.CapRound:
		return "round"
	case state.CapSquare:
		return "square"
	default:
		return "butt"
	}
}
