// Package export renders canvas stacks to files. Canvases are painted in the
// order given and their children in list order, the same way the screen
// renderer walks them.
package export

import (
	"errors"
	"math"

	"LineEditor/internal/state"
)

// ErrNoCanvas is returned when there is nothing to export.
var ErrNoCanvas = errors.New("export: no canvas")

// pageSize is the largest width and height among the canvases.
func pageSize(canvases []*state.Canvas) (float64, float64) {
	var w, h float64
	for _, c := range canvases {
		w = math.Max(w, c.Width)
		h = math.Max(h, c.Height)
	}
	return w, h
}

// segments returns the edges of a shape's stroke outline. Rectangles and
// polygons are closed rings.
func segments(s state.Shape) [][2]state.Point {
	switch v := s.(type) {
	case *state.LineShape:
		return [][2]state.Point{{v.Point1.Point(), v.Point2.Point()}}
	case *state.RectangleShape:
		corners := v.Box().Corners()
		return ring(corners[:])
	case *state.PolygonShape:
		return ring(v.Vertices())
	}
	return nil
}

func ring(pts []state.Point) [][2]state.Point {
	if len(pts) < 2 {
		return nil
	}
	out := make([][2]state.Point, 0, len(pts))
	for i := range pts {
		out = append(out, [2]state.Point{pts[i], pts[(i+1)%len(pts)]})
	}
	return out
}
