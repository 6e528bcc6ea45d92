package editor

import "LineEditor/internal/state"

// CreateGrid appends evenly spaced lines to c: horizontal lines at y = size,
// 2*size, ... below height spanning originX to width, then vertical lines at
// x = size, ... below width spanning originY to height. It returns the
// number of lines added. The lines are inert (no bounds).
func CreateGrid(c *state.Canvas, width, height, size, originX, originY float64, stroke state.Color, thickness float64) int {
	if size <= 0 {
		return 0
	}
	n := 0
	add := func(x1, y1, x2, y2 float64) {
		line := state.NewLineShape()
		line.Point1.Set(x1, y1)
		line.Point2.Set(x2, y2)
		s := stroke
		line.Stroke = &s
		line.StrokeThickness = thickness
		c.Add(line)
		n++
	}
	for y := size; y < height; y += size {
		add(originX, y, width, y)
	}
	for x := size; x < width; x += size {
		add(x, originY, x, height)
	}
	return n
}
