package state

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Box is an axis-aligned rectangle. Boxes built by this package are
// canonical: Min holds the smaller coordinates.
type Box struct {
	r2.Box
}

// BoxOf returns the smallest box covering all points. An empty argument list
// yields the zero Box.
func BoxOf(points ...Point) Box {
	if len(points) == 0 {
		return Box{}
	}
	minX, minY := points[0].X, points[0].Y
	maxX, maxY := minX, minY
	for _, p := range points[1:] {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	return Box{r2.NewBox(minX, minY, maxX, maxY)}
}

func (b Box) Width() float64 {
	return b.Size().X
}

func (b Box) Height() float64 {
	return b.Size().Y
}

// Contains reports whether (x, y) lies inside the box, edges included.
func (b Box) Contains(x, y float64) bool {
	return x >= b.Min.X && x <= b.Max.X &&
		y >= b.Min.Y && y <= b.Max.Y
}

// Inflate grows the box by d on every side.
func (b Box) Inflate(d float64) Box {
	return Box{r2.NewBox(b.Min.X-d, b.Min.Y-d, b.Max.X+d, b.Max.Y+d)}
}

// Corners returns the corners clockwise from the top-left (screen
// coordinates, Y down).
func (b Box) Corners() [4]Point {
	return [4]Point{
		{X: b.Min.X, Y: b.Min.Y},
		{X: b.Max.X, Y: b.Min.Y},
		{X: b.Max.X, Y: b.Max.Y},
		{X: b.Min.X, Y: b.Max.Y},
	}
}

// Square returns the box of side size centered on c.
func Square(c Point, size float64) Box {
	h := size / 2
	return Box{r2.NewBox(c.X-h, c.Y-h, c.X+h, c.Y+h)}
}
