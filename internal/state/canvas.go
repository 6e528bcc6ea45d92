package state

import "slices"

// Canvas is a named container of shapes. Child order is paint order
// (back to front) and hit-test order.
type Canvas struct {
	BaseShape
	Name       string
	Width      float64
	Height     float64
	Background *Color
	Children   []Shape

	EnableSnap bool
	SnapX      float64
	SnapY      float64

	// Host provides capture and repaint. A nil Host is tolerated.
	Host Host

	handlers []InputHandler
}

// NewCanvas creates a 600x600 canvas with snapping enabled on a 15 unit grid.
func NewCanvas(name string) *Canvas {
	return &Canvas{
		BaseShape:  newBase(),
		Name:       name,
		Width:      600,
		Height:     600,
		EnableSnap: true,
		SnapX:      15,
		SnapY:      15,
	}
}

// Add appends shapes to the top of the child list.
func (c *Canvas) Add(shapes ...Shape) {
	c.Children = append(c.Children, shapes...)
}

// Remove deletes the first occurrence of s and reports whether it was found.
func (c *Canvas) Remove(s Shape) bool {
	i := c.IndexOf(s)
	if i < 0 {
		return false
	}
	c.Children = slices.Delete(c.Children, i, i+1)
	return true
}

// IndexOf returns the position of s in the child list, or -1.
func (c *Canvas) IndexOf(s Shape) int {
	return slices.Index(c.Children, s)
}

// Has reports whether s is a child of c.
func (c *Canvas) Has(s Shape) bool {
	return c.IndexOf(s) >= 0
}

// Clear removes every child.
func (c *Canvas) Clear() {
	clear(c.Children)
	c.Children = c.Children[:0]
}

// Len returns the number of children.
func (c *Canvas) Len() int {
	return len(c.Children)
}

// SnapPoint applies the canvas grid to (x, y) when snapping is enabled.
func (c *Canvas) SnapPoint(x, y float64) (float64, float64) {
	if !c.EnableSnap {
		return x, y
	}
	return Snap(x, c.SnapX), Snap(y, c.SnapY)
}

// Subscribe registers h to receive this canvas's input stream.
func (c *Canvas) Subscribe(h InputHandler) {
	c.handlers = append(c.handlers, h)
}

// Unsubscribe removes h; it is a no-op when h was never subscribed.
func (c *Canvas) Unsubscribe(h InputHandler) {
	if i := slices.Index(c.handlers, h); i >= 0 {
		c.handlers = slices.Delete(c.handlers, i, i+1)
	}
}

// Dispatch snaps a raw pointer event and feeds it to every subscriber in
// order. Events are processed strictly one at a time.
func (c *Canvas) Dispatch(kind InputKind, x, y float64) {
	x, y = c.SnapPoint(x, y)
	in := Input{Kind: kind, Pos: Point{X: x, Y: y}}
	for _, h := range slices.Clone(c.handlers) {
		h.HandleInput(in)
	}
}

// IsCaptured reports whether the host currently holds pointer capture.
func (c *Canvas) IsCaptured() bool {
	return c.Host != nil && c.Host.IsCaptured()
}

// Capture asks the host for pointer capture.
func (c *Canvas) Capture() {
	if c.Host != nil {
		c.Host.Capture()
	}
}

// ReleaseCapture gives pointer capture back.
func (c *Canvas) ReleaseCapture() {
	if c.Host != nil {
		c.Host.ReleaseCapture()
	}
}

// Invalidate requests a repaint.
func (c *Canvas) Invalidate() {
	if c.Host != nil {
		c.Host.Invalidate()
	}
}
