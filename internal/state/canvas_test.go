package state

import (
	"testing"

	"LineEditor/internal/state/statetest"

	"github.com/stretchr/testify/assert"
)

func TestCanvasChildren(t *testing.T) {
	c := NewCanvas("drawing")
	a, b, d := NewLineShape(), NewRectangleShape(), NewLineShape()
	c.Add(a, b)
	c.Add(d)
	assert.Equal(t, 3, c.Len())
	assert.Equal(t, 1, c.IndexOf(b))
	assert.True(t, c.Has(d))

	assert.True(t, c.Remove(b))
	assert.False(t, c.Remove(b))
	assert.Equal(t, []Shape{a, d}, c.Children)
	assert.Equal(t, -1, c.IndexOf(b))

	c.Clear()
	assert.Zero(t, c.Len())
	assert.False(t, c.Has(a))
}

type recorder struct{ got []Input }

func (r *recorder) HandleInput(in Input) { r.got = append(r.got, in) }

func TestCanvasDispatchSnaps(t *testing.T) {
	c := NewCanvas("drawing")
	r := &recorder{}
	c.Subscribe(r)

	c.Dispatch(InputDown, 7, 8)
	c.EnableSnap = false
	c.Dispatch(InputMove, 7, 8)

	assert.Equal(t, []Input{
		{Kind: InputDown, Pos: Pt(0, 15)},
		{Kind: InputMove, Pos: Pt(7, 8)},
	}, r.got)
}

func TestCanvasDispatchOrder(t *testing.T) {
	c := NewCanvas("drawing")
	var order []string
	first := &recorder{}
	c.Subscribe(first)
	c.Subscribe(InputHandlerFunc(func(in Input) { order = append(order, "func:"+in.Kind.String()) }))

	c.Dispatch(InputUp, 0, 0)
	assert.Len(t, first.got, 1)
	assert.Equal(t, []string{"func:up"}, order)

	c.Unsubscribe(first)
	c.Unsubscribe(&recorder{})
	c.Dispatch(InputMove, 0, 0)
	assert.Len(t, first.got, 1)
	assert.Equal(t, []string{"func:up", "func:move"}, order)
}

func TestCanvasDispatchUnsubscribeDuringEvent(t *testing.T) {
	c := NewCanvas("drawing")
	late := &recorder{}
	c.Subscribe(InputHandlerFunc(func(Input) { c.Unsubscribe(late) }))
	c.Subscribe(late)

	// The handler set is fixed when the event starts.
	c.Dispatch(InputDown, 0, 0)
	assert.Len(t, late.got, 1)
	c.Dispatch(InputDown, 0, 0)
	assert.Len(t, late.got, 1)
}

func TestCanvasHost(t *testing.T) {
	c := NewCanvas("drawing")
	assert.NotPanics(t, func() {
		c.Capture()
		c.ReleaseCapture()
		c.Invalidate()
	})
	assert.False(t, c.IsCaptured())

	h := &statetest.Host{}
	c.Host = h
	c.Capture()
	assert.True(t, c.IsCaptured())
	c.ReleaseCapture()
	c.Invalidate()
	c.Invalidate()
	assert.False(t, c.IsCaptured())
	assert.Equal(t, 1, h.Captures)
	assert.Equal(t, 1, h.Releases)
	assert.Equal(t, 2, h.Invalidations)

	h.Reset()
	assert.Zero(t, h.Invalidations)
}
