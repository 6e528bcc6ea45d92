package state

// InputKind identifies a raw pointer event.
type InputKind int

const (
	InputDown InputKind = iota
	InputUp
	InputMove
)

func (k InputKind) String() string {
	switch k {
	case InputDown:
		return "down"
	case InputUp:
		return "up"
	case InputMove:
		return "move"
	default:
		return "unknown"
	}
}

// Input is one pointer event in canvas-local coordinates. Positions reaching
// an InputHandler have already been snapped by the canvas.
type Input struct {
	Kind InputKind
	Pos  Point
}

// InputHandler consumes the canvas input stream. Handlers are called
// synchronously, in subscription order, one event at a time.
type InputHandler interface {
	HandleInput(in Input)
}

// InputHandlerFunc adapts a plain function to InputHandler. Func values are
// not comparable, so a handler subscribed this way cannot be unsubscribed.
type InputHandlerFunc func(in Input)

func (f InputHandlerFunc) HandleInput(in Input) {
	f(in)
}

// Host is implemented by the presentation layer and injected into a canvas.
// It owns pointer capture (at most one holder at a time) and repainting.
// Invalidate may be called redundantly.
type Host interface {
	IsCaptured() bool
	Capture()
	ReleaseCapture()
	Invalidate()
}
