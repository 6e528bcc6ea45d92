// Package editor ties the canvases and tools together into the view-model
// the presentation layer drives.
package editor

import (
	"log/slog"
	"slices"

	"LineEditor/internal/config"
	"LineEditor/internal/state"
	"LineEditor/internal/tools"
)

// ToolKind names one of the interactive tools.
type ToolKind int

const (
	ToolSelection ToolKind = iota
	ToolLine
	ToolRectangle
)

func (k ToolKind) String() string {
	switch k {
	case ToolSelection:
		return "selection"
	case ToolLine:
		return "line"
	case ToolRectangle:
		return "rectangle"
	default:
		return "unknown"
	}
}

// Editor owns the three stacked canvases (background grid, drawing, bounds
// overlay) and the tools that edit the drawing canvas.
type Editor struct {
	Background *state.Canvas
	Drawing    *state.Canvas
	Overlay    *state.Canvas

	Selection *tools.SelectionTool
	Line      *tools.LineTool
	Rectangle *tools.RectangleTool

	active ToolKind
}

// New builds an editor from cfg with the line tool active. Hosts are not set;
// the presentation layer injects them into the canvases.
func New(cfg config.Config) *Editor {
	e := &Editor{
		Background: newCanvas("background", cfg),
		Drawing:    newCanvas("drawing", cfg),
		Overlay:    newCanvas("overlay", cfg),
	}
	e.Background.Background = cfg.Canvas.Background

	if cfg.Grid.Size > 0 {
		n := CreateGrid(e.Background, cfg.Canvas.Width, cfg.Canvas.Height, cfg.Grid.Size, 0, 0,
			cfg.Grid.Stroke, cfg.Grid.Thickness)
		slog.Debug("grid created", "lines", n, "size", cfg.Grid.Size)
	}

	e.Selection = tools.NewSelectionTool(e.Drawing, e.Overlay)

	e.Line = tools.NewLineTool(e.Drawing, e.Overlay)
	stroke := cfg.Line.Stroke
	e.Line.Style = tools.Style{
		Stroke:    &stroke,
		Thickness: cfg.Line.Thickness,
		StartCap:  cfg.Line.StartCap,
		EndCap:    cfg.Line.EndCap,
	}

	e.Rectangle = tools.NewRectangleTool(e.Drawing, e.Overlay)
	rstroke := cfg.Rectangle.Stroke
	e.Rectangle.Style = tools.Style{Stroke: &rstroke, Thickness: cfg.Rectangle.Thickness}
	e.Rectangle.Selectable = cfg.Rectangle.Selectable

	e.UseTool(ToolLine)
	return e
}

func newCanvas(name string, cfg config.Config) *state.Canvas {
	c := state.NewCanvas(name)
	c.Width = cfg.Canvas.Width
	c.Height = cfg.Canvas.Height
	c.EnableSnap = cfg.Snap.Enabled
	c.SnapX = cfg.Snap.X
	c.SnapY = cfg.Snap.Y
	return c
}

// Canvases returns the canvases in paint order.
func (e *Editor) Canvases() []*state.Canvas {
	return []*state.Canvas{e.Background, e.Drawing, e.Overlay}
}

// ActiveTool returns the tool enabled by the last UseTool call.
func (e *Editor) ActiveTool() ToolKind {
	return e.active
}

// UseTool enables kind and disables the other tools. Disabling a tool ends
// its gesture or clears its selection.
func (e *Editor) UseTool(kind ToolKind) {
	if kind != ToolSelection {
		e.Selection.SetEnabled(false)
	}
	if kind != ToolLine {
		e.Line.SetEnabled(false)
	}
	if kind != ToolRectangle {
		e.Rectangle.SetEnabled(false)
	}

	switch kind {
	case ToolSelection:
		e.Selection.SetEnabled(true)
	case ToolLine:
		e.Line.SetEnabled(true)
	case ToolRectangle:
		e.Rectangle.SetEnabled(true)
	}
	if e.active != kind {
		slog.Info("tool changed", "tool", kind)
	}
	e.active = kind
}

// ToggleSnap flips snapping on the drawing canvas.
func (e *Editor) ToggleSnap() {
	e.Drawing.EnableSnap = !e.Drawing.EnableSnap
	slog.Info("snap toggled", "enabled", e.Drawing.EnableSnap)
}

// Clear removes every shape from the drawing canvas. Visible bounds are
// hidden first so no helpers are left behind on the overlay.
func (e *Editor) Clear() {
	for _, c := range e.Drawing.Children {
		if b := c.Bounds(); b != nil && b.IsVisible() {
			b.Hide()
		}
	}
	removed := slices.Clone(e.Drawing.Children)
	e.Drawing.Clear()
	e.Selection.Forget(removed...)
	e.Drawing.Invalidate()
	e.Overlay.Invalidate()
	slog.Info("drawing cleared", "shapes", len(removed), "created", state.ShapesCreated())
}

// Render requests a repaint of all three canvases.
func (e *Editor) Render() {
	e.Background.Invalidate()
	e.Drawing.Invalidate()
	e.Overlay.Invalidate()
}

// Delete removes every shape whose bounds are currently shown and returns
// how many were removed. All bounds are hidden before any shape is removed.
func (e *Editor) Delete() int {
	var selected []state.Shape
	for _, c := range e.Drawing.Children {
		if b := c.Bounds(); b != nil && b.IsVisible() {
			selected = append(selected, c)
		}
	}

	for _, c := range selected {
		c.Bounds().Hide()
	}
	for _, c := range selected {
		e.Drawing.Remove(c)
	}
	e.Selection.Forget(selected...)

	e.Drawing.Invalidate()
	e.Overlay.Invalidate()
	if len(selected) > 0 {
		slog.Info("shapes deleted", "count", len(selected), "created", state.ShapesCreated())
	}
	return len(selected)
}

// HandleKey runs the command bound to a key name and reports whether the key
// was bound. S, L and R pick a tool, G toggles snapping and Delete removes
// the selection.
func (e *Editor) HandleKey(name string) bool {
	switch name {
	case "S":
		e.UseTool(ToolSelection)
	case "L":
		e.UseTool(ToolLine)
	case "R":
		e.UseTool(ToolRectangle)
	case "G":
		e.ToggleSnap()
	case "Delete":
		e.Delete()
	default:
		return false
	}
	return true
}
