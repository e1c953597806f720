package engine

import (
	"errors"
	"fmt"

	"github.com/grafika/grafika/internal/shape"
)

// ErrUnknownTool is returned by ParseTool for names it does not know.
var ErrUnknownTool = errors.New("engine: unknown tool")

// Tool is the active pointer tool.
type Tool string

const (
	ToolSelect       Tool = "select"
	ToolBrush        Tool = "brush"
	ToolEraser       Tool = "eraser"
	ToolCross        Tool = "cross"
	ToolStarCrescent Tool = "starCrescent"
	ToolYinYang      Tool = "yinYang"
)

// ParseTool maps a toolbar name to a Tool.
func ParseTool(name string) (Tool, error) {
	switch t := Tool(name); t {
	case ToolSelect, ToolBrush, ToolEraser, ToolCross, ToolStarCrescent, ToolYinYang:
		return t, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTool, name)
}

// Freehand reports whether the tool draws point sequences.
func (t Tool) Freehand() bool {
	return t == ToolBrush || t == ToolEraser
}

// ShapeKind returns the kind a creation tool produces.
func (t Tool) ShapeKind() (shape.Kind, bool) {
	switch t {
	case ToolCross:
		return shape.KindCross, true
	case ToolStarCrescent:
		return shape.KindStarCrescent, true
	case ToolYinYang:
		return shape.KindYinYang, true
	}
	return "", false
}

// SetTool switches the active tool. Any gesture in progress is dropped,
// including an uncommitted freehand stroke.
func (e *Engine) SetTool(t Tool) {
	e.tool = t
	e.drag = nil
	e.stroke = nil
	e.creating = false

	switch t {
	case ToolSelect:
		e.cursor = shape.CursorDefault
	case ToolEraser:
		e.cursor = shape.CursorEraser
	default:
		e.cursor = shape.CursorCrosshair
	}
}
