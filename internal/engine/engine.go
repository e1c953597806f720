// Package engine is the interaction core of the 2D editor. It owns every
// shape, the selection and the in-progress gesture, consumes pointer,
// keyboard and toolbar input, and answers with draw commands.
package engine

import (
	"time"

	"github.com/grafika/grafika/internal/geom"
	"github.com/grafika/grafika/internal/render"
	"github.com/grafika/grafika/internal/shape"
)

const (
	// minCanvasSide is the smallest accepted drawing surface side, in pixels.
	minCanvasSide = 50
	// maxCanvasSide bounds the surface so an export never allocates an
	// unbounded pixmap.
	maxCanvasSide = 8192
	// minShapeSize is the smallest half-extent a creation gesture must reach.
	minShapeSize = 5
)

// Options configures a new Engine.
type Options struct {
	CanvasWidth  int
	CanvasHeight int
	Metrics      shape.Metrics
	Style        shape.Style
	BrushSize    float64
	BrushColor   string
}

// DefaultOptions returns the editor's initial toolbar and canvas settings.
func DefaultOptions() Options {
	return Options{
		CanvasWidth:  800,
		CanvasHeight: 600,
		Metrics:      shape.DefaultMetrics(),
		Style:        shape.DefaultStyle(),
		BrushSize:    5,
		BrushColor:   "#000000",
	}
}

// Engine is the editor state. It is not safe for concurrent use: every
// command runs to completion on the caller's goroutine, like a UI event
// handler.
type Engine struct {
	tool Tool
	mode Mode

	// Painter's order: later shapes draw on top and win hit tests.
	shapes   []*shape.Shape
	selected *shape.Shape

	// Gesture state. At most one of drag, stroke and creating is live.
	drag     *dragSession
	stroke   *shape.Shape
	creating bool
	start    geom.Point

	style      shape.Style
	brushSize  float64
	brushColor string
	metrics    shape.Metrics

	width  int
	height int
	cursor shape.Cursor

	notices []Notice
}

// NewEngine creates an engine with the select tool and the form transform
// mode active.
func NewEngine(opts Options) *Engine {
	e := &Engine{
		tool:       ToolSelect,
		mode:       ModeForm,
		style:      opts.Style,
		brushSize:  opts.BrushSize,
		brushColor: opts.BrushColor,
		metrics:    opts.Metrics,
		cursor:     shape.CursorDefault,
	}
	if e.brushSize <= 0 {
		e.brushSize = DefaultOptions().BrushSize
	}
	if e.brushColor == "" {
		e.brushColor = DefaultOptions().BrushColor
	}
	e.SetCanvasSize(opts.CanvasWidth, opts.CanvasHeight)
	e.notify("Welcome! Mouse transform mode supports moving, rotating and scaling.", 3500*time.Millisecond)
	return e
}

// --- Commands (frontend → backend) ---

// SetCanvasSize resizes the drawing surface. Each side is clamped to
// [50, 8192] px.
func (e *Engine) SetCanvasSize(width, height int) {
	e.width = min(max(width, minCanvasSide), maxCanvasSide)
	e.height = min(max(height, minCanvasSide), maxCanvasSide)
}

// Delete removes the selected shape. Without a selection it only posts a
// notice.
func (e *Engine) Delete() {
	if e.selected == nil {
		e.notify(msgSelectFirst, 2*time.Second)
		return
	}
	e.deleteSelected()
}

func (e *Engine) deleteSelected() {
	id := e.selected.ID
	kept := e.shapes[:0]
	for _, s := range e.shapes {
		if s.ID != id {
			kept = append(kept, s)
		}
	}
	clear(e.shapes[len(kept):])
	e.shapes = kept
	e.selected = nil
	e.drag = nil
	logger().Debug("shape deleted", "id", id, "remaining", len(e.shapes))
}

// Clear removes every shape and the selection.
func (e *Engine) Clear() {
	e.shapes = nil
	e.selected = nil
	e.drag = nil
	e.stroke = nil
	e.creating = false
	e.notify("Canvas cleared.", 1500*time.Millisecond)
	logger().Debug("canvas cleared")
}

// --- Queries (frontend ← backend) ---

// Tool returns the active tool.
func (e *Engine) Tool() Tool {
	return e.tool
}

// Mode returns the active transform mode.
func (e *Engine) Mode() Mode {
	return e.mode
}

// Shapes returns the committed shapes in painter's order. The slice is a
// copy; the shapes are live.
func (e *Engine) Shapes() []*shape.Shape {
	out := make([]*shape.Shape, len(e.shapes))
	copy(out, e.shapes)
	return out
}

// Selected returns the selected shape, or nil.
func (e *Engine) Selected() *shape.Shape {
	return e.selected
}

// SelectedID returns the id of the selected shape, or "".
func (e *Engine) SelectedID() string {
	if e.selected == nil {
		return ""
	}
	return e.selected.ID
}

// Cursor returns the pointer affordance for the current hover and gesture.
func (e *Engine) Cursor() shape.Cursor {
	return e.cursor
}

// Dragging reports whether a move, resize or rotate gesture is in progress.
func (e *Engine) Dragging() bool {
	return e.drag != nil
}

// CanvasSize returns the drawing surface size in pixels.
func (e *Engine) CanvasSize() (int, int) {
	return e.width, e.height
}

// Style returns the style applied to new shapes.
func (e *Engine) Style() shape.Style {
	return e.style
}

// Brush returns the brush color and size.
func (e *Engine) Brush() (string, float64) {
	return e.brushColor, e.brushSize
}

// State is a snapshot of the editor for toolbar and form synchronization.
type State struct {
	Tool       Tool       `json:"tool"`
	Mode       Mode       `json:"mode"`
	Cursor     string     `json:"cursor"`
	SelectedID string     `json:"selectedId"`
	Shapes     int        `json:"shapes"`
	Dragging   bool       `json:"dragging"`
	Form       FormValues `json:"form"`
}

// State returns the current editor snapshot.
func (e *Engine) State() State {
	return State{
		Tool:       e.tool,
		Mode:       e.mode,
		Cursor:     e.cursor.String(),
		SelectedID: e.SelectedID(),
		Shapes:     len(e.shapes),
		Dragging:   e.drag != nil,
		Form:       e.Form(),
	}
}

// Render returns the full frame: a clear, every shape, the stroke being
// drawn and, with the select tool, the selection overlay.
func (e *Engine) Render() []render.DrawCommand {
	b := render.NewBuffer()
	e.drawScene(b)
	return b.Commands()
}

// RenderJSON returns Render serialized for the browser frontend.
func (e *Engine) RenderJSON() string {
	result, _ := render.DrawCommandsToJSON(e.Render())
	return result
}

func (e *Engine) drawScene(b *render.Buffer) {
	b.Clear()
	for _, s := range e.shapes {
		s.Draw(b)
	}
	if e.stroke != nil {
		e.stroke.Draw(b)
	}
	if e.selected == nil || e.tool != ToolSelect {
		return
	}
	if e.mode == ModeMouse {
		e.selected.DrawSelection(b, e.metrics)
	} else {
		e.selected.DrawOutline(b)
	}
}

// shapeAt returns the topmost selectable shape containing p.
func (e *Engine) shapeAt(p geom.Point) *shape.Shape {
	for i := len(e.shapes) - 1; i >= 0; i-- {
		if e.shapes[i].Contains(p) {
			return e.shapes[i]
		}
	}
	return nil
}
