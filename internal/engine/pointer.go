package engine

import (
	"math"

	"github.com/grafika/grafika/internal/geom"
	"github.com/grafika/grafika/internal/shape"
)

// PointerDown starts a gesture at (x, y) in surface coordinates.
//
// With the select tool in mouse mode, handles of the selected shape are
// tested before any shape body.
func (e *Engine) PointerDown(x, y float64) {
	p := geom.Pt(x, y)
	e.start = p
	e.drag = nil

	if e.tool.Freehand() {
		e.startStroke(p)
		return
	}

	if e.tool == ToolSelect && e.selected != nil && e.mode == ModeMouse {
		if h, ok := e.selected.HandleAt(p, e.metrics); ok {
			e.drag = newHandleDrag(e.selected, h, p)
			e.cursor = h.Cursor
			return
		}
	}

	if e.tool == ToolSelect {
		e.selected = e.shapeAt(p)
		if e.selected != nil && e.mode == ModeMouse {
			e.drag = newMoveDrag(e.selected, p)
			e.cursor = shape.CursorGrabbing
		}
		return
	}

	if _, ok := e.tool.ShapeKind(); ok {
		e.selected = nil
		e.creating = true
	}
}

// PointerMove updates the hover cursor and advances the current gesture.
func (e *Engine) PointerMove(x, y float64) {
	p := geom.Pt(x, y)

	if e.tool == ToolSelect && e.drag == nil {
		e.cursor = e.hoverCursor(p)
	}

	if e.tool.Freehand() {
		if e.stroke != nil {
			e.stroke.AddPoint(p.X, p.Y)
		}
		return
	}

	if e.drag != nil && e.selected != nil && e.mode == ModeMouse {
		e.drag.apply(e.selected, p)
	}
}

// PointerUp ends the current gesture at (x, y).
func (e *Engine) PointerUp(x, y float64) {
	p := geom.Pt(x, y)

	if e.tool.Freehand() {
		e.endStroke()
		return
	}

	if e.creating {
		e.creating = false
		e.finishCreate(p)
	}

	if e.drag != nil {
		if e.drag.kind == dragMove && e.selected != nil {
			e.cursor = shape.CursorGrab
		} else if e.tool == ToolSelect {
			e.cursor = e.hoverCursor(p)
		}
		e.drag = nil
	}
}

// PointerLeave is an implicit release when the pointer leaves the surface.
// A freehand stroke is committed; a pending creation gesture is dropped
// since there is no end point.
func (e *Engine) PointerLeave() {
	if e.tool.Freehand() {
		e.endStroke()
	}
	e.creating = false
	if e.drag != nil {
		e.drag = nil
		e.cursor = shape.CursorDefault
	}
}

func (e *Engine) hoverCursor(p geom.Point) shape.Cursor {
	if e.selected == nil || e.mode != ModeMouse {
		return shape.CursorDefault
	}
	if h, ok := e.selected.HandleAt(p, e.metrics); ok {
		return h.Cursor
	}
	if e.selected.Contains(p) {
		return shape.CursorGrab
	}
	return shape.CursorDefault
}

// finishCreate turns the creation gesture into a shape centered between the
// start and end points. Gestures smaller than minShapeSize are treated as
// clicks. The select tool is restored either way.
func (e *Engine) finishCreate(end geom.Point) {
	kind, ok := e.tool.ShapeKind()
	if !ok {
		return
	}
	center := geom.Pt((e.start.X+end.X)/2, (e.start.Y+end.Y)/2)
	size := math.Max(math.Abs(end.X-e.start.X), math.Abs(end.Y-e.start.Y)) / 2

	if size >= minShapeSize {
		s := shape.New(kind, center.X, center.Y, size, e.style)
		e.shapes = append(e.shapes, s)
		e.selected = s
		logger().Debug("shape created", "id", s.ID, "kind", kind, "x", center.X, "y", center.Y, "size", size)
	}
	e.SetTool(ToolSelect)
}

func (e *Engine) startStroke(p geom.Point) {
	brush := shape.Brush{Color: e.brushColor, Width: e.brushSize}
	if e.tool == ToolEraser {
		brush = shape.Brush{Color: eraserColor, Width: e.brushSize, Erase: true}
	}
	e.stroke = shape.NewStroke(p.X, p.Y, brush)
}

// endStroke commits the stroke being drawn. Brush strokes need two points,
// eraser strokes one, so a tap erases a dot.
func (e *Engine) endStroke() {
	s := e.stroke
	if s == nil {
		return
	}
	e.stroke = nil

	need := 2
	if s.Brush.Erase {
		need = 1
	}
	if len(s.Points) >= need {
		e.shapes = append(e.shapes, s)
	}
}
