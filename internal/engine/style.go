package engine

import "github.com/grafika/grafika/internal/shape"

// eraserColor is the nominal color of eraser strokes. Erasing removes
// pixels, so it never shows.
const eraserColor = "#FFFFFF"

// SetStyle sets the fill and stroke used for new shapes and applies it to
// the selected shape.
func (e *Engine) SetStyle(st shape.Style) {
	e.style = st
	if e.selected != nil && e.selected.Selectable() {
		e.selected.Style = st
	}
}

// SetBrush sets the freehand brush color and size. Non-positive sizes and
// empty colors leave the current value.
func (e *Engine) SetBrush(color string, size float64) {
	if color != "" {
		e.brushColor = color
	}
	if size > 0 {
		e.brushSize = size
	}
}
