package engine

import (
	"fmt"
	"io"

	"github.com/grafika/grafika/internal/render"
)

// Export writes the committed shapes as a PNG the size of the canvas. The
// selection overlay and any stroke still being drawn are left out, and the
// background is transparent.
func (e *Engine) Export(w io.Writer) error {
	b := render.NewBuffer()
	b.Clear()
	for _, s := range e.shapes {
		s.Draw(b)
	}
	if err := render.EncodePNG(w, b.Commands(), e.width, e.height); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	logger().Debug("canvas exported", "shapes", len(e.shapes), "width", e.width, "height", e.height)
	return nil
}
