package shape

import (
	"math"

	"github.com/grafika/grafika/internal/geom"
	"github.com/grafika/grafika/internal/render"
)

// Proportions of the parametric shapes, relative to Size.
const (
	crossBarRatio = 0.3 // drawn bar thickness

	crescentInnerRatio = 0.75
	crescentOffset     = 0.3
	starOuterRatio     = 0.3
	starInnerDivisor   = 2.5
	starCenterX        = 0.35
	starCenterY        = -0.1
	starClearMargin    = 2 // local units cleared around the star

	yinColor = "#ffffff"
)

// Overlay colors, #rrggbbaa.
const (
	selectionBoxColor   = "#0096ffb3"
	handleFillColor     = "#0096ffcc"
	handleOutlineColor  = "#ffffffe6"
	passiveOutlineColor = "#ff000080"
)

// Draw appends the shape's draw commands to the buffer.
func (s *Shape) Draw(b *render.Buffer) {
	switch s.Kind {
	case KindStroke:
		s.drawStroke(b)
	case KindCross:
		s.drawCross(b)
	case KindStarCrescent:
		s.drawStarCrescent(b)
	case KindYinYang:
		s.drawYinYang(b)
	}
}

// pathCommand returns a path command in the shape's local frame with the
// shape's enabled fill and stroke.
func (s *Shape) pathCommand(p *render.Path) render.DrawCommand {
	cmd := render.DrawCommand{
		Op:        render.OpPath,
		ObjectID:  s.ID,
		Transform: s.Matrix().ToSlice(),
		Path:      p.Commands(),
	}
	if s.FillEnabled {
		cmd.Fill = s.FillColor
	}
	if s.StrokeEnabled {
		cmd.Stroke = s.StrokeColor
		cmd.StrokeWidth = s.StrokeWidth
	}
	return cmd
}

// eraseCommand clears the area of p in the shape's local frame.
func (s *Shape) eraseCommand(p *render.Path) render.DrawCommand {
	return render.DrawCommand{
		Op:        render.OpPath,
		ObjectID:  s.ID,
		Transform: s.Matrix().ToSlice(),
		Path:      p.Commands(),
		Fill:      "#000000",
		Composite: render.CompositeDestinationOut,
	}
}

func (s *Shape) drawCross(b *render.Buffer) {
	size := s.Size
	thick := size * crossBarRatio

	b.Add(s.pathCommand(render.NewPath().Rect(-thick/2, -size, thick, 2*size)))
	b.Add(s.pathCommand(render.NewPath().Rect(-size, -thick/2, 2*size, thick)))
}

func (s *Shape) drawStarCrescent(b *render.Buffer) {
	r := s.Size
	innerR := r * crescentInnerRatio
	offset := r * crescentOffset

	b.Add(s.pathCommand(render.NewPath().Circle(0, 0, r)))

	// Hollow out the inner moon, then outline it.
	b.Add(s.eraseCommand(render.NewPath().Circle(offset, 0, innerR)))
	if s.StrokeEnabled {
		outline := s.pathCommand(render.NewPath().Circle(offset, 0, innerR))
		outline.Fill = ""
		b.Add(outline)
	}

	starOuter := r * starOuterRatio
	starInner := starOuter / starInnerDivisor
	cx, cy := r*starCenterX, r*starCenterY

	b.Add(s.eraseCommand(render.NewPath().Circle(cx, cy, starOuter+starClearMargin)))

	star := render.NewPath()
	for i := 0; i < 5; i++ {
		outerAngle := math.Pi/2 + float64(i)*2*math.Pi/5
		innerAngle := outerAngle + math.Pi/5

		ox, oy := cx+starOuter*math.Cos(outerAngle), cy-starOuter*math.Sin(outerAngle)
		if i == 0 {
			star.MoveTo(ox, oy)
		} else {
			star.LineTo(ox, oy)
		}
		star.LineTo(cx+starInner*math.Cos(innerAngle), cy-starInner*math.Sin(innerAngle))
	}
	star.Close()
	b.Add(s.pathCommand(star))
}

func (s *Shape) drawYinYang(b *render.Buffer) {
	r := s.Size
	small := r / 2
	dot := r / 10

	yang := "#000000"
	if s.FillEnabled {
		yang = s.FillColor
	}

	fill := func(color string, p *render.Path) {
		b.Add(render.DrawCommand{
			Op:        render.OpPath,
			ObjectID:  s.ID,
			Transform: s.Matrix().ToSlice(),
			Path:      p.Commands(),
			Fill:      color,
		})
	}

	fill(yinColor, render.NewPath().Circle(0, 0, r))
	fill(yang, render.NewPath().
		Arc(0, 0, r, 0.5*math.Pi, 1.5*math.Pi, false).
		Arc(0, -small, small, 1.5*math.Pi, 0.5*math.Pi, true).
		Close())
	fill(yinColor, render.NewPath().Circle(0, -small, small))
	fill(yang, render.NewPath().Circle(0, small, small))
	fill(yang, render.NewPath().Circle(0, -small, dot))
	fill(yinColor, render.NewPath().Circle(0, small, dot))

	if s.StrokeEnabled && s.StrokeWidth > 0 {
		b.Add(render.DrawCommand{
			Op:          render.OpPath,
			ObjectID:    s.ID,
			Transform:   s.Matrix().ToSlice(),
			Path:        render.NewPath().Circle(0, 0, r).Commands(),
			Stroke:      s.StrokeColor,
			StrokeWidth: s.StrokeWidth,
		})
	}
}

// drawStroke renders a freehand polyline. A single-point eraser stroke
// clears a dot so that tapping erases.
func (s *Shape) drawStroke(b *render.Buffer) {
	composite := render.CompositeSourceOver
	if s.Brush.Erase {
		composite = render.CompositeDestinationOut
	}

	if len(s.Points) == 1 && s.Brush.Erase {
		p := s.Points[0]
		b.Add(render.DrawCommand{
			Op:        render.OpPath,
			ObjectID:  s.ID,
			Transform: geom.Identity().ToSlice(),
			Path:      render.NewPath().Circle(p.X, p.Y, s.Brush.Width/2).Commands(),
			Fill:      "#000000",
			Composite: composite,
		})
		return
	}
	if len(s.Points) < 2 {
		return
	}

	path := render.NewPath().MoveTo(s.Points[0].X, s.Points[0].Y)
	for _, p := range s.Points[1:] {
		path.LineTo(p.X, p.Y)
	}
	b.Add(render.DrawCommand{
		Op:          render.OpPath,
		ObjectID:    s.ID,
		Transform:   geom.Identity().ToSlice(),
		Path:        path.Commands(),
		Stroke:      s.Brush.Color,
		StrokeWidth: s.Brush.Width,
		LineCap:     render.LineCapRound,
		LineJoin:    render.LineJoinRound,
		Composite:   composite,
	})
}

// DrawSelection draws the dashed selection box and all handles, used while
// the mouse transform mode is active.
func (s *Shape) DrawSelection(b *render.Buffer, m Metrics) {
	if !s.Selectable() {
		return
	}
	eff := s.effectiveScale()
	b.Add(s.outline(selectionBoxColor, 1/eff, []float64{3 / eff, 2 / eff}))

	for _, h := range s.Handles(m) {
		b.Add(render.DrawCommand{
			Op:          render.OpPath,
			ObjectID:    s.ID,
			Transform:   geom.Identity().ToSlice(),
			Path:        render.NewPath().Circle(h.Position.X, h.Position.Y, m.DrawRadius).Commands(),
			Fill:        handleFillColor,
			Stroke:      handleOutlineColor,
			StrokeWidth: 1,
		})
	}
}

// DrawOutline draws the passive selection box shown in the form and
// keyboard transform modes. It has no handles.
func (s *Shape) DrawOutline(b *render.Buffer) {
	if !s.Selectable() {
		return
	}
	eff := s.effectiveScale()
	b.Add(s.outline(passiveOutlineColor, 1.5/eff, []float64{4 / eff, 2 / eff}))
}

func (s *Shape) outline(color string, width float64, dash []float64) render.DrawCommand {
	size := s.Size
	return render.DrawCommand{
		Op:          render.OpPath,
		ObjectID:    s.ID,
		Transform:   s.Matrix().ToSlice(),
		Path:        render.NewPath().Rect(-size, -size, 2*size, 2*size).Commands(),
		Stroke:      color,
		StrokeWidth: width,
		Dash:        dash,
	}
}
