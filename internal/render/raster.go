package render

import (
	"errors"
	"fmt"
	"image"
	"io"
	"math"

	"github.com/gogpu/gg"

	"github.com/grafika/grafika/internal/geom"
)

// ErrEmptySurface is returned when rasterizing onto a surface without area.
var ErrEmptySurface = errors.New("render: surface has no area")

const (
	// miterLimit matches the Canvas2D default.
	miterLimit = 10
	// aaMargin covers antialiasing spill past the geometric bounds.
	aaMargin = 2
)

// Rasterize executes draw commands on a transparent width x height surface
// using the gg software renderer and returns the resulting image.
func Rasterize(commands []DrawCommand, width, height int) (*image.RGBA, error) {
	dc, err := rasterize(commands, width, height)
	if err != nil {
		return nil, err
	}
	return toRGBA(dc.Image()), nil
}

// EncodePNG rasterizes the commands and writes them as a PNG image.
func EncodePNG(w io.Writer, commands []DrawCommand, width, height int) error {
	dc, err := rasterize(commands, width, height)
	if err != nil {
		return err
	}
	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

func rasterize(commands []DrawCommand, width, height int) (*gg.Context, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("rasterize %dx%d: %w", width, height, ErrEmptySurface)
	}

	dc := gg.NewContext(width, height)
	for i, cmd := range commands {
		switch cmd.Op {
		case OpClear:
			dc.Clear()
		case OpPath:
			var err error
			if cmd.Erases() {
				err = erase(dc, cmd)
			} else {
				err = paint(dc, cmd.Matrix(), cmd, cmd.Fill, cmd.Stroke)
			}
			if err != nil {
				return nil, fmt.Errorf("command %d (%s): %w", i, cmd.ObjectID, err)
			}
		}
	}
	return dc, nil
}

// paint fills then strokes the command path with the given colors under m.
func paint(dc *gg.Context, m geom.Matrix2D, cmd DrawCommand, fill, stroke string) error {
	dc.SetTransform(toGG(m))
	defer dc.Identity()

	if fill != "" {
		tracePath(dc, cmd.Path)
		dc.SetHexColor(fill)
		if err := dc.Fill(); err != nil {
			return fmt.Errorf("fill: %w", err)
		}
	}

	if stroke != "" && cmd.StrokeWidth > 0 {
		tracePath(dc, cmd.Path)
		dc.SetHexColor(stroke)
		dc.SetLineWidth(cmd.StrokeWidth)
		dc.SetLineCap(lineCap(cmd.LineCap))
		dc.SetLineJoin(lineJoin(cmd.LineJoin))
		if len(cmd.Dash) > 0 {
			dc.SetDash(cmd.Dash...)
		} else {
			dc.ClearDash()
		}
		if err := dc.Stroke(); err != nil {
			return fmt.Errorf("stroke: %w", err)
		}
	}
	return nil
}

// erase implements destination-out: the command's coverage is rendered
// opaque into a scratch context covering only its device bounds, and that
// coverage is subtracted from the destination pixels in place.
func erase(dc *gg.Context, cmd DrawCommand) error {
	area := deviceBounds(cmd).Intersect(image.Rect(0, 0, dc.Width(), dc.Height()))
	if area.Empty() {
		return nil
	}

	scratch := gg.NewContext(area.Dx(), area.Dy())
	m := geom.Translate(float64(-area.Min.X), float64(-area.Min.Y)).Multiply(cmd.Matrix())
	if err := paint(scratch, m, cmd, opaque(cmd.Fill), opaque(cmd.Stroke)); err != nil {
		return err
	}

	// Both pixmaps hold premultiplied RGBA, so scaling all four channels
	// by the kept alpha is exact.
	target := dc.ResizeTarget()
	dst, stride := target.Data(), target.Width()*4
	mask, maskStride := scratch.ResizeTarget().Data(), area.Dx()*4
	for y := 0; y < area.Dy(); y++ {
		row := (area.Min.Y+y)*stride + area.Min.X*4
		for x := 0; x < area.Dx(); x++ {
			a := mask[y*maskStride+x*4+3]
			if a == 0 {
				continue
			}
			keep := 255 - uint32(a)
			i := row + x*4
			for c := 0; c < 4; c++ {
				dst[i+c] = uint8(uint32(dst[i+c]) * keep / 255)
			}
		}
	}
	target.NotifyPixelsChanged()
	return nil
}

// deviceBounds returns the pixel rectangle a command can touch. Stroke
// width is added in local units before transforming, so anisotropic scale
// is accounted for; miter joins get the canvas default miter limit.
func deviceBounds(cmd DrawCommand) image.Rectangle {
	local, ok := pathBounds(cmd.Path)
	if !ok {
		return image.Rectangle{}
	}
	if cmd.Stroke != "" && cmd.StrokeWidth > 0 {
		pad := cmd.StrokeWidth / 2
		if cmd.LineJoin != LineJoinRound && cmd.LineJoin != "bevel" {
			pad *= miterLimit
		}
		local = local.Inflate(pad)
	}

	r := cmd.Matrix().TransformRect(local)
	return image.Rect(
		int(math.Floor(r.X))-aaMargin,
		int(math.Floor(r.Y))-aaMargin,
		int(math.Ceil(r.X+r.Width))+aaMargin,
		int(math.Ceil(r.Y+r.Height))+aaMargin,
	)
}

// pathBounds returns the local bounds of a path. Cubic control points and
// the full circle of an arc are included, which may overestimate.
func pathBounds(path []PathCommand) (geom.Rect, bool) {
	var pts []geom.Point
	for _, cmd := range path {
		if len(cmd) == 0 {
			continue
		}
		op, _ := cmd[0].(string)
		switch op {
		case "M", "L", "C":
			for i := 1; i+1 < len(cmd); i += 2 {
				pts = append(pts, geom.Pt(toFloat64(cmd[i]), toFloat64(cmd[i+1])))
			}
		case "A":
			if len(cmd) >= 4 {
				cx, cy, r := toFloat64(cmd[1]), toFloat64(cmd[2]), math.Abs(toFloat64(cmd[3]))
				pts = append(pts, geom.Pt(cx-r, cy-r), geom.Pt(cx+r, cy+r))
			}
		}
	}
	if len(pts) == 0 {
		return geom.Rect{}, false
	}
	return geom.BoundsOf(pts...), true
}

// opaque maps any set color to opaque black for coverage rendering.
func opaque(color string) string {
	if color == "" {
		return ""
	}
	return "#000000"
}

// tracePath replays path commands on the context in local coordinates.
// The context transform maps them into device space.
func tracePath(dc *gg.Context, path []PathCommand) {
	dc.ClearPath()
	var open bool

	for _, cmd := range path {
		if len(cmd) == 0 {
			continue
		}
		op, ok := cmd[0].(string)
		if !ok {
			continue
		}

		switch op {
		case "M":
			if len(cmd) >= 3 {
				dc.MoveTo(toFloat64(cmd[1]), toFloat64(cmd[2]))
				open = true
			}
		case "L":
			if len(cmd) >= 3 {
				x, y := toFloat64(cmd[1]), toFloat64(cmd[2])
				if open {
					dc.LineTo(x, y)
				} else {
					dc.MoveTo(x, y)
					open = true
				}
			}
		case "C":
			if len(cmd) >= 7 {
				dc.CubicTo(
					toFloat64(cmd[1]), toFloat64(cmd[2]),
					toFloat64(cmd[3]), toFloat64(cmd[4]),
					toFloat64(cmd[5]), toFloat64(cmd[6]),
				)
			}
		case "A":
			if len(cmd) >= 7 {
				first, segs := arcToCubics(
					toFloat64(cmd[1]), toFloat64(cmd[2]), toFloat64(cmd[3]),
					toFloat64(cmd[4]), toFloat64(cmd[5]), toBool(cmd[6]),
				)
				if open {
					dc.LineTo(first.X, first.Y)
				} else {
					dc.MoveTo(first.X, first.Y)
					open = true
				}
				for _, s := range segs {
					dc.CubicTo(s.c1.X, s.c1.Y, s.c2.X, s.c2.Y, s.end.X, s.end.Y)
				}
			}
		case "Z":
			if open {
				dc.ClosePath()
			}
		}
	}
}

// toGG converts a canvas-layout matrix into gg's row-major layout.
func toGG(m geom.Matrix2D) gg.Matrix {
	return gg.Matrix{
		A: m[0], B: m[2], C: m[4],
		D: m[1], E: m[3], F: m[5],
	}
}

func lineCap(name string) gg.LineCap {
	switch name {
	case LineCapRound:
		return gg.LineCapRound
	case "square":
		return gg.LineCapSquare
	default:
		return gg.LineCapButt
	}
}

func lineJoin(name string) gg.LineJoin {
	switch name {
	case LineJoinRound:
		return gg.LineJoinRound
	case "bevel":
		return gg.LineJoinBevel
	default:
		return gg.LineJoinMiter
	}
}

func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			rgba.Set(x, y, img.At(b.Min.X+x, b.Min.Y+y))
		}
	}
	return rgba
}
