package render

import (
	"encoding/json"

	"github.com/grafika/grafika/internal/geom"
)

// Draw operations understood by both the browser frontend and Rasterize.
const (
	// OpClear clears the whole surface to transparent.
	OpClear = "clear"
	// OpPath fills and/or strokes a path under a world transform.
	OpPath = "path"
)

// Composite operations. The empty string means CompositeSourceOver.
const (
	CompositeSourceOver     = "source-over"
	CompositeDestinationOut = "destination-out"
)

// Line caps and joins use their Canvas2D names.
const (
	LineCapRound  = "round"
	LineJoinRound = "round"
)

// DrawCommand represents a single drawing operation for the frontend to execute.
// The frontend receives a list of these and executes them on a Canvas2D context.
// A path is filled before it is stroked, matching the order every shape
// draws in.
type DrawCommand struct {
	Op          string        `json:"op"`                    // Operation: "clear", "path"
	ObjectID    string        `json:"objectId,omitempty"`    // For hit correlation
	Transform   []float64     `json:"transform,omitempty"`   // [a, b, c, d, e, f] affine matrix
	Path        []PathCommand `json:"path,omitempty"`        // Path data for "path" ops
	Fill        string        `json:"fill,omitempty"`        // Fill color, empty for none
	Stroke      string        `json:"stroke,omitempty"`      // Stroke color, empty for none
	StrokeWidth float64       `json:"strokeWidth,omitempty"` // Stroke width in local units
	LineCap     string        `json:"lineCap,omitempty"`
	LineJoin    string        `json:"lineJoin,omitempty"`
	Dash        []float64     `json:"dash,omitempty"`      // Stroke dash pattern in local units
	Composite   string        `json:"composite,omitempty"` // globalCompositeOperation
}

// Erases reports whether the command removes pixels instead of painting them.
func (c DrawCommand) Erases() bool {
	return c.Composite == CompositeDestinationOut
}

// Matrix returns the command transform, or Identity when none was set.
func (c DrawCommand) Matrix() geom.Matrix2D {
	if len(c.Transform) != 6 {
		return geom.Identity()
	}
	var m geom.Matrix2D
	copy(m[:], c.Transform)
	return m
}

// Buffer accumulates draw commands in painter's order (back to front).
type Buffer struct {
	commands []DrawCommand
}

// NewBuffer creates an empty command buffer.
func NewBuffer() *Buffer {
	return &Buffer{}
}

// Clear appends a full-surface clear.
func (b *Buffer) Clear() {
	b.commands = append(b.commands, DrawCommand{Op: OpClear})
}

// Add appends a command.
func (b *Buffer) Add(cmd DrawCommand) {
	b.commands = append(b.commands, cmd)
}

// Len returns the number of buffered commands.
func (b *Buffer) Len() int {
	return len(b.commands)
}

// Commands returns the buffered commands.
func (b *Buffer) Commands() []DrawCommand {
	return b.commands
}

// DrawCommandsToJSON serializes draw commands to JSON.
func DrawCommandsToJSON(commands []DrawCommand) (string, error) {
	if commands == nil {
		return "[]", nil
	}
	data, err := json.Marshal(commands)
	if err != nil {
		return "[]", err
	}
	return string(data), nil
}
