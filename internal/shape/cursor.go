package shape

// Cursor is the pointer affordance the presentation layer should show.
type Cursor int

const (
	CursorDefault Cursor = iota
	CursorResizeNWSE
	CursorResizeNESW
	CursorRotate
	CursorGrab
	CursorGrabbing
	CursorCrosshair
	CursorEraser
)

var cursorNames = [...]string{
	"default",
	"nwse-resize",
	"nesw-resize",
	"rotate",
	"grab",
	"grabbing",
	"crosshair",
	"eraser",
}

// String returns the CSS-like name of the cursor. The frontend maps
// "rotate" and "eraser" to its own cursor images.
func (c Cursor) String() string {
	if int(c) < len(cursorNames) {
		return cursorNames[c]
	}
	return "default"
}
