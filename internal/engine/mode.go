package engine

import (
	"errors"
	"fmt"
	"time"
)

// ErrUnknownMode is returned by ParseMode for names it does not know.
var ErrUnknownMode = errors.New("engine: unknown transform mode")

// Mode selects which input method edits the selected shape's transform.
type Mode string

const (
	ModeMouse    Mode = "mouse"
	ModeForm     Mode = "form"
	ModeKeyboard Mode = "keyboard"
)

// ParseMode maps a toolbar name to a Mode.
func ParseMode(name string) (Mode, error) {
	switch m := Mode(name); m {
	case ModeMouse, ModeForm, ModeKeyboard:
		return m, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMode, name)
}

var modeNotices = map[Mode]Notice{
	ModeForm:     {"Transform mode: form. Use the inputs below.", 2 * time.Second},
	ModeMouse:    {"Transform mode: mouse. Click and drag the shape or its handles.", 2 * time.Second},
	ModeKeyboard: {"Transform mode: keyboard. Select a shape, then use the arrows (move), +/- (scale) and R/T (rotate).", 3 * time.Second},
}

// SetTransformMode switches the transform input method and returns to the
// select tool. The selected shape's transform is left as it is.
func (e *Engine) SetTransformMode(m Mode) {
	e.mode = m
	e.SetTool(ToolSelect)
	if n, ok := modeNotices[m]; ok {
		e.notices = append(e.notices, n)
	}
}
