package engine

import (
	"math"

	"github.com/grafika/grafika/internal/geom"
)

// Keyboard step sizes. The fine steps apply while Shift is held.
const (
	moveStep       = 10
	moveStepFine   = 1
	scaleStep      = 0.1
	scaleStepFine  = 0.01
	rotateStep     = 5
	rotateStepFine = 1

	minKeyScale = 0.01
)

// KeyEvent is a key press with its modifiers. Key uses the DOM
// KeyboardEvent.key names ("ArrowUp", "+", "r", "Delete", ...).
type KeyEvent struct {
	Key   string `json:"key"`
	Shift bool   `json:"shift"`
	Ctrl  bool   `json:"ctrl"`
	Meta  bool   `json:"meta"`
	Alt   bool   `json:"alt"`
}

// HandleKey applies a keyboard transform step to the selected shape and
// reports whether the key was consumed. Keys are ignored unless the
// keyboard mode is active and a shape is selected.
//
// Arrows move, +/= and -/_ scale, R and T rotate, Delete and Backspace
// delete. Scaling targets scaleX, scaleY with Ctrl or Meta, and both axes
// with Alt.
func (e *Engine) HandleKey(ev KeyEvent) bool {
	s := e.selected
	if s == nil || e.mode != ModeKeyboard {
		return false
	}

	move, scale, rotate := float64(moveStep), scaleStep, float64(rotateStep)
	if ev.Shift {
		move, scale, rotate = moveStepFine, scaleStepFine, rotateStepFine
	}

	switch ev.Key {
	case "ArrowUp":
		s.TranslateY -= move
	case "ArrowDown":
		s.TranslateY += move
	case "ArrowLeft":
		s.TranslateX -= move
	case "ArrowRight":
		s.TranslateX += move
	case "+", "=":
		e.stepScale(ev, scale)
	case "-", "_":
		e.stepScale(ev, -scale)
	case "r", "R":
		s.Rotation = geom.NormalizeDegrees(s.Rotation + rotate)
	case "t", "T":
		s.Rotation = geom.NormalizeDegrees(s.Rotation - rotate)
	case "Delete", "Backspace":
		e.deleteSelected()
	default:
		return false
	}
	return true
}

func (e *Engine) stepScale(ev KeyEvent, delta float64) {
	s := e.selected
	x := (!ev.Ctrl && !ev.Meta) || ev.Alt
	y := ev.Ctrl || ev.Meta || ev.Alt
	if x {
		s.ScaleX = keyScale(s.ScaleX + delta)
	}
	if y {
		s.ScaleY = keyScale(s.ScaleY + delta)
	}
}

// keyScale floors v at minKeyScale and rounds it to two decimals.
func keyScale(v float64) float64 {
	return math.Round(math.Max(minKeyScale, v)*100) / 100
}
