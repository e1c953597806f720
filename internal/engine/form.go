package engine

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/grafika/grafika/internal/geom"
)

// minFormScale replaces a committed scale of exactly zero.
const minFormScale = 0.01

// FormValues are the numeric transform fields as shown to the user.
type FormValues struct {
	TranslateX string `json:"translateX"`
	TranslateY string `json:"translateY"`
	ScaleX     string `json:"scaleX"`
	ScaleY     string `json:"scaleY"`
	Rotation   string `json:"rotation"`
}

// Form returns the transform of the selected shape formatted for the
// numeric form, or the identity values when nothing is selected.
func (e *Engine) Form() FormValues {
	s := e.selected
	if s == nil || !s.Selectable() {
		return FormValues{TranslateX: "0", TranslateY: "0", ScaleX: "1", ScaleY: "1", Rotation: "0"}
	}
	return FormValues{
		TranslateX: strconv.FormatFloat(s.TranslateX, 'f', 0, 64),
		TranslateY: strconv.FormatFloat(s.TranslateY, 'f', 0, 64),
		ScaleX:     strconv.FormatFloat(s.ScaleX, 'f', 2, 64),
		ScaleY:     strconv.FormatFloat(s.ScaleY, 'f', 2, 64),
		Rotation:   strconv.FormatFloat(s.Rotation, 'f', 0, 64),
	}
}

// ApplyTranslate commits the translate fields. Each field is read as a
// leading integer; unreadable input keeps the current value.
func (e *Engine) ApplyTranslate(x, y string) {
	s := e.selected
	if s == nil {
		e.notify(msgSelectFirst, 2*time.Second)
		return
	}
	s.TranslateX = parseLeadingInt(x, s.TranslateX)
	s.TranslateY = parseLeadingInt(y, s.TranslateY)
}

// ApplyScale commits the scale fields, read as leading decimals. A scale of
// zero becomes 0.01 with the sign of the current value.
func (e *Engine) ApplyScale(x, y string) {
	s := e.selected
	if s == nil {
		e.notify(msgSelectFirst, 2*time.Second)
		return
	}
	s.ScaleX = nonZeroScale(parseLeadingFloat(x, s.ScaleX), s.ScaleX)
	s.ScaleY = nonZeroScale(parseLeadingFloat(y, s.ScaleY), s.ScaleY)
}

// ApplyRotate commits the rotation field, read as a leading integer and
// wrapped into [0, 360).
func (e *Engine) ApplyRotate(r string) {
	s := e.selected
	if s == nil {
		e.notify(msgSelectFirst, 2*time.Second)
		return
	}
	s.Rotation = geom.NormalizeDegrees(parseLeadingInt(r, s.Rotation))
}

func nonZeroScale(v, current float64) float64 {
	if v != 0 {
		return v
	}
	if current > 0 {
		return minFormScale
	}
	return -minFormScale
}

// parseLeadingInt reads an optionally signed run of digits after leading
// white space and ignores the rest, so "12px" is 12 and "3.9" is 3.
func parseLeadingInt(text string, fallback float64) float64 {
	s := strings.TrimSpace(text)
	n := signLen(s)
	n += digitsLen(s[n:])
	return parsePrefix(s, n, fallback)
}

// parseLeadingFloat reads the longest decimal number prefix after leading
// white space, exponent included, so "1.5x" is 1.5 and ".5" is 0.5.
func parseLeadingFloat(text string, fallback float64) float64 {
	s := strings.TrimSpace(text)
	n := signLen(s)
	intDigits := digitsLen(s[n:])
	n += intDigits

	fracDigits := 0
	if n < len(s) && s[n] == '.' {
		fracDigits = digitsLen(s[n+1:])
		if intDigits > 0 || fracDigits > 0 {
			n += 1 + fracDigits
		}
	}
	if intDigits == 0 && fracDigits == 0 {
		return fallback
	}

	if n < len(s) && (s[n] == 'e' || s[n] == 'E') {
		m := n + 1
		m += signLen(s[m:])
		if d := digitsLen(s[m:]); d > 0 {
			n = m + d
		}
	}
	return parsePrefix(s, n, fallback)
}

func parsePrefix(s string, n int, fallback float64) float64 {
	v, err := strconv.ParseFloat(s[:n], 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return fallback
	}
	return v
}

func signLen(s string) int {
	if s != "" && (s[0] == '+' || s[0] == '-') {
		return 1
	}
	return 0
}

func digitsLen(s string) int {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return i
}
