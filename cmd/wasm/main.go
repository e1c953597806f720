//go:build js && wasm

package main

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"syscall/js"

	"github.com/grafika/grafika/internal/config"
	"github.com/grafika/grafika/internal/engine"
	"github.com/grafika/grafika/internal/shape"
)

var eng *engine.Engine

func main() {
	eng = engine.NewEngine(config.Default().EngineOptions())

	grafikaEngine := js.Global().Get("Object").New()

	// --- Commands (frontend → backend) ---
	grafikaEngine.Set("pointerDown", js.FuncOf(pointerDown))
	grafikaEngine.Set("pointerMove", js.FuncOf(pointerMove))
	grafikaEngine.Set("pointerUp", js.FuncOf(pointerUp))
	grafikaEngine.Set("pointerLeave", js.FuncOf(pointerLeave))
	grafikaEngine.Set("keyDown", js.FuncOf(keyDown))
	grafikaEngine.Set("setTool", js.FuncOf(setTool))
	grafikaEngine.Set("setTransformMode", js.FuncOf(setTransformMode))
	grafikaEngine.Set("setStyle", js.FuncOf(setStyle))
	grafikaEngine.Set("setBrush", js.FuncOf(setBrush))
	grafikaEngine.Set("applyTranslate", js.FuncOf(applyTranslate))
	grafikaEngine.Set("applyScale", js.FuncOf(applyScale))
	grafikaEngine.Set("applyRotate", js.FuncOf(applyRotate))
	grafikaEngine.Set("deleteSelected", js.FuncOf(deleteSelected))
	grafikaEngine.Set("clear", js.FuncOf(clearCanvas))
	grafikaEngine.Set("setCanvasSize", js.FuncOf(setCanvasSize))

	// --- Queries (frontend ← backend) ---
	grafikaEngine.Set("render", js.FuncOf(render))
	grafikaEngine.Set("getState", js.FuncOf(getState))
	grafikaEngine.Set("takeNotices", js.FuncOf(takeNotices))
	grafikaEngine.Set("exportPNG", js.FuncOf(exportPNG))

	js.Global().Set("grafikaEngine", grafikaEngine)
	js.Global().Set("grafikaWasmReady", js.ValueOf(true))

	select {}
}

func errorValue(msg string) interface{} {
	return js.ValueOf(map[string]interface{}{"error": msg})
}

func ok() interface{} {
	return js.ValueOf(map[string]interface{}{"ok": true})
}

func point(args []js.Value) (float64, float64, bool) {
	if len(args) < 2 {
		return 0, 0, false
	}
	return args[0].Float(), args[1].Float(), true
}

// --- Command Handlers ---

func pointerDown(this js.Value, args []js.Value) interface{} {
	x, y, found := point(args)
	if !found {
		return errorValue("missing pointer position")
	}
	eng.PointerDown(x, y)
	return nil
}

func pointerMove(this js.Value, args []js.Value) interface{} {
	x, y, found := point(args)
	if !found {
		return errorValue("missing pointer position")
	}
	eng.PointerMove(x, y)
	return nil
}

func pointerUp(this js.Value, args []js.Value) interface{} {
	x, y, found := point(args)
	if !found {
		return errorValue("missing pointer position")
	}
	eng.PointerUp(x, y)
	return nil
}

func pointerLeave(this js.Value, args []js.Value) interface{} {
	eng.PointerLeave()
	return nil
}

// keyDown takes a KeyEvent as JSON and returns whether it was consumed, so
// the page can call preventDefault.
func keyDown(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return errorValue("missing key event JSON")
	}
	var ev engine.KeyEvent
	if err := json.Unmarshal([]byte(args[0].String()), &ev); err != nil {
		return errorValue(err.Error())
	}
	return js.ValueOf(eng.HandleKey(ev))
}

func setTool(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return errorValue("missing tool")
	}
	t, err := engine.ParseTool(args[0].String())
	if err != nil {
		return errorValue(err.Error())
	}
	eng.SetTool(t)
	return ok()
}

func setTransformMode(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return errorValue("missing transform mode")
	}
	m, err := engine.ParseMode(args[0].String())
	if err != nil {
		return errorValue(err.Error())
	}
	eng.SetTransformMode(m)
	return ok()
}

type styleMessage struct {
	FillColor     string  `json:"fillColor"`
	FillEnabled   bool    `json:"fillEnabled"`
	StrokeColor   string  `json:"strokeColor"`
	StrokeEnabled bool    `json:"strokeEnabled"`
	StrokeWidth   float64 `json:"strokeWidth"`
}

func setStyle(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return errorValue("missing style JSON")
	}
	var msg styleMessage
	if err := json.Unmarshal([]byte(args[0].String()), &msg); err != nil {
		return errorValue(err.Error())
	}
	eng.SetStyle(shape.Style(msg))
	return ok()
}

func setBrush(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return errorValue("missing brush color or size")
	}
	eng.SetBrush(args[0].String(), args[1].Float())
	return ok()
}

func applyTranslate(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return errorValue("missing translate fields")
	}
	eng.ApplyTranslate(args[0].String(), args[1].String())
	return nil
}

func applyScale(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return errorValue("missing scale fields")
	}
	eng.ApplyScale(args[0].String(), args[1].String())
	return nil
}

func applyRotate(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return errorValue("missing rotation field")
	}
	eng.ApplyRotate(args[0].String())
	return nil
}

func deleteSelected(this js.Value, args []js.Value) interface{} {
	eng.Delete()
	return nil
}

func clearCanvas(this js.Value, args []js.Value) interface{} {
	eng.Clear()
	return nil
}

func setCanvasSize(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return errorValue("missing canvas size")
	}
	eng.SetCanvasSize(args[0].Int(), args[1].Int())
	return nil
}

// --- Query Handlers ---

func render(this js.Value, args []js.Value) interface{} {
	return js.ValueOf(eng.RenderJSON())
}

func getState(this js.Value, args []js.Value) interface{} {
	data, _ := json.Marshal(eng.State())
	return js.ValueOf(string(data))
}

func takeNotices(this js.Value, args []js.Value) interface{} {
	notices := eng.TakeNotices()
	if notices == nil {
		notices = []engine.Notice{}
	}
	data, _ := json.Marshal(notices)
	return js.ValueOf(string(data))
}

// exportPNG returns the canvas as a base64 PNG for a data: URL.
func exportPNG(this js.Value, args []js.Value) interface{} {
	var buf bytes.Buffer
	if err := eng.Export(&buf); err != nil {
		return errorValue(err.Error())
	}
	return js.ValueOf(map[string]interface{}{
		"png": base64.StdEncoding.EncodeToString(buf.Bytes()),
	})
}
