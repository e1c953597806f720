package export

import (
	"bytes"
	"encoding/json"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grafika/grafika/internal/render"
	"github.com/grafika/grafika/internal/typeid"
)

func post(t *testing.T, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/export/png", strings.NewReader(body))
	rec := httptest.NewRecorder()
	NewHandler().ExportPNG(rec, req)
	return rec
}

func TestExportPNG(t *testing.T) {
	b := render.NewBuffer()
	b.Clear()
	b.Add(render.DrawCommand{
		Op:   render.OpPath,
		Path: render.NewPath().Rect(10, 10, 20, 20).Commands(),
		Fill: "#ff0000",
	})
	body, err := json.Marshal(Request{Name: "my drawing.png", Width: 40, Height: 30, Commands: b.Commands()})
	require.NoError(t, err)

	rec := post(t, string(body))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="my-drawing.png"`, rec.Header().Get("Content-Disposition"))
	assert.NoError(t, typeid.Validate(rec.Header().Get("X-Export-ID"), typeid.PrefixExport))

	img, err := png.Decode(bytes.NewReader(rec.Body.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, 40, img.Bounds().Dx())
	r, _, _, a := img.At(20, 20).RGBA()
	assert.Equal(t, uint32(0xffff), r)
	assert.Equal(t, uint32(0xffff), a)
}

func TestExportPNGRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed", `{"width":`},
		{"empty surface", `{"width":0,"height":10}`},
		{"too large", `{"width":100000,"height":10}`},
		{"foreign id prefix", `{"id":"shape_01h455vb4pex5vsknk084sn02q","width":10,"height":10}`},
		{"malformed id", `{"id":"export_nope","width":10,"height":10}`},
		{"too many commands", `{"width":10,"height":10,"commands":[` + strings.Repeat(`{"op":"clear"},`, maxCommands) + `{"op":"clear"}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := post(t, tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), `"error"`)
		})
	}
}

func TestExportPNGEchoesClientID(t *testing.T) {
	id := typeid.NewExportID()
	body, err := json.Marshal(Request{ID: id, Width: 4, Height: 4})
	require.NoError(t, err)

	rec := post(t, string(body))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, id, rec.Header().Get("X-Export-ID"))
}

func TestExportPNGManyEraseTapsAtMaxSize(t *testing.T) {
	cmds := make([]render.DrawCommand, 0, 20)
	for i := 0; i < 20; i++ {
		cmds = append(cmds, render.DrawCommand{
			Op:        render.OpPath,
			Path:      render.NewPath().Circle(float64(50*i), 50, 1).Commands(),
			Fill:      "#000000",
			Composite: render.CompositeDestinationOut,
		})
	}
	body, err := json.Marshal(Request{Width: 4096, Height: 4096, Commands: cmds})
	require.NoError(t, err)

	start := time.Now()
	rec := post(t, string(body))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestSanitizeName(t *testing.T) {
	tests := map[string]string{
		"":               "grafika",
		"  ":             "grafika",
		"sketch":         "sketch",
		"a b/c.png":      "a-b-c",
		"gambar_01.png":  "gambar_01",
		"../../etc/pass": "------etc-pass",
	}
	for in, want := range tests {
		assert.Equal(t, want, sanitizeName(in), in)
	}
}
