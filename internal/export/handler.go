// Package export renders posted draw commands to PNG on the server, for
// clients that cannot rasterize locally.
package export

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/grafika/grafika/internal/render"
	"github.com/grafika/grafika/internal/typeid"
)

const (
	maxUploadSize = 10 << 20 // 10MB
	maxSide       = 8192
	maxCommands   = 2000
)

// Request is the body of POST /export/png.
type Request struct {
	// ID is an optional client-chosen export id. It must carry the export
	// prefix and is echoed back instead of a generated one.
	ID       string               `json:"id,omitempty"`
	Name     string               `json:"name"`
	Width    int                  `json:"width"`
	Height   int                  `json:"height"`
	Commands []render.DrawCommand `json:"commands"`
}

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// ExportPNG rasterizes the posted commands and returns them as a PNG
// attachment.
func (h *Handler) ExportPNG(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if req.Width > maxSide || req.Height > maxSide {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": fmt.Sprintf("surface larger than %dx%d", maxSide, maxSide)})
		return
	}
	if len(req.Commands) > maxCommands {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": fmt.Sprintf("more than %d commands", maxCommands)})
		return
	}
	id := req.ID
	if id == "" {
		id = typeid.NewExportID()
	} else if err := typeid.Validate(id, typeid.PrefixExport); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	var buf bytes.Buffer
	if err := render.EncodePNG(&buf, req.Commands, req.Width, req.Height); err != nil {
		if errors.Is(err, render.ErrEmptySurface) {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		slog.Error("rasterize export", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "render failed"})
		return
	}

	name := sanitizeName(req.Name)

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.png"`, name))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.Header().Set("X-Export-ID", id)
	w.Write(buf.Bytes())

	slog.Info("export complete", "id", id, "commands", len(req.Commands), "size", buf.Len())
}

// sanitizeName keeps letters, digits, '-' and '_' and drops a trailing
// .png, so "my drawing.png" becomes "my-drawing".
func sanitizeName(name string) string {
	name = strings.TrimSuffix(strings.TrimSpace(name), ".png")
	if name == "" {
		return "grafika"
	}
	return strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '-' || r == '_' {
			return r
		}
		return '-'
	}, name)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
