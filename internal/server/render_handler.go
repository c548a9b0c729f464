package server

import (
	"encoding/json"
	"io"
	"net/http"

	"coursegen/internal/render"
	"coursegen/internal/types"
)

// maxRenderBody bounds a posted courseware; images arrive as data URIs.
const maxRenderBody = 64 << 20

const renderPolicy = "sandbox allow-scripts"

// RenderHandler re-renders a posted courseware document to HTML.
type RenderHandler struct{}

func NewRenderHandler() *RenderHandler { return &RenderHandler{} }

func (h *RenderHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var cw types.Courseware
	dec := json.NewDecoder(io.LimitReader(r.Body, maxRenderBody))
	if err := dec.Decode(&cw); err != nil {
		http.Error(w, "invalid courseware: "+err.Error(), http.StatusBadRequest)
		return
	}
	// Posted markup runs in an opaque origin so its script cannot reach the API.
	w.Header().Set("Content-Security-Policy", renderPolicy)
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Disposition", `inline; filename="`+render.FileName(cw.Title)+`"`)
	_, _ = io.WriteString(w, render.Render(cw))
}
