package server

import (
	"net/http"
)

func NewMux(
	coursewareHandler *CoursewareHandler,
	streamHandler *StreamHandler,
	renderHandler *RenderHandler,
	healthHandler *HealthHandler,
	allowOrigins []string,
) http.Handler {
	mux := http.NewServeMux()

	// RPC
	mux.Handle(coursewareHandler.Handler())

	mux.Handle("/ws/courseware", streamHandler)
	mux.Handle("/api/render", renderHandler)
	mux.Handle("/healthz", healthHandler)

	return CORS(allowOrigins)(mux)
}
