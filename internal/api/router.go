package api

import (
	"fleet-console/internal/api/handlers"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter wires the console handlers and returns an http.Handler.
// This is the web composition root (handlers stay unaware of concrete adapters).
func NewRouter(console *handlers.Console) http.Handler {
	r := mux.NewRouter()
	r.Use(requestIDMiddleware, loggingMiddleware)

	r.HandleFunc("/health", handlers.Health).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	console.Register(r)

	return r
}
