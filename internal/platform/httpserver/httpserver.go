package httpserver

import (
	"net/http"
	"time"
)

// New builds the admin HTTP server. Registry handlers answer from memory, so
// the read and write budgets stay short.
func New(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}
