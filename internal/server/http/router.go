package httpserver

import (
	"net/http"

	"github.com/Y02WK/JanggiGame/internal/server/game"
)

// NewMux wires the API handler and, when webDir is non-empty, a static file
// server for the board front end.
func NewMux(mgr *game.Manager, webDir string) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/api/", NewHandler(mgr))
	if webDir != "" {
		mux.Handle("/", http.FileServer(http.Dir(webDir)))
	}
	return mux
}
