package main

import (
	"flag"
	"log"
	"net/http"

	"github.com/Y02WK/JanggiGame/internal/server/game"
	httpserver "github.com/Y02WK/JanggiGame/internal/server/http"
)

func main() {
	addr := flag.String("addr", ":2889", "listen address")
	webDir := flag.String("web", "./web", "directory with index.html / js / svg")
	flag.Parse()

	mgr := game.NewManager()
	mux := httpserver.NewMux(mgr, *webDir)

	log.Printf("listening on %s, serving static from %s", *addr, *webDir)
	if err := http.ListenAndServe(*addr, mux); err != nil {
		log.Fatal(err)
	}
}
