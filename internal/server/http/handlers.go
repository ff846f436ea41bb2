package httpserver

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/Y02WK/JanggiGame/internal/server/game"
)

// Handler implements http.Handler for the /api/* routes. Games live in the
// manager; the handler itself is stateless.
type Handler struct {
	mgr *game.Manager
}

func NewHandler(mgr *game.Manager) *Handler {
	return &Handler{mgr: mgr}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	switch r.URL.Path {
	case "/api/new_game":
		h.handleNewGame(w, r)
	case "/api/play":
		h.handlePlay(w, r)
	case "/api/state":
		h.handleState(w, r)
	default:
		http.NotFound(w, r)
	}
}

func (h *Handler) handleNewGame(w http.ResponseWriter, _ *http.Request) {
	gs := h.mgr.NewGame()
	resp := NewGameResponse{
		GameID:     gs.ID,
		Board:      gs.Game.Position().Encode(),
		Turn:       gs.Game.Turn().String(),
		Status:     gameStatus(gs.Game),
		LegalMoves: legalMovesDTO(gs.Game),
	}
	writeJSON(w, resp)
}

func (h *Handler) handlePlay(w http.ResponseWriter, r *http.Request) {
	var req PlayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}

	gs, err := h.mgr.Get(req.GameID)
	if err != nil {
		http.Error(w, "game not found", http.StatusNotFound)
		return
	}

	// Illegal moves are not an HTTP error: the core reports them as a plain
	// rejection and the game stays as it was.
	accepted := gs.Game.MakeMove(req.Move.From, req.Move.To)
	if accepted {
		h.mgr.Touch(gs.ID)
	}

	resp := PlayResponse{
		Accepted:   accepted,
		Board:      gs.Game.Position().Encode(),
		Turn:       gs.Game.Turn().String(),
		Status:     gameStatus(gs.Game),
		LegalMoves: legalMovesDTO(gs.Game),
	}
	writeJSON(w, resp)
}

func (h *Handler) handleState(w http.ResponseWriter, r *http.Request) {
	var req StateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}

	gs, err := h.mgr.Get(req.GameID)
	if err != nil {
		http.Error(w, "game not found", http.StatusNotFound)
		return
	}

	resp := StateResponse{
		Board:      gs.Game.Position().Encode(),
		Turn:       gs.Game.Turn().String(),
		Status:     gameStatus(gs.Game),
		LegalMoves: legalMovesDTO(gs.Game),
	}
	writeJSON(w, resp)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Println("writeJSON error:", err)
	}
}
