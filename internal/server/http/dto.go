package httpserver

import "github.com/Y02WK/JanggiGame/internal/janggi"

// Moves travel over the wire in notation labels ("a4" -> "a5"), the same
// surface the core exposes.
type MoveDTO struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type NewGameResponse struct {
	GameID     string    `json:"game_id"`
	Board      string    `json:"board"` // FEN-like, see Position.Encode
	Turn       string    `json:"turn"`
	Status     string    `json:"status"`
	LegalMoves []MoveDTO `json:"legal_moves"`
}

type PlayRequest struct {
	GameID string  `json:"game_id"`
	Move   MoveDTO `json:"move"`
}

type PlayResponse struct {
	Accepted   bool      `json:"accepted"`
	Board      string    `json:"board"`
	Turn       string    `json:"turn"`
	Status     string    `json:"status"`
	LegalMoves []MoveDTO `json:"legal_moves"`
}

type StateRequest struct {
	GameID string `json:"game_id"`
}

type StateResponse struct {
	Board      string    `json:"board"`
	Turn       string    `json:"turn"`
	Status     string    `json:"status"`
	LegalMoves []MoveDTO `json:"legal_moves"`
}

// status strings: "red_won" / "blue_won" once decided, otherwise "check"
// when the side to move is attacked, else "ongoing".
func gameStatus(g *janggi.Game) string {
	if s := g.State(); s != janggi.Unfinished {
		return s.String()
	}
	if g.InCheck(g.Turn()) {
		return "check"
	}
	return "ongoing"
}

func legalMovesDTO(g *janggi.Game) []MoveDTO {
	if g.State() != janggi.Unfinished {
		return nil
	}
	moves := g.Position().GenerateLegalMoves()
	out := make([]MoveDTO, len(moves))
	for i, m := range moves {
		out[i] = MoveDTO{From: janggi.LabelOf(m.From), To: janggi.LabelOf(m.To)}
	}
	return out
}
