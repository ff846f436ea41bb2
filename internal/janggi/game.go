package janggi

// GameState is the outcome of a game. It only ever moves away from
// Unfinished once, after which no further moves are accepted.
type GameState int8

const (
	Unfinished GameState = iota
	RedWon
	BlueWon
)

func (s GameState) String() string {
	switch s {
	case RedWon:
		return "red_won"
	case BlueWon:
		return "blue_won"
	}
	return "unfinished"
}

// Player is one side's roster: 16 pieces at setup, of which one general.
// Pieces are never destroyed; a committed capture moves the piece from the
// board onto the Captured list.
type Player struct {
	Side     Side
	Captured []Piece
}

// Game owns the position, both players, and the outcome, and is the only
// writer of all three. One instance per game; nothing here is shared across
// games.
type Game struct {
	pos     *Position
	state   GameState
	players [2]*Player
}

// NewGame starts a game from the standard layout, red to move.
func NewGame() *Game {
	return NewGameFrom(NewInitialPosition())
}

// NewGameFrom starts a game from an arbitrary position.
func NewGameFrom(pos *Position) *Game {
	return &Game{
		pos: pos,
		players: [2]*Player{
			Red:  {Side: Red},
			Blue: {Side: Blue},
		},
	}
}

// State returns the game outcome.
func (g *Game) State() GameState { return g.state }

// Turn returns the side to move.
func (g *Game) Turn() Side { return g.pos.SideToMove }

// Position exposes the live position for rendering and inspection. Callers
// must not mutate it.
func (g *Game) Position() *Position { return g.pos }

// Captured returns side's pieces that have been captured so far.
func (g *Game) Captured(side Side) []Piece {
	return g.players[side].Captured
}

// PieceAt returns the piece on a labelled point, if the label is valid.
func (g *Game) PieceAt(label string) (Piece, bool) {
	sq, ok := SquareOf(label)
	if !ok {
		return 0, false
	}
	return g.pos.Board.Squares[sq], true
}

// InCheck reports whether side's general is currently attacked.
func (g *Game) InCheck(side Side) bool { return g.pos.IsInCheck(side) }

// MakeMove attempts the move origin->destination given in notation labels
// and reports whether it was accepted. origin == destination is a pass,
// legal only when the mover is not in check. A rejected move leaves the
// game completely untouched.
func (g *Game) MakeMove(origin, destination string) bool {
	if g.state != Unfinished {
		return false
	}

	from, ok := SquareOf(origin)
	if !ok {
		return false
	}
	to, ok := SquareOf(destination)
	if !ok {
		return false
	}

	mover := g.pos.SideToMove
	if from == to {
		if g.pos.IsInCheck(mover) {
			return false
		}
		g.pos.SwapSide()
		return true
	}

	pc := g.pos.Board.Squares[from]
	if pc == 0 || pc.Side() != mover {
		return false
	}

	var moves []Move
	genMovesFrom(g.pos, from, &moves)
	mv := Move{From: from, To: to}
	found := false
	for _, m := range moves {
		if m == mv {
			found = true
			break
		}
	}
	if !found {
		return false
	}

	captured := g.pos.ApplyMove(mv)
	if g.pos.IsInCheck(mover) {
		g.pos.UndoMove(mv, captured)
		return false
	}

	if captured != 0 {
		owner := g.players[captured.Side()]
		owner.Captured = append(owner.Captured, captured)
	}

	opponent := opposite(mover)
	if g.pos.IsInCheck(opponent) && g.pos.IsCheckmate(opponent) {
		if mover == Red {
			g.state = RedWon
		} else {
			g.state = BlueWon
		}
	}
	return true
}
