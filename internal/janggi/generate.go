package janggi

// genMovesFrom appends the candidate moves of the piece on from. Candidates
// stay on the board and never land on a friendly piece; leaving the own
// general in check is filtered one layer up.
func genMovesFrom(p *Position, from int, moves *[]Move) {
	switch p.Board.Squares[from].Type() {
	case PieceSoldier:
		genSoldierMoves(p, from, moves)
	case PieceCannon:
		genCannonMoves(p, from, moves)
	case PieceChariot:
		genChariotMoves(p, from, moves)
	case PieceElephant:
		genElephantMoves(p, from, moves)
	case PieceHorse:
		genHorseMoves(p, from, moves)
	case PieceGuard, PieceGeneral:
		genPalaceMoves(p, from, moves)
	}
}

// GeneratePseudoMovesForSide generates moves for one side without the
// self-check filter.
func (p *Position) GeneratePseudoMovesForSide(side Side) []Move {
	var moves []Move
	for sq := 0; sq < NumSquares; sq++ {
		pc := p.Board.Squares[sq]
		if pc == 0 || pc.Side() != side {
			continue
		}
		genMovesFrom(p, sq, &moves)
	}
	return moves
}

func (p *Position) GeneratePseudoMoves() []Move {
	return p.GeneratePseudoMovesForSide(p.SideToMove)
}

// GenerateLegalMoves keeps only the pseudo moves that do not leave the
// mover's own general in check, probing each with an apply/undo pair.
func (p *Position) GenerateLegalMoves() []Move {
	pseudo := p.GeneratePseudoMoves()
	out := make([]Move, 0, len(pseudo))
	side := p.SideToMove
	for _, mv := range pseudo {
		captured := p.ApplyMove(mv)
		if !p.IsInCheck(side) {
			out = append(out, mv)
		}
		p.UndoMove(mv, captured)
	}
	return out
}

// ApplyMove moves the piece on m.From to m.To in place and returns the
// captured piece (0 if none). Purely mechanical: no legality checking, the
// caller vouches for the coordinates. The side to move flips and the hash is
// updated incrementally.
func (p *Position) ApplyMove(m Move) Piece {
	pc := p.Board.Squares[m.From]
	captured := p.Board.Squares[m.To]

	h := p.EnsureHash()
	h ^= pieceHashKey(pc, m.From)
	if captured != 0 {
		h ^= pieceHashKey(captured, m.To)
	}
	h ^= pieceHashKey(pc, m.To)
	h ^= zobristSide

	p.Board.Squares[m.To] = pc
	p.Board.Squares[m.From] = 0
	p.SideToMove = opposite(p.SideToMove)
	p.Hash = h
	return captured
}

// UndoMove is the exact inverse of ApplyMove given the piece it returned.
// Applying and undoing with the same captured value is the identity on the
// position.
func (p *Position) UndoMove(m Move, captured Piece) {
	pc := p.Board.Squares[m.To]

	h := p.Hash
	h ^= pieceHashKey(pc, m.To)
	if captured != 0 {
		h ^= pieceHashKey(captured, m.To)
	}
	h ^= pieceHashKey(pc, m.From)
	h ^= zobristSide

	p.Board.Squares[m.From] = pc
	p.Board.Squares[m.To] = captured
	p.SideToMove = opposite(p.SideToMove)
	p.Hash = h
}

// SwapSide passes the move to the opponent without touching the board.
func (p *Position) SwapSide() {
	h := p.EnsureHash()
	p.SideToMove = opposite(p.SideToMove)
	p.Hash = h ^ zobristSide
}
