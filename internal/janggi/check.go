package janggi

// GeneralSquare returns the square of side's general, or -1 if it is not on
// the board.
func (p *Position) GeneralSquare(side Side) int {
	for sq, pc := range p.Board.Squares {
		if pc != 0 && pc.Side() == side && pc.Type() == PieceGeneral {
			return sq
		}
	}
	return -1
}

// IsAttacked reports whether bySide attacks sq, by asking every candidate
// attacker whether it could move there. Guards and generals are skipped:
// both are locked inside their own palace and can never reach a general
// outside it.
func (p *Position) IsAttacked(sq int, bySide Side) bool {
	for s := 0; s < NumSquares; s++ {
		pc := p.Board.Squares[s]
		if pc == 0 || pc.Side() != bySide {
			continue
		}
		pt := pc.Type()
		if pt == PieceGuard || pt == PieceGeneral {
			continue
		}

		var moves []Move
		genMovesFrom(p, s, &moves)
		for _, mv := range moves {
			if mv.To == sq {
				return true
			}
		}
	}
	return false
}

// IsInCheck reports whether side's general is attacked.
func (p *Position) IsInCheck(side Side) bool {
	kingSq := p.GeneralSquare(side)
	if kingSq == -1 {
		return false
	}
	return p.IsAttacked(kingSq, opposite(side))
}

// IsCheckmate reports whether side, assumed to be in check, has no move that
// escapes it. Every candidate move of every piece is applied speculatively,
// tested, and undone; the first escape ends the search. Having no move while
// not in check is not detected here.
func (p *Position) IsCheckmate(side Side) bool {
	for sq := 0; sq < NumSquares; sq++ {
		pc := p.Board.Squares[sq]
		if pc == 0 || pc.Side() != side {
			continue
		}
		var moves []Move
		genMovesFrom(p, sq, &moves)
		for _, mv := range moves {
			captured := p.ApplyMove(mv)
			escaped := !p.IsInCheck(side)
			p.UndoMove(mv, captured)
			if escaped {
				return false
			}
		}
	}
	return true
}
