package janggi

var orthoDirs = [4][2]int{{-1, 0}, {+1, 0}, {0, -1}, {0, +1}}
var diagDirs = [4][2]int{{-1, -1}, {-1, +1}, {+1, -1}, {+1, +1}}

// Chariot: unbounded orthogonal slide, plus corridor-diagonal slides while
// standing on a palace corner or center.
func genChariotMoves(p *Position, from int, moves *[]Move) {
	row, col := rowOf(from), colOf(from)
	side := p.Board.Squares[from].Side()
	for _, d := range orthoDirs {
		r, c := row+d[0], col+d[1]
		for onBoard(r, c) {
			to := indexOf(r, c)
			pc := p.Board.Squares[to]
			if pc == 0 {
				*moves = append(*moves, Move{From: from, To: to})
			} else {
				if pc.Side() != side {
					*moves = append(*moves, Move{From: from, To: to})
				}
				break
			}
			r += d[0]
			c += d[1]
		}
	}

	for _, d := range diagDirs {
		pr, pc := row, col
		r, c := row+d[0], col+d[1]
		for corridorStep(pr, pc, r, c) {
			to := indexOf(r, c)
			dst := p.Board.Squares[to]
			if dst != 0 {
				if dst.Side() != side {
					*moves = append(*moves, Move{From: from, To: to})
				}
				break
			}
			*moves = append(*moves, Move{From: from, To: to})
			pr, pc = r, c
			r += d[0]
			c += d[1]
		}
	}
}

// Cannon: orthogonal slide over exactly one screen. The screen may not be a
// cannon and a cannon is never a capture target. On a palace corner it may
// also jump the center to the opposite corner under the same screen rule.
func genCannonMoves(p *Position, from int, moves *[]Move) {
	row, col := rowOf(from), colOf(from)
	side := p.Board.Squares[from].Side()
	for _, d := range orthoDirs {
		r, c := row+d[0], col+d[1]

		// Find the screen.
		for onBoard(r, c) && p.Board.Squares[indexOf(r, c)] == 0 {
			r += d[0]
			c += d[1]
		}
		if !onBoard(r, c) || p.Board.Squares[indexOf(r, c)].Type() == PieceCannon {
			continue
		}
		r += d[0]
		c += d[1]

		// Beyond the screen: any empty square, or the first enemy non-cannon.
		for onBoard(r, c) {
			to := indexOf(r, c)
			pc := p.Board.Squares[to]
			if pc != 0 {
				if pc.Side() != side && pc.Type() != PieceCannon {
					*moves = append(*moves, Move{From: from, To: to})
				}
				break
			}
			*moves = append(*moves, Move{From: from, To: to})
			r += d[0]
			c += d[1]
		}
	}

	for _, d := range diagDirs {
		mr, mc := row+d[0], col+d[1]
		r, c := row+2*d[0], col+2*d[1]
		// Corner-to-corner only: both half-steps must run along a corridor,
		// which puts the palace center in the middle.
		if !corridorStep(row, col, mr, mc) || !corridorStep(mr, mc, r, c) {
			continue
		}
		screen := p.Board.Squares[indexOf(mr, mc)]
		if screen == 0 || screen.Type() == PieceCannon {
			continue
		}
		dst := p.Board.Squares[indexOf(r, c)]
		if dst == 0 || (dst.Side() != side && dst.Type() != PieceCannon) {
			*moves = append(*moves, Move{From: from, To: indexOf(r, c)})
		}
	}
}

// Guard and general share one rule: a single orthogonal step inside the own
// palace, plus corridor diagonals from the corners and the center.
func genPalaceMoves(p *Position, from int, moves *[]Move) {
	row, col := rowOf(from), colOf(from)
	side := p.Board.Squares[from].Side()
	for _, d := range orthoDirs {
		r, c := row+d[0], col+d[1]
		if !inPalace(side, r, c) {
			continue
		}
		dst := p.Board.Squares[indexOf(r, c)]
		if dst == 0 || dst.Side() != side {
			*moves = append(*moves, Move{From: from, To: indexOf(r, c)})
		}
	}
	for _, d := range diagDirs {
		r, c := row+d[0], col+d[1]
		if !corridorStep(row, col, r, c) || !inPalace(side, r, c) {
			continue
		}
		dst := p.Board.Squares[indexOf(r, c)]
		if dst == 0 || dst.Side() != side {
			*moves = append(*moves, Move{From: from, To: indexOf(r, c)})
		}
	}
}
