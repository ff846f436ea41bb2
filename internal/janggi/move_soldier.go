package janggi

// Soldier: one step forward or sideways, never backward. Inside the enemy
// palace it may also step forward along a corridor diagonal.
func genSoldierMoves(p *Position, from int, moves *[]Move) {
	row, col := rowOf(from), colOf(from)
	pc := p.Board.Squares[from]
	if pc == 0 {
		return
	}
	side := pc.Side()
	dir := soldierDir(side)

	for _, dc := range [2]int{-1, +1} {
		c := col + dc
		if !onBoard(row, c) {
			continue
		}
		to := indexOf(row, c)
		dst := p.Board.Squares[to]
		if dst == 0 || dst.Side() != side {
			*moves = append(*moves, Move{From: from, To: to})
		}
	}

	if r := row + dir; onBoard(r, col) {
		to := indexOf(r, col)
		dst := p.Board.Squares[to]
		if dst == 0 || dst.Side() != side {
			*moves = append(*moves, Move{From: from, To: to})
		}
	}

	if palaceOf(row, col) != opposite(side) {
		return
	}
	for _, dc := range [2]int{-1, +1} {
		r, c := row+dir, col+dc
		if !corridorStep(row, col, r, c) {
			continue
		}
		to := indexOf(r, c)
		dst := p.Board.Squares[to]
		if dst == 0 || dst.Side() != side {
			*moves = append(*moves, Move{From: from, To: to})
		}
	}
}
