package janggi

// Horse: one orthogonal step then one diagonal step out. The orthogonal
// point is the leg; a piece there blocks the whole move.
var horseLegMoves = [8]struct {
	Dr, Dc int // destination
	Br, Bc int // leg
}{
	{-2, -1, -1, 0},
	{-2, +1, -1, 0},
	{-1, -2, 0, -1},
	{-1, +2, 0, +1},
	{+1, -2, 0, -1},
	{+1, +2, 0, +1},
	{+2, -1, +1, 0},
	{+2, +1, +1, 0},
}

func genHorseMoves(p *Position, from int, moves *[]Move) {
	row, col := rowOf(from), colOf(from)
	side := p.Board.Squares[from].Side()

	for _, m := range horseLegMoves {
		r := row + m.Dr
		c := col + m.Dc
		if !onBoard(r, c) {
			continue
		}
		if p.Board.Squares[indexOf(row+m.Br, col+m.Bc)] != 0 {
			continue
		}
		to := indexOf(r, c)
		dst := p.Board.Squares[to]
		if dst == 0 || dst.Side() != side {
			*moves = append(*moves, Move{From: from, To: to})
		}
	}
}

// Elephant: one orthogonal step then two diagonal steps out. Both
// intermediate points are legs; either being occupied kills the move.
var elephantLegMoves = [8]struct {
	Dr, Dc   int // destination
	B1r, B1c int // orthogonal leg
	B2r, B2c int // diagonal leg
}{
	{-3, -2, -1, 0, -2, -1},
	{-3, +2, -1, 0, -2, +1},
	{+3, -2, +1, 0, +2, -1},
	{+3, +2, +1, 0, +2, +1},
	{-2, -3, 0, -1, -1, -2},
	{+2, -3, 0, -1, +1, -2},
	{-2, +3, 0, +1, -1, +2},
	{+2, +3, 0, +1, +1, +2},
}

func genElephantMoves(p *Position, from int, moves *[]Move) {
	row, col := rowOf(from), colOf(from)
	side := p.Board.Squares[from].Side()

	for _, m := range elephantLegMoves {
		r := row + m.Dr
		c := col + m.Dc
		if !onBoard(r, c) {
			continue
		}
		if p.Board.Squares[indexOf(row+m.B1r, col+m.B1c)] != 0 {
			continue
		}
		if p.Board.Squares[indexOf(row+m.B2r, col+m.B2c)] != 0 {
			continue
		}
		to := indexOf(r, c)
		dst := p.Board.Squares[to]
		if dst == 0 || dst.Side() != side {
			*moves = append(*moves, Move{From: from, To: to})
		}
	}
}
