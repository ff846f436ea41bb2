package janggi

type Side int8

const (
	NoSide Side = -1
	Red    Side = 0
	Blue   Side = 1
)

func (s Side) String() string {
	switch s {
	case Red:
		return "red"
	case Blue:
		return "blue"
	}
	return "none"
}

type PieceType int8

const (
	PieceNone PieceType = iota
	PieceSoldier
	PieceCannon
	PieceChariot
	PieceElephant
	PieceHorse
	PieceGuard
	PieceGeneral
)

type Piece int8 // 0=empty; >0 red; <0 blue; abs=PieceType

func makePiece(side Side, pt PieceType) Piece {
	if pt == PieceNone || side == NoSide {
		return 0
	}
	if side == Red {
		return Piece(pt)
	}
	return -Piece(pt)
}

func (p Piece) Type() PieceType {
	if p < 0 {
		return PieceType(-p)
	}
	return PieceType(p)
}

func (p Piece) Side() Side {
	if p == 0 {
		return NoSide
	}
	if p > 0 {
		return Red
	}
	return Blue
}

type Board struct {
	Squares [NumSquares]Piece
}

type Move struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// Position = board + side to move.
type Position struct {
	Board      Board
	SideToMove Side
	Hash       uint64
}
