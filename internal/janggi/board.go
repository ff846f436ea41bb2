package janggi

import (
	"fmt"
	"strings"
	"unicode"
)

const (
	Rows       = 10
	Cols       = 9
	NumSquares = Rows * Cols
)

func indexOf(row, col int) int { return row*Cols + col }
func rowOf(sq int) int         { return sq / Cols }
func colOf(sq int) int         { return sq % Cols }

func onBoard(row, col int) bool {
	return row >= 0 && row < Rows && col >= 0 && col < Cols
}

func opposite(side Side) Side {
	if side == Red {
		return Blue
	}
	if side == Blue {
		return Red
	}
	return NoSide
}

// Soldier forward direction: red marches down (+1), blue marches up (-1).
func soldierDir(side Side) int {
	if side == Red {
		return +1
	}
	if side == Blue {
		return -1
	}
	return 0
}

// The two 3x3 palaces sit on columns 3..5: red on rows 0..2, blue on rows 7..9.
func inPalace(side Side, row, col int) bool {
	if col < 3 || col > 5 {
		return false
	}
	if side == Red {
		return row >= 0 && row <= 2
	}
	if side == Blue {
		return row >= Rows-3 && row <= Rows-1
	}
	return false
}

// palaceOf reports which side's palace contains the point, or NoSide.
func palaceOf(row, col int) Side {
	if inPalace(Red, row, col) {
		return Red
	}
	if inPalace(Blue, row, col) {
		return Blue
	}
	return NoSide
}

// Palace centers: red (1,4), blue (8,4). The diagonal corridors cross there.
func isPalaceCenter(row, col int) bool {
	return col == 4 && (row == 1 || row == Rows-2)
}

// corridorStep reports whether (r0,c0)->(r1,c1) is a single diagonal step
// along a palace corridor: both points in the same palace, and one of them
// the palace center. Edge midpoints have no diagonal lines.
func corridorStep(r0, c0, r1, c1 int) bool {
	d := r1 - r0
	if d != 1 && d != -1 {
		return false
	}
	d = c1 - c0
	if d != 1 && d != -1 {
		return false
	}
	pal := palaceOf(r0, c0)
	if pal == NoSide || palaceOf(r1, c1) != pal {
		return false
	}
	return isPalaceCenter(r0, c0) || isPalaceCenter(r1, c1)
}

var letterToPieceType = map[rune]PieceType{
	'r': PieceChariot,
	'h': PieceHorse,
	'e': PieceElephant,
	'a': PieceGuard,
	'k': PieceGeneral,
	'c': PieceCannon,
	's': PieceSoldier,
}

func pieceToChar(p Piece) rune {
	if p == 0 {
		return '.'
	}
	pt := p.Type()
	var base rune
	for k, v := range letterToPieceType {
		if v == pt {
			base = k
			break
		}
	}
	if base == 0 {
		return '.'
	}
	if p.Side() == Red {
		return unicode.ToUpper(base)
	}
	return base
}

// Standard Janggi setup, red on top. Uppercase = red, lowercase = blue.
const initialBoardString = `REHA.AEHR
....K....
.C.....C.
S.S.S.S.S
.........
.........
s.s.s.s.s
.c.....c.
....k....
reha.aehr`

func parseInitialBoard() Board {
	var b Board
	lines := make([]string, 0, Rows)
	for _, line := range strings.Split(initialBoardString, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if len(lines) != Rows {
		panic("initialBoardString does not have 10 rows")
	}
	for r := 0; r < Rows; r++ {
		if len(lines[r]) != Cols {
			panic("initialBoardString does not have 9 cols")
		}
		for c, ch := range lines[r] {
			if ch == '.' {
				continue
			}
			isUpper := unicode.IsUpper(ch)
			base := unicode.ToLower(ch)
			pt, ok := letterToPieceType[base]
			if !ok {
				panic("unknown piece letter: " + string(ch))
			}
			side := Blue
			if isUpper {
				side = Red
			}
			b.Squares[indexOf(r, c)] = makePiece(side, pt)
		}
	}
	return b
}

// NewInitialPosition returns the standard starting position, red to move.
func NewInitialPosition() *Position {
	pos := &Position{
		Board:      parseInitialBoard(),
		SideToMove: Red,
	}
	pos.Hash = pos.CalculateHash()
	return pos
}

// Render draws the board as a text diagram, files a..i left to right and
// rank numbers down the side.
func (p *Position) Render() string {
	var sb strings.Builder
	sb.WriteString("    a b c d e f g h i\n")
	for r := 0; r < Rows; r++ {
		fmt.Fprintf(&sb, "%2d ", r+1)
		for c := 0; c < Cols; c++ {
			sb.WriteByte(' ')
			sb.WriteRune(pieceToChar(p.Board.Squares[indexOf(r, c)]))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
