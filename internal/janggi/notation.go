package janggi

import "strconv"

// Board points are addressed as file+rank: files a..i left to right, ranks
// 1..10 top to bottom, so "a1" is (0,0) and "i10" is (9,8).
var indexMap = buildIndexMap()

func buildIndexMap() map[string]int {
	m := make(map[string]int, NumSquares)
	for c := 0; c < Cols; c++ {
		for r := 0; r < Rows; r++ {
			label := string(rune('a'+c)) + strconv.Itoa(r+1)
			m[label] = indexOf(r, c)
		}
	}
	return m
}

// SquareOf resolves a notation label to a square index.
func SquareOf(label string) (int, bool) {
	sq, ok := indexMap[label]
	return sq, ok
}

// LabelOf is the inverse of SquareOf for on-board squares.
func LabelOf(sq int) string {
	return string(rune('a'+colOf(sq))) + strconv.Itoa(rowOf(sq)+1)
}
