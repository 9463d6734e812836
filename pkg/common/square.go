package common

import "strings"

const (
	Column0 = iota
	Column1
	Column2
	Column3
	Column4
	Column5
	Column6
	Column7
)

const (
	Row0 = iota
	Row1
	Row2
	Row3
	Row4
	Row5
	Row6
	Row7
)

const SquareNone = -1

// Squares are numbered row-major from the top-left corner: square = row*8 + column.
// The square index is the count of leading zeros of its bitboard.

func MakeSquare(row, column int) int {
	return (row << 3) | column
}

func Row(sq int) int {
	return sq >> 3
}

func Column(sq int) int {
	return sq & 7
}

// PositionOf returns the single-bit bitboard of (row, column).
func PositionOf(row, column int) uint64 {
	return uint64(1) << uint((7-row)*8+(7-column))
}

// RowColOf is the inverse of PositionOf. The position must have exactly one bit set.
func RowColOf(position uint64) (row, column int) {
	if position == 0 || MoreThanOne(position) {
		panic("common: RowColOf requires exactly one bit set")
	}
	var sq = FirstOne(position)
	return Row(sq), Column(sq)
}

const (
	columnNames = "abcdefgh"
	rowNames    = "12345678"
)

func SquareName(sq int) string {
	if sq < 0 || sq >= 64 {
		return "-"
	}
	var column = columnNames[Column(sq)]
	var row = rowNames[Row(sq)]
	return string(column) + string(row)
}

func ParseSquare(s string) int {
	if len(s) != 2 {
		return SquareNone
	}
	var column = strings.IndexByte(columnNames, s[0]|0x20)
	var row = strings.IndexByte(rowNames, s[1])
	if column < 0 || row < 0 {
		return SquareNone
	}
	return MakeSquare(row, column)
}
