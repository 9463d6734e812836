package common

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type Direction int

const (
	North Direction = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
	DirectionCount
)

var directionNames = [DirectionCount]string{
	"North", "NorthEast", "East", "SouthEast", "South", "SouthWest", "West", "NorthWest",
}

func (d Direction) String() string {
	if d < 0 || d >= DirectionCount {
		return "Unknown"
	}
	return directionNames[d]
}

// direction steps a position n squares at once. isBorder reports that one more
// step would leave the board, canStep gates the very first step.
type direction struct {
	shift    func(position uint64, n uint) uint64
	isBorder func(position uint64) bool
	canStep  func(row, column int) bool
}

var directions = [DirectionCount]direction{
	North: {
		shift:    func(p uint64, n uint) uint64 { return p << (8 * n) },
		isBorder: func(p uint64) bool { return p&TopEdgeMask != 0 },
		canStep:  func(row, column int) bool { return row > Row0 },
	},
	NorthEast: {
		shift:    func(p uint64, n uint) uint64 { return p << (7 * n) },
		isBorder: func(p uint64) bool { return p&(TopEdgeMask|RightEdgeMask) != 0 },
		canStep:  func(row, column int) bool { return row > Row0 && column < Column7 },
	},
	East: {
		shift:    func(p uint64, n uint) uint64 { return p >> n },
		isBorder: func(p uint64) bool { return p&RightEdgeMask != 0 },
		canStep:  func(row, column int) bool { return column < Column7 },
	},
	SouthEast: {
		shift:    func(p uint64, n uint) uint64 { return p >> (9 * n) },
		isBorder: func(p uint64) bool { return p&(BottomEdgeMask|RightEdgeMask) != 0 },
		canStep:  func(row, column int) bool { return row < Row7 && column < Column7 },
	},
	South: {
		shift:    func(p uint64, n uint) uint64 { return p >> (8 * n) },
		isBorder: func(p uint64) bool { return p&BottomEdgeMask != 0 },
		canStep:  func(row, column int) bool { return row < Row7 },
	},
	SouthWest: {
		shift:    func(p uint64, n uint) uint64 { return p >> (7 * n) },
		isBorder: func(p uint64) bool { return p&(BottomEdgeMask|LeftEdgeMask) != 0 },
		canStep:  func(row, column int) bool { return row < Row7 && column > Column0 },
	},
	West: {
		shift:    func(p uint64, n uint) uint64 { return p << n },
		isBorder: func(p uint64) bool { return p&LeftEdgeMask != 0 },
		canStep:  func(row, column int) bool { return column > Column0 },
	},
	NorthWest: {
		shift:    func(p uint64, n uint) uint64 { return p << (9 * n) },
		isBorder: func(p uint64) bool { return p&(TopEdgeMask|LeftEdgeMask) != 0 },
		canStep:  func(row, column int) bool { return row > Row0 && column > Column0 },
	},
}

// PseudoLegalCandidates returns the empty squares adjacent to at least one occupied square.
func PseudoLegalCandidates(occupied uint64) (uint64, bool) {
	var candidates uint64
	for x := occupied; x != 0; x &= x - 1 {
		candidates |= NeighborMesh(x & -x)
	}
	candidates &^= occupied
	return candidates, candidates != 0
}

// Bracket walks from candidate in direction dir over a run of foe squares.
// The run is returned if an ally square closes it. An ally right next to the
// candidate closes an empty run, which still counts as a bracket.
func Bracket(candidate, ally, foe uint64, dir Direction) (uint64, bool) {
	var d = &directions[dir]
	var mesh uint64
	for count := uint(1); ; count++ {
		var shifted = d.shift(candidate, count)
		if shifted&foe != 0 {
			mesh |= shifted
			if d.isBorder(shifted) {
				return 0, false
			}
		} else if shifted&ally != 0 {
			return mesh, true
		} else {
			return 0, false
		}
	}
}

// AvailableCaptures maps every legal move of ally to the foe squares it flips.
// The result is false when ally has no legal move.
func AvailableCaptures(ally, foe uint64) (map[uint64]uint64, bool) {
	var candidates, ok = PseudoLegalCandidates(ally | foe)
	if !ok {
		return nil, false
	}
	var result = make(map[uint64]uint64)
	for x := candidates; x != 0; x &= x - 1 {
		var candidate = x & -x
		var row, column = RowColOf(candidate)
		var total uint64
		for dir := North; dir < DirectionCount; dir++ {
			if !directions[dir].canStep(row, column) {
				continue
			}
			if mesh, found := Bracket(candidate, ally, foe, dir); found {
				total |= mesh
			}
		}
		if total != 0 {
			result[candidate] = total
		}
	}
	if len(result) == 0 {
		return nil, false
	}
	return result, true
}

// SortedMoves returns the moves of captures in row-major order.
func SortedMoves(captures map[uint64]uint64) []uint64 {
	var squares = make([]int, 0, len(captures))
	for _, move := range maps.Keys(captures) {
		squares = append(squares, FirstOne(move))
	}
	slices.Sort(squares)
	var moves = make([]uint64, len(squares))
	for i, sq := range squares {
		moves[i] = SquareMask[sq]
	}
	return moves
}

// LegalMoves returns the union of ally's legal moves.
func LegalMoves(ally, foe uint64) uint64 {
	var captures, _ = AvailableCaptures(ally, foe)
	var result uint64
	for move := range captures {
		result |= move
	}
	return result
}
