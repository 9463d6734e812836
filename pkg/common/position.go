package common

import (
	"bytes"
	"fmt"
	"strings"
)

const InitialPositionString = "---------------------------OX------XO--------------------------- X"

const (
	blackChar = 'X'
	whiteChar = 'O'
	emptyChar = '-'
)

// Position is the board state owned by callers of the move generator.
type Position struct {
	Black     uint64
	White     uint64
	BlackMove bool
}

func InitialPosition() Position {
	return Position{
		Black:     PositionOf(Row3, Column4) | PositionOf(Row4, Column3),
		White:     PositionOf(Row3, Column3) | PositionOf(Row4, Column4),
		BlackMove: true,
	}
}

func NewPositionFromString(s string) (Position, error) {
	var tokens = strings.Fields(s)
	if len(tokens) != 2 || len(tokens[0]) != 64 || len(tokens[1]) != 1 {
		return Position{}, fmt.Errorf("parse position failed %v", s)
	}
	var p Position
	for sq := 0; sq < 64; sq++ {
		switch tokens[0][sq] {
		case blackChar, 'x', '*':
			p.Black |= SquareMask[sq]
		case whiteChar, 'o':
			p.White |= SquareMask[sq]
		case emptyChar, '.':
		default:
			return Position{}, fmt.Errorf("parse position failed %v: bad square %v", s, SquareName(sq))
		}
	}
	switch tokens[1][0] {
	case blackChar, 'x', '*':
		p.BlackMove = true
	case whiteChar, 'o':
		p.BlackMove = false
	default:
		return Position{}, fmt.Errorf("parse position failed %v: bad side to move", s)
	}
	return p, nil
}

func (p *Position) String() string {
	var sb bytes.Buffer
	for sq := 0; sq < 64; sq++ {
		sb.WriteByte(p.squareChar(sq))
	}
	sb.WriteByte(' ')
	sb.WriteByte(let(p.BlackMove, blackChar, whiteChar))
	return sb.String()
}

func (p *Position) squareChar(sq int) byte {
	var mask = SquareMask[sq]
	if p.Black&mask != 0 {
		return blackChar
	}
	if p.White&mask != 0 {
		return whiteChar
	}
	return emptyChar
}

// AllyFoe returns the side to move first.
func (p *Position) AllyFoe() (ally, foe uint64) {
	if p.BlackMove {
		return p.Black, p.White
	}
	return p.White, p.Black
}

func (p *Position) Occupied() uint64 {
	return p.Black | p.White
}

func (p *Position) AvailableCaptures() (map[uint64]uint64, bool) {
	var ally, foe = p.AllyFoe()
	return AvailableCaptures(ally, foe)
}

func (p *Position) HasLegalMoves() bool {
	var _, ok = p.AvailableCaptures()
	return ok
}

// IsGameOver reports that neither side can move.
func (p *Position) IsGameOver() bool {
	if p.Occupied() == ^uint64(0) {
		return true
	}
	if p.HasLegalMoves() {
		return false
	}
	var ally, foe = p.AllyFoe()
	var _, ok = AvailableCaptures(foe, ally)
	return !ok
}

func (p *Position) DiscCount() (black, white int) {
	return PopCount(p.Black), PopCount(p.White)
}

// MakeMove plays move for the side to move and writes the result to child.
// It returns false if the move is not legal.
func (p *Position) MakeMove(move uint64, child *Position) bool {
	var captures, ok = p.AvailableCaptures()
	if !ok {
		return false
	}
	var flips, found = captures[move]
	if !found {
		return false
	}
	p.applyMove(move, flips, child)
	return true
}

func (p *Position) applyMove(move, flips uint64, child *Position) {
	if p.BlackMove {
		child.Black = p.Black | flips | move
		child.White = p.White &^ flips
	} else {
		child.White = p.White | flips | move
		child.Black = p.Black &^ flips
	}
	child.BlackMove = !p.BlackMove
}

// MakeMoveWithFlips applies a move taken from a capture map of p without looking it up again.
func (p *Position) MakeMoveWithFlips(move, flips uint64, child *Position) {
	p.applyMove(move, flips, child)
}

func (p *Position) MakePass(child *Position) {
	*child = *p
	child.BlackMove = !p.BlackMove
}

// Draw returns a debugging view with row and column labels.
func (p *Position) Draw() string {
	var sb strings.Builder
	sb.WriteString("  a b c d e f g h\n")
	for row := Row0; row <= Row7; row++ {
		sb.WriteString(rowNames[row : row+1])
		for column := Column0; column <= Column7; column++ {
			sb.WriteByte(' ')
			sb.WriteByte(p.squareChar(MakeSquare(row, column)))
		}
		sb.WriteByte('\n')
	}
	var black, white = p.DiscCount()
	fmt.Fprintf(&sb, "Black: %v White: %v Side: %c\n", black, white, let(p.BlackMove, blackChar, whiteChar))
	return sb.String()
}
