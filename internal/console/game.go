package console

import (
	"github.com/ChizhovVadim/reversi/pkg/common"
)

// Game keeps the position history of one game. Turn order lives here, not in the move generator.
type Game struct {
	start     common.Position
	positions []common.Position
}

func NewGame(start common.Position) *Game {
	return &Game{
		start:     start,
		positions: []common.Position{start},
	}
}

func (g *Game) Position() *common.Position {
	return &g.positions[len(g.positions)-1]
}

func (g *Game) Ply() int {
	return len(g.positions) - 1
}

func (g *Game) MakeMove(move uint64) bool {
	var child common.Position
	if !g.Position().MakeMove(move, &child) {
		return false
	}
	g.positions = append(g.positions, child)
	return true
}

// Pass is allowed only when the side to move has no move and the game goes on.
func (g *Game) Pass() bool {
	var curPos = g.Position()
	if curPos.HasLegalMoves() || curPos.IsGameOver() {
		return false
	}
	var child common.Position
	curPos.MakePass(&child)
	g.positions = append(g.positions, child)
	return true
}

func (g *Game) Undo() bool {
	if len(g.positions) <= 1 {
		return false
	}
	g.positions = g.positions[:len(g.positions)-1]
	return true
}

func (g *Game) Reset() {
	g.positions = []common.Position{g.start}
}
