package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/ChizhovVadim/reversi/pkg/common"
)

var (
	errBadMove    = errors.New("bad move")
	errCannotPass = errors.New("pass is not allowed")
	errNoHistory  = errors.New("nothing to undo")
)

// Console plays a game from text commands: a square name such as d3,
// pass, moves, undo, reset, show, pos, quit.
type Console struct {
	logger *log.Logger
	out    io.Writer
	game   *Game
}

func New(logger *log.Logger, out io.Writer, start common.Position) *Console {
	return &Console{
		logger: logger,
		out:    out,
		game:   NewGame(start),
	}
}

func (c *Console) Game() *Game {
	return c.game
}

// Run reads commands until quit or the end of input. Command errors are logged, not returned.
func (c *Console) Run(in io.Reader) error {
	printPosition(c.out, c.game.Position())
	var scanner = bufio.NewScanner(in)
	for scanner.Scan() {
		var commandLine = strings.TrimSpace(scanner.Text())
		if commandLine == "" {
			continue
		}
		if commandLine == "quit" {
			return nil
		}
		var err = c.Handle(commandLine)
		if err != nil {
			c.logger.Println(err)
		}
	}
	return scanner.Err()
}

func (c *Console) Handle(commandLine string) error {
	var fields = strings.Fields(commandLine)
	if len(fields) == 0 {
		return fmt.Errorf("empty command")
	}
	switch fields[0] {
	case "pass":
		if !c.game.Pass() {
			return errCannotPass
		}
	case "undo":
		if !c.game.Undo() {
			return errNoHistory
		}
	case "reset":
		c.game.Reset()
	case "moves":
		c.printMoves()
		return nil
	case "show":
		var p = c.game.Position()
		fmt.Fprintf(c.out, "White Pieces: %v\tBlack Pieces: %v\n", p.White, p.Black)
		return nil
	case "pos":
		if len(fields) > 1 {
			var p, err = common.NewPositionFromString(strings.TrimSpace(strings.TrimPrefix(commandLine, "pos")))
			if err != nil {
				return err
			}
			c.game = NewGame(p)
		} else {
			fmt.Fprintln(c.out, c.game.Position().String())
			return nil
		}
	default:
		var sq = common.ParseSquare(fields[0])
		if sq == common.SquareNone {
			return fmt.Errorf("unknown command %v", commandLine)
		}
		if !c.game.MakeMove(common.SquareMask[sq]) {
			return fmt.Errorf("%w %v", errBadMove, fields[0])
		}
	}
	printPosition(c.out, c.game.Position())
	if c.game.Position().IsGameOver() {
		var black, white = c.game.Position().DiscCount()
		fmt.Fprintf(c.out, "game over: black %v white %v\n", black, white)
	}
	return nil
}

func (c *Console) printMoves() {
	var captures, ok = c.game.Position().AvailableCaptures()
	if !ok {
		fmt.Fprintln(c.out, "no moves")
		return
	}
	for _, move := range common.SortedMoves(captures) {
		fmt.Fprintln(c.out, common.SquareName(common.FirstOne(move)), common.BitboardString(captures[move]))
	}
}
