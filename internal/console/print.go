package console

import (
	"fmt"
	"io"
	"strconv"

	"github.com/ChizhovVadim/reversi/pkg/common"
)

const (
	blackDisc = "●"
	whiteDisc = "○"
	moveMark  = "·"
)

// ANSI colour codes.
const (
	fgBlack = 30
	fgWhite = 97
	bgGreen = 42
)

func printPosition(w io.Writer, p *common.Position) {
	var legal = common.LegalMoves(p.AllyFoe())
	fmt.Fprintln(w, "  a b c d e f g h")
	for sq := 0; sq < 64; sq++ {
		if common.Column(sq) == common.Column0 {
			fmt.Fprint(w, common.Row(sq)+1, " ")
		}
		var mask = common.SquareMask[sq]
		switch {
		case p.Black&mask != 0:
			fmt.Fprint(w, squareString(blackDisc, fgBlack))
		case p.White&mask != 0:
			fmt.Fprint(w, squareString(whiteDisc, fgWhite))
		case legal&mask != 0:
			fmt.Fprint(w, squareString(moveMark, fgBlack))
		default:
			fmt.Fprint(w, squareString(" ", fgBlack))
		}
		if common.Column(sq) == common.Column7 {
			fmt.Fprintln(w)
		}
	}
	var black, white = p.DiscCount()
	var side = "white"
	if p.BlackMove {
		side = "black"
	}
	fmt.Fprintf(w, "black %v white %v, %v to move\n", black, white, side)
}

func squareString(s string, fgColor int) string {
	const escape = "\x1b"
	const reset = 0
	return fmt.Sprintf("%s[%s;%sm%s %s[%dm",
		escape, strconv.Itoa(fgColor), strconv.Itoa(bgGreen), s, escape, reset)
}
