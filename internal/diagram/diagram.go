package diagram

import (
	"errors"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/ChizhovVadim/reversi/pkg/common"
)

const (
	backgroundStyle = "fill:rgb(255,162,103)"
	blackStyle      = "fill:rgb(66,66,66)"
	whiteStyle      = "fill:rgb(224,224,224)"
	gridStyle       = "stroke:white;stroke-width:2"
	moveStyle       = "fill:none;stroke:rgb(66,66,66);stroke-width:2"
)

var errSquareSize = errors.New("diagram: square size must be positive")

type Options struct {
	SquareSize int
	ShowMoves  bool
}

// errWriter keeps the first write error, svgo itself ignores them.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}
	var n, err = ew.w.Write(p)
	ew.err = err
	return n, err
}

// WriteSVG draws p as an 8x8 grid, row 0 at the top.
func WriteSVG(w io.Writer, p *common.Position, options Options) error {
	if options.SquareSize <= 0 {
		return errSquareSize
	}
	var size = options.SquareSize
	var boardSize = 8 * size
	var ew = &errWriter{w: w}
	var canvas = svg.New(ew)
	canvas.Start(boardSize, boardSize)
	canvas.Rect(0, 0, boardSize, boardSize, backgroundStyle)

	for x := p.Occupied(); x != 0; {
		var sq = common.FirstOne(x)
		x &^= common.SquareMask[sq]
		var style = whiteStyle
		if p.Black&common.SquareMask[sq] != 0 {
			style = blackStyle
		}
		canvas.Rect(common.Column(sq)*size, common.Row(sq)*size, size, size, style)
	}

	if options.ShowMoves {
		var captures, _ = p.AvailableCaptures()
		for _, move := range common.SortedMoves(captures) {
			var sq = common.FirstOne(move)
			canvas.Circle(common.Column(sq)*size+size/2, common.Row(sq)*size+size/2, size/4, moveStyle)
		}
	}

	for i := 1; i < 8; i++ {
		canvas.Line(i*size, 0, i*size, boardSize, gridStyle)
		canvas.Line(0, i*size, boardSize, i*size, gridStyle)
	}
	canvas.End()
	return ew.err
}
