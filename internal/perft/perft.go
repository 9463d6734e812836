package perft

import (
	"context"
	"fmt"

	"github.com/ChizhovVadim/reversi/pkg/common"
	"golang.org/x/sync/errgroup"
)

// MovePass marks a forced pass in divide output.
const MovePass uint64 = 0

type DivideResult struct {
	Move  uint64
	Nodes int
}

func (r DivideResult) MoveName() string {
	if r.Move == MovePass {
		return "pass"
	}
	return common.SquareName(common.FirstOne(r.Move))
}

// Perft counts leaf nodes. A side without moves passes, a finished game is a leaf.
func Perft(p *common.Position, depth int) int {
	if depth == 0 {
		return 1
	}
	var captures, ok = p.AvailableCaptures()
	var child common.Position
	if !ok {
		if p.IsGameOver() {
			return 1
		}
		p.MakePass(&child)
		return Perft(&child, depth-1)
	}
	var result = 0
	for move, flips := range captures {
		p.MakeMoveWithFlips(move, flips, &child)
		result += Perft(&child, depth-1)
	}
	return result
}

// Divide counts the nodes below every root move, spreading root moves over threads workers.
// Results come in row-major move order.
func Divide(ctx context.Context, p *common.Position, depth, threads int) ([]DivideResult, error) {
	if depth <= 0 {
		return nil, fmt.Errorf("perft depth must be positive: %v", depth)
	}
	if threads <= 0 {
		threads = 1
	}
	var captures, ok = p.AvailableCaptures()
	if !ok {
		if p.IsGameOver() {
			return nil, nil
		}
		var child common.Position
		p.MakePass(&child)
		return []DivideResult{{Move: MovePass, Nodes: Perft(&child, depth-1)}}, nil
	}

	var moves = common.SortedMoves(captures)
	var results = make([]DivideResult, len(moves))

	g, ctx := errgroup.WithContext(ctx)

	var jobs = make(chan int)

	g.Go(func() error {
		defer close(jobs)
		for i := range moves {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case jobs <- i:
			}
		}
		return nil
	})

	for worker := 0; worker < threads; worker++ {
		g.Go(func() error {
			var child common.Position
			for index := range jobs {
				if err := ctx.Err(); err != nil {
					return err
				}
				var move = moves[index]
				p.MakeMoveWithFlips(move, captures[move], &child)
				results[index] = DivideResult{
					Move:  move,
					Nodes: Perft(&child, depth-1),
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func Total(results []DivideResult) int {
	var total = 0
	for _, r := range results {
		total += r.Nodes
	}
	return total
}
