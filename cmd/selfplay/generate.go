package main

import (
	"context"
	"log"
	"math/rand"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/ChizhovVadim/reversi/pkg/common"
)

type gameResult struct {
	positions []common.Position
	black     int
	white     int
}

func generatePositions(ctx context.Context, settings Settings) error {
	log.Println("generatePositions started")
	defer log.Println("generatePositions finished")

	g, ctx := errgroup.WithContext(ctx)

	var seeds = make(chan int64, 128)
	var results = make(chan gameResult, 128)

	g.Go(func() error {
		defer close(seeds)
		for i := 0; i < settings.Games; i++ {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case seeds <- settings.Seed + int64(i):
			}
		}
		return nil
	})

	g.Go(func() error {
		return savePositions(ctx, settings.OutputPath, results)
	})

	var wg = &sync.WaitGroup{}
	for i := 0; i < settings.Threads; i++ {
		wg.Add(1)
		g.Go(func() error {
			defer wg.Done()
			return playGames(ctx, seeds, results)
		})
	}

	g.Go(func() error {
		wg.Wait()
		close(results)
		return nil
	})

	return g.Wait()
}

func playGames(
	ctx context.Context,
	seeds <-chan int64,
	results chan<- gameResult,
) error {
	for seed := range seeds {
		var res = playRandomGame(rand.New(rand.NewSource(seed)))
		select {
		case <-ctx.Done():
			return ctx.Err()
		case results <- res:
		}
	}
	return nil
}

// playRandomGame plays uniformly random legal moves from the initial position until neither side can move.
func playRandomGame(r *rand.Rand) gameResult {
	var res gameResult
	var p = common.InitialPosition()
	for {
		res.positions = append(res.positions, p)
		var captures, ok = p.AvailableCaptures()
		var child common.Position
		if ok {
			var moves = common.SortedMoves(captures)
			var move = moves[r.Intn(len(moves))]
			p.MakeMoveWithFlips(move, captures[move], &child)
		} else if p.IsGameOver() {
			break
		} else {
			p.MakePass(&child)
		}
		p = child
	}
	res.black, res.white = p.DiscCount()
	return res
}
