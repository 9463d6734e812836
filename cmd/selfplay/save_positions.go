package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ChizhovVadim/reversi/pkg/common"
)

func savePositions(ctx context.Context, filepath string, results <-chan gameResult) error {
	file, err := os.Create(filepath)
	if err != nil {
		return err
	}
	defer file.Close()

	var w = bufio.NewWriter(file)

	var ticker = time.NewTicker(5 * time.Second)
	defer ticker.Stop()

	var stats gameStats
	var repeats = make(map[common.Position]struct{})

	var showProgress = func() {
		log.Printf("Games: %v total: %v unique: %v, black wins: %v white wins: %v draws: %v\n",
			stats.games, stats.totalCount, stats.uniqueCount,
			stats.blackWins, stats.whiteWins, stats.draws)
	}

LOOP:
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			showProgress()
		case res, ok := <-results:
			if !ok {
				break LOOP
			}
			stats.add(res)
			for _, pos := range res.positions {
				stats.totalCount++
				if _, found := repeats[pos]; found {
					continue
				}
				repeats[pos] = struct{}{}
				stats.uniqueCount++
				_, err = fmt.Fprintln(w, pos.String())
				if err != nil {
					return err
				}
			}
		}
	}

	showProgress()
	if err = w.Flush(); err != nil {
		return err
	}
	return file.Close()
}

type gameStats struct {
	games       int
	totalCount  int
	uniqueCount int
	blackWins   int
	whiteWins   int
	draws       int
}

func (s *gameStats) add(res gameResult) {
	s.games++
	switch {
	case res.black > res.white:
		s.blackWins++
	case res.white > res.black:
		s.whiteWins++
	default:
		s.draws++
	}
}
