package main

import (
	"bufio"
	"context"
	"math/rand"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/ChizhovVadim/reversi/pkg/common"
)

func TestPlayRandomGame(t *testing.T) {
	var first = playRandomGame(rand.New(rand.NewSource(7)))
	var second = playRandomGame(rand.New(rand.NewSource(7)))
	if !reflect.DeepEqual(first, second) {
		t.Error("same seed gave different games")
	}
	if first.positions[0] != common.InitialPosition() {
		t.Error(first.positions[0].String())
	}
	var last = first.positions[len(first.positions)-1]
	if !last.IsGameOver() {
		t.Error(last.String())
	}
	var black, white = last.DiscCount()
	if black != first.black || white != first.white {
		t.Error(first.black, first.white)
	}
	for _, p := range first.positions {
		if p.Black&p.White != 0 {
			t.Fatal(p.String())
		}
	}
}

func TestGeneratePositions(t *testing.T) {
	var outputPath = filepath.Join(t.TempDir(), "positions.txt")
	var settings = Settings{
		OutputPath: outputPath,
		Games:      20,
		Threads:    3,
		Seed:       11,
	}
	if err := generatePositions(context.Background(), settings); err != nil {
		t.Fatal(err)
	}
	file, err := os.Open(outputPath)
	if err != nil {
		t.Fatal(err)
	}
	defer file.Close()

	var seen = make(map[string]struct{})
	var scanner = bufio.NewScanner(file)
	for scanner.Scan() {
		var line = scanner.Text()
		if _, err := common.NewPositionFromString(line); err != nil {
			t.Fatal(err)
		}
		if _, found := seen[line]; found {
			t.Error("duplicate", line)
		}
		seen[line] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		t.Fatal(err)
	}
	if _, found := seen[common.InitialPositionString]; !found {
		t.Error("initial position missing")
	}
	// 20 games of at least 9 plies share only the first few positions
	if len(seen) < 100 {
		t.Error(len(seen))
	}
}
