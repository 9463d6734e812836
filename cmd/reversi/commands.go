package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/ChizhovVadim/reversi/internal/console"
	"github.com/ChizhovVadim/reversi/internal/diagram"
	"github.com/ChizhovVadim/reversi/internal/perft"
	"github.com/ChizhovVadim/reversi/pkg/common"
)

func playHandler(args *CommandArgs) error {
	var p, err = args.GetPosition()
	if err != nil {
		return err
	}
	var logger = log.New(os.Stderr, "", log.LstdFlags|log.Lshortfile)
	return console.New(logger, os.Stdout, p).Run(os.Stdin)
}

func perftHandler(args *CommandArgs, w io.Writer) error {
	var p, err = args.GetPosition()
	if err != nil {
		return err
	}
	depth, err := args.GetInt("depth", 6)
	if err != nil {
		return err
	}
	threads, err := args.GetInt("threads", runtime.NumCPU())
	if err != nil {
		return err
	}

	log.Println("perft started",
		"depth", depth,
		"threads", threads)
	defer log.Println("perft finished")

	var start = time.Now()
	results, err := perft.Divide(context.Background(), &p, depth, threads)
	if err != nil {
		return err
	}
	var elapsed = time.Since(start)
	for _, r := range results {
		fmt.Fprintf(w, "%v: %v\n", r.MoveName(), r.Nodes)
	}
	var total = perft.Total(results)
	fmt.Fprintf(w, "Total: %v\n", total)
	log.Println("elapsed", elapsed,
		"nps", int(float64(total)/elapsed.Seconds()))
	return nil
}

func movesHandler(args *CommandArgs, w io.Writer) error {
	var p, err = args.GetPosition()
	if err != nil {
		return err
	}
	fmt.Fprint(w, p.Draw())
	var captures, ok = p.AvailableCaptures()
	if !ok {
		if p.IsGameOver() {
			fmt.Fprintln(w, "game over")
		} else {
			fmt.Fprintln(w, "pass")
		}
		return nil
	}
	for _, move := range common.SortedMoves(captures) {
		fmt.Fprintln(w, common.SquareName(common.FirstOne(move)), common.BitboardString(captures[move]))
	}
	return nil
}

func svgHandler(args *CommandArgs) error {
	var p, err = args.GetPosition()
	if err != nil {
		return err
	}
	size, err := args.GetInt("size", 64)
	if err != nil {
		return err
	}
	showMoves, err := args.GetBool("moves", true)
	if err != nil {
		return err
	}
	var outputPath = args.GetString("output", "board.svg")
	file, err := os.Create(outputPath)
	if err != nil {
		return err
	}
	defer file.Close()
	err = diagram.WriteSVG(file, &p, diagram.Options{
		SquareSize: size,
		ShowMoves:  showMoves,
	})
	if err != nil {
		return err
	}
	log.Println("svg saved",
		"output", outputPath)
	return file.Close()
}
