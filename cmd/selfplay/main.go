package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"runtime"
)

type Settings struct {
	OutputPath string
	Games      int
	Threads    int
	Seed       int64
}

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	var err = run()
	if err != nil {
		log.Println(err)
	}
}

func run() error {
	var settings = Settings{
		OutputPath: "selfplay.txt",
		Games:      1000,
		Threads:    max(1, runtime.NumCPU()/2),
		Seed:       1,
	}

	flag.StringVar(&settings.OutputPath, "output", settings.OutputPath, "Path to output positions file")
	flag.IntVar(&settings.Games, "games", settings.Games, "Number of random games")
	flag.IntVar(&settings.Threads, "threads", settings.Threads, "Number of threads")
	flag.Int64Var(&settings.Seed, "seed", settings.Seed, "Random seed of the first game")
	flag.Parse()

	log.Printf("%+v", settings)

	if settings.Games <= 0 || settings.Threads <= 0 {
		return fmt.Errorf("games and threads must be positive")
	}
	return generatePositions(context.Background(), settings)
}
