package main

import (
	"log"
	"os"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	var err = run()
	if err != nil {
		log.Println(err)
		os.Exit(1)
	}
}

func run() error {
	var args, err = ParseCommandArgs(os.Args[1:])
	if err != nil {
		return err
	}
	var handler = NewCommandHandler()
	handler.Add("play", playHandler)
	handler.Add("perft", func(args *CommandArgs) error {
		return perftHandler(args, os.Stdout)
	})
	handler.Add("moves", func(args *CommandArgs) error {
		return movesHandler(args, os.Stdout)
	})
	handler.Add("svg", svgHandler)
	return handler.Execute(args)
}
