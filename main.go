package main

import (
	"log"
	"os"

	"github.com/ChizhovVadim/reversi/internal/console"
	"github.com/ChizhovVadim/reversi/pkg/common"
)

func main() {
	var logger = log.New(os.Stderr, "", log.LstdFlags|log.Lshortfile)
	var err = console.New(logger, os.Stdout, common.InitialPosition()).Run(os.Stdin)
	if err != nil {
		logger.Println(err)
	}
}
