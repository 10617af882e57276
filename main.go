package main

import (
	"os"

	"github.com/mfreites/markuptest/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
