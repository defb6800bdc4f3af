package main

import (
	"os"

	"github.com/flowkit/mcmf/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
