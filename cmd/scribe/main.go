package main

import (
	"os"

	"github.com/Finn-TH/scribe/internal/adapters/driving/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
