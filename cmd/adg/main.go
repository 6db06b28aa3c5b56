package main

import (
	"os"

	"github.com/katalvlaran/adg/cmd/adg/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
