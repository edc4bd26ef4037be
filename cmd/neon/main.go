package main

import (
	"os"

	"github.com/bnema/neon-boards/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
