package main

import (
	"os"

	"github.com/chronos-tachyon/huffpack/internal/command"
)

func main() {
	if err := command.Execute(); err != nil {
		os.Exit(1)
	}
}
