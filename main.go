package main

import (
	"os"

	"github.com/pmpts/pmpts/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
