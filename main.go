package main

import (
	"os"

	"github.com/rodrigouchoa/cyclop/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
