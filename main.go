package main

import (
	"os"

	"github.com/bookforge/bookforge/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
