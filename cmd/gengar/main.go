package main

import (
	"os"

	"github.com/gengar-lang/gengar/cmd/gengar/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
