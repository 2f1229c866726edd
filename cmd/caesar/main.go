package main

import (
	"os"

	"caesar/cmd/caesar/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
