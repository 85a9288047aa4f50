package main

import (
	"os"

	"github.com/vowsync/vowsync/cmd/vowsync/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
