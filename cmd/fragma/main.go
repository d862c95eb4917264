package main

import (
	"os"

	"fragma/cmd/fragma/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
