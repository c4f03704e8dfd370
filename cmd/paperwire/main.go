package main

import (
	"os"

	"paperwire/cmd/paperwire/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
