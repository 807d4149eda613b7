package main

import (
	"os"

	"github.com/MEKXH/requisition/cmd/requisition/commands"
)

func main() {
	if err := commands.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
