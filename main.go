package main

import (
	"os"

	"github.com/acedergren/agentic-tools/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
