package main

import (
	"os"

	"github.com/aouyang1/go-gradfit/cmd/gradfit/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
