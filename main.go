package main

import (
	"os"

	"github.com/georgkoester/sbom2doc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
