package main

import (
	"os"

	"github.com/clinicli/scl90/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
