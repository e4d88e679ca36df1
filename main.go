package main

import (
	"fmt"
	"os"

	"changedet/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		// Diagnostics go to stderr; stdout carries only directives.
		fmt.Fprintf(os.Stderr, "changedet: %v\n", err)
		os.Exit(1)
	}
}
