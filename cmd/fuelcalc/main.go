package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Load .env file if present (optional, for local overrides)
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "fuelcalc: %v\n", err)
		return 1
	}
	return 0
}
