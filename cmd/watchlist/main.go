package main

import (
	"github.com/joho/godotenv"

	"github.com/datavault-io/watchlist/pkg/cli/cmd"
)

func main() {
	// Credentials commonly live in a local .env; absence is fine.
	godotenv.Load()

	cmd.Execute()
}
