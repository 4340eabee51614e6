package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/usestring/toggl-mcp/cmd/toggl/app"
)

func main() {
	_ = godotenv.Load()

	if err := app.NewTogglCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
