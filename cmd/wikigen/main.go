// cmd/wikigen/main.go
package main

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
)

func main() {
	// WIKIGEN_* variables may come from a .env file next to site.yaml.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("Could not load .env file", "error", err)
	}

	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("wikigen"),
		kong.Description("wikigen - wraps page fragments into complete wiki pages"),
		kong.UsageOnError(),
	)
	if err := ctx.Run(&cli); err != nil {
		slog.Error("Operation failed", "error", err)
		os.Exit(1)
	}
}
