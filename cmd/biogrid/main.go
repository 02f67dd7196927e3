package main

import (
	"fmt"
	"log/slog"
	"os"
)

// main is the entrypoint for the biogrid registry validator.
func main() {
	// Use a minimal logger until the command configures the full one.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	code, err := run(os.Args[1:], os.Stdout, os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	os.Exit(code)
}
