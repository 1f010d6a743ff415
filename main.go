package main

import (
	"log/slog"
	"os"

	"github.com/IrumShehryar/Restaurant-Website/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		slog.Error("restaurant failed", "error", err)
		os.Exit(1)
	}
}
