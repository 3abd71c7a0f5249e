package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"

	"github.com/mediacat/mtkit/internal/cmd"
	"github.com/mediacat/mtkit/version"
)

func main() {
	if err := fang.Execute(
		context.Background(),
		cmd.NewRootCmd(),
		fang.WithVersion(version.GetFullVersion()),
	); err != nil {
		os.Exit(1)
	}
}
