package main

import (
	"context"
	"os"

	"github.com/fatih/color"
)

func main() {
	if err := newRootCommand().ExecuteContext(context.Background()); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
