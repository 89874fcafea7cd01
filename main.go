package main

import (
	"embed"
	"fmt"
	"os"
)

//go:embed static
var staticFS embed.FS

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
