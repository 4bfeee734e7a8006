// Package main provides the boxlayout command, which lays out box documents.
//
// Usage:
//
//	boxlayout calc [path...]     Lay out documents and print the results
//	boxlayout check [path...]    Validate documents without printing results
//	boxlayout version            Print version information
//
// Documents are TOML, YAML or JSON files. Directories are searched
// recursively for files with a known extension.
//
// Examples:
//
//	boxlayout calc window.yaml
//	boxlayout calc -o json ./layouts
//	boxlayout check --width 1024 --height 768 ./layouts
package main

import (
	"fmt"
	"os"

	"github.com/grindlemire/go-boxlayout/internal/debug"
)

func main() {
	cmd := newRootCmd()
	err := cmd.Execute()
	debug.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
