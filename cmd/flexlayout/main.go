// Package main provides the flexlayout command line tool.
//
// Usage:
//
//	flexlayout compute [file...]   Lay out documents and print node frames
//	flexlayout check [file...]     Validate documents without printing frames
//	flexlayout preview file        Draw a document's frames in the terminal
//	flexlayout version             Print build information
//
// Examples:
//
//	flexlayout compute --width 120 --height 40 dashboard.yaml
//	flexlayout compute --format table a.yaml b.yaml
//	flexlayout preview --watch dashboard.yaml
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
