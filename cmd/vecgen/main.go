// Package main is the entry point for the vecgen CLI.
//
// Usage:
//
//	vecgen --o <file> --d <dimension> --n <records> [flags]
//	vecgen inspect <path> [--compress kind]
//
// The dataset is written to datasets/vectors/<file>, one record per line:
// a zero-based id followed by <dimension> uniform values in [0.00, 100.00],
// every field terminated by a tab.
//
// Exit status is 2 for command line errors and 1 for any other failure.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/hupe1980/vecgen/cmd/vecgen/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)

		var usageErr *commands.UsageError
		if errors.As(err, &usageErr) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
