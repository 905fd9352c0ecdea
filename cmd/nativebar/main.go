// Package main provides the nativebar helper CLI: it validates theme files,
// prints the effective per-bar styling and checks native protocol versions
// against the library.
package main

import (
	"os"

	"github.com/go-drift/nativebar/cmd/nativebar/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
