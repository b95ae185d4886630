// Package main provides the entry point for the scentmap CLI tool.
package main

import "github.com/scentmap/scentmap/cmd/scentmap/cmd"

// Version information populated by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	cmd.Execute(version, commit, date)
}
