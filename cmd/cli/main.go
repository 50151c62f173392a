// Package main is the entry point for the portal CLI binary.
package main

import (
	"os"

	cli "codemap-portal/pkg/cli"
)

func main() {
	os.Exit(cli.Execute())
}
