// Package main is the entrypoint for the wythoff CLI.
package main

import (
	"os"

	"github.com/katalvlaran/wythoff/internal/cli"
)

func main() {
	os.Exit(cli.New().Execute())
}
