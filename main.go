// Package main is the entry point for the clippanel desktop tool.
package main

import (
	"os"

	"github.com/Norgate-AV/clippanel/cmd"
)

func main() {
	if err := cmd.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
