// SPDX-License-Identifier: MIT

// Package main is the entry point for the mststep CLI.
//
// Usage:
//
//	mststep [flags] <command> [args]
//
// Commands:
//
//	run   - compute a step log and print every step
//	play  - auto-play a step log at a fixed interval
package main

import (
	"fmt"
	"os"

	"github.com/plan-systems/klog"

	"github.com/katalvlaran/mststep/cmd/mststep/commands"
)

func main() {
	err := commands.Execute()
	klog.Flush()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
