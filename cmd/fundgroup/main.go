// Command fundgroup inspects saved fundamental-group presentations: listings,
// peripheral curves, generators in the original generators, the simplifier's
// move transcript, holonomy images and GAP/Magma exports.
//
// Usage:
//
//	fundgroup show testdata/sample.yaml
//	fundgroup originals --verbose testdata/sample.yaml
//	fundgroup batch --jobs 4 dumps/*.yaml
package main

import (
	"fmt"
	"io"
	"os"
)

// Exit codes.
const (
	exitSuccess = 0
	exitError   = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the CLI with args and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	root := newRootCmd(stdout, stderr)
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(stderr, "fundgroup: %v\n", err)
		return exitError
	}

	return exitSuccess
}
