// Command sheetverify validates YAML sheet documents against their column
// rules.
//
//	sheetverify check inventory.yaml          # list failing cells
//	sheetverify check --json inventory.yaml   # same, as JSON
//	sheetverify lint inventory.yaml           # list rule patterns that do not compile
//
// Engine and logging settings come from the environment (see pkg/config).
package main

import (
	"errors"
	"fmt"
	"os"
)

const (
	exitOK      = 0
	exitFailing = 1
	exitError   = 2
)

// errFailing signals that the document was processed and problems were found.
var errFailing = errors.New("verification failed")

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		if errors.Is(err, errFailing) {
			return exitFailing
		}
		fmt.Fprintln(os.Stderr, "error:", err)
		return exitError
	}
	return exitOK
}
