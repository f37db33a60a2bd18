// Command ssot-embed resolves {{ssot:key.path}} markers in documentation
// files against a YAML single source of truth.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// exitError carries a process exit code and the message printed before exiting.
type exitError struct {
	Code    int
	Message string
}

func (e *exitError) Error() string {
	return e.Message
}

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

// execute runs the command and maps its error to an exit code.
func execute(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCommand(stdout, stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	if err == nil {
		return 0
	}

	var exitErr *exitError
	if errors.As(err, &exitErr) {
		if exitErr.Message != "" {
			_, _ = fmt.Fprintln(stderr, exitErr.Message)
		}

		return exitErr.Code
	}

	_, _ = fmt.Fprintln(stderr, "Error:", err)

	return 1
}
