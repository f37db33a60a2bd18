package main

import (
	"fmt"
	"io"

	"github.com/0xalexb/ssot-embed/rewrite"
)

// reporter prints one status line per file for the operator.
type reporter struct {
	out    io.Writer
	dryRun bool
	failed int
}

func (r *reporter) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(r.out, format, args...)
}

func (r *reporter) file(result rewrite.FileResult) {
	switch result.Status {
	case rewrite.StatusUpdated:
		if r.dryRun {
			r.printf("would update %s\n", result.Path)
		} else {
			r.printf("updated %s\n", result.Path)
		}
	case rewrite.StatusUnchanged:
		r.printf("unchanged %s\n", result.Path)
	case rewrite.StatusMissing:
		r.failed++
		r.printf("missing %s\n", result.Path)
	case rewrite.StatusFailed:
		r.failed++
		r.printf("error %s: %v\n", result.Path, result.Err)
	}

	for _, key := range result.Unresolved {
		r.printf("unresolved %s: %s\n", result.Path, key)
	}
}
