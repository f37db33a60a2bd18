package main

import (
	"fmt"
	"io"
	"strings"

	ssot "github.com/0xalexb/ssot-embed"
	"github.com/0xalexb/ssot-embed/logging"
	"github.com/0xalexb/ssot-embed/rewrite"
	"github.com/0xalexb/ssot-embed/sample"
	"github.com/0xalexb/ssot-embed/store"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

const defaultDocsDir = "docs/"

type options struct {
	source    string
	section   string
	file      string
	dir       string
	template  string
	patterns  []string
	dryRun    bool
	strict    bool
	logLevel  string
	logFormat string
}

func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "ssot-embed",
		Short: "Embed single-source-of-truth values into documentation",
		Long: `ssot-embed replaces {{ssot:key.path}} markers in documentation files with
values from a YAML source of truth. Files are rewritten only when their
content changes, so repeated runs are safe.

Modes, in order of precedence:
  --create-template PATH   write a sample document, then resolve it
  --file PATH              resolve a single file
  --dir PATH               resolve every matching file under PATH (default docs/)`,
		Args:          cobra.NoArgs,
		Version:       fmt.Sprintf("%s (compiled %s)", ssot.Version, ssot.CompiledAt),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.OutOrStdout(), stderr, opts)
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &exitError{Code: 2, Message: "Error: " + err.Error()}
	})

	flags := cmd.Flags()
	flags.StringVar(&opts.source, "ssot", store.DefaultSourcePath, "Path to the SSOT YAML file")
	flags.StringVar(&opts.section, "section", "", "Colon-separated section of the SSOT to resolve against, e.g. environments:prod")
	flags.StringVar(&opts.file, "file", "", "Process a single file")
	flags.StringVar(&opts.dir, "dir", "", "Process a directory (default "+defaultDocsDir+")")
	flags.StringVar(&opts.template, "create-template", "", "Create a sample template file and resolve it")
	flags.StringArrayVar(&opts.patterns, "pattern", nil,
		"File name glob for directory runs, repeatable (default "+strings.Join(rewrite.DefaultPatterns, ", ")+")")
	flags.BoolVar(&opts.dryRun, "dry-run", false, "Report files that would change without writing them")
	flags.BoolVar(&opts.strict, "strict", false, "Exit with status 1 when any file is missing or fails")
	flags.StringVar(&opts.logLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	flags.StringVar(&opts.logFormat, "log-format", logging.FormatText, "Log format: text or json")

	return cmd
}

func validate(opts options) error {
	switch strings.ToLower(opts.logLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return &exitError{Code: 2, Message: "Error: invalid --log-level: must be debug, info, warn or error"}
	}

	switch strings.ToLower(opts.logFormat) {
	case logging.FormatText, logging.FormatJSON:
	default:
		return &exitError{Code: 2, Message: "Error: invalid --log-format: must be text or json"}
	}

	for _, pattern := range opts.patterns {
		err := rewrite.ValidatePatterns([]string{pattern})
		if err != nil {
			return &exitError{Code: 2, Message: fmt.Sprintf("Error: invalid --pattern %q: %v", pattern, err)}
		}
	}

	return nil
}

func run(stdout, stderr io.Writer, opts options) error {
	err := validate(opts)
	if err != nil {
		return err
	}

	var rw *rewrite.Rewriter

	app := ssot.NewApp(
		ssot.WithLogLevel(opts.logLevel),
		ssot.WithLogFormat(opts.logFormat),
		ssot.WithLogOutput(stderr),
		ssot.WithSource(store.WithSourcePath(opts.source), store.WithSection(opts.section)),
		ssot.WithRewriter(rewrite.WithPatterns(opts.patterns...), rewrite.WithDryRun(opts.dryRun)),
		ssot.WithModules(fx.Populate(&rw)),
	)

	err = app.Start()
	if err != nil {
		return &exitError{Code: 1, Message: fmt.Sprintf("Error: cannot load SSOT %s: %v", opts.source, err)}
	}

	defer func() { _ = app.Stop() }()

	rep := &reporter{out: stdout, dryRun: opts.dryRun}

	switch {
	case opts.template != "":
		createTemplate(rw, rep, opts)
	case opts.file != "":
		rep.file(rw.ProcessFile(opts.file))
	default:
		dir := opts.dir
		if dir == "" {
			dir = defaultDocsDir
		}

		processDirectory(rw, rep, dir)
	}

	if opts.strict && rep.failed > 0 {
		return &exitError{Code: 1, Message: fmt.Sprintf("Error: %d file(s) could not be processed", rep.failed)}
	}

	return nil
}

func createTemplate(rw *rewrite.Rewriter, rep *reporter, opts options) {
	err := sample.Write(opts.template, opts.source)
	if err != nil {
		rep.file(rewrite.FileResult{Path: opts.template, Status: rewrite.StatusFailed, Unresolved: nil, Err: err})

		return
	}

	rep.printf("created %s\n", opts.template)
	rep.file(rw.ProcessFile(opts.template))
}

func processDirectory(rw *rewrite.Rewriter, rep *reporter, dir string) {
	report, err := rw.ProcessDirectory(dir)
	if err != nil {
		rep.file(rewrite.FileResult{Path: dir, Status: rewrite.StatusFailed, Unresolved: nil, Err: err})

		return
	}

	for _, result := range report.Results {
		rep.file(result)
	}

	rep.printf("\nupdated %d of %d files\n", len(report.Changed()), len(report.Results))
}
