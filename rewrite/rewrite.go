package rewrite

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/0xalexb/ssot-embed/marker"
	"github.com/0xalexb/ssot-embed/store"
)

// ErrIsDirectory is returned when a file operation is given a directory.
var ErrIsDirectory = errors.New("path is a directory")

// ErrNotDirectory is returned when a directory run is given something else.
var ErrNotDirectory = errors.New("path is not a directory")

// ErrInvalidUTF8 is returned for files that are not valid UTF-8 text.
var ErrInvalidUTF8 = errors.New("content is not valid UTF-8")

// TextResolver resolves the markers in a text.
type TextResolver interface {
	ResolveWithResults(text string) (string, []store.Result)
}

// Rewriter resolves markers in files and writes back changed content.
type Rewriter struct {
	resolver TextResolver
	logger   *slog.Logger
	config   Config
}

// New creates a Rewriter. It sets config defaults and validates the config.
func New(resolver TextResolver, logger *slog.Logger, cfg Config) (*Rewriter, error) {
	cfg.SetDefaults()

	err := cfg.Validate()
	if err != nil {
		return nil, err
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &Rewriter{
		resolver: resolver,
		logger:   logger,
		config:   cfg,
	}, nil
}

// Patterns returns the default patterns used by ProcessDirectory.
func (r *Rewriter) Patterns() []string {
	return append([]string(nil), r.config.Patterns...)
}

// ProcessFile resolves the markers in the file at path and rewrites it when
// the content changes. Failures are returned in the result, never panicked or
// propagated.
func (r *Rewriter) ProcessFile(path string) FileResult {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			r.logger.Warn("file not found", slog.String("path", path))

			return FileResult{Path: path, Status: StatusMissing, Unresolved: nil, Err: err}
		}

		return r.fail(path, nil, fmt.Errorf("stat %q: %w", path, err))
	}

	if info.IsDir() {
		return r.fail(path, nil, fmt.Errorf("%q: %w", path, ErrIsDirectory))
	}

	data, err := os.ReadFile(path) // #nosec G304 -- documentation paths chosen by the operator
	if err != nil {
		return r.fail(path, nil, fmt.Errorf("reading %q: %w", path, err))
	}

	if !utf8.Valid(data) {
		return r.fail(path, nil, fmt.Errorf("%q: %w", path, ErrInvalidUTF8))
	}

	original := string(data)
	resolved, results := r.resolver.ResolveWithResults(original)
	unresolved := marker.Unresolved(results)

	for _, key := range unresolved {
		r.logger.Warn("unresolved marker", slog.String("path", path), slog.String("key", key))
	}

	if resolved == original {
		r.logger.Debug("no changes needed", slog.String("path", path), slog.Int("markers", len(results)))

		return FileResult{Path: path, Status: StatusUnchanged, Unresolved: unresolved, Err: nil}
	}

	if r.config.DryRun {
		r.logger.Info("file would be updated", slog.String("path", path))

		return FileResult{Path: path, Status: StatusUpdated, Unresolved: unresolved, Err: nil}
	}

	err = r.config.Writer(path, strings.NewReader(resolved))
	if err != nil {
		return r.fail(path, unresolved, fmt.Errorf("writing %q: %w", path, err))
	}

	r.logger.Info("file updated", slog.String("path", path), slog.Int("markers", len(results)))

	return FileResult{Path: path, Status: StatusUpdated, Unresolved: unresolved, Err: nil}
}

// ProcessDirectory walks root in lexical order and processes every regular
// file whose base name matches one of patterns, or the configured patterns
// when none are given. Each file is processed at most once.
//
// An error is returned only when root itself cannot be walked or the
// patterns are malformed; per-file problems are recorded in the Report.
func (r *Rewriter) ProcessDirectory(root string, patterns ...string) (*Report, error) {
	if len(patterns) == 0 {
		patterns = r.config.Patterns
	} else {
		err := ValidatePatterns(patterns)
		if err != nil {
			return nil, err
		}
	}

	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("stat directory %q: %w", root, err)
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("%q: %w", root, ErrNotDirectory)
	}

	report := &Report{Results: nil}

	// A trailing separator makes WalkDir follow a symlinked root.
	walkRoot := root
	if !strings.HasSuffix(walkRoot, string(filepath.Separator)) {
		walkRoot += string(filepath.Separator)
	}

	err = filepath.WalkDir(walkRoot, func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			if path == walkRoot {
				return walkErr
			}

			report.Results = append(report.Results, r.fail(path, nil, walkErr))

			return nil
		}

		if entry.IsDir() || !matchAny(patterns, entry.Name()) {
			return nil
		}

		if !entry.Type().IsRegular() {
			r.logger.Debug("skipping non-regular file", slog.String("path", path))

			return nil
		}

		report.Results = append(report.Results, r.ProcessFile(path))

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %q: %w", root, err)
	}

	r.logger.Info("directory processed",
		slog.String("root", root),
		slog.Int("files", len(report.Results)),
		slog.Int("updated", len(report.Changed())),
		slog.Int("failed", report.Failed()),
	)

	return report, nil
}

func (r *Rewriter) fail(path string, unresolved []string, err error) FileResult {
	r.logger.Error("error processing file", slog.String("path", path), slog.Any("error", err))

	return FileResult{Path: path, Status: StatusFailed, Unresolved: unresolved, Err: err}
}

func matchAny(patterns []string, name string) bool {
	for _, pattern := range patterns {
		matched, err := filepath.Match(pattern, name)
		if err == nil && matched {
			return true
		}
	}

	return false
}
