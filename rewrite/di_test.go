package rewrite

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/0xalexb/ssot-embed/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
)

func TestNewModule_ProvidesRewriter(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	source := filepath.Join(dir, "ssot.yaml")
	doc := filepath.Join(dir, "readme.md")

	require.NoError(t, os.WriteFile(source, []byte("platform: ecs\n"), 0o600))
	require.NoError(t, os.WriteFile(doc, []byte("Runs on {{ssot:platform}}.\n"), 0o600))

	var rw *Rewriter

	app := fxtest.New(t,
		fx.Supply(slog.New(slog.NewTextHandler(io.Discard, nil))),
		store.NewModule(store.WithSourcePath(source)),
		NewModule(WithPatterns("*.md")),
		fx.Populate(&rw),
	)
	app.RequireStart()
	t.Cleanup(app.RequireStop)

	require.NotNil(t, rw)
	assert.Equal(t, []string{"*.md"}, rw.Patterns())

	result := rw.ProcessFile(doc)
	require.NoError(t, result.Err)
	assert.True(t, result.Changed())

	data, err := os.ReadFile(doc)
	require.NoError(t, err)
	assert.Equal(t, "Runs on ecs.\n", string(data))
}

func TestNewModule_InvalidPatternFailsGraph(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	source := filepath.Join(dir, "ssot.yaml")
	require.NoError(t, os.WriteFile(source, []byte("platform: ecs\n"), 0o600))

	var rw *Rewriter

	app := fx.New(
		fx.NopLogger,
		fx.Supply(slog.New(slog.NewTextHandler(io.Discard, nil))),
		store.NewModule(store.WithSourcePath(source)),
		NewModule(WithPatterns("[")),
		fx.Populate(&rw),
	)

	err := app.Err()
	require.Error(t, err)
	assert.Contains(t, err.Error(), filepath.ErrBadPattern.Error())
}
