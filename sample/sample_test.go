package sample_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/0xalexb/ssot-embed/marker"
	"github.com/0xalexb/ssot-embed/sample"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	t.Parallel()

	doc := sample.Render("docs/architecture/ec2_backend.yaml")

	assert.Contains(t, doc, "`docs/architecture/ec2_backend.yaml`")
	assert.Contains(t, doc, "{{ssot:autoscaling_config.target_cpu_utilization}}%")
	assert.NotContains(t, doc, "%!", "percent signs must survive formatting")

	exprs := map[string]bool{}
	for _, m := range marker.Find(doc) {
		exprs[m.Expr] = true
	}

	assert.True(t, exprs["deployment_type"])
	assert.True(t, exprs["ecs.task.cpu"])
	assert.True(t, exprs["security.iam_roles.ecs_task_role"])
	assert.True(t, exprs["network.public_subnets"])
	assert.Len(t, exprs, 35)
}

func TestWrite_CreatesParents(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "docs", "generated", "backend.md")

	require.NoError(t, sample.Write(path, "ssot.yaml"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, sample.Render("ssot.yaml"), string(data))
}

func TestWrite_ReplacesExisting(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "backend.md")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0o600))

	require.NoError(t, sample.Write(path, "ssot.yaml"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotEqual(t, "old", string(data))
}

func TestWrite_FileModes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		existing os.FileMode
		want     os.FileMode
	}{
		{name: "new file", want: sample.FileMode},
		{name: "existing private file", existing: 0o600, want: 0o600},
		{name: "existing group writable file", existing: 0o664, want: 0o664},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), "docs", "sample.md")

			if tt.existing != 0 {
				require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
				require.NoError(t, os.WriteFile(path, []byte("old\n"), 0o600))
				require.NoError(t, os.Chmod(path, tt.existing))
			}

			require.NoError(t, sample.Write(path, "ssot.yaml"))

			info, err := os.Stat(path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, info.Mode().Perm())
		})
	}
}

func TestWrite_ParentIsFile(t *testing.T) {
	t.Parallel()

	parent := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(parent, []byte("x"), 0o600))

	err := sample.Write(filepath.Join(parent, "backend.md"), "ssot.yaml")
	require.Error(t, err)
}
