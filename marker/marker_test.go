package marker_test

import (
	"testing"

	"github.com/0xalexb/ssot-embed/marker"
	"github.com/0xalexb/ssot-embed/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newResolver() *marker.Resolver {
	tree := store.Tree{
		"a": map[string]any{
			"b": map[string]any{"c": uint64(42)},
		},
		"region":      "eu-west-1",
		"autoscaling": true,
		"looks_like":  "{{ssot:region}}",
		"ecs": map[string]any{
			"task": map[string]any{"cpu": uint64(512), "memory": uint64(1024)},
		},
	}

	return marker.NewResolver(store.New(&tree))
}

func TestResolve(t *testing.T) {
	t.Parallel()

	r := newResolver()

	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "nested", text: "{{ssot:a.b.c}}", want: "42"},
		{name: "missing leaf", text: "{{ssot:a.b.x}}", want: "{ERROR: a.b.x not found}"},
		{name: "missing intermediate", text: "{{ssot:a.z.c}}", want: "{ERROR: a.z.c not found}"},
		{name: "inline", text: "Region: {{ssot:region}}.", want: "Region: eu-west-1."},
		{name: "boolean", text: "scaling={{ssot:autoscaling}}", want: "scaling=true"},
		{
			name: "two markers",
			text: "- CPU: {{ssot:ecs.task.cpu}}\n- Memory: {{ssot:ecs.task.memory}}\n",
			want: "- CPU: 512\n- Memory: 1024\n",
		},
		{name: "adjacent markers", text: "{{ssot:a.b.c}}{{ssot:region}}", want: "42eu-west-1"},
		{name: "no markers", text: "plain text with {{braces}}", want: "plain text with {{braces}}"},
		{name: "empty expression is not a marker", text: "{{ssot:}}", want: "{{ssot:}}"},
		{name: "prefix is literal", text: "{{ ssot:region}} {{SSOT:region}}", want: "{{ ssot:region}} {{SSOT:region}}"},
		{name: "expression stops at first brace", text: "{{ssot:a.b}c}}", want: "{{ssot:a.b}c}}"},
		{name: "unicode around markers", text: "région → {{ssot:region}} ✓", want: "région → eu-west-1 ✓"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, r.Resolve(tt.text))
		})
	}
}

func TestResolve_SinglePass(t *testing.T) {
	t.Parallel()

	r := newResolver()

	once := r.Resolve("value: {{ssot:looks_like}}")
	assert.Equal(t, "value: {{ssot:region}}", once, "substituted values are not re-expanded")
}

func TestResolve_Idempotent(t *testing.T) {
	t.Parallel()

	r := newResolver()
	doc := "# Deploy\n\n- Region: {{ssot:region}}\n- Missing: {{ssot:nope}}\n- CPU: {{ssot:ecs.task.cpu}}\n"

	once := r.Resolve(doc)
	twice := r.Resolve(once)

	assert.Equal(t, once, twice)
}

func TestResolve_Deterministic(t *testing.T) {
	t.Parallel()

	r := newResolver()
	doc := "{{ssot:ecs.task}} {{ssot:a}} {{ssot:region}}"

	first := r.Resolve(doc)

	for range 10 {
		require.Equal(t, first, r.Resolve(doc))
	}
}

func TestResolveWithResults(t *testing.T) {
	t.Parallel()

	text, results := newResolver().ResolveWithResults("{{ssot:region}} {{ssot:a.z.c}} {{ssot:a.b.c}}")

	assert.Equal(t, "eu-west-1 {ERROR: a.z.c not found} 42", text)
	require.Len(t, results, 3)
	assert.True(t, results[0].Found)
	assert.False(t, results[1].Found)
	assert.True(t, results[2].Found)
	assert.Equal(t, []string{"a.z.c"}, marker.Unresolved(results))
}

func TestResolveWithResults_NoMarkers(t *testing.T) {
	t.Parallel()

	text, results := newResolver().ResolveWithResults("nothing to do")

	assert.Equal(t, "nothing to do", text)
	assert.Empty(t, results)
	assert.Empty(t, marker.Unresolved(results))
}

func TestFind(t *testing.T) {
	t.Parallel()

	text := "a {{ssot:x.y}} b {{ssot:z}}"
	markers := marker.Find(text)

	require.Len(t, markers, 2)

	assert.Equal(t, "x.y", markers[0].Expr)
	assert.Equal(t, store.Path{"x", "y"}, markers[0].Path())
	assert.Equal(t, "{{ssot:x.y}}", text[markers[0].Start:markers[0].End])

	assert.Equal(t, "z", markers[1].Expr)
	assert.Equal(t, "{{ssot:z}}", text[markers[1].Start:markers[1].End])

	assert.Nil(t, marker.Find("no markers"))
}
