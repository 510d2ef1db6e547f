package mindmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"craftify/internal/domain"
)

func module(title any, topics ...any) map[string]any {
	m := map[string]any{
		"moduleOverview":  "overview",
		"keyTopics":       topics,
		"detailedContent": []any{},
	}
	if title != nil {
		m["moduleTitle"] = title
	}
	return m
}

func TestBuild_CountsMatchCourse(t *testing.T) {
	doc := map[string]any{
		"courseTitle":    "Go",
		"courseOverview": "o",
		"modules": []any{
			module("Basics", "vars", "funcs", "loops"),
			module("Concurrency", "goroutines"),
			module("Testing"),
		},
	}

	root, err := Build(doc)
	require.NoError(t, err)

	assert.Equal(t, domain.RootNodeID, root.ID)
	assert.Equal(t, domain.NodeKindRoot, root.Kind)
	assert.Equal(t, "Go", root.Label)
	require.Len(t, root.Children, 3)

	for i, want := range []int{3, 1, 0} {
		mod := root.Children[i]
		assert.Equal(t, domain.NodeKindModule, mod.Kind)
		assert.Equal(t, domain.ModuleNodeID(i), mod.ID)
		assert.Equal(t, want, mod.CountLeaves())
	}
	assert.Equal(t, "topic_0_1", root.Children[0].Children[1].ID)
	assert.Equal(t, "funcs", root.Children[0].Children[1].Label)
	assert.Equal(t, 4, root.CountLeaves())
}

func TestBuild_SkipsModuleWithoutTitle(t *testing.T) {
	doc := map[string]any{
		"courseTitle": "Go",
		"modules": []any{
			module("One", "a"),
			module(nil, "b"),
			module("Three", "c"),
		},
	}

	root, err := Build(doc)
	require.NoError(t, err)
	require.Len(t, root.Children, 2)
	assert.Equal(t, "module_0", root.Children[0].ID)
	assert.Equal(t, "module_2", root.Children[1].ID)
	assert.Equal(t, "topic_2_0", root.Children[1].Children[0].ID)
}

func TestBuild_ToleratesBadModuleData(t *testing.T) {
	doc := map[string]any{
		"courseTitle": "Go",
		"modules": []any{
			"not a module",
			map[string]any{"moduleTitle": "No topics"},
			map[string]any{"moduleTitle": "Bad topics", "keyTopics": "oops"},
			module("Mixed", "ok", 42.0, "also ok"),
			module(7.0, "x"),
		},
	}

	root, err := Build(doc)
	require.NoError(t, err)
	require.Len(t, root.Children, 3)
	assert.Empty(t, root.Children[0].Children)
	assert.Empty(t, root.Children[1].Children)

	mixed := root.Children[2]
	assert.Equal(t, "module_3", mixed.ID)
	require.Len(t, mixed.Children, 2)
	assert.Equal(t, "topic_3_0", mixed.Children[0].ID)
	assert.Equal(t, "topic_3_2", mixed.Children[1].ID)
}

func TestBuild_StructuralFailures(t *testing.T) {
	tests := []struct {
		name    string
		doc     any
		wantMsg string
	}{
		{"not an object", []any{1.0}, "course must be a JSON object"},
		{"missing title", map[string]any{"modules": []any{}}, "courseTitle"},
		{"missing modules", map[string]any{"courseTitle": "Go"}, "modules"},
		{"modules not list", map[string]any{"courseTitle": "Go", "modules": map[string]any{}}, "modules must be a list"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Build(tt.doc)
			require.Error(t, err)
			assert.Equal(t, domain.CodeSchemaViolation, domain.CodeOf(err))
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestBuild_NonStringTitle(t *testing.T) {
	tests := []struct {
		name      string
		title     any
		wantLabel string
	}{
		{"null", nil, ""},
		{"number", 42.0, "42"},
		{"bool", true, "true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, err := Build(map[string]any{
				"courseTitle": tt.title,
				"modules": []any{
					map[string]any{"moduleTitle": "M", "keyTopics": []any{"t"}},
				},
			})
			require.NoError(t, err)
			assert.Equal(t, tt.wantLabel, root.Label)
			assert.Equal(t, domain.RootNodeID, root.ID)
			assert.Equal(t, 1, root.CountLeaves())
		})
	}
}

func TestBuild_AcceptsJSONString(t *testing.T) {
	root, err := Build(`{"courseTitle": "Go", "modules": [{"moduleTitle": "M", "keyTopics": ["t"]}]}`)
	require.NoError(t, err)
	assert.Equal(t, 1, root.CountLeaves())

	_, err = Build(`{"courseTitle": `)
	assert.Equal(t, domain.CodeMalformedPayload, domain.CodeOf(err))
}
