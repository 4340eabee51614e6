package jsoncompact

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompact_TrimsArrays(t *testing.T) {
	input := `[{"id": 1}, {"id": 2}, {"id": 3}, {"id": 4}, {"id": 5}]`

	out, stats, err := Compact([]byte(input), Options{MaxArrayItems: 2})
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id": 1}, {"id": 2}, "... (3 more items)"]`, string(out))
	assert.Equal(t, Stats{TrimmedArrays: 1, DroppedItems: 3}, stats)
	assert.True(t, stats.Changed())
}

func TestCompact_NestedArraysCounted(t *testing.T) {
	input := `{
		"projects": [
			{"name": "Website", "tags": ["a", "b", "c"]},
			{"name": "Mobile", "tags": ["x"]},
			{"name": "Ops", "tags": []}
		]
	}`

	out, stats, err := Compact([]byte(input), Options{MaxArrayItems: 2})
	require.NoError(t, err)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal(out, &parsed))
	projects := parsed["projects"].([]any)
	require.Len(t, projects, 3)
	assert.Equal(t, "... (1 more items)", projects[2])
	first := projects[0].(map[string]any)
	assert.Equal(t, []any{"a", "b", "... (1 more items)"}, first["tags"])

	assert.Equal(t, 2, stats.TrimmedArrays)
	assert.Equal(t, 2, stats.DroppedItems)
}

func TestCompact_WithinLimitsUnchanged(t *testing.T) {
	input := `{"description": "Standup", "duration": 900, "billable": false, "tags": ["meeting"], "project_id": null}`

	out, stats, err := Compact([]byte(input), DefaultOptions())
	require.NoError(t, err)
	assert.JSONEq(t, input, string(out))
	assert.False(t, stats.Changed())
}

func TestCompact_TruncatesStrings(t *testing.T) {
	input := `{"description": "` + strings.Repeat("x", 30) + `"}`

	out, stats, err := Compact([]byte(input), Options{MaxStringLen: 10})
	require.NoError(t, err)
	assert.JSONEq(t, `{"description": "xxxxxxxxxx... (20 more chars)"}`, string(out))
	assert.Equal(t, 1, stats.TruncatedStrings)
}

func TestCompact_MaxDepth(t *testing.T) {
	input := `{"workspace": {"settings": {"rounding": 1}}, "name": "Main"}`

	out, stats, err := Compact([]byte(input), Options{MaxDepth: 2})
	require.NoError(t, err)
	assert.JSONEq(t, `{"workspace": {"settings": "[max depth]"}, "name": "Main"}`, string(out))
	assert.Equal(t, 1, stats.DepthCutoffs)
}

func TestCompact_EmptyAndInvalid(t *testing.T) {
	out, stats, err := Compact(nil, DefaultOptions())
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.False(t, stats.Changed())

	_, _, err = Compact([]byte(`{"broken":`), DefaultOptions())
	assert.ErrorContains(t, err, "invalid JSON")
}

func TestCompactValue_DoesNotModifyInput(t *testing.T) {
	in := []any{"a", "b", "c"}

	out, stats := CompactValue(in, Options{MaxArrayItems: 1})
	assert.Equal(t, []any{"a", "... (2 more items)"}, out)
	assert.Equal(t, []any{"a", "b", "c"}, in)
	assert.Equal(t, 2, stats.DroppedItems)
}
