package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemFromRecord(t *testing.T) {
	tests := []struct {
		name     string
		rec      map[string]any
		expected Item
	}{
		{
			name:     "string id",
			rec:      map[string]any{"id": "12345", "item_nm": "Report A"},
			expected: Item{ID: "12345", Name: "Report A"},
		},
		{
			name:     "numeric id from json.Number",
			rec:      map[string]any{"id": json.Number("999"), "item_nm": "JOB-42"},
			expected: Item{ID: "999", Name: "JOB-42"},
		},
		{
			name:     "numeric id from float64",
			rec:      map[string]any{"id": float64(42), "item_nm": "x"},
			expected: Item{ID: "42", Name: "x"},
		},
		{
			name:     "missing fields stay empty",
			rec:      map[string]any{},
			expected: Item{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ItemFromRecord(tc.rec))
		})
	}
}

func TestItemDisplayString(t *testing.T) {
	it := Item{ID: "12345", Name: "Report A"}
	assert.Equal(t, "12345: Report A", it.DisplayString())
}

func TestCommentBody_ContentOmittedWhenEmpty(t *testing.T) {
	data, err := json.Marshal(CommentBody{
		CommentText:    "",
		AttachmentFile: AttachmentRef{UUID: "u-1"},
	})
	require.NoError(t, err)
	assert.NotContains(t, string(data), `"content"`)
	assert.Contains(t, string(data), `"comment_text"`)

	data, err = json.Marshal(CommentBody{
		CommentText:    "hello",
		AttachmentFile: AttachmentRef{UUID: "u-1"},
		Content:        "hello",
	})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"content":"hello"`)
}
