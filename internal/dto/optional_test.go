package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateNoteRequestFieldPresence(t *testing.T) {
	t.Run("absent fields stay unset", func(t *testing.T) {
		var req UpdateNoteRequest
		require.NoError(t, json.Unmarshal([]byte(`{"title":"X"}`), &req))

		assert.True(t, req.Title.Set)
		assert.Equal(t, "X", req.Title.Value)
		assert.False(t, req.Content.Set)
		assert.False(t, req.Category.Set)
		assert.False(t, req.Tags.Set)
		assert.False(t, req.Empty())
	})

	t.Run("null category is present but nil", func(t *testing.T) {
		var req UpdateNoteRequest
		require.NoError(t, json.Unmarshal([]byte(`{"category":null}`), &req))

		assert.True(t, req.Category.Set)
		assert.Nil(t, req.Category.Value)
	})

	t.Run("empty tag list is present", func(t *testing.T) {
		var req UpdateNoteRequest
		require.NoError(t, json.Unmarshal([]byte(`{"tags":[]}`), &req))

		assert.True(t, req.Tags.Set)
		assert.NotNil(t, req.Tags.Value)
		assert.Empty(t, req.Tags.Value)
	})

	t.Run("empty body is empty", func(t *testing.T) {
		var req UpdateNoteRequest
		require.NoError(t, json.Unmarshal([]byte(`{}`), &req))
		assert.True(t, req.Empty())
	})
}
