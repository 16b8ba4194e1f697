package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTaskUpdate_UnmarshalTracksPresence(t *testing.T) {
	var patch TaskUpdate
	assert.NoError(t, json.Unmarshal([]byte(`{}`), &patch))
	assert.False(t, patch.TitleSet)
	assert.False(t, patch.DescriptionSet)
	assert.False(t, patch.IsCompletedSet)

	patch = TaskUpdate{}
	assert.NoError(t, json.Unmarshal([]byte(`{"description":null}`), &patch))
	assert.False(t, patch.TitleSet)
	assert.True(t, patch.DescriptionSet)
	assert.Nil(t, patch.Description)

	patch = TaskUpdate{}
	assert.NoError(t, json.Unmarshal([]byte(`{"title":"New","description":"text","is_completed":true}`), &patch))
	assert.True(t, patch.TitleSet)
	assert.Equal(t, "New", *patch.Title)
	assert.True(t, patch.DescriptionSet)
	assert.Equal(t, "text", *patch.Description)
	assert.True(t, patch.IsCompletedSet)
	assert.True(t, *patch.IsCompleted)
}
