package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionLifecycle(t *testing.T) {
	session := NewSession("s1", "c1")
	assert.Equal(t, "s1", session.UserID)
	assert.Equal(t, "c1", session.ChannelID)
	assert.NotEmpty(t, session.RunID)
	assert.Zero(t, session.Cursor)

	got, found := GetSession("s1")
	require.True(t, found)
	assert.Equal(t, session.RunID, got.RunID)

	got.Cursor = 3
	got.Draft.URL = "https://example.org"
	PutSession(got)

	got, found = GetSession("s1")
	require.True(t, found)
	assert.Equal(t, 3, got.Cursor)
	assert.Equal(t, "https://example.org", got.Draft.URL)

	RemoveSession("s1")
	_, found = GetSession("s1")
	assert.False(t, found)
}

func TestNewSessionReplacesExistingRun(t *testing.T) {
	first := NewSession("s2", "c1")
	second := NewSession("s2", "c2")

	assert.NotEqual(t, first.RunID, second.RunID)

	got, found := GetSession("s2")
	require.True(t, found)
	assert.Equal(t, second.RunID, got.RunID)
	assert.Equal(t, "c2", got.ChannelID)
	assert.Zero(t, got.Cursor)

	RemoveSession("s2")
}
