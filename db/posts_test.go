package db

import (
	"beitrag/model"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) {
	t.Helper()
	openDB(":memory:")
	t.Cleanup(func() { DB.Close() })
}

func TestOpenDBUsesSingleConnection(t *testing.T) {
	setupTestDB(t)

	// Migrations and queries must share one connection, or an in-memory
	// database would show a different schema per pool connection.
	assert.Equal(t, 1, DB.Stats().MaxOpenConnections)
}

func TestSavePostAndGetPost(t *testing.T) {
	setupTestDB(t)

	draft := model.Draft{
		SourceType:  "Website",
		URL:         "http://x.com",
		Description: "a cool read",
		Priority:    "Wichtig",
	}
	require.NoError(t, SavePost("u1", draft))

	post, err := GetPost("u1")
	require.NoError(t, err)
	require.NotNil(t, post)
	assert.Equal(t, "u1", post.UserID)
	assert.Equal(t, "Website", post.SourceType)
	assert.Equal(t, "http://x.com", post.URL)
	assert.Equal(t, "a cool read", post.Description)
	assert.Equal(t, "Wichtig", post.Priority)
	assert.False(t, post.UpdatedAt.IsZero())
}

func TestSavePostOverwritesAllFields(t *testing.T) {
	setupTestDB(t)

	require.NoError(t, SavePost("u1", model.Draft{
		SourceType:  "Website",
		URL:         "https://old.example",
		Description: "alt",
		Priority:    "Niedrig",
	}))
	require.NoError(t, SavePost("u1", model.Draft{
		SourceType:  "Podcast",
		URL:         "https://new.example",
		Description: "neu",
		Priority:    "Wichtig",
	}))

	post, err := GetPost("u1")
	require.NoError(t, err)
	require.NotNil(t, post)
	assert.Equal(t, "Podcast", post.SourceType)
	assert.Equal(t, "https://new.example", post.URL)
	assert.Equal(t, "neu", post.Description)
	assert.Equal(t, "Wichtig", post.Priority)

	// Still exactly one row per user.
	var count int
	require.NoError(t, DB.QueryRow("SELECT COUNT(*) FROM posts WHERE user_id = ?", "u1").Scan(&count))
	assert.Equal(t, 1, count)
}

func TestGetPostUnknownUser(t *testing.T) {
	setupTestDB(t)

	post, err := GetPost("nobody")
	require.NoError(t, err)
	assert.Nil(t, post)
}

func TestUserStats(t *testing.T) {
	setupTestDB(t)

	// First lookup creates the row with zero values.
	user, err := GetUserStats("u1")
	require.NoError(t, err)
	assert.Equal(t, "u1", user.UserID)
	assert.Equal(t, 0, user.SubmittedCount)

	require.NoError(t, IncrementSubmittedCount("u1"))
	require.NoError(t, IncrementSubmittedCount("u1"))

	user, err = GetUserStats("u1")
	require.NoError(t, err)
	assert.Equal(t, 2, user.SubmittedCount)
}

func TestPostStoreAdapter(t *testing.T) {
	setupTestDB(t)

	store := PostStore{}
	require.NoError(t, store.SavePost("u2", model.Draft{
		SourceType:  "Blog",
		URL:         "https://example.org",
		Description: "via adapter",
		Priority:    "Normal",
	}))

	post, err := GetPost("u2")
	require.NoError(t, err)
	require.NotNil(t, post)
	assert.Equal(t, "via adapter", post.Description)
}
