package db

import (
	"beitrag/model"
	"database/sql"
	"time"
)

// rowScanner is an interface that can be satisfied by *sql.Row or *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanPost scans a row into a Post struct.
func scanPost(scanner rowScanner) (*model.Post, error) {
	var post model.Post
	var updatedAt int64
	err := scanner.Scan(
		&post.UserID, &post.SourceType, &post.URL, &post.Description,
		&post.Priority, &updatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // Return nil, nil if the user has no post yet
		}
		return nil, err
	}
	post.UpdatedAt = time.Unix(updatedAt, 0)
	return &post, nil
}

// SavePost writes the user's post record, overwriting all four answer fields
// if a record already exists.
func SavePost(userID string, d model.Draft) error {
	_, err := DB.Exec(`
		INSERT INTO posts (user_id, source_type, url, description, priority, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			source_type = excluded.source_type,
			url = excluded.url,
			description = excluded.description,
			priority = excluded.priority,
			updated_at = excluded.updated_at`,
		userID, d.SourceType, d.URL, d.Description, d.Priority, time.Now().Unix(),
	)
	return err
}

// GetPost retrieves the user's post record, or nil if none exists.
func GetPost(userID string) (*model.Post, error) {
	row := DB.QueryRow(
		"SELECT user_id, source_type, url, description, priority, updated_at FROM posts WHERE user_id = ?",
		userID,
	)
	return scanPost(row)
}

// PostStore adapts the package-level functions to the wizard's storage
// interface.
type PostStore struct{}

func (PostStore) SavePost(userID string, d model.Draft) error {
	return SavePost(userID, d)
}
