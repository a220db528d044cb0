package db

import (
	"log"
)

// createTables creates the required tables if they do not exist yet.
func createTables() {
	// One post per user. A new completed wizard run overwrites the row.
	createPostsTableSQL := `
	CREATE TABLE IF NOT EXISTS posts (
		user_id TEXT PRIMARY KEY,
		source_type TEXT NOT NULL,
		url TEXT NOT NULL,
		description TEXT NOT NULL,
		priority TEXT NOT NULL,
		updated_at INTEGER NOT NULL
	);`

	_, err := DB.Exec(createPostsTableSQL)
	if err != nil {
		log.Fatalf("Failed to create posts table: %v", err)
	}

	createUsersTableSQL := `
	CREATE TABLE IF NOT EXISTS users (
		user_id TEXT PRIMARY KEY,
		submitted_count INTEGER NOT NULL DEFAULT 0
	);`

	_, err = DB.Exec(createUsersTableSQL)
	if err != nil {
		log.Fatalf("Failed to create users table: %v", err)
	}

	log.Println("Database tables initialized successfully.")
}
