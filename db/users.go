package db

import (
	"beitrag/model"
	"database/sql"
)

// GetUserStats retrieves a user's stats from the users table.
func GetUserStats(userID string) (*model.User, error) {
	var user model.User
	err := DB.QueryRow("SELECT user_id, submitted_count FROM users WHERE user_id = ?", userID).
		Scan(&user.UserID, &user.SubmittedCount)
	if err != nil {
		if err == sql.ErrNoRows {
			// If the user is not in the table, create a new record
			_, err = DB.Exec("INSERT INTO users(user_id) VALUES(?)", userID)
			if err != nil {
				return nil, err
			}
			// Return a new user struct with default zero values
			return &model.User{UserID: userID}, nil
		}
		return nil, err
	}
	return &user, nil
}

// IncrementSubmittedCount increments the submitted_count for a user.
func IncrementSubmittedCount(userID string) error {
	_, err := DB.Exec("INSERT INTO users (user_id, submitted_count) VALUES (?, 1) ON CONFLICT(user_id) DO UPDATE SET submitted_count = submitted_count + 1", userID)
	return err
}
