package db

import (
	"database/sql"
	"log"

	_ "github.com/mattn/go-sqlite3"
)

const (
	dbDriver = "sqlite3"
	dbSource = "./data/beitrag.db"
)

// DB is the global database connection pool.
var DB *sql.DB

// InitDB initializes the SQLite database and creates tables if they don't exist.
func InitDB() {
	openDB(dbSource)
	log.Println("Database connection initialized successfully.")
}

// openDB opens the given SQLite source and runs the migrations. Tests use
// this directly with ":memory:".
func openDB(source string) {
	var err error
	DB, err = sql.Open(dbDriver, source)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}

	// SQLite serializes writers anyway; a single connection also keeps an
	// in-memory database on one schema.
	DB.SetMaxOpenConns(1)

	// createTables is defined in migrate.go
	createTables()
}
