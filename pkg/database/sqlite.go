package database

import (
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

// NewSQLiteDB opens the SQLite data file that backs the key-value store.
func NewSQLiteDB(dataPath string) (*sqlx.DB, error) {
	if dataPath == "" {
		return nil, fmt.Errorf("data path cannot be empty")
	}

	// Busy timeout keeps concurrent requests from failing with SQLITE_BUSY;
	// WAL lets readers proceed while a write is in flight.
	dsn := dataPath + "?_busy_timeout=5000&_journal_mode=WAL"
	db, err := sqlx.Connect("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	log.Println("Successfully opened SQLite database.")
	return db, nil
}

// CloseDB closes the SQLite database.
func CloseDB(db *sqlx.DB) {
	if db != nil {
		if err := db.Close(); err != nil {
			log.Printf("Error closing SQLite database: %v\n", err)
			return
		}
		log.Println("SQLite database closed.")
	}
}
