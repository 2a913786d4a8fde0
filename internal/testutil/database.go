package testutil

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite" // Test Package
)

// SetupTestDB creates an in-memory SQLite database for testing.
// The database is automatically cleaned up when the test completes.
//
// Example usage:
//
//	func TestSomething(t *testing.T) {
//	    db := testutil.SetupTestDB(t)
//	    // db is ready to use with schema created
//	}
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	// In-memory database (destroyed when connection closes)
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		t.Fatalf("Failed to ping test database: %v", err)
	}

	// Configure SQLite for testing
	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA journal_mode = MEMORY", // Faster for tests
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			t.Fatalf("Failed to set pragma: %v", err)
		}
	}

	// Create schema
	if err := createTestSchema(db); err != nil {
		t.Fatalf("Failed to create test schema: %v", err)
	}

	// Cleanup when test ends
	t.Cleanup(func() {
		db.Close()
	})

	return db
}

// createTestSchema creates all database tables for testing.
// Schema is synchronized with the production migrations.
func createTestSchema(db *sql.DB) error {
	schema := `
		-- Holding table
		CREATE TABLE holding (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			symbol VARCHAR(12) NOT NULL,
			display_name VARCHAR(100) NOT NULL DEFAULT '',
			units INTEGER NOT NULL CHECK (units >= 0),
			purchase_price REAL NOT NULL CHECK (purchase_price > 0),
			purchase_date DATE NOT NULL,
			notes TEXT NOT NULL DEFAULT '',
			added_at TIMESTAMP NOT NULL
		);

		CREATE INDEX idx_holding_symbol ON holding (symbol);

		-- Price cache table
		CREATE TABLE price_cache (
			symbol VARCHAR(12) NOT NULL,
			date DATE NOT NULL,
			price REAL NOT NULL,
			synthetic BOOLEAN NOT NULL DEFAULT FALSE,
			fetched_at TIMESTAMP NOT NULL,
			PRIMARY KEY (symbol, date)
		);

		-- Settings table
		CREATE TABLE settings (
			key VARCHAR(64) NOT NULL PRIMARY KEY,
			value TEXT NOT NULL
		);
	`

	_, err := db.Exec(schema)
	return err
}
