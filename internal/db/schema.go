package db

import "database/sql"

func Migrate(db *sql.DB) {
	db.Exec(`
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		params TEXT,
		expected_wealth REAL,
		expected_steps REAL,
		ruin_count INTEGER,
		target_count INTEGER,
		seed_hash TEXT,
		client_seed TEXT,
		elapsed_ms INTEGER,
		ts INTEGER
	);`)

	db.Exec(`
	CREATE TABLE IF NOT EXISTS audit_logs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		ref TEXT,
		action TEXT,
		metadata TEXT,
		created_at INTEGER
	);`)
}
