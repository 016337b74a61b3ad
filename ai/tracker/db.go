package tracker

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"

	"github.com/autodoc-ai/autodoc/errors"
)

// schema is the usage-tracking table. Kept to a single table so the tracker
// database can live next to the binary with no migration machinery.
const schema = `
CREATE TABLE IF NOT EXISTS ai_model_usage (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id TEXT NOT NULL,
	operation_type TEXT NOT NULL,
	entity_type TEXT NOT NULL,
	entity_id TEXT NOT NULL,
	model_name TEXT NOT NULL,
	model_provider TEXT NOT NULL,
	request_timestamp TIMESTAMP NOT NULL,
	response_timestamp TIMESTAMP,
	tokens_used INTEGER,
	success BOOLEAN NOT NULL DEFAULT 0,
	error_message TEXT
);
CREATE INDEX IF NOT EXISTS idx_ai_model_usage_request_timestamp
	ON ai_model_usage(request_timestamp);
CREATE INDEX IF NOT EXISTS idx_ai_model_usage_run_id
	ON ai_model_usage(run_id);
`

// Open opens (creating if needed) the usage-tracking SQLite database at path
// and ensures the schema exists.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open usage database %s", path)
	}
	if err := EnsureSchema(db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// EnsureSchema creates the usage-tracking schema if it does not exist
func EnsureSchema(db *sql.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return errors.Wrap(err, "failed to create usage schema")
	}
	return nil
}
