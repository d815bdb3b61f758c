// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// The statements stick to the subset shared by SQLite and PostgreSQL.
// Timestamps are unix milliseconds.
const schema = `
-- Accepted commands, in apply order
CREATE TABLE IF NOT EXISTS journal_entry (
    seq BIGINT PRIMARY KEY,
    id TEXT NOT NULL UNIQUE,
    op TEXT NOT NULL,
    caller TEXT NOT NULL,
    target TEXT NOT NULL,
    description TEXT NOT NULL,
    proposal_id INTEGER NOT NULL,
    genesis BOOLEAN NOT NULL DEFAULT FALSE,
    recorded_at BIGINT NOT NULL
);

-- Events produced by each command
CREATE TABLE IF NOT EXISTS journal_event (
    entry_seq BIGINT NOT NULL REFERENCES journal_entry(seq) ON DELETE CASCADE,
    position INTEGER NOT NULL,
    name TEXT NOT NULL,
    payload TEXT NOT NULL,
    PRIMARY KEY (entry_seq, position)
);

CREATE INDEX IF NOT EXISTS idx_journal_event_name ON journal_event(name);
`
