// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database connections, schema creation and the durable
election journal.

# Connecting

Open picks the driver from the database type, pings the server and creates
the schema:

	conn, err := db.Open(db.TypeSQLite, "data/quickly-vote.db")
	conn, err := db.Open(db.TypePostgres, "postgres://...")

SQLite uses modernc.org/sqlite (pure Go); PostgreSQL uses lib/pq.

# Schema Creation

CreateSchema is safe to call multiple times - uses IF NOT EXISTS for all
tables and indexes.

# Tables

  - journal_entry: One row per accepted election command, keyed by seq
  - journal_event: Events emitted by each command, in emission order

Relationship:

	journal_entry 1──* journal_event

Timestamps are stored as unix milliseconds so both engines agree on them.

# Journal

Journal implements voting.Journal on top of these tables:

	election := voting.New(admin, voting.WithJournal(db.NewJournal(conn)))
	if err := election.Restore(ctx); err != nil {
		log.Fatal(err)
	}

Append writes an entry and its events in a single transaction.
*/
package db
