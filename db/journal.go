// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/danielhkuo/quickly-vote/identity"
	"github.com/danielhkuo/quickly-vote/voting"
)

// Journal stores election commands and their events in SQL tables
type Journal struct {
	db *sql.DB
}

func NewJournal(db *sql.DB) *Journal {
	return &Journal{db: db}
}

func toMillis(t time.Time) int64 {
	return t.UTC().UnixMilli()
}

func fromMillis(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}

// Append writes the entry and its events in one transaction
func (j *Journal) Append(ctx context.Context, entry voting.Entry) error {
	tx, err := j.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	cmd := entry.Command
	_, err = tx.ExecContext(ctx, `
		INSERT INTO journal_entry (seq, id, op, caller, target, description, proposal_id, genesis, recorded_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, entry.Seq, entry.ID, string(cmd.Op), cmd.Caller.String(), cmd.Target.String(),
		cmd.Description, cmd.ProposalID, cmd.Genesis, toMillis(entry.RecordedAt))
	if err != nil {
		return fmt.Errorf("insert journal entry: %w", err)
	}

	for i, ev := range entry.Events {
		payload, err := json.Marshal(ev)
		if err != nil {
			return fmt.Errorf("encode %s: %w", ev.EventName(), err)
		}
		_, err = tx.ExecContext(ctx, `
			INSERT INTO journal_event (entry_seq, position, name, payload)
			VALUES ($1, $2, $3, $4)
		`, entry.Seq, i, ev.EventName(), string(payload))
		if err != nil {
			return fmt.Errorf("insert journal event: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit journal entry: %w", err)
	}
	return nil
}

// Entries returns every entry in sequence order
func (j *Journal) Entries(ctx context.Context) ([]voting.Entry, error) {
	rows, err := j.db.QueryContext(ctx, `
		SELECT seq, id, op, caller, target, description, proposal_id, genesis, recorded_at
		FROM journal_entry
		ORDER BY seq
	`)
	if err != nil {
		return nil, fmt.Errorf("query journal entries: %w", err)
	}
	defer rows.Close()

	entries := []voting.Entry{}
	index := map[int64]int{}
	for rows.Next() {
		var (
			entry              voting.Entry
			op, caller, target string
			recordedAt         int64
		)
		if err := rows.Scan(&entry.Seq, &entry.ID, &op, &caller, &target,
			&entry.Command.Description, &entry.Command.ProposalID, &entry.Command.Genesis, &recordedAt); err != nil {
			return nil, fmt.Errorf("scan journal entry: %w", err)
		}
		entry.Command.Op = voting.Op(op)
		if entry.Command.Caller, err = identity.ParseAddress(caller); err != nil {
			return nil, fmt.Errorf("journal entry %d caller: %w", entry.Seq, err)
		}
		if entry.Command.Target, err = identity.ParseAddress(target); err != nil {
			return nil, fmt.Errorf("journal entry %d target: %w", entry.Seq, err)
		}
		entry.RecordedAt = fromMillis(recordedAt)
		index[entry.Seq] = len(entries)
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate journal entries: %w", err)
	}
	rows.Close()

	evRows, err := j.db.QueryContext(ctx, `
		SELECT entry_seq, name, payload
		FROM journal_event
		ORDER BY entry_seq, position
	`)
	if err != nil {
		return nil, fmt.Errorf("query journal events: %w", err)
	}
	defer evRows.Close()

	for evRows.Next() {
		var (
			seq           int64
			name, payload string
		)
		if err := evRows.Scan(&seq, &name, &payload); err != nil {
			return nil, fmt.Errorf("scan journal event: %w", err)
		}
		i, ok := index[seq]
		if !ok {
			return nil, fmt.Errorf("journal event for unknown entry %d", seq)
		}
		ev, err := voting.DecodeEvent(name, []byte(payload))
		if err != nil {
			return nil, err
		}
		entries[i].Events = append(entries[i].Events, ev)
	}
	if err := evRows.Err(); err != nil {
		return nil, fmt.Errorf("iterate journal events: %w", err)
	}

	return entries, nil
}
