// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"context"
	"sync"
	"time"

	"github.com/danielhkuo/quickly-vote/identity"
)

// Command is an accepted call, as recorded in the journal. Replaying the
// commands of a journal in order rebuilds the election.
type Command struct {
	Op          Op               `json:"op"`
	Caller      identity.Address `json:"caller"`
	Target      identity.Address `json:"target"`
	Description string           `json:"description,omitempty"`
	ProposalID  int              `json:"proposalId"`
	// Genesis is set on startProposalsRegistering when a GENESIS
	// placeholder is appended at index 0.
	Genesis bool `json:"genesis,omitempty"`
}

// Entry is one journaled command together with the events it produced
type Entry struct {
	ID         string
	Seq        int64
	Command    Command
	Events     []Event
	RecordedAt time.Time
}

// Journal is the durable store an Election writes through. Append must
// either store the whole entry or nothing.
type Journal interface {
	Append(ctx context.Context, entry Entry) error
	Entries(ctx context.Context) ([]Entry, error)
}

// MemoryJournal is a Journal that lives for the life of the process
type MemoryJournal struct {
	mu      sync.Mutex
	entries []Entry
}

func NewMemoryJournal() *MemoryJournal {
	return &MemoryJournal{}
}

func (j *MemoryJournal) Append(_ context.Context, entry Entry) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	entry.Events = append([]Event(nil), entry.Events...)
	j.entries = append(j.entries, entry)
	return nil
}

func (j *MemoryJournal) Entries(_ context.Context) ([]Entry, error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	out := make([]Entry, len(j.entries))
	copy(out, j.entries)
	return out, nil
}
