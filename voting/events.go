// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/danielhkuo/quickly-vote/identity"
)

// Event names
const (
	EventVoterRegistered      = "VoterRegistered"
	EventProposalRegistered   = "ProposalRegistered"
	EventVoted                = "Voted"
	EventWorkflowStatusChange = "WorkflowStatusChange"
)

// Event is a notification emitted once per successful mutation
type Event interface {
	EventName() string
}

type VoterRegistered struct {
	VoterAddress identity.Address `json:"voterAddress"`
}

type ProposalRegistered struct {
	ProposalID int `json:"proposalId"`
}

type Voted struct {
	Voter      identity.Address `json:"voter"`
	ProposalID int              `json:"proposalId"`
}

type WorkflowStatusChange struct {
	PreviousStatus WorkflowStatus `json:"previousStatus"`
	NewStatus      WorkflowStatus `json:"newStatus"`
}

func (VoterRegistered) EventName() string      { return EventVoterRegistered }
func (ProposalRegistered) EventName() string   { return EventProposalRegistered }
func (Voted) EventName() string                { return EventVoted }
func (WorkflowStatusChange) EventName() string { return EventWorkflowStatusChange }

// DecodeEvent rebuilds an event from its name and JSON payload
func DecodeEvent(name string, payload []byte) (Event, error) {
	var (
		ev  Event
		err error
	)
	switch name {
	case EventVoterRegistered:
		var e VoterRegistered
		err = json.Unmarshal(payload, &e)
		ev = e
	case EventProposalRegistered:
		var e ProposalRegistered
		err = json.Unmarshal(payload, &e)
		ev = e
	case EventVoted:
		var e Voted
		err = json.Unmarshal(payload, &e)
		ev = e
	case EventWorkflowStatusChange:
		var e WorkflowStatusChange
		err = json.Unmarshal(payload, &e)
		ev = e
	default:
		return nil, fmt.Errorf("unknown event %q", name)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return ev, nil
}

// Notifier receives events after they have been journaled and applied.
// Notify is called with the election lock held and must not call back
// into the election.
type Notifier interface {
	Notify(ctx context.Context, ev Event)
}

// NotifierFunc adapts a function to Notifier
type NotifierFunc func(ctx context.Context, ev Event)

func (f NotifierFunc) Notify(ctx context.Context, ev Event) { f(ctx, ev) }

// Notifiers fans an event out to each notifier in order
type Notifiers []Notifier

func (ns Notifiers) Notify(ctx context.Context, ev Event) {
	for _, n := range ns {
		n.Notify(ctx, ev)
	}
}

// LogNotifier writes every event to logger at info level
func LogNotifier(logger *slog.Logger) Notifier {
	logger = resolveLogger(logger)
	return NotifierFunc(func(ctx context.Context, ev Event) {
		logger.InfoContext(ctx, "election event", "event", ev.EventName(), "payload", ev)
	})
}

// Recorder keeps every event it is notified of
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *Recorder) Notify(_ context.Context, ev Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

// Events returns a copy of the recorded events
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// Last returns the most recent event, or nil
func (r *Recorder) Last() Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.events) == 0 {
		return nil
	}
	return r.events[len(r.events)-1]
}

func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
}
