// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/danielhkuo/quickly-vote/identity"
)

// GenesisDescription is the placeholder proposal stored at index 0 when the
// election is created WithGenesisProposal.
const GenesisDescription = "GENESIS"

type Voter struct {
	IsRegistered    bool `json:"isRegistered"`
	HasVoted        bool `json:"hasVoted"`
	VotedProposalID int  `json:"votedProposalId"`
}

type Proposal struct {
	Description string `json:"description"`
	VoteCount   int    `json:"voteCount"`
}

// Summary is a point-in-time view of the election counters
type Summary struct {
	Admin     identity.Address
	Status    WorkflowStatus
	ChangedAt time.Time
	Voters    int
	Proposals int
	Votes     int
	Seq       int64
}

// Election holds the whole state of one governed vote. Every operation and
// query takes the same lock, so calls never interleave.
type Election struct {
	mu sync.Mutex

	admin     identity.Address
	status    WorkflowStatus
	changedAt time.Time
	voters    map[identity.Address]Voter
	proposals []Proposal
	votes     int
	winnerID  int
	seq       int64

	genesis  bool
	journal  Journal
	notifier Notifier
	logger   *slog.Logger
	now      func() time.Time
}

type Option func(*Election)

// WithJournal sets the store every accepted command is written to before it
// is applied. Defaults to a MemoryJournal.
func WithJournal(j Journal) Option {
	return func(e *Election) { e.journal = j }
}

func WithNotifier(n Notifier) Option {
	return func(e *Election) { e.notifier = n }
}

func WithLogger(logger *slog.Logger) Option {
	return func(e *Election) { e.logger = logger }
}

// WithGenesisProposal reserves index 0 for a GENESIS proposal, added when
// proposal registration starts.
func WithGenesisProposal(enabled bool) Option {
	return func(e *Election) { e.genesis = enabled }
}

func WithClock(now func() time.Time) Option {
	return func(e *Election) { e.now = now }
}

// New creates an election administered by admin, in RegisteringVoters
func New(admin identity.Address, opts ...Option) *Election {
	e := &Election{
		admin:    admin,
		status:   RegisteringVoters,
		voters:   make(map[identity.Address]Voter),
		winnerID: -1,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.journal == nil {
		e.journal = NewMemoryJournal()
	}
	if e.notifier == nil {
		e.notifier = Notifiers(nil)
	}
	e.logger = resolveLogger(e.logger)
	e.changedAt = e.now()
	return e
}

func resolveLogger(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.Default()
	}
	return logger
}

func (e *Election) Admin() identity.Address {
	return e.admin
}

// RegisterVoter adds target to the voter registry
func (e *Election) RegisterVoter(ctx context.Context, caller, target identity.Address) error {
	_, _, err := e.execute(ctx, Command{Op: OpAddVoter, Caller: caller, Target: target})
	return err
}

// SubmitProposal appends a proposal and returns its index
func (e *Election) SubmitProposal(ctx context.Context, caller identity.Address, description string) (int, error) {
	id, _, err := e.execute(ctx, Command{Op: OpAddProposal, Caller: caller, Description: description})
	return id, err
}

// CastVote records caller's vote for proposalID
func (e *Election) CastVote(ctx context.Context, caller identity.Address, proposalID int) error {
	_, _, err := e.execute(ctx, Command{Op: OpSetVote, Caller: caller, ProposalID: proposalID})
	return err
}

func (e *Election) StartProposalsRegistering(ctx context.Context, caller identity.Address) error {
	_, err := e.Advance(ctx, caller, OpStartProposalsRegistering)
	return err
}

func (e *Election) EndProposalsRegistering(ctx context.Context, caller identity.Address) error {
	_, err := e.Advance(ctx, caller, OpEndProposalsRegistering)
	return err
}

func (e *Election) StartVotingSession(ctx context.Context, caller identity.Address) error {
	_, err := e.Advance(ctx, caller, OpStartVotingSession)
	return err
}

func (e *Election) EndVotingSession(ctx context.Context, caller identity.Address) error {
	_, err := e.Advance(ctx, caller, OpEndVotingSession)
	return err
}

// TallyVotes closes the election and returns the winning proposal index,
// or -1 when no proposal was submitted.
func (e *Election) TallyVotes(ctx context.Context, caller identity.Address) (int, error) {
	id, _, err := e.execute(ctx, Command{Op: OpTallyVotes, Caller: caller})
	return id, err
}

// Advance runs the transition op and returns the status change it
// committed. It rejects anything that is not one of the five workflow
// transitions.
func (e *Election) Advance(ctx context.Context, caller identity.Address, op Op) (WorkflowStatusChange, error) {
	if !IsTransition(op) {
		return WorkflowStatusChange{}, fmt.Errorf("%s is not a workflow transition", op)
	}
	_, events, err := e.execute(ctx, Command{Op: op, Caller: caller})
	if err != nil {
		return WorkflowStatusChange{}, err
	}
	return events[0].(WorkflowStatusChange), nil
}

// execute validates cmd, journals it, applies it and notifies, all under
// the lock. Nothing is applied unless the journal append succeeds.
func (e *Election) execute(ctx context.Context, cmd Command) (int, []Event, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	// The genesis setting is journaled so replay does not depend on the
	// configuration of the restarting process.
	if cmd.Op == OpStartProposalsRegistering {
		cmd.Genesis = e.genesis
	}

	events, commit, err := e.plan(cmd)
	if err != nil {
		e.logger.DebugContext(ctx, "command rejected", "op", cmd.Op, "caller", cmd.Caller, "error", err)
		return -1, nil, err
	}

	entry := Entry{
		ID:         uuid.NewString(),
		Seq:        e.seq + 1,
		Command:    cmd,
		Events:     events,
		RecordedAt: e.now(),
	}
	if err := e.journal.Append(ctx, entry); err != nil {
		return -1, nil, fmt.Errorf("journal %s: %w", cmd.Op, err)
	}

	result := commit(entry.RecordedAt)
	e.seq = entry.Seq
	for _, ev := range events {
		e.notifier.Notify(ctx, ev)
	}
	return result, events, nil
}

// Restore replays the journal into a fresh election. Every stored command
// goes through the same checks as a live call.
func (e *Election) Restore(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.seq != 0 {
		return errors.New("restore requires a fresh election")
	}
	entries, err := e.journal.Entries(ctx)
	if err != nil {
		return fmt.Errorf("load journal: %w", err)
	}
	for _, entry := range entries {
		_, commit, err := e.plan(entry.Command)
		if err != nil {
			return fmt.Errorf("replay entry %d (%s): %w", entry.Seq, entry.Command.Op, err)
		}
		commit(entry.RecordedAt)
		e.seq = entry.Seq
	}
	if len(entries) > 0 {
		e.logger.InfoContext(ctx, "election restored",
			"entries", len(entries),
			"status", e.status,
			"voters", len(e.voters),
			"proposals", len(e.proposals),
		)
	}
	return nil
}

// plan checks cmd against the current state and returns the events it
// would emit and a function applying it. plan never mutates.
func (e *Election) plan(cmd Command) ([]Event, func(time.Time) int, error) {
	switch cmd.Op {
	case OpAddVoter:
		return e.planAddVoter(cmd)
	case OpAddProposal:
		return e.planAddProposal(cmd)
	case OpSetVote:
		return e.planSetVote(cmd)
	}
	if IsTransition(cmd.Op) {
		return e.planTransition(cmd)
	}
	return nil, nil, fmt.Errorf("unknown operation %q", cmd.Op)
}

func (e *Election) requireAdmin(caller identity.Address) error {
	if caller != e.admin {
		return ErrUnauthorized
	}
	return nil
}

func (e *Election) requireVoter(caller identity.Address) error {
	if !e.voters[caller].IsRegistered {
		return ErrNotAVoter
	}
	return nil
}

func (e *Election) requireStatus(op Op) error {
	rule := phaseRules[op]
	if e.status != rule.required {
		return &PhaseError{Op: op, Required: rule.required, Current: e.status, Reason: rule.reason}
	}
	return nil
}

func (e *Election) planAddVoter(cmd Command) ([]Event, func(time.Time) int, error) {
	if err := e.requireAdmin(cmd.Caller); err != nil {
		return nil, nil, err
	}
	if err := e.requireStatus(cmd.Op); err != nil {
		return nil, nil, err
	}
	if e.voters[cmd.Target].IsRegistered {
		return nil, nil, ErrDuplicateRegistration
	}

	events := []Event{VoterRegistered{VoterAddress: cmd.Target}}
	return events, func(time.Time) int {
		e.voters[cmd.Target] = Voter{IsRegistered: true}
		return -1
	}, nil
}

func (e *Election) planAddProposal(cmd Command) ([]Event, func(time.Time) int, error) {
	if err := e.requireVoter(cmd.Caller); err != nil {
		return nil, nil, err
	}
	if err := e.requireStatus(cmd.Op); err != nil {
		return nil, nil, err
	}
	if strings.TrimSpace(cmd.Description) == "" {
		return nil, nil, ErrEmptyProposal
	}

	id := len(e.proposals)
	events := []Event{ProposalRegistered{ProposalID: id}}
	return events, func(time.Time) int {
		e.proposals = append(e.proposals, Proposal{Description: cmd.Description})
		return id
	}, nil
}

func (e *Election) planSetVote(cmd Command) ([]Event, func(time.Time) int, error) {
	if err := e.requireVoter(cmd.Caller); err != nil {
		return nil, nil, err
	}
	if err := e.requireStatus(cmd.Op); err != nil {
		return nil, nil, err
	}
	if e.voters[cmd.Caller].HasVoted {
		return nil, nil, ErrAlreadyVoted
	}
	if cmd.ProposalID < 0 || cmd.ProposalID >= len(e.proposals) {
		return nil, nil, ErrProposalNotFound
	}

	events := []Event{Voted{Voter: cmd.Caller, ProposalID: cmd.ProposalID}}
	return events, func(time.Time) int {
		e.voters[cmd.Caller] = Voter{IsRegistered: true, HasVoted: true, VotedProposalID: cmd.ProposalID}
		e.proposals[cmd.ProposalID].VoteCount++
		e.votes++
		return cmd.ProposalID
	}, nil
}

func (e *Election) planTransition(cmd Command) ([]Event, func(time.Time) int, error) {
	if err := e.requireAdmin(cmd.Caller); err != nil {
		return nil, nil, err
	}
	if err := e.requireStatus(cmd.Op); err != nil {
		return nil, nil, err
	}
	next, ok := Next(e.status, cmd.Op)
	if !ok {
		return nil, nil, &PhaseError{Op: cmd.Op, Current: e.status, Reason: "no such transition"}
	}

	prev := e.status
	events := []Event{WorkflowStatusChange{PreviousStatus: prev, NewStatus: next}}
	return events, func(at time.Time) int {
		result := -1
		switch cmd.Op {
		case OpStartProposalsRegistering:
			if cmd.Genesis {
				e.proposals = append(e.proposals, Proposal{Description: GenesisDescription})
			}
		case OpTallyVotes:
			e.winnerID = Tally(e.proposals)
			result = e.winnerID
			e.logger.Info("votes tallied",
				"winner", e.winnerID,
				"proposals", len(e.proposals),
				"votes", humanize.Comma(int64(e.votes)),
			)
		}
		e.status = next
		e.changedAt = at
		return result
	}, nil
}

func (e *Election) Status() WorkflowStatus {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.status
}

// Voter returns the record for addr. Unknown identities get the zero Voter.
func (e *Election) Voter(addr identity.Address) Voter {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.voters[addr]
}

func (e *Election) Proposal(id int) (Proposal, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if id < 0 || id >= len(e.proposals) {
		return Proposal{}, ErrProposalNotFound
	}
	return e.proposals[id], nil
}

// Proposals returns a copy of the proposal registry in index order
func (e *Election) Proposals() []Proposal {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]Proposal, len(e.proposals))
	copy(out, e.proposals)
	return out
}

// Winner returns the index and record of the winning proposal. It fails
// with a PhaseError until votes are tallied, and with ErrProposalNotFound
// when the election closed without proposals.
func (e *Election) Winner() (int, Proposal, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.status != VotesTallied {
		return -1, Proposal{}, &PhaseError{
			Op:       "getWinner",
			Required: VotesTallied,
			Current:  e.status,
			Reason:   "Votes have not been tallied yet",
		}
	}
	if e.winnerID < 0 {
		return -1, Proposal{}, ErrProposalNotFound
	}
	return e.winnerID, e.proposals[e.winnerID], nil
}

func (e *Election) Summary() Summary {
	e.mu.Lock()
	defer e.mu.Unlock()
	return Summary{
		Admin:     e.admin,
		Status:    e.status,
		ChangedAt: e.changedAt,
		Voters:    len(e.voters),
		Proposals: len(e.proposals),
		Votes:     e.votes,
		Seq:       e.seq,
	}
}
