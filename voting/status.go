// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import "fmt"

// WorkflowStatus is the election phase. The ordinal values are part of the
// WorkflowStatusChange event and must not be reordered.
type WorkflowStatus uint8

const (
	RegisteringVoters WorkflowStatus = iota
	ProposalsRegistrationStarted
	ProposalsRegistrationEnded
	VotingSessionStarted
	VotingSessionEnded
	VotesTallied
)

var statusNames = [...]string{
	RegisteringVoters:            "RegisteringVoters",
	ProposalsRegistrationStarted: "ProposalsRegistrationStarted",
	ProposalsRegistrationEnded:   "ProposalsRegistrationEnded",
	VotingSessionStarted:         "VotingSessionStarted",
	VotingSessionEnded:           "VotingSessionEnded",
	VotesTallied:                 "VotesTallied",
}

func (s WorkflowStatus) String() string {
	if s.Valid() {
		return statusNames[s]
	}
	return fmt.Sprintf("WorkflowStatus(%d)", uint8(s))
}

func (s WorkflowStatus) Valid() bool {
	return int(s) < len(statusNames)
}

// Op names an operation as it appears in the journal
type Op string

const (
	OpAddVoter                  Op = "addVoter"
	OpAddProposal               Op = "addProposal"
	OpSetVote                   Op = "setVote"
	OpStartProposalsRegistering Op = "startProposalsRegistering"
	OpEndProposalsRegistering   Op = "endProposalsRegistering"
	OpStartVotingSession        Op = "startVotingSession"
	OpEndVotingSession          Op = "endVotingSession"
	OpTallyVotes                Op = "tallyVotes"
)

// phaseRule is the status an operation requires and the rejection reason
// reported when the election is elsewhere.
type phaseRule struct {
	required WorkflowStatus
	reason   string
}

var phaseRules = map[Op]phaseRule{
	OpAddVoter:                  {RegisteringVoters, "Voters registration is not open yet"},
	OpAddProposal:               {ProposalsRegistrationStarted, "Proposals are not allowed yet"},
	OpSetVote:                   {VotingSessionStarted, "Voting session havent started yet"},
	OpStartProposalsRegistering: {RegisteringVoters, "Registering proposals cant be started now"},
	OpEndProposalsRegistering:   {ProposalsRegistrationStarted, "Registering proposals havent started yet"},
	OpStartVotingSession:        {ProposalsRegistrationEnded, "Registering proposals phase is not finished"},
	OpEndVotingSession:          {VotingSessionStarted, "Voting session havent started yet"},
	OpTallyVotes:                {VotingSessionEnded, "Current status is not voting session ended"},
}

// transitions lists the only legal status moves, keyed by the operation that
// performs them. Each target is exactly one step after its source.
var transitions = map[Op]struct{ from, to WorkflowStatus }{
	OpStartProposalsRegistering: {RegisteringVoters, ProposalsRegistrationStarted},
	OpEndProposalsRegistering:   {ProposalsRegistrationStarted, ProposalsRegistrationEnded},
	OpStartVotingSession:        {ProposalsRegistrationEnded, VotingSessionStarted},
	OpEndVotingSession:          {VotingSessionStarted, VotingSessionEnded},
	OpTallyVotes:                {VotingSessionEnded, VotesTallied},
}

// IsTransition reports whether op advances the workflow
func IsTransition(op Op) bool {
	_, ok := transitions[op]
	return ok
}

// Next returns the status reached by op from s, or false when op is not a
// legal move from s.
func Next(s WorkflowStatus, op Op) (WorkflowStatus, bool) {
	t, ok := transitions[op]
	if !ok || t.from != s {
		return s, false
	}
	return t.to, true
}

// RequiredStatus returns the status op must run in
func RequiredStatus(op Op) (WorkflowStatus, bool) {
	rule, ok := phaseRules[op]
	return rule.required, ok
}
