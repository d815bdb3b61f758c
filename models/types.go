package models

import (
	"time"

	"github.com/danielhkuo/quickly-vote/identity"
)

// Workflow actions accepted by POST /workflow/{action}
const (
	ActionStartProposals = "start-proposals"
	ActionEndProposals   = "end-proposals"
	ActionStartVoting    = "start-voting"
	ActionEndVoting      = "end-voting"
	ActionTally          = "tally"
)

// Request types

type RegisterVoterRequest struct {
	Address identity.Address `json:"address"`
}

type SubmitProposalRequest struct {
	Description string `json:"description"`
}

// ProposalID is a pointer so a missing field is distinguishable from 0
type CastVoteRequest struct {
	ProposalID *int `json:"proposal_id"`
}

// Response types

type RegisterVoterResponse struct {
	Address identity.Address `json:"address"`
	Voter   Voter            `json:"voter"`
}

type SubmitProposalResponse struct {
	ProposalID int `json:"proposal_id"`
}

type CastVoteResponse struct {
	ProposalID int    `json:"proposal_id"`
	Message    string `json:"message"`
}

type AdvanceWorkflowResponse struct {
	PreviousStatus int    `json:"previous_status"`
	NewStatus      int    `json:"new_status"`
	StatusName     string `json:"status_name"`
	WinnerID       *int   `json:"winner_id,omitempty"`
}

type WorkflowResponse struct {
	Admin      identity.Address `json:"admin"`
	Status     int              `json:"status"`
	StatusName string           `json:"status_name"`
	ChangedAt  time.Time        `json:"changed_at"`
	ChangedAgo string           `json:"changed_ago"`
	Voters     int              `json:"voters"`
	Proposals  int              `json:"proposals"`
	Votes      int              `json:"votes"`
}

type EventsResponse struct {
	Events  []Event `json:"events"`
	LastSeq int64   `json:"last_seq"`
}

// Domain types

type Voter struct {
	IsRegistered    bool `json:"is_registered"`
	HasVoted        bool `json:"has_voted"`
	VotedProposalID int  `json:"voted_proposal_id"`
}

type Proposal struct {
	ID          int    `json:"id"`
	Description string `json:"description"`
	VoteCount   int    `json:"vote_count"`
}

// Event is a journaled notification as served to indexers.
// Payload keeps the field names of the event itself.
type Event struct {
	Seq        int64     `json:"seq"`
	Name       string    `json:"name"`
	Payload    any       `json:"payload"`
	RecordedAt time.Time `json:"recorded_at"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Code    string `json:"code,omitempty"`
}
