// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - RegisterVoterRequest: address
  - SubmitProposalRequest: description
  - CastVoteRequest: proposal_id

# Response Types

Types for JSON responses:

  - RegisterVoterResponse: address, voter
  - SubmitProposalResponse: proposal_id
  - CastVoteResponse: proposal_id, message
  - AdvanceWorkflowResponse: previous_status, new_status, status_name, winner_id
  - WorkflowResponse: status, counters, changed_at, changed_ago
  - EventsResponse: events, last_seq
  - ErrorResponse: error, message, code

# Domain Types

API views of the election state:

  - Voter: registration and vote record
  - Proposal: id, description, vote_count
  - Event: journaled notification with its sequence number

Addresses are serialized as lowercase 0x-prefixed hex.

# Constants

Workflow actions:

	ActionStartProposals = "start-proposals"
	ActionEndProposals   = "end-proposals"
	ActionStartVoting    = "start-voting"
	ActionEndVoting      = "end-voting"
	ActionTally          = "tally"
*/
package models
