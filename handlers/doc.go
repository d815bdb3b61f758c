// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Quickly Vote API.

# Handler Types

Each handler is a struct wrapping the shared election and config:

  - VoterHandler: Voter registration and lookup
  - ProposalHandler: Proposal submission and lookup
  - VotingHandler: Vote casting and winner retrieval
  - WorkflowHandler: Workflow status and transitions
  - EventHandler: Journaled events for off-chain indexing

Handlers are created via constructor functions:

	voterHandler := handlers.NewVoterHandler(election, cfg)
	eventHandler := handlers.NewEventHandler(journal)

# Election Workflow

The election moves through six statuses, advanced by the administrator:

	POST /workflow/start-proposals → RegisteringVoters → ProposalsRegistrationStarted
	POST /workflow/end-proposals   → ProposalsRegistrationStarted → ProposalsRegistrationEnded
	POST /workflow/start-voting    → ProposalsRegistrationEnded → VotingSessionStarted
	POST /workflow/end-voting      → VotingSessionStarted → VotingSessionEnded
	POST /workflow/tally           → VotingSessionEnded → VotesTallied

# Participation

	POST /voters    → RegisterVoter (admin, RegisteringVoters)
	POST /proposals → SubmitProposal (voter, ProposalsRegistrationStarted)
	POST /votes     → CastVote (voter, VotingSessionStarted, once)

Mutating requests require the X-Caller-Address and X-Caller-Key headers.

# Errors

Election rejections carry a stable code in the error body:

	403 UNAUTHORIZED, NOT_A_VOTER
	409 PHASE_VIOLATION, DUPLICATE_REGISTRATION, ALREADY_VOTED
	400 EMPTY_PROPOSAL
	404 PROPOSAL_NOT_FOUND

A missing or invalid caller key is 401; journal failures are 500.
*/
package handlers
