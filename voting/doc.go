// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package voting implements the governed election: a single administrator
walks the election through six statuses while registered voters submit
proposals and cast one vote each.

# Workflow

Statuses advance strictly forward, one step per administrator call:

	RegisteringVoters(0)            → StartProposalsRegistering
	ProposalsRegistrationStarted(1) → EndProposalsRegistering
	ProposalsRegistrationEnded(2)   → StartVotingSession
	VotingSessionStarted(3)         → EndVotingSession
	VotingSessionEnded(4)           → TallyVotes
	VotesTallied(5)

Each operation is valid in exactly one status:

  - RegisterVoter: administrator, RegisteringVoters
  - SubmitProposal: registered voter, ProposalsRegistrationStarted
  - CastVote: registered voter, VotingSessionStarted, once per voter

# Errors

Rejections are sentinel errors that can be matched with errors.Is:

	if errors.Is(err, voting.ErrPhaseViolation) {
		var pe *voting.PhaseError
		errors.As(err, &pe) // pe.Required names the expected status
	}

CodeOf maps any rejection to a stable string code. A rejected call never
changes the election.

# Journal and Events

Every accepted command is appended to a Journal together with the events
it produced, then applied, then handed to the Notifier:

	e := voting.New(admin,
		voting.WithJournal(store),
		voting.WithNotifier(voting.LogNotifier(logger)),
	)
	if err := e.Restore(ctx); err != nil {
		return err
	}

Restore rebuilds state by replaying the journal through the same checks.

# Tally

Tally scans proposals in index order and keeps the first one holding the
highest vote count, so ties go to the lowest index:

	voting.Tally([]voting.Proposal{{"A", 0}, {"B", 3}, {"C", 3}}) // 1
*/
package voting
