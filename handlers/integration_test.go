// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/quickly-vote/db"
	"github.com/danielhkuo/quickly-vote/models"
	"github.com/danielhkuo/quickly-vote/testutil"
	"github.com/danielhkuo/quickly-vote/voting"
)

// TestFullElectionWorkflow tests the complete end-to-end workflow:
// 1. Admin registers a voter
// 2. Admin opens proposal registration
// 3. Voter submits "proposition 1"
// 4. Admin closes proposals and opens voting
// 5. Voter votes for proposal 0
// 6. Admin closes voting and tallies
// 7. Winner and events are served, and survive a restart
func TestFullElectionWorkflow(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	journal := db.NewJournal(conn)
	e := testutil.NewTestElection(t, cfg, journal)

	voterHandler := NewVoterHandler(e, cfg)
	proposalHandler := NewProposalHandler(e, cfg)
	votingHandler := NewVotingHandler(e, cfg)
	workflowHandler := NewWorkflowHandler(e, cfg)
	eventHandler := NewEventHandler(journal)

	admin := testutil.CallerHeaders(cfg, cfg.Admin)
	voter := testutil.CallerHeaders(cfg, testutil.Voter1)

	// Step 1: Register the voter
	w := httptest.NewRecorder()
	voterHandler.RegisterVoter(w, testutil.MakeRequest("POST", "/voters",
		models.RegisterVoterRequest{Address: testutil.Voter1}, admin))
	if w.Code != http.StatusCreated {
		t.Fatalf("Step 1 - Register voter failed: %d - %s", w.Code, w.Body.String())
	}

	// Step 2: Open proposals
	if w := advanceRequest(t, workflowHandler, models.ActionStartProposals, admin); w.Code != http.StatusOK {
		t.Fatalf("Step 2 - Start proposals failed: %d - %s", w.Code, w.Body.String())
	}

	// Step 3: Submit a proposal
	w = httptest.NewRecorder()
	proposalHandler.SubmitProposal(w, testutil.MakeRequest("POST", "/proposals",
		models.SubmitProposalRequest{Description: "proposition 1"}, voter))
	if w.Code != http.StatusCreated {
		t.Fatalf("Step 3 - Submit proposal failed: %d - %s", w.Code, w.Body.String())
	}
	var proposalResp models.SubmitProposalResponse
	testutil.AssertJSON(t, w, &proposalResp)
	if proposalResp.ProposalID != 0 {
		t.Fatalf("Step 3 - Expected proposal 0, got %d", proposalResp.ProposalID)
	}

	// Step 4: Close proposals, open voting
	for _, action := range []string{models.ActionEndProposals, models.ActionStartVoting} {
		if w := advanceRequest(t, workflowHandler, action, admin); w.Code != http.StatusOK {
			t.Fatalf("Step 4 - %s failed: %d - %s", action, w.Code, w.Body.String())
		}
	}

	// Step 5: Vote
	w = httptest.NewRecorder()
	votingHandler.CastVote(w, testutil.MakeRequest("POST", "/votes",
		models.CastVoteRequest{ProposalID: intPtr(0)}, voter))
	if w.Code != http.StatusCreated {
		t.Fatalf("Step 5 - Cast vote failed: %d - %s", w.Code, w.Body.String())
	}

	// Step 6: Close voting and tally
	for _, action := range []string{models.ActionEndVoting, models.ActionTally} {
		if w := advanceRequest(t, workflowHandler, action, admin); w.Code != http.StatusOK {
			t.Fatalf("Step 6 - %s failed: %d - %s", action, w.Code, w.Body.String())
		}
	}

	// Step 7: Winner
	w = httptest.NewRecorder()
	votingHandler.GetWinner(w, testutil.MakeRequest("GET", "/winner", nil, nil))
	testutil.AssertStatus(t, w, http.StatusOK)
	var winner models.Proposal
	testutil.AssertJSON(t, w, &winner)
	if winner != (models.Proposal{ID: 0, Description: "proposition 1", VoteCount: 1}) {
		t.Errorf("Step 7 - Unexpected winner %+v", winner)
	}

	// Events, in order, one per successful call
	w = httptest.NewRecorder()
	eventHandler.ListEvents(w, testutil.MakeRequest("GET", "/events", nil, nil))
	var events models.EventsResponse
	testutil.AssertJSON(t, w, &events)
	expected := []string{
		voting.EventVoterRegistered,
		voting.EventWorkflowStatusChange,
		voting.EventProposalRegistered,
		voting.EventWorkflowStatusChange,
		voting.EventWorkflowStatusChange,
		voting.EventVoted,
		voting.EventWorkflowStatusChange,
		voting.EventWorkflowStatusChange,
	}
	if len(events.Events) != len(expected) {
		t.Fatalf("Expected %d events, got %d", len(expected), len(events.Events))
	}
	for i, name := range expected {
		if events.Events[i].Name != name {
			t.Errorf("Event %d: expected %s, got %s", i, name, events.Events[i].Name)
		}
	}

	// Restart from the same database
	restored := testutil.NewTestElection(t, cfg, db.NewJournal(conn))
	if err := restored.Restore(t.Context()); err != nil {
		t.Fatalf("Restore failed: %v", err)
	}
	_, p, err := restored.Winner()
	if err != nil {
		t.Fatalf("Winner after restore: %v", err)
	}
	if p.Description != "proposition 1" || p.VoteCount != 1 {
		t.Errorf("Unexpected winner after restore %+v", p)
	}
}
