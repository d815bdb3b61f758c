// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/quickly-vote/models"
	"github.com/danielhkuo/quickly-vote/testutil"
	"github.com/danielhkuo/quickly-vote/voting"
)

func advanceRequest(t *testing.T, h *WorkflowHandler, action string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := testutil.MakeRequest("POST", "/workflow/"+action, nil, headers)
	req.SetPathValue("action", action)
	w := httptest.NewRecorder()
	h.Advance(w, req)
	return w
}

func TestAdvance_FullSequence(t *testing.T) {
	e, _, cfg := newTestElection(t)
	handler := NewWorkflowHandler(e, cfg)
	admin := testutil.CallerHeaders(cfg, cfg.Admin)

	actions := []string{
		models.ActionStartProposals,
		models.ActionEndProposals,
		models.ActionStartVoting,
		models.ActionEndVoting,
		models.ActionTally,
	}

	for i, action := range actions {
		w := advanceRequest(t, handler, action, admin)
		testutil.AssertStatus(t, w, http.StatusOK)

		var resp models.AdvanceWorkflowResponse
		testutil.AssertJSON(t, w, &resp)
		if resp.PreviousStatus != i || resp.NewStatus != i+1 {
			t.Errorf("%s: expected %d -> %d, got %d -> %d", action, i, i+1, resp.PreviousStatus, resp.NewStatus)
		}
		if resp.StatusName != voting.WorkflowStatus(i+1).String() {
			t.Errorf("%s: unexpected status name %s", action, resp.StatusName)
		}

		// Repeating the same action is a phase violation
		testutil.AssertStatus(t, advanceRequest(t, handler, action, admin), http.StatusConflict)
	}

	if e.Status() != voting.VotesTallied {
		t.Errorf("Expected VotesTallied, got %s", e.Status())
	}
}

func TestAdvance_Rejections(t *testing.T) {
	tests := []struct {
		name           string
		action         string
		caller         bool
		admin          bool
		expectedStatus int
	}{
		{"unknown action", "restart", true, true, http.StatusNotFound},
		{"no caller", models.ActionStartProposals, false, false, http.StatusUnauthorized},
		{"non-admin caller", models.ActionStartProposals, true, false, http.StatusForbidden},
		{"skipping a phase", models.ActionStartVoting, true, true, http.StatusConflict},
		{"tally too early", models.ActionTally, true, true, http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _, cfg := newTestElection(t)
			handler := NewWorkflowHandler(e, cfg)

			var headers map[string]string
			if tt.caller {
				who := testutil.Voter1
				if tt.admin {
					who = cfg.Admin
				}
				headers = testutil.CallerHeaders(cfg, who)
			}

			w := advanceRequest(t, handler, tt.action, headers)
			testutil.AssertStatus(t, w, tt.expectedStatus)
			if e.Status() != voting.RegisteringVoters {
				t.Errorf("Status changed to %s after rejected call", e.Status())
			}
		})
	}
}

func TestAdvance_TallyReturnsWinner(t *testing.T) {
	e, _, cfg := newTestElection(t)
	testutil.RegisterTestVoters(t, e, cfg, testutil.Voter1)
	testutil.AdvanceTo(t, e, cfg, voting.ProposalsRegistrationStarted)
	testutil.AddTestProposal(t, e, testutil.Voter1, "proposition 1")
	testutil.AdvanceTo(t, e, cfg, voting.VotingSessionEnded)

	w := advanceRequest(t, NewWorkflowHandler(e, cfg), models.ActionTally, testutil.CallerHeaders(cfg, cfg.Admin))
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.AdvanceWorkflowResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.WinnerID == nil || *resp.WinnerID != 0 {
		t.Errorf("Expected winner_id 0, got %v", resp.WinnerID)
	}
	if resp.PreviousStatus != 4 || resp.NewStatus != 5 {
		t.Errorf("Expected 4 -> 5, got %d -> %d", resp.PreviousStatus, resp.NewStatus)
	}
}

func TestGetWorkflow(t *testing.T) {
	e, _, cfg := newTestElection(t)
	testutil.RegisterTestVoters(t, e, cfg, testutil.Voter1, testutil.Voter2)
	testutil.AdvanceTo(t, e, cfg, voting.ProposalsRegistrationStarted)
	testutil.AddTestProposal(t, e, testutil.Voter1, "proposition 1")

	w := httptest.NewRecorder()
	NewWorkflowHandler(e, cfg).GetWorkflow(w, testutil.MakeRequest("GET", "/workflow", nil, nil))

	testutil.AssertStatus(t, w, http.StatusOK)
	var resp models.WorkflowResponse
	testutil.AssertJSON(t, w, &resp)

	if resp.Admin != cfg.Admin {
		t.Errorf("Unexpected admin %s", resp.Admin)
	}
	if resp.Status != 1 || resp.StatusName != "ProposalsRegistrationStarted" {
		t.Errorf("Unexpected status %d %s", resp.Status, resp.StatusName)
	}
	if resp.Voters != 2 || resp.Proposals != 1 || resp.Votes != 0 {
		t.Errorf("Unexpected counters %+v", resp)
	}
	if resp.ChangedAgo == "" {
		t.Error("Expected changed_ago to be set")
	}
}
