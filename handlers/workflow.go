// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/quickly-vote/cliparse"
	"github.com/danielhkuo/quickly-vote/middleware"
	"github.com/danielhkuo/quickly-vote/models"
	"github.com/danielhkuo/quickly-vote/voting"
)

// actionOps maps the path segment of POST /workflow/{action} to the
// transition it runs
var actionOps = map[string]voting.Op{
	models.ActionStartProposals: voting.OpStartProposalsRegistering,
	models.ActionEndProposals:   voting.OpEndProposalsRegistering,
	models.ActionStartVoting:    voting.OpStartVotingSession,
	models.ActionEndVoting:      voting.OpEndVotingSession,
	models.ActionTally:          voting.OpTallyVotes,
}

type WorkflowHandler struct {
	election *voting.Election
	cfg      cliparse.Config
}

func NewWorkflowHandler(election *voting.Election, cfg cliparse.Config) *WorkflowHandler {
	return &WorkflowHandler{election: election, cfg: cfg}
}

// GetWorkflow handles GET /workflow
func (h *WorkflowHandler) GetWorkflow(w http.ResponseWriter, r *http.Request) {
	s := h.election.Summary()

	middleware.JSONResponse(w, http.StatusOK, models.WorkflowResponse{
		Admin:      s.Admin,
		Status:     int(s.Status),
		StatusName: s.Status.String(),
		ChangedAt:  s.ChangedAt,
		ChangedAgo: humanize.Time(s.ChangedAt),
		Voters:     s.Voters,
		Proposals:  s.Proposals,
		Votes:      s.Votes,
	})
}

// Advance handles POST /workflow/{action}
func (h *WorkflowHandler) Advance(w http.ResponseWriter, r *http.Request) {
	op, ok := actionOps[r.PathValue("action")]
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Unknown workflow action")
		return
	}

	caller, ok := requireCaller(w, r, h.cfg.CallerKeySalt)
	if !ok {
		return
	}

	change, err := h.election.Advance(r.Context(), caller, op)
	if err != nil {
		writeElectionError(w, r, err)
		return
	}

	// The winner never changes once votes are tallied
	var winnerID *int
	if op == voting.OpTallyVotes {
		if id, _, err := h.election.Winner(); err == nil {
			winnerID = &id
		}
	}

	middleware.JSONResponse(w, http.StatusOK, models.AdvanceWorkflowResponse{
		PreviousStatus: int(change.PreviousStatus),
		NewStatus:      int(change.NewStatus),
		StatusName:     change.NewStatus.String(),
		WinnerID:       winnerID,
	})
}
