// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/quickly-vote/cliparse"
	"github.com/danielhkuo/quickly-vote/middleware"
	"github.com/danielhkuo/quickly-vote/models"
	"github.com/danielhkuo/quickly-vote/voting"
)

type VotingHandler struct {
	election *voting.Election
	cfg      cliparse.Config
}

func NewVotingHandler(election *voting.Election, cfg cliparse.Config) *VotingHandler {
	return &VotingHandler{election: election, cfg: cfg}
}

// CastVote handles POST /votes
func (h *VotingHandler) CastVote(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireCaller(w, r, h.cfg.CallerKeySalt)
	if !ok {
		return
	}

	var req models.CastVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.ProposalID == nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "proposal_id is required")
		return
	}

	if err := h.election.CastVote(r.Context(), caller, *req.ProposalID); err != nil {
		writeElectionError(w, r, err)
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, models.CastVoteResponse{
		ProposalID: *req.ProposalID,
		Message:    "Vote recorded",
	})
}

// GetWinner handles GET /winner
// Only available once votes are tallied
func (h *VotingHandler) GetWinner(w http.ResponseWriter, r *http.Request) {
	id, p, err := h.election.Winner()
	if err != nil {
		writeElectionError(w, r, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, toProposalModel(id, p))
}
