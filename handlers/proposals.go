// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"strconv"

	"github.com/danielhkuo/quickly-vote/cliparse"
	"github.com/danielhkuo/quickly-vote/middleware"
	"github.com/danielhkuo/quickly-vote/models"
	"github.com/danielhkuo/quickly-vote/voting"
)

type ProposalHandler struct {
	election *voting.Election
	cfg      cliparse.Config
}

func NewProposalHandler(election *voting.Election, cfg cliparse.Config) *ProposalHandler {
	return &ProposalHandler{election: election, cfg: cfg}
}

func toProposalModel(id int, p voting.Proposal) models.Proposal {
	return models.Proposal{
		ID:          id,
		Description: p.Description,
		VoteCount:   p.VoteCount,
	}
}

// SubmitProposal handles POST /proposals
func (h *ProposalHandler) SubmitProposal(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireCaller(w, r, h.cfg.CallerKeySalt)
	if !ok {
		return
	}

	var req models.SubmitProposalRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// Blank descriptions are rejected by the election itself
	id, err := h.election.SubmitProposal(r.Context(), caller, req.Description)
	if err != nil {
		writeElectionError(w, r, err)
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, models.SubmitProposalResponse{
		ProposalID: id,
	})
}

// ListProposals handles GET /proposals
func (h *ProposalHandler) ListProposals(w http.ResponseWriter, r *http.Request) {
	proposals := h.election.Proposals()

	out := make([]models.Proposal, 0, len(proposals))
	for i, p := range proposals {
		out = append(out, toProposalModel(i, p))
	}

	middleware.JSONResponse(w, http.StatusOK, out)
}

// GetProposal handles GET /proposals/{id}
func (h *ProposalHandler) GetProposal(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid proposal id")
		return
	}

	p, err := h.election.Proposal(id)
	if err != nil {
		writeElectionError(w, r, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, toProposalModel(id, p))
}
