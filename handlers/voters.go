// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/quickly-vote/cliparse"
	"github.com/danielhkuo/quickly-vote/identity"
	"github.com/danielhkuo/quickly-vote/middleware"
	"github.com/danielhkuo/quickly-vote/models"
	"github.com/danielhkuo/quickly-vote/voting"
)

type VoterHandler struct {
	election *voting.Election
	cfg      cliparse.Config
}

func NewVoterHandler(election *voting.Election, cfg cliparse.Config) *VoterHandler {
	return &VoterHandler{election: election, cfg: cfg}
}

func toVoterModel(v voting.Voter) models.Voter {
	return models.Voter{
		IsRegistered:    v.IsRegistered,
		HasVoted:        v.HasVoted,
		VotedProposalID: v.VotedProposalID,
	}
}

// RegisterVoter handles POST /voters
func (h *VoterHandler) RegisterVoter(w http.ResponseWriter, r *http.Request) {
	caller, ok := requireCaller(w, r, h.cfg.CallerKeySalt)
	if !ok {
		return
	}

	var req models.RegisterVoterRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON or address")
		return
	}
	if req.Address.IsZero() {
		middleware.ErrorResponse(w, http.StatusBadRequest, "address is required")
		return
	}

	if err := h.election.RegisterVoter(r.Context(), caller, req.Address); err != nil {
		writeElectionError(w, r, err)
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, models.RegisterVoterResponse{
		Address: req.Address,
		Voter:   toVoterModel(h.election.Voter(req.Address)),
	})
}

// GetVoter handles GET /voters/{address}
// Unknown addresses return an unregistered record rather than 404
func (h *VoterHandler) GetVoter(w http.ResponseWriter, r *http.Request) {
	addr, err := identity.ParseAddress(r.PathValue("address"))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid address")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, toVoterModel(h.election.Voter(addr)))
}
