// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/quickly-vote/identity"
	"github.com/danielhkuo/quickly-vote/middleware"
	"github.com/danielhkuo/quickly-vote/voting"
)

// statusByCode is the HTTP status for each election rejection
var statusByCode = map[voting.Code]int{
	voting.CodeUnauthorized:          http.StatusForbidden,
	voting.CodeNotAVoter:             http.StatusForbidden,
	voting.CodePhaseViolation:        http.StatusConflict,
	voting.CodeDuplicateRegistration: http.StatusConflict,
	voting.CodeAlreadyVoted:          http.StatusConflict,
	voting.CodeEmptyProposal:         http.StatusBadRequest,
	voting.CodeProposalNotFound:      http.StatusNotFound,
}

// writeElectionError maps an error returned by the election to a response.
// Anything that is not a rejection is an infrastructure failure.
func writeElectionError(w http.ResponseWriter, r *http.Request, err error) {
	code := voting.CodeOf(err)
	status, ok := statusByCode[code]
	if !ok {
		slog.Error("election operation failed", "path", r.URL.Path, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to record operation")
		return
	}

	slog.Warn("request rejected", "path", r.URL.Path, "code", code, "reason", err)
	middleware.CodedErrorResponse(w, status, err.Error(), string(code))
}

// requireCaller authenticates the caller, writing a 401 when it fails
func requireCaller(w http.ResponseWriter, r *http.Request, salt string) (identity.Address, bool) {
	caller, err := middleware.CallerFromRequest(r, salt)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, err.Error())
		return identity.Address{}, false
	}
	return caller, true
}
