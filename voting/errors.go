// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"errors"
	"fmt"
)

var (
	ErrUnauthorized          = errors.New("caller is not the administrator")
	ErrPhaseViolation        = errors.New("operation not allowed in current workflow status")
	ErrDuplicateRegistration = errors.New("already registered")
	ErrNotAVoter             = errors.New("you're not a voter")
	ErrEmptyProposal         = errors.New("proposal description is empty")
	ErrAlreadyVoted          = errors.New("you have already voted")
	ErrProposalNotFound      = errors.New("proposal not found")
)

// PhaseError reports an operation attempted outside its workflow status
type PhaseError struct {
	Op       Op
	Required WorkflowStatus
	Current  WorkflowStatus
	Reason   string
}

func (e *PhaseError) Error() string {
	return fmt.Sprintf("%s: %s (requires %s, current %s)", e.Op, e.Reason, e.Required, e.Current)
}

func (e *PhaseError) Unwrap() error {
	return ErrPhaseViolation
}

// Code is a stable, machine-matchable rejection reason
type Code string

const (
	CodeUnknown               Code = "UNKNOWN"
	CodeUnauthorized          Code = "UNAUTHORIZED"
	CodePhaseViolation        Code = "PHASE_VIOLATION"
	CodeDuplicateRegistration Code = "DUPLICATE_REGISTRATION"
	CodeNotAVoter             Code = "NOT_A_VOTER"
	CodeEmptyProposal         Code = "EMPTY_PROPOSAL"
	CodeAlreadyVoted          Code = "ALREADY_VOTED"
	CodeProposalNotFound      Code = "PROPOSAL_NOT_FOUND"
)

var codes = []struct {
	err  error
	code Code
}{
	{ErrUnauthorized, CodeUnauthorized},
	{ErrPhaseViolation, CodePhaseViolation},
	{ErrDuplicateRegistration, CodeDuplicateRegistration},
	{ErrNotAVoter, CodeNotAVoter},
	{ErrEmptyProposal, CodeEmptyProposal},
	{ErrAlreadyVoted, CodeAlreadyVoted},
	{ErrProposalNotFound, CodeProposalNotFound},
}

// CodeOf maps an error returned by an Election to its Code
func CodeOf(err error) Code {
	for _, c := range codes {
		if errors.Is(err, c.err) {
			return c.code
		}
	}
	return CodeUnknown
}
