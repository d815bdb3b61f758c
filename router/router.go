// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/quickly-vote/cliparse"
	"github.com/danielhkuo/quickly-vote/handlers"
	"github.com/danielhkuo/quickly-vote/middleware"
	"github.com/danielhkuo/quickly-vote/voting"
)

func NewRouter(election *voting.Election, journal voting.Journal, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	voterHandler := handlers.NewVoterHandler(election, cfg)
	proposalHandler := handlers.NewProposalHandler(election, cfg)
	votingHandler := handlers.NewVotingHandler(election, cfg)
	workflowHandler := handlers.NewWorkflowHandler(election, cfg)
	eventHandler := handlers.NewEventHandler(journal)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Voter registry
	mux.HandleFunc("POST /voters", middleware.WithLogging(voterHandler.RegisterVoter))
	mux.HandleFunc("GET /voters/{address}", middleware.WithLogging(voterHandler.GetVoter))

	// Proposal registry
	mux.HandleFunc("POST /proposals", middleware.WithLogging(proposalHandler.SubmitProposal))
	mux.HandleFunc("GET /proposals", middleware.WithLogging(proposalHandler.ListProposals))
	mux.HandleFunc("GET /proposals/{id}", middleware.WithLogging(proposalHandler.GetProposal))

	// Votes and results
	mux.HandleFunc("POST /votes", middleware.WithLogging(votingHandler.CastVote))
	mux.HandleFunc("GET /winner", middleware.WithLogging(votingHandler.GetWinner))

	// Workflow (admin transitions)
	mux.HandleFunc("GET /workflow", middleware.WithLogging(workflowHandler.GetWorkflow))
	mux.HandleFunc("POST /workflow/{action}", middleware.WithLogging(workflowHandler.Advance))

	// Event feed for indexers
	mux.HandleFunc("GET /events", middleware.WithLogging(eventHandler.ListEvents))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("quickly-vote API v1"))
	})

	return mux
}
