// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Quickly Vote API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(election, journal, cfg)

# Endpoints

Health:

	GET /health

Voter registry (admin, requires caller headers):

	POST /voters           - Register a voter
	GET  /voters/{address} - Voter record (public)

Proposals:

	POST /proposals      - Submit a proposal (registered voter)
	GET  /proposals      - List proposals
	GET  /proposals/{id} - Single proposal

Voting and results:

	POST /votes  - Cast a vote (registered voter)
	GET  /winner - Winning proposal (after tally)

Workflow (admin):

	GET  /workflow          - Current status and counters
	POST /workflow/{action} - start-proposals, end-proposals,
	                          start-voting, end-voting, tally

Events:

	GET /events?after={seq} - Journaled events in order

# Callers

Mutating endpoints identify the caller with X-Caller-Address and
X-Caller-Key. The key is issued out of band with the -issue-key flag.
*/
package router
