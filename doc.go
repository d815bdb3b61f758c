// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Quickly Vote API server.

Quickly Vote runs a single governed election: one administrator
registers voters and moves the workflow through its phases, voters
submit proposals and cast one vote each, and the tally picks the
proposal with the most votes (earliest proposal wins ties).

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	ADMIN_ADDRESS=0x... CALLER_KEY_SALT=... DATABASE_URL=vote.db go run .

Or with flags:

	go run . -p 3318 -t postgres -d "postgres://..." -admin 0x...

A .env file in the working directory is loaded first when present.

# Issuing Caller Keys

	go run . -issue-key 0x...

prints the X-Caller-Key for the address and exits.

# Configuration

Required settings:

  - CALLER_KEY_SALT (-key-salt): Secret for caller key HMAC
  - ADMIN_ADDRESS (-admin): Administrator address
  - DATABASE_URL (-d): Database location (not needed for memory)

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite, postgres or memory (default: sqlite)
  - GENESIS_PROPOSAL (-genesis): Reserve proposal 0 for a GENESIS entry

# Architecture

  - voting: Election state machine, journal, events and tally
  - handlers: HTTP request handlers (voters, proposals, votes, workflow, events)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers, caller authentication
  - models: Request/response types
  - identity: 20-byte account addresses
  - auth: Caller key generation and validation
  - db: SQL journal and schema
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
