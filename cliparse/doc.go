// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	if err := cliparse.LoadDotEnv(".env"); err != nil {
		log.Fatal(err)
	}
	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseURL: SQLite path or PostgreSQL connection string
  - DatabaseType: sqlite, postgres or memory (default: sqlite)
  - Admin: The election administrator address (required)
  - CallerKeySalt: Secret for caller key HMAC (required)
  - GenesisProposal: Reserve proposal 0 for a GENESIS placeholder
  - IssueKeyFor: Print the caller key for this address and exit

# CLI Flags

	-p          Server port
	-d          Database URL
	-t          Database type
	-admin      Administrator address
	-key-salt   Caller key salt
	-genesis    Enable the GENESIS proposal
	-issue-key  Print a caller key and exit

# Environment Variables

The environment is read first (github.com/caarlos0/env), optionally seeded
from a .env file (github.com/joho/godotenv):

	PORT             → -p
	DATABASE_URL     → -d
	DATABASE_TYPE    → -t
	ADMIN_ADDRESS    → -admin
	CALLER_KEY_SALT  → -key-salt
	GENESIS_PROPOSAL → -genesis

CLI flags take precedence over environment variables, which take precedence
over the .env file.

# Validation

ParseFlags returns an error if required values are missing:

  - CALLER_KEY_SALT must be provided
  - DATABASE_URL must be provided unless the type is memory
  - ADMIN_ADDRESS must be a valid address

With -issue-key only the salt is required.
*/
package cliparse
