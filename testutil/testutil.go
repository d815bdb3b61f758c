// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/danielhkuo/quickly-vote/auth"
	"github.com/danielhkuo/quickly-vote/cliparse"
	"github.com/danielhkuo/quickly-vote/db"
	"github.com/danielhkuo/quickly-vote/identity"
	"github.com/danielhkuo/quickly-vote/middleware"
	"github.com/danielhkuo/quickly-vote/voting"
)

// Well-known test identities
var (
	Admin  = identity.MustParseAddress("0x5b38da6a701c568545dcfcb03fcb875f56beddc4")
	Voter1 = identity.MustParseAddress("0xab8483f64d9c6d1ecf9b849ae677dd3315835cb2")
	Voter2 = identity.MustParseAddress("0x4b20993bc481177ec7e8f571cecae8a9e22c02db")
	Voter3 = identity.MustParseAddress("0x78731d3ca6b7e34ac0f824c42a7cc18a495cabab")
)

// SetupTestDB creates a fresh SQLite database with the full schema.
// The file lives in a per-test temporary directory.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(db.TypeSQLite, filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:          3318,
		DatabaseType:  cliparse.DatabaseMemory,
		Admin:         Admin,
		CallerKeySalt: "test-caller-salt",
	}
}

// NewTestElection creates an election administered by cfg.Admin that
// journals to j
func NewTestElection(t *testing.T, cfg cliparse.Config, j voting.Journal) *voting.Election {
	t.Helper()
	return voting.New(cfg.Admin,
		voting.WithJournal(j),
		voting.WithGenesisProposal(cfg.GenesisProposal),
	)
}

// AdvanceTo drives e forward as the admin until it reaches status
func AdvanceTo(t *testing.T, e *voting.Election, cfg cliparse.Config, status voting.WorkflowStatus) {
	t.Helper()
	ctx := context.Background()
	steps := []voting.Op{
		voting.OpStartProposalsRegistering,
		voting.OpEndProposalsRegistering,
		voting.OpStartVotingSession,
		voting.OpEndVotingSession,
		voting.OpTallyVotes,
	}
	for e.Status() < status {
		if _, err := e.Advance(ctx, cfg.Admin, steps[e.Status()]); err != nil {
			t.Fatalf("Failed to advance from %s: %v", e.Status(), err)
		}
	}
}

// RegisterTestVoters registers each address as the admin
func RegisterTestVoters(t *testing.T, e *voting.Election, cfg cliparse.Config, voters ...identity.Address) {
	t.Helper()
	for _, v := range voters {
		if err := e.RegisterVoter(context.Background(), cfg.Admin, v); err != nil {
			t.Fatalf("Failed to register test voter %s: %v", v, err)
		}
	}
}

// AddTestProposal submits a proposal and returns its index
func AddTestProposal(t *testing.T, e *voting.Election, voter identity.Address, description string) int {
	t.Helper()
	id, err := e.SubmitProposal(context.Background(), voter, description)
	if err != nil {
		t.Fatalf("Failed to create test proposal: %v", err)
	}
	return id
}

// CallerHeaders returns the headers authenticating addr
func CallerHeaders(cfg cliparse.Config, addr identity.Address) map[string]string {
	return map[string]string{
		middleware.HeaderCallerAddress: addr.String(),
		middleware.HeaderCallerKey:     auth.GenerateCallerKey(addr, cfg.CallerKeySalt),
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
