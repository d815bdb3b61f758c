// cliparse/cliparse_test.go
package cliparse

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/danielhkuo/quickly-vote/identity"
)

const (
	testAdmin = "0x5b38da6a701c568545dcfcb03fcb875f56beddc4"
	testVoter = "0xab8483f64d9c6d1ecf9b849ae677dd3315835cb2"
)

// clearEnv blanks every variable the config reads
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"PORT", "DATABASE_URL", "DATABASE_TYPE", "ADMIN_ADDRESS", "CALLER_KEY_SALT", "GENESIS_PROPOSAL"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestParseFlags_EnvVars(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_URL", "postgres://test")
	t.Setenv("DATABASE_TYPE", "postgres")
	t.Setenv("ADMIN_ADDRESS", testAdmin)
	t.Setenv("CALLER_KEY_SALT", "test-salt")
	t.Setenv("GENESIS_PROPOSAL", "true")

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.DatabaseType != DatabasePostgres {
		t.Errorf("expected postgres, got %s", cfg.DatabaseType)
	}
	if cfg.Admin != identity.MustParseAddress(testAdmin) {
		t.Errorf("unexpected admin %s", cfg.Admin)
	}
	if !cfg.GenesisProposal {
		t.Error("expected genesis proposal enabled")
	}
}

func TestParseFlags_Defaults(t *testing.T) {
	clearEnv(t)
	cfg, err := ParseFlags([]string{"-d", "vote.db", "-admin", testAdmin, "-key-salt", "s"})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Port != 3318 {
		t.Errorf("expected default port 3318, got %d", cfg.Port)
	}
	if cfg.DatabaseType != DatabaseSQLite {
		t.Errorf("expected default sqlite, got %s", cfg.DatabaseType)
	}
	if cfg.GenesisProposal {
		t.Error("genesis proposal should default to off")
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("ADMIN_ADDRESS", testVoter)

	cfg, err := ParseFlags([]string{"-p", "8080", "-d", "file:test.db", "-admin", testAdmin, "-key-salt", "s1"})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
	if cfg.Admin != identity.MustParseAddress(testAdmin) {
		t.Errorf("CLI should override env: got admin %s", cfg.Admin)
	}
}

func TestParseFlags_Errors(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		args    []string
		wantErr string
	}{
		{"missing salt", nil, []string{"-d", "x", "-admin", testAdmin}, "CALLER_KEY_SALT"},
		{"missing database url", nil, []string{"-admin", testAdmin, "-key-salt", "s"}, "database URL"},
		{"missing admin", nil, []string{"-d", "x", "-key-salt", "s"}, "ADMIN_ADDRESS"},
		{"bad database type", nil, []string{"-t", "mysql", "-d", "x", "-admin", testAdmin, "-key-salt", "s"}, "unsupported"},
		{"bad admin flag", nil, []string{"-admin", "0x12", "-key-salt", "s"}, "invalid address"},
		{"bad port env", map[string]string{"PORT": "abc"}, []string{"-key-salt", "s"}, "parse env"},
		{"bad admin env", map[string]string{"ADMIN_ADDRESS": "nope"}, []string{"-key-salt", "s"}, "parse env"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := ParseFlags(tt.args)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestParseFlags_MemoryNeedsNoURL(t *testing.T) {
	clearEnv(t)
	cfg, err := ParseFlags([]string{"-t", "memory", "-admin", testAdmin, "-key-salt", "s"})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.DatabaseType != DatabaseMemory {
		t.Errorf("got %s", cfg.DatabaseType)
	}
}

func TestParseFlags_IssueKey(t *testing.T) {
	clearEnv(t)
	cfg, err := ParseFlags([]string{"-key-salt", "s", "-issue-key", testVoter})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.IssueKeyFor != identity.MustParseAddress(testVoter) {
		t.Errorf("unexpected issue-key address %s", cfg.IssueKeyFor)
	}
}

func TestLoadDotEnv(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	if err := LoadDotEnv(filepath.Join(dir, "missing.env")); err != nil {
		t.Fatalf("missing file should be ignored: %v", err)
	}

	path := filepath.Join(dir, ".env")
	content := "CALLER_KEY_SALT=from-file\nADMIN_ADDRESS=" + testAdmin + "\nDATABASE_TYPE=memory\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("DATABASE_TYPE", "sqlite")
	t.Setenv("DATABASE_URL", "keep.db")

	if err := LoadDotEnv(path); err != nil {
		t.Fatal(err)
	}
	cfg, err := ParseFlags(nil)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.CallerKeySalt != "from-file" {
		t.Errorf("salt = %q", cfg.CallerKeySalt)
	}
	// existing variables win over the file
	if cfg.DatabaseType != DatabaseSQLite {
		t.Errorf("database type = %q, want sqlite", cfg.DatabaseType)
	}
}
