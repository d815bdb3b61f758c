package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/danielhkuo/quickly-vote/identity"
)

// Database types
const (
	DatabaseSQLite   = "sqlite"
	DatabasePostgres = "postgres"
	DatabaseMemory   = "memory"
)

type Config struct {
	Port            int              `env:"PORT" envDefault:"3318"`
	DatabaseURL     string           `env:"DATABASE_URL"`
	DatabaseType    string           `env:"DATABASE_TYPE" envDefault:"sqlite"`
	Admin           identity.Address `env:"ADMIN_ADDRESS"`
	CallerKeySalt   string           `env:"CALLER_KEY_SALT"`
	GenesisProposal bool             `env:"GENESIS_PROPOSAL"`

	// IssueKeyFor asks the binary to print the caller key for an address
	// and exit instead of serving
	IssueKeyFor identity.Address
}

// LoadDotEnv loads variables from path into the environment without
// overriding ones already set. A missing file is not an error.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// ParseFlags reads the environment, then lets CLI flags override it
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	fs := flag.NewFlagSet("quickly-vote", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", cfg.Port, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", cfg.DatabaseURL, "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", cfg.DatabaseType, "Database type (sqlite, postgres or memory)")

	// Election
	fs.TextVar(&cfg.Admin, "admin", cfg.Admin, "Administrator address")
	fs.BoolVar(&cfg.GenesisProposal, "genesis", cfg.GenesisProposal, "Reserve proposal 0 for a GENESIS placeholder")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.CallerKeySalt, "key-salt", cfg.CallerKeySalt, "Caller key salt (prefer env)")

	fs.TextVar(&cfg.IssueKeyFor, "issue-key", identity.Address{}, "Print the caller key for an address and exit")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Secrets - MUST be provided
	if cfg.CallerKeySalt == "" {
		return Config{}, errors.New("CALLER_KEY_SALT required")
	}
	if !cfg.IssueKeyFor.IsZero() {
		return cfg, nil
	}

	switch cfg.DatabaseType {
	case DatabaseSQLite, DatabasePostgres:
		if cfg.DatabaseURL == "" {
			return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
		}
	case DatabaseMemory:
	default:
		return Config{}, fmt.Errorf("unsupported database type %q", cfg.DatabaseType)
	}

	if cfg.Admin.IsZero() {
		return Config{}, errors.New("ADMIN_ADDRESS required")
	}

	return cfg, nil
}
