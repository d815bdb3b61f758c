package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/danielhkuo/quickly-vote/auth"
	"github.com/danielhkuo/quickly-vote/cliparse"
	"github.com/danielhkuo/quickly-vote/db"
	"github.com/danielhkuo/quickly-vote/middleware"
	"github.com/danielhkuo/quickly-vote/router"
	"github.com/danielhkuo/quickly-vote/voting"
)

func main() {
	var err error

	if err := cliparse.LoadDotEnv(".env"); err != nil {
		slog.Error("Error loading .env", "error", err)
		os.Exit(1)
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Key issuance mode: print and exit
	if !cfg.IssueKeyFor.IsZero() {
		fmt.Println(auth.GenerateCallerKey(cfg.IssueKeyFor, cfg.CallerKeySalt))
		return
	}

	// Pick the journal backing the election
	var journal voting.Journal
	if cfg.DatabaseType == cliparse.DatabaseMemory {
		journal = voting.NewMemoryJournal()
		slog.Warn("Using in-memory journal, state is lost on exit")
	} else {
		var dbConn *sql.DB
		dbConn, err = db.Open(cfg.DatabaseType, cfg.DatabaseURL)
		if err != nil {
			slog.Error("database open failed", "type", cfg.DatabaseType, "error", err)
			os.Exit(1)
		}
		defer dbConn.Close()
		slog.Info("Database schema ready", "type", cfg.DatabaseType)
		journal = db.NewJournal(dbConn)
	}

	election := voting.New(cfg.Admin,
		voting.WithJournal(journal),
		voting.WithGenesisProposal(cfg.GenesisProposal),
		voting.WithNotifier(voting.LogNotifier(slog.Default())),
	)

	// Rebuild state from the journal
	if err := election.Restore(context.Background()); err != nil {
		slog.Error("journal replay failed", "error", err)
		os.Exit(1)
	}
	summary := election.Summary()
	slog.Info("Election ready",
		"admin", summary.Admin,
		"status", summary.Status,
		"voters", summary.Voters,
		"proposals", summary.Proposals,
		"seq", summary.Seq,
	)

	// Create router
	mux := router.NewRouter(election, journal, cfg)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
