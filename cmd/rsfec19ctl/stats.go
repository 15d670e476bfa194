package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/serialrsfec/rsfec19/internal/config"
	"github.com/serialrsfec/rsfec19/internal/tracestore"
)

// runStats prints the recorded summary for a run, or for the most
// recent run when none is given.
func runStats(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("stats", flag.ExitOnError)
	runID := fs.String("run", "", "run id to summarize (defaults to the most recent)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	store, err := tracestore.Open(cfg.GetTraceDatabasePath(), log.Default())
	if err != nil {
		return fmt.Errorf("open trace store: %w", err)
	}
	defer store.Close()

	id := *runID
	if id == "" {
		recent, err := store.RecentRuns(1)
		if err != nil {
			return fmt.Errorf("list recent runs: %w", err)
		}
		if len(recent) == 0 {
			fmt.Println("no runs recorded yet")
			return nil
		}
		id = recent[0]
	}

	summary, err := store.RunSummary(id)
	if err != nil {
		return fmt.Errorf("summarize run %s: %w", id, err)
	}
	printSummary(summary)
	return nil
}
