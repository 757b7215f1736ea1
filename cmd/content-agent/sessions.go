package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/JorgeGarc1/obliquo-automatizacion/internal/session"
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "List or export recorded idea runs",
	Long: `Sessions inspects the session store written by "run" when session
recording is enabled: it lists past runs, or exports one run with all its
feedback cycles as YAML.`,
	RunE: runSessions,
}

func init() {
	sessionsCmd.Flags().String("dir", "", "session store directory (overrides config)")
	sessionsCmd.Flags().String("export", "", "run id to export as YAML")

	rootCmd.AddCommand(sessionsCmd)
}

func runSessions(cmd *cobra.Command, args []string) error {
	cfg := buildPipelineConfig()
	applyStringFlag(cmd, "dir", &cfg.Session.Dir)
	if cfg.Session.Dir == "" {
		return fmt.Errorf("no session directory configured (set --dir or session.dir)")
	}

	store, err := session.NewStore(cfg.Session)
	if err != nil {
		return fmt.Errorf("opening session store: %w", err)
	}
	defer store.Close()

	ctx := context.Background()

	if runID, _ := cmd.Flags().GetString("export"); runID != "" {
		return store.ExportRun(ctx, runID, os.Stdout)
	}

	runs, err := store.ListRuns(ctx)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Fprintln(os.Stdout, "No recorded runs.")
		return nil
	}
	for _, r := range runs {
		fmt.Fprintf(os.Stdout, "%s  %s  %d cycle(s)  %s\n",
			r.ID, r.StartedAt.Format(time.RFC3339), r.Cycles, r.SourceRef)
	}
	return nil
}
