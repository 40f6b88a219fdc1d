package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mark3labs/investflow/internal/journal"
	"github.com/spf13/cobra"
)

var journalFlags struct {
	session string
}

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Show journaled wizard sessions",
	Long: `Show the journal of wizard sessions.

Without --session, lists every session with recorded events. With --session,
replays that session's events in order and prints where it stands.`,
	Args: cobra.NoArgs,
	RunE: runJournal,
}

func init() {
	journalCmd.Flags().StringVarP(&journalFlags.session, "session", "s", "", "Session to replay")
}

func runJournal(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	j, err := journal.Open(ctx, cfg.DataDir)
	if err != nil {
		return fmt.Errorf("failed to open journal: %w", err)
	}
	defer func() { _ = j.Close() }()

	out := cmd.OutOrStdout()

	if journalFlags.session == "" {
		names, err := j.Store().Sessions(ctx)
		if err != nil {
			return err
		}
		if len(names) == 0 {
			fmt.Fprintln(out, "No sessions recorded.")
			return nil
		}
		for _, name := range names {
			fmt.Fprintln(out, name)
		}
		return nil
	}

	session := journal.SessionName(journalFlags.session)
	st, err := j.Store().Load(ctx, session)
	if errors.Is(err, journal.ErrNoSession) {
		return fmt.Errorf("no events recorded for session %q", session)
	}
	if err != nil {
		return err
	}

	fmt.Fprint(out, formatState(st))
	return nil
}

// formatState renders a replayed session as plain text.
func formatState(st *journal.State) string {
	var sb strings.Builder
	for _, e := range st.Events {
		fmt.Fprintf(&sb, "%s  %-8s %-18s %s\n",
			e.Timestamp.Format("2006-01-02 15:04:05"), e.Type, e.Action, string(e.Meta))
	}

	status := "in progress"
	switch {
	case st.Completed:
		status = "complete"
	case st.Dismissed:
		status = "dismissed"
	}
	fmt.Fprintf(&sb, "\nSession %s: %s at %s (%d events)\n", st.Session, status, st.Step, len(st.Events))
	return sb.String()
}
