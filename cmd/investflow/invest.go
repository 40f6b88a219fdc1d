package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mark3labs/investflow/internal/flow"
	"github.com/mark3labs/investflow/internal/journal"
	"github.com/mark3labs/investflow/internal/logger"
	"github.com/mark3labs/investflow/internal/state"
	"github.com/mark3labs/investflow/internal/tui/investwizard"
	"github.com/spf13/cobra"
)

var investFlags struct {
	session       string
	resume        bool
	reducedMotion bool
	noJournal     bool
}

var investCmd = &cobra.Command{
	Use:   "invest",
	Short: "Run the investment wizard",
	Long: `Run the full-screen investment wizard.

Every step change is journaled under the data directory unless --no-journal
is given. With --resume the wizard reopens an unfinished session at the step
where it was left.`,
	RunE: runInvest,
}

func init() {
	investCmd.Flags().StringVarP(&investFlags.session, "session", "s", "", "Session name (default: last session, or \"default\")")
	investCmd.Flags().BoolVarP(&investFlags.resume, "resume", "r", false, "Resume the session at its last step")
	investCmd.Flags().BoolVar(&investFlags.reducedMotion, "reduced-motion", false, "Disable step transition animations (remembered)")
	investCmd.Flags().BoolVar(&investFlags.noJournal, "no-journal", false, "Run without saving progress")
}

func runInvest(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ui := state.Load(cfg.DataDir)
	if cmd.Flags().Changed("reduced-motion") {
		ui.Motion.Reduced = investFlags.reducedMotion
	}
	if ui.Motion.Reduced {
		cfg.ReducedMotion = true
	}

	sessionName := investFlags.session
	if sessionName == "" {
		sessionName = ui.LastSession
	}
	session := journal.SessionName(sessionName)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := investwizard.Options{Timing: cfg.Timing()}

	if cfg.Journal && !investFlags.noJournal {
		j, err := journal.Open(ctx, cfg.DataDir)
		if err != nil {
			logger.Warn("Journal unavailable, progress will not be saved: %v", err)
			fmt.Fprintf(os.Stderr, "Warning: progress will not be saved: %v\n", err)
		} else {
			defer func() {
				if err := j.Close(); err != nil {
					fmt.Fprintf(os.Stderr, "Error closing journal: %v\n", err)
				}
			}()
			opts.Recorder = j.Store().Recorder(session)
			if cfg.Resume || investFlags.resume {
				applyResume(ctx, j.Store(), session, &opts)
			}
		}
	}

	res, runErr := investwizard.Run(ctx, opts)
	if res != nil {
		ui.Remember(session, string(res.Step))
		if err := state.Save(cfg.DataDir, ui); err != nil {
			logger.Warn("Failed to save UI state: %v", err)
		}
		if res.Completed {
			fmt.Printf("Investment request submitted (session %s).\n", session)
		} else if res.Dismissed && res.Persisted {
			fmt.Printf("Progress saved. Run 'investflow invest --session %s --resume' to continue.\n", session)
		}
	}
	return runErr
}

// applyResume points opts at the step a journaled session stopped on.
func applyResume(ctx context.Context, store *journal.Store, session string, opts *investwizard.Options) {
	st, err := store.Load(ctx, session)
	switch {
	case errors.Is(err, journal.ErrNoSession):
		logger.Info("Nothing to resume for session %s", session)
		return
	case err != nil:
		logger.Warn("Failed to load session %s: %v", session, err)
		return
	case !st.Resumable():
		logger.Info("Session %s is already complete, starting over", session)
		return
	}

	opts.InitialStep = st.Step
	if method := flow.TransferMethod(st.Details[journal.DetailTransferMethod]); method == flow.TransferDomestic || method == flow.TransferInternational {
		opts.Method = method
	}
	logger.Info("Resuming session %s at %s", session, st.Step)
}

