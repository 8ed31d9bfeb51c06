package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/calleventhub/shipdog/internal/audit"
	"github.com/calleventhub/shipdog/internal/config"
)

// HistoryFlags holds flags for the history command.
type HistoryFlags struct {
	// Limit caps how many attempts are shown. Zero means all.
	Limit int
}

// AddHistoryCommand adds the history command to the root command.
func AddHistoryCommand(root *cobra.Command) {
	flags := &HistoryFlags{}
	root.AddCommand(newHistoryCmd(flags))
}

func newHistoryCmd(flags *HistoryFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recorded deploy attempts",
		Long: `Read the audit log and print recorded deploy attempts, oldest first.

Skipped runs are never recorded, so the history shows only runs where
something was actually attempted.

Examples:
  shipdog history
  shipdog history --limit 5`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runHistory(cmd.Context(), flags, cmd.OutOrStdout())
		},
	}

	cmd.Flags().IntVarP(&flags.Limit, "limit", "n", 20, "maximum attempts to show (0 for all)")

	return cmd
}

func runHistory(ctx context.Context, flags *HistoryFlags, out io.Writer) error {
	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}

	attempts, err := audit.NewLog(cfg.Audit.LogPath).Tail(flags.Limit)
	if err != nil {
		return err
	}

	if len(attempts) == 0 {
		fmt.Fprintln(out, "no deploy attempts recorded")
		return nil
	}

	for _, attempt := range attempts {
		fmt.Fprintln(out, attempt.String())
	}
	return nil
}
