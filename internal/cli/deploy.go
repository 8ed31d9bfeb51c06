package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/calleventhub/shipdog/internal/audit"
	"github.com/calleventhub/shipdog/internal/clock"
	"github.com/calleventhub/shipdog/internal/command"
	"github.com/calleventhub/shipdog/internal/config"
	"github.com/calleventhub/shipdog/internal/ctxutil"
	"github.com/calleventhub/shipdog/internal/deploy"
	"github.com/calleventhub/shipdog/internal/git"
)

// DeployFlags holds the policy flags for one deploy invocation.
type DeployFlags struct {
	// Force rebuilds and restarts even if no upstream change is detected.
	Force bool
	// NoRestart builds only and skips the service restart.
	NoRestart bool
}

// AddDeployCommand adds the deploy command to the root command.
func AddDeployCommand(root *cobra.Command) {
	flags := &DeployFlags{}
	root.AddCommand(newDeployCmd(flags))
}

func newDeployCmd(flags *DeployFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deploy",
		Short: "Detect upstream changes, then sync, build, and restart",
		Long: `Run one deployment attempt against the configured checkout.

The pipeline fetches remote state, pulls if the local branch is strictly
behind its upstream, rebuilds the artifact, and restarts the managed
service. It stops at the first failing step and records the terminal
outcome in the audit log. A run that detects no changes skips cleanly
and records nothing.

Examples:
  shipdog deploy
  shipdog deploy --force        # rebuild an unchanged tree
  shipdog deploy --no-restart   # build only, leave the service running`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDeploy(cmd.Context(), flags, cmd.OutOrStdout())
		},
	}

	cmd.Flags().BoolVar(&flags.Force, "force", false, "force rebuild even if no git changes")
	cmd.Flags().BoolVar(&flags.NoRestart, "no-restart", false, "build only, do not restart service")

	return cmd
}

func runDeploy(ctx context.Context, flags *DeployFlags, out io.Writer) error {
	if err := ctxutil.Canceled(ctx); err != nil {
		return err
	}

	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}

	runner := command.NewExecRunner(out)
	pipeline := deploy.NewPipeline(
		cfg,
		git.NewRepo(runner, cfg.Repo.Dir),
		runner,
		audit.NewLog(cfg.Audit.LogPath),
		clock.RealClock{},
	)

	outcome, err := pipeline.Run(ctx, deploy.Options{
		Force:     flags.Force,
		NoRestart: flags.NoRestart,
	})
	if err != nil {
		return err
	}

	switch outcome {
	case deploy.OutcomeSkipped:
		fmt.Fprintln(out, "✅ No changes and --force not set → skip build")
	case deploy.OutcomeSuccess:
		fmt.Fprintln(out, "🚀 Deploy completed successfully")
	}
	return nil
}
