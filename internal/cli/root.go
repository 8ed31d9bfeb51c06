package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// BuildInfo contains version information set at build time via ldflags.
type BuildInfo struct {
	// Version is the semantic version (e.g., "1.0.0").
	Version string
	// Commit is the git commit hash.
	Commit string
	// Date is the build date.
	Date string
}

// newRootCmd creates and returns the root command for the shipdog CLI.
// This function-based approach avoids package-level command globals, making
// the tree testable.
func newRootCmd(flags *GlobalFlags, info BuildInfo) *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "shipdog",
		Short: "shipdog - single-host deployment orchestrator",
		Long: `shipdog watches a source checkout for new upstream commits and, when it
finds them, pulls, rebuilds the artifact, and restarts the managed service,
recording every attempt in an append-only audit log.

It also bundles a diagnostic webhook listener for verifying that the
deployed service delivers its outbound notifications.`,
		Version: formatVersion(info),
		// Run displays help when the root command is invoked without
		// subcommands, ensuring PersistentPreRunE still validates flags.
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := BindGlobalFlags(v, cmd); err != nil {
				return fmt.Errorf("failed to bind flags: %w", err)
			}

			// Initialize the logger and carry it in the command context so
			// every subcommand and package reaches it via zerolog.Ctx.
			logger := InitLogger(flags.Verbose, flags.Quiet)
			cmd.SetContext(logger.WithContext(cmd.Context()))

			return nil
		},
		// SilenceUsage prevents printing usage on runtime errors
		// (we handle our own error messages).
		SilenceUsage: true,
	}

	AddGlobalFlags(cmd, flags)

	AddDeployCommand(cmd)
	AddHistoryCommand(cmd)
	AddListenCommand(cmd)
	AddConfigCommand(cmd)

	return cmd
}

// formatVersion creates the version string from build info.
func formatVersion(info BuildInfo) string {
	if info.Version == "" {
		info.Version = "dev"
	}
	if info.Commit == "" {
		info.Commit = "none"
	}
	if info.Date == "" {
		info.Date = "unknown"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", info.Version, info.Commit, info.Date)
}

// Execute runs the root command with the provided context and build info.
func Execute(ctx context.Context, info BuildInfo) error {
	flags := &GlobalFlags{}
	cmd := newRootCmd(flags, info)
	defer CloseLogFile()
	return cmd.ExecuteContext(ctx)
}
