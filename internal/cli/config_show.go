package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/calleventhub/shipdog/internal/config"
	shiperrors "github.com/calleventhub/shipdog/internal/errors"
)

// ConfigShowFlags holds flags specific to the config show command.
type ConfigShowFlags struct {
	// OutputFormat specifies the output format (yaml or json).
	OutputFormat string
}

// AddConfigCommand adds the config command and its subcommands to the root.
func AddConfigCommand(root *cobra.Command) {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect shipdog configuration",
	}

	flags := &ConfigShowFlags{}
	configCmd.AddCommand(newConfigShowCmd(flags))
	root.AddCommand(configCmd)
}

func newConfigShowCmd(flags *ConfigShowFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Display effective configuration",
		Long: `Display the effective configuration after merging defaults, the global
config (~/.shipdog/config.yaml), the project config (.shipdog/config.yaml),
and SHIPDOG_* environment variables.

Examples:
  shipdog config show
  shipdog config show --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigShow(cmd.Context(), cmd.OutOrStdout(), flags)
		},
	}

	cmd.Flags().StringVarP(&flags.OutputFormat, "output", "o", "yaml", "output format (yaml or json)")

	return cmd
}

func runConfigShow(ctx context.Context, w io.Writer, flags *ConfigShowFlags) error {
	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}

	switch flags.OutputFormat {
	case "yaml":
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return shiperrors.Wrap(err, "failed to marshal config")
		}
		_, err = w.Write(data)
		return err
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(cfg)
	default:
		return fmt.Errorf("%w: %q must be yaml or json", shiperrors.ErrInvalidOutputFormat, flags.OutputFormat)
	}
}
