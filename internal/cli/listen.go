package cli

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/calleventhub/shipdog/internal/config"
	"github.com/calleventhub/shipdog/internal/listener"
	"github.com/calleventhub/shipdog/internal/signal"
)

// ListenFlags holds flags for the listen command.
type ListenFlags struct {
	// Port overrides the configured listener port when non-zero.
	Port int
}

// AddListenCommand adds the listen command to the root command.
func AddListenCommand(root *cobra.Command) {
	flags := &ListenFlags{}
	root.AddCommand(newListenCmd(flags))
}

func newListenCmd(flags *ListenFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "listen",
		Short: "Run the diagnostic webhook listener",
		Long: `Start a mock backend that receives forwarded events and echoes them.

Every POSTed JSON payload is printed with a summary of the recognized
telephony fields plus the full payload, and acknowledged with a fixed
body. Use this to verify the deployed forwarder actually delivers its
outbound notifications. Ctrl+C shuts the listener down gracefully.

Examples:
  shipdog listen
  shipdog listen --port 9100`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runListen(cmd.Context(), flags, cmd.OutOrStdout())
		},
	}

	cmd.Flags().IntVarP(&flags.Port, "port", "p", 0, "port to bind (default from config)")

	return cmd
}

func runListen(ctx context.Context, flags *ListenFlags, out io.Writer) error {
	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}

	port := cfg.Listener.Port
	if flags.Port != 0 {
		port = flags.Port
	}

	handler := signal.NewHandler(ctx)
	defer handler.Stop()

	return listener.New(port, out).ListenAndServe(handler.Context())
}
