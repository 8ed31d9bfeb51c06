// Package main provides the entry point for the shipdog CLI.
package main

import (
	"context"
	"os"

	"github.com/calleventhub/shipdog/internal/cli"
)

// Build-time information set via ldflags.
var (
	version = ""
	commit  = ""
	date    = ""
)

func main() {
	ctx := context.Background()
	err := cli.Execute(ctx, cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	})
	os.Exit(cli.ExitCodeForError(err))
}
