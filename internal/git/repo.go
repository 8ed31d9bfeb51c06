// Package git inspects a repository's state relative to its upstream using
// the git CLI. This file implements the Repo, which drives git through the
// command runner.
package git

import (
	"context"
	"strconv"
	"strings"

	"github.com/calleventhub/shipdog/internal/command"
	"github.com/calleventhub/shipdog/internal/ctxutil"
	shiperrors "github.com/calleventhub/shipdog/internal/errors"
)

// Repo queries and synchronizes a single git checkout. All operations run in
// the configured working directory through the injected command runner, so
// tests can substitute a mock runner.
type Repo struct {
	runner command.Runner
	dir    string
}

// NewRepo creates a Repo for the checkout at dir.
func NewRepo(runner command.Runner, dir string) *Repo {
	return &Repo{runner: runner, dir: dir}
}

// Dir returns the checkout's working directory.
func (r *Repo) Dir() string {
	return r.dir
}

// Fetch refreshes remote tracking metadata. A failure is fatal to change
// detection and is never swallowed: a stale or unreachable remote must not
// silently report "no changes".
func (r *Repo) Fetch(ctx context.Context) error {
	if err := ctxutil.Canceled(ctx); err != nil {
		return err
	}

	res := r.runner.Run(ctx, command.Spec{Args: []string{"git", "fetch"}, Dir: r.dir})
	if !res.OK {
		return shiperrors.Wrapf(shiperrors.ErrDetectionFailed, "git fetch in %s", r.dir)
	}
	return nil
}

// Divergence reports how the local branch relates to its remote tracking
// branch. It queries `git status --porcelain --branch -uno`, which does not
// touch the working tree, and parses the branch header's ahead/behind
// counters rather than matching prose in default status output.
func (r *Repo) Divergence(ctx context.Context) (Divergence, error) {
	if err := ctxutil.Canceled(ctx); err != nil {
		return UpToDate, err
	}

	res := r.runner.Run(ctx, command.Spec{
		Args: []string{"git", "status", "--porcelain", "--branch", "-uno"},
		Dir:  r.dir,
	})
	if !res.OK {
		return UpToDate, shiperrors.Wrapf(shiperrors.ErrDetectionFailed, "git status in %s", r.dir)
	}

	ahead, behind := parseBranchHeader(res.Output)
	return classifyDivergence(ahead, behind), nil
}

// Pull merges upstream commits into the local branch. The raw result is
// returned so the orchestrator can treat a failed pull as a step failure
// rather than a propagated error.
func (r *Repo) Pull(ctx context.Context) command.Result {
	return r.runner.Run(ctx, command.Spec{Args: []string{"git", "pull"}, Dir: r.dir})
}

// parseBranchHeader extracts ahead/behind counters from porcelain branch
// output. Format: ## branch...origin/branch [ahead N, behind M]
// A missing header, missing upstream, or missing bracket section all mean
// zero divergence.
func parseBranchHeader(output string) (ahead, behind int) {
	for _, line := range strings.Split(output, "\n") {
		if !strings.HasPrefix(line, "## ") {
			continue
		}

		rest := strings.TrimPrefix(line, "## ")
		parts := strings.SplitN(rest, "...", 2)
		if len(parts) < 2 {
			return 0, 0
		}

		remotePart := parts[1]
		bracketStart := strings.Index(remotePart, " [")
		if bracketStart == -1 {
			return 0, 0
		}
		if len(remotePart) < bracketStart+4 || remotePart[len(remotePart)-1] != ']' {
			return 0, 0
		}

		info := remotePart[bracketStart+2 : len(remotePart)-1]
		return parseCounter(info, "ahead "), parseCounter(info, "behind ")
	}
	return 0, 0
}

// parseCounter extracts the count following "ahead " or "behind " in the
// bracketed info string.
func parseCounter(info, prefix string) int {
	idx := strings.Index(info, prefix)
	if idx == -1 {
		return 0
	}

	numStr := info[idx+len(prefix):]
	if commaIdx := strings.Index(numStr, ","); commaIdx != -1 {
		numStr = numStr[:commaIdx]
	}

	n, err := strconv.Atoi(strings.TrimSpace(numStr))
	if err != nil {
		return 0
	}
	return n
}
