package deploy

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/calleventhub/shipdog/internal/audit"
	"github.com/calleventhub/shipdog/internal/clock"
	"github.com/calleventhub/shipdog/internal/command"
	"github.com/calleventhub/shipdog/internal/config"
	shiperrors "github.com/calleventhub/shipdog/internal/errors"
	"github.com/calleventhub/shipdog/internal/git"
)

// Repository is the subset of git operations the pipeline needs.
// *git.Repo satisfies it; tests substitute fakes.
type Repository interface {
	Fetch(ctx context.Context) error
	Divergence(ctx context.Context) (git.Divergence, error)
	Pull(ctx context.Context) command.Result
}

// AuditLog records terminal deploy attempts.
type AuditLog interface {
	Append(attempt audit.Attempt) error
}

// Pipeline runs one deployment attempt. It is constructed with explicit
// collaborators so every external effect can be substituted in tests.
//
// The pipeline is strictly sequential and makes exactly one attempt per
// step; recovery is deferred entirely to the next scheduled invocation.
// Non-overlap of concurrent runs is the scheduler's responsibility, not
// enforced here.
type Pipeline struct {
	cfg    *config.Config
	repo   Repository
	runner command.Runner
	log    AuditLog
	clock  clock.Clock
}

// NewPipeline creates a Pipeline from its collaborators.
func NewPipeline(cfg *config.Config, repo Repository, runner command.Runner, log AuditLog, clk clock.Clock) *Pipeline {
	return &Pipeline{
		cfg:    cfg,
		repo:   repo,
		runner: runner,
		log:    log,
		clock:  clk,
	}
}

// Run executes one deploy attempt and returns its terminal outcome.
//
// This is the single exit boundary: whatever happens inside the step
// sequence, at most one audit record is appended per run, only at a
// terminal state, and never for a skip. The returned error is non-nil
// exactly when Outcome.Failed() is true; callers translate it to a
// process exit code.
func (p *Pipeline) Run(ctx context.Context, opts Options) (Outcome, error) {
	logger := zerolog.Ctx(ctx).With().
		Str("component", "deploy").
		Str("run_id", uuid.NewString()).
		Logger()
	ctx = logger.WithContext(ctx)

	outcome, message, err := p.advance(ctx, opts, &logger)
	if outcome == OutcomeSkipped {
		// The lone terminal branch without an audit record: nothing was
		// attempted, so there is nothing to audit.
		return outcome, nil
	}

	if appendErr := p.log.Append(audit.Attempt{Timestamp: p.clock.Now(), Message: message}); appendErr != nil {
		logger.Error().Err(appendErr).Msg("failed to record deploy attempt")
		if err == nil {
			outcome = OutcomeError
			err = appendErr
		}
	}

	if err != nil {
		logger.Error().Err(err).Str("outcome", outcome.String()).Msg("deploy failed")
	} else {
		logger.Info().Str("outcome", outcome.String()).Msg("deploy finished")
	}
	return outcome, err
}

// advance walks the step sequence, short-circuiting on the first failure.
// It returns the terminal outcome, the audit message for it (empty for a
// skip), and the error to propagate.
func (p *Pipeline) advance(ctx context.Context, opts Options, logger *zerolog.Logger) (Outcome, string, error) {
	divergence, err := p.detect(ctx)
	if err != nil {
		// Detection failure is fatal and still audited: the run was
		// attempted even though no step completed.
		return OutcomeError, "❌ Deploy error: " + err.Error(), err
	}

	switch {
	case divergence.HasUpstreamCommits():
		logger.Info().Str("divergence", divergence.String()).Msg("new upstream commits, pulling")
		if res := p.repo.Pull(ctx); !res.OK {
			return OutcomeSyncFailed, "❌ git pull failed", shiperrors.ErrSyncFailed
		}
	case !opts.Force:
		logger.Info().Str("divergence", divergence.String()).Msg("no upstream changes, skipping deploy")
		return OutcomeSkipped, "", nil
	default:
		logger.Warn().Str("divergence", divergence.String()).Msg("force enabled, rebuilding unchanged tree")
	}

	if err := p.build(ctx, logger); err != nil {
		return OutcomeBuildFailed, "❌ Build failed", err
	}

	if opts.NoRestart {
		logger.Info().Msg("restart skipped by flag")
	} else if err := p.restart(ctx, logger); err != nil {
		return OutcomeRestartFailed, "❌ Restart failed", err
	}

	return OutcomeSuccess, "✅ Deploy successful", nil
}

// detect refreshes remote metadata and queries divergence. Both sub-queries
// are fatal on failure: stale detection must never masquerade as "no
// changes".
func (p *Pipeline) detect(ctx context.Context) (git.Divergence, error) {
	if err := p.repo.Fetch(ctx); err != nil {
		return git.UpToDate, err
	}
	return p.repo.Divergence(ctx)
}

func (p *Pipeline) build(ctx context.Context, logger *zerolog.Logger) error {
	buildCtx := ctx
	if p.cfg.Build.Timeout > 0 {
		var cancel context.CancelFunc
		buildCtx, cancel = context.WithTimeout(ctx, p.cfg.Build.Timeout)
		defer cancel()
	}

	logger.Info().Strs("command", p.cfg.Build.Command).Msg("building")
	res := p.runner.Run(buildCtx, command.Spec{Args: p.cfg.Build.Command, Dir: p.cfg.Repo.Dir})
	if !res.OK {
		return shiperrors.ErrBuildFailed
	}
	return nil
}

func (p *Pipeline) restart(ctx context.Context, logger *zerolog.Logger) error {
	args := p.cfg.Service.RestartArgs()
	logger.Info().Strs("command", args).Msg("restarting service")
	res := p.runner.Run(ctx, command.Spec{Args: args})
	if !res.OK {
		return shiperrors.ErrRestartFailed
	}
	return nil
}
