// Package deploy sequences a single deployment run: change detection, sync,
// build, restart, and the audit record of the terminal state.
package deploy

// Outcome is the terminal state of one deploy run. Every run ends in exactly
// one outcome; there are no intermediate observable states.
type Outcome string

const (
	// OutcomeSkipped means no upstream changes were detected and force was
	// not set. Nothing was attempted, so no audit record is written.
	OutcomeSkipped Outcome = "skipped"
	// OutcomeSuccess means every attempted step completed.
	OutcomeSuccess Outcome = "success"
	// OutcomeSyncFailed means git pull returned non-success.
	OutcomeSyncFailed Outcome = "sync_failed"
	// OutcomeBuildFailed means the build command returned non-success.
	OutcomeBuildFailed Outcome = "build_failed"
	// OutcomeRestartFailed means the service restart returned non-success.
	OutcomeRestartFailed Outcome = "restart_failed"
	// OutcomeError means a step failed in an unexpected way, e.g. the
	// repository state could not be queried or the audit log could not be
	// written.
	OutcomeError Outcome = "error"
)

// Failed reports whether the run should surface a non-zero exit status.
// Skipped is a clean exit: nothing needed doing.
func (o Outcome) Failed() bool {
	return o != OutcomeSkipped && o != OutcomeSuccess
}

// String returns the outcome name.
func (o Outcome) String() string {
	return string(o)
}

// Options are the policy flags for one run, provided once at invocation
// start and read-only thereafter.
type Options struct {
	// Force rebuilds and restarts even when no upstream change is detected.
	// It exists to re-deploy an unchanged tree, e.g. after fixing an
	// environment issue, without requiring a fake commit.
	Force bool
	// NoRestart builds only and skips the restart step.
	NoRestart bool
}
