// Package git inspects a repository's state relative to its upstream using
// the git CLI. This file defines the structured divergence query result.
package git

// Divergence describes how the local branch relates to its remote tracking
// branch. It replaces substring checks on human-oriented git output with an
// explicit state derived from porcelain ahead/behind counters.
type Divergence int

const (
	// UpToDate means local and remote tips are identical.
	UpToDate Divergence = iota
	// Behind means the local tip is an ancestor of the remote tip: the
	// remote has commits the local side lacks.
	Behind
	// Ahead means the local side has commits the remote lacks.
	Ahead
	// Diverged means both sides have commits the other lacks.
	Diverged
)

// String returns the human-readable name of the divergence state.
func (d Divergence) String() string {
	switch d {
	case UpToDate:
		return "up-to-date"
	case Behind:
		return "behind"
	case Ahead:
		return "ahead"
	case Diverged:
		return "diverged"
	default:
		return "unknown"
	}
}

// HasUpstreamCommits reports whether upstream has commits worth pulling.
// Only a strictly Behind branch qualifies: the orchestrator's job is to pull
// upstream change, not to reconcile local divergence, so Ahead and Diverged
// deliberately do not trigger a sync.
func (d Divergence) HasUpstreamCommits() bool {
	return d == Behind
}

// classifyDivergence maps porcelain ahead/behind counters to a Divergence.
func classifyDivergence(ahead, behind int) Divergence {
	switch {
	case ahead > 0 && behind > 0:
		return Diverged
	case behind > 0:
		return Behind
	case ahead > 0:
		return Ahead
	default:
		return UpToDate
	}
}
