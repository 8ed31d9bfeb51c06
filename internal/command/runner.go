// Package command provides external command execution for deploy steps.
//
// The commands executed by this package come from shipdog configuration
// (.shipdog/config.yaml or the user's global config). These are treated as
// trusted input, the same trust model as Makefiles or CI/CD configuration:
// anyone who can edit the config can already run arbitrary commands on the
// deploy host.
package command

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
)

// Spec describes one command invocation: an argument vector and an optional
// working directory. A Spec is constructed per call and discarded after use.
type Spec struct {
	// Args is the full argument vector; Args[0] is the program.
	Args []string
	// Dir is the working directory. Empty means the caller's current directory.
	Dir string
}

// String renders the invocation the way it is echoed to the console.
func (s Spec) String() string {
	return strings.Join(s.Args, " ")
}

// Result is the outcome of one command invocation. Absence of success is the
// only failure signal: start failures (missing binary, bad directory) and
// non-zero exits both surface as OK=false with the detail in Output.
type Result struct {
	// OK is true iff the process terminated normally with exit code zero.
	OK bool
	// Output is the merged stdout and stderr of the process.
	Output string
}

// Runner defines the interface for executing external commands.
// This allows deploy pipeline tests to inject mock implementations.
type Runner interface {
	// Run executes the command synchronously and returns its result.
	// Exactly one attempt is made; there are no retries.
	Run(ctx context.Context, spec Spec) Result
}

// ExecRunner implements Runner using os/exec. Command output is streamed to
// Echo as it is produced, in addition to being captured in the Result, so
// the operator watching a deploy sees build and git output live.
type ExecRunner struct {
	// Echo receives the command line and its merged output as they happen.
	// Nil disables echoing.
	Echo io.Writer
}

// NewExecRunner creates an ExecRunner that echoes to w.
func NewExecRunner(w io.Writer) *ExecRunner {
	return &ExecRunner{Echo: w}
}

// Run executes the command described by spec. Stdout and stderr are merged
// into a single stream so interleaved diagnostics keep their order.
func (r *ExecRunner) Run(ctx context.Context, spec Spec) Result {
	if len(spec.Args) == 0 {
		return Result{OK: false, Output: "empty argument vector"}
	}

	if r.Echo != nil {
		fmt.Fprintf(r.Echo, "$ %s\n", spec)
	}

	cmd := exec.CommandContext(ctx, spec.Args[0], spec.Args[1:]...) //#nosec G204 -- args come from trusted config, not user input
	cmd.Dir = spec.Dir

	var buf bytes.Buffer
	sink := io.Writer(&buf)
	if r.Echo != nil {
		sink = io.MultiWriter(&buf, r.Echo)
	}
	cmd.Stdout = sink
	cmd.Stderr = sink

	if err := cmd.Run(); err != nil {
		out := buf.String()
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			// The process never ran; the error text is the only output.
			out = err.Error()
			if r.Echo != nil {
				fmt.Fprintln(r.Echo, out)
			}
		}
		return Result{OK: false, Output: out}
	}

	return Result{OK: true, Output: buf.String()}
}

// Ensure ExecRunner implements Runner.
var _ Runner = (*ExecRunner)(nil)
