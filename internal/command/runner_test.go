package command

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecRunner_Success(t *testing.T) {
	t.Parallel()

	var echo bytes.Buffer
	r := NewExecRunner(&echo)

	res := r.Run(context.Background(), Spec{Args: []string{"sh", "-c", "echo out; echo err 1>&2"}})

	assert.True(t, res.OK)
	assert.Contains(t, res.Output, "out")
	assert.Contains(t, res.Output, "err", "stderr must be merged into the captured stream")

	// The invocation and its output are echoed live.
	assert.Contains(t, echo.String(), "$ sh -c")
	assert.Contains(t, echo.String(), "out")
}

func TestExecRunner_NonZeroExit(t *testing.T) {
	t.Parallel()

	r := NewExecRunner(nil)
	res := r.Run(context.Background(), Spec{Args: []string{"sh", "-c", "echo broken; exit 3"}})

	assert.False(t, res.OK)
	assert.Contains(t, res.Output, "broken", "output captured even on failure")
}

func TestExecRunner_MissingBinary(t *testing.T) {
	t.Parallel()

	r := NewExecRunner(nil)
	res := r.Run(context.Background(), Spec{Args: []string{"shipdog-no-such-binary-xyz"}})

	assert.False(t, res.OK)
	assert.NotEmpty(t, res.Output, "start failure detail reported through Output")
}

func TestExecRunner_EmptyArgs(t *testing.T) {
	t.Parallel()

	r := NewExecRunner(nil)
	res := r.Run(context.Background(), Spec{})

	assert.False(t, res.OK)
	assert.Equal(t, "empty argument vector", res.Output)
}

func TestExecRunner_WorkingDirectory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	r := NewExecRunner(nil)

	res := r.Run(context.Background(), Spec{Args: []string{"pwd"}, Dir: dir})

	require.True(t, res.OK)
	assert.Contains(t, res.Output, dir)
}

func TestExecRunner_BadWorkingDirectory(t *testing.T) {
	t.Parallel()

	r := NewExecRunner(nil)
	res := r.Run(context.Background(), Spec{Args: []string{"pwd"}, Dir: "/nonexistent/shipdog"})

	assert.False(t, res.OK)
}

func TestExecRunner_ContextCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := NewExecRunner(nil)
	res := r.Run(ctx, Spec{Args: []string{"sleep", "10"}})

	assert.False(t, res.OK)
}

func TestSpec_String(t *testing.T) {
	t.Parallel()

	s := Spec{Args: []string{"git", "status", "-uno"}}
	assert.Equal(t, "git status -uno", s.String())
}
