package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setAuditLog points the audit log at a temp file and returns its path.
func setAuditLog(t *testing.T) string {
	t.Helper()
	t.Setenv("SHIPDOG_HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "deploy.log")
	t.Setenv("SHIPDOG_AUDIT_LOG_PATH", path)
	return path
}

func TestHistory_EmptyLog(t *testing.T) {
	setAuditLog(t)

	var out bytes.Buffer
	err := runHistory(context.Background(), &HistoryFlags{Limit: 20}, &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "no deploy attempts recorded")
}

func TestHistory_PrintsAttempts(t *testing.T) {
	path := setAuditLog(t)
	content := "[2025-06-01T10:00:00Z] ❌ Build failed\n" +
		"[2025-06-01T11:00:00Z] ✅ Deploy successful\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o640))

	var out bytes.Buffer
	err := runHistory(context.Background(), &HistoryFlags{Limit: 20}, &out)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "❌ Build failed")
	assert.Contains(t, out.String(), "✅ Deploy successful")
}

func TestHistory_RespectsLimit(t *testing.T) {
	path := setAuditLog(t)
	content := "[2025-06-01T10:00:00Z] ❌ Build failed\n" +
		"[2025-06-01T11:00:00Z] ❌ Restart failed\n" +
		"[2025-06-01T12:00:00Z] ✅ Deploy successful\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o640))

	var out bytes.Buffer
	err := runHistory(context.Background(), &HistoryFlags{Limit: 1}, &out)
	require.NoError(t, err)

	assert.NotContains(t, out.String(), "Build failed")
	assert.Contains(t, out.String(), "✅ Deploy successful")
}
