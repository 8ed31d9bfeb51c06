// Package audit records deploy attempts in an append-only log file.
//
// The log is the durable record of what the orchestrator did: one line per
// terminal attempt, format "[<RFC3339 timestamp>] <message>". There is no
// rotation and no locking; a single low-frequency orchestrator process is
// assumed to be the only writer.
package audit

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	shiperrors "github.com/calleventhub/shipdog/internal/errors"
)

// Attempt is one recorded deploy outcome. Attempts are append-only history:
// created once per orchestrator run at a terminal state, never mutated.
type Attempt struct {
	// Timestamp is when the terminal state was reached.
	Timestamp time.Time
	// Message describes the outcome, e.g. "✅ Deploy successful".
	Message string
}

// String renders the attempt in the on-disk line format.
func (a Attempt) String() string {
	return fmt.Sprintf("[%s] %s", a.Timestamp.Format(time.RFC3339), a.Message)
}

// Log appends attempts to a file at a fixed path.
type Log struct {
	path string
}

// NewLog creates a Log writing to path. The file and its parent directory
// are created lazily on first append.
func NewLog(path string) *Log {
	return &Log{path: path}
}

// Path returns the log file location.
func (l *Log) Path() string {
	return l.path
}

// Append writes a single attempt line, creating the parent directory if
// absent. A write failure is not retried here; it propagates to the
// orchestrator's exit boundary.
func (l *Log) Append(attempt Attempt) error {
	if err := os.MkdirAll(filepath.Dir(l.path), 0o750); err != nil {
		return shiperrors.Wrap(shiperrors.ErrAuditWrite, err.Error())
	}

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o640)
	if err != nil {
		return shiperrors.Wrap(shiperrors.ErrAuditWrite, err.Error())
	}
	defer func() { _ = f.Close() }()

	if _, err := fmt.Fprintln(f, attempt.String()); err != nil {
		return shiperrors.Wrap(shiperrors.ErrAuditWrite, err.Error())
	}
	return nil
}

// Tail returns up to n most recent attempts, oldest first. A missing log
// file means no attempts have been recorded yet and yields an empty slice.
// Lines that do not parse are skipped; the log is plain text and may carry
// hand-written notes from operators.
func (l *Log) Tail(n int) ([]Attempt, error) {
	f, err := os.Open(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, shiperrors.Wrap(err, "failed to open audit log")
	}
	defer func() { _ = f.Close() }()

	var attempts []Attempt
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if attempt, ok := parseLine(scanner.Text()); ok {
			attempts = append(attempts, attempt)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, shiperrors.Wrap(err, "failed to read audit log")
	}

	if n > 0 && len(attempts) > n {
		attempts = attempts[len(attempts)-n:]
	}
	return attempts, nil
}

// parseLine parses "[<RFC3339>] <message>" into an Attempt.
func parseLine(line string) (Attempt, bool) {
	if !strings.HasPrefix(line, "[") {
		return Attempt{}, false
	}
	end := strings.Index(line, "] ")
	if end == -1 {
		return Attempt{}, false
	}

	ts, err := time.Parse(time.RFC3339, line[1:end])
	if err != nil {
		return Attempt{}, false
	}
	return Attempt{Timestamp: ts, Message: line[end+2:]}, true
}
