package listener

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	shiperrors "github.com/calleventhub/shipdog/internal/errors"
)

// shutdownGrace bounds how long in-flight requests may drain after an
// interrupt before the server is torn down.
const shutdownGrace = 5 * time.Second

// Server is the diagnostic HTTP listener. Inbound POST payloads are echoed
// to Out with a summary of recognized fields; every request gets a fixed
// acknowledgment body.
type Server struct {
	port int
	out  io.Writer
}

// New creates a Server that binds the given port and prints to out.
func New(port int, out io.Writer) *Server {
	return &Server{port: port, out: out}
}

// ackResponse is the fixed acknowledgment body.
type ackResponse struct {
	Status   string `json:"status"`
	Received bool   `json:"received,omitempty"`
	Error    string `json:"error,omitempty"`
}

// Handler returns the listener's HTTP handler. Exposed separately so tests
// can drive it with httptest without binding a port.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handle)
	return mux
}

// ListenAndServe runs the listener until the context is canceled, then
// shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	logger := zerolog.Ctx(ctx)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", s.port),
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	logger.Info().Int("port", s.port).Msg("diagnostic listener started")
	fmt.Fprintf(s.out, "🚀 Listening for forwarded events on http://localhost:%d/webhook\n", s.port)

	select {
	case err := <-errCh:
		return shiperrors.Wrap(err, "listener failed")
	case <-ctx.Done():
		logger.Info().Msg("shutting down diagnostic listener")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return shiperrors.Wrap(err, "listener shutdown failed")
		}
		return nil
	}
}

// handle dispatches by method: POST carries an event, anything else is
// treated as a health check.
func (s *Server) handle(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodPost {
		s.handleEvent(w, r)
		return
	}
	writeJSON(w, http.StatusOK, ackResponse{Status: "ok"})
}

// handleEvent prints the recognized fields plus the full payload and replies
// with the fixed acknowledgment. The payload is decoded to a map so fields
// outside the known schema are preserved in the dump; different PBX systems
// send different field sets.
func (s *Server) handleEvent(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ackResponse{Status: "error", Error: "unreadable body"})
		return
	}

	var event map[string]any
	if err := json.Unmarshal(body, &event); err != nil {
		fmt.Fprintf(s.out, "⚠️  Received non-JSON payload on %s: %s\n", r.URL.Path, string(body))
		writeJSON(w, http.StatusBadRequest, ackResponse{Status: "error", Error: "invalid json"})
		return
	}

	s.printEvent(r.URL.Path, event)
	writeJSON(w, http.StatusOK, ackResponse{Status: "ok", Received: true})
}

// printEvent writes the human-readable event block.
func (s *Server) printEvent(path string, event map[string]any) {
	rule := strings.Repeat("=", 60)

	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, rule)
	fmt.Fprintln(s.out, "✅ EVENT RECEIVED")
	fmt.Fprintln(s.out, rule)
	fmt.Fprintf(s.out, "URL: %s\n", path)
	for _, field := range summaryFields {
		fmt.Fprintf(s.out, "%s: %s\n", field.label, fieldValue(event, field.key))
	}

	fmt.Fprintln(s.out, "Full Event:")
	if pretty, err := json.MarshalIndent(event, "", "  "); err == nil {
		fmt.Fprintln(s.out, string(pretty))
	}
	fmt.Fprintln(s.out, rule)
}

func writeJSON(w http.ResponseWriter, status int, body ackResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
