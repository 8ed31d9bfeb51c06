package listener

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postEvent(t *testing.T, handler http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestServer_HealthCheck(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	handler := New(9000, &out).Handler()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestServer_EventSummaryAndAck(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	handler := New(9000, &out).Handler()

	body := `{
		"call_id": "df512e42-11af-47f1-8a06-aab19c551a2f",
		"domain": "tenant.pbx.example",
		"direction": "inbound",
		"state": "hangup",
		"status": "answered",
		"from_number": "0901234567",
		"to_number": "19001000",
		"hotline": "19001000",
		"sip_call_id": "abc@pbx"
	}`

	rec := postEvent(t, handler, "/webhook", body)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","received":true}`, rec.Body.String())

	printed := out.String()
	assert.Contains(t, printed, "EVENT RECEIVED")
	assert.Contains(t, printed, "URL: /webhook")
	assert.Contains(t, printed, "Call ID: df512e42-11af-47f1-8a06-aab19c551a2f")
	assert.Contains(t, printed, "Domain: tenant.pbx.example")
	assert.Contains(t, printed, "Direction: inbound")
	assert.Contains(t, printed, "From: 0901234567")
	assert.Contains(t, printed, "Hotline: 19001000")
	// Unrecognized fields survive into the full payload dump.
	assert.Contains(t, printed, "sip_call_id")
}

func TestServer_MissingFieldsShownAsNA(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	handler := New(9000, &out).Handler()

	rec := postEvent(t, handler, "/webhook", `{"domain":"tenant.pbx.example"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, out.String(), "Call ID: N/A")
	assert.Contains(t, out.String(), "Status: N/A")
}

func TestServer_AnyPathAccepted(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	handler := New(9000, &out).Handler()

	rec := postEvent(t, handler, "/some/other/endpoint", `{"call_id":"x"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, out.String(), "URL: /some/other/endpoint")
}

func TestServer_InvalidJSON(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	handler := New(9000, &out).Handler()

	rec := postEvent(t, handler, "/webhook", "not json at all")

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "error", resp["status"])
	assert.Contains(t, out.String(), "non-JSON payload")
}

func TestServer_GracefulShutdown(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	// Port 0 lets the kernel pick a free port; we only care that shutdown
	// returns promptly once the context is canceled.
	srv := New(0, &out)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- srv.ListenAndServe(ctx)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("listener did not shut down after cancellation")
	}
}
