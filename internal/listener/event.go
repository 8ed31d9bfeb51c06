// Package listener implements the diagnostic webhook listener: a standalone
// receiver used to verify that the deployed forwarder actually delivers its
// outbound notifications. It accepts any structured payload, prints a
// human-readable summary, and acknowledges. No validation, persistence, or
// business logic.
package listener

// summaryFields are the telephony signaling fields recognized in inbound
// payloads, in display order. They mirror the forwarder's event schema;
// every other field is preserved and shown only in the full payload dump.
var summaryFields = []struct {
	label string
	key   string
}{
	{"Call ID", "call_id"},
	{"Domain", "domain"},
	{"Direction", "direction"},
	{"State", "state"},
	{"Status", "status"},
	{"From", "from_number"},
	{"To", "to_number"},
	{"Hotline", "hotline"},
}

// fieldValue extracts a summary field from the decoded payload, falling back
// to "N/A" for anything missing or non-string.
func fieldValue(event map[string]any, key string) string {
	if v, ok := event[key].(string); ok && v != "" {
		return v
	}
	return "N/A"
}
