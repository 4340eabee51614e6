package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// envelopeKey is the member unwrapped from object responses.
const envelopeKey = "data"

// Normalize turns a raw HTTP response into a Result.
//
// Only status 200 is a success. An object body with a "data" member yields
// that member as the payload unless keepEnvelope is set. Empty bodies succeed
// with no payload; malformed JSON is a failure.
func Normalize(status int, body []byte, keepEnvelope bool) Result {
	if status != http.StatusOK {
		return Failure(status, failureMessage(status, body))
	}

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return Result{Success: true, StatusCode: status}
	}

	var raw json.RawMessage
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return Failure(status, fmt.Sprintf("decoding response: %v", err))
	}

	payload := raw
	if !keepEnvelope && trimmed[0] == '{' {
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &obj); err == nil {
			if inner, ok := obj[envelopeKey]; ok {
				payload = inner
			}
		}
	}

	return Result{Success: true, StatusCode: status, Data: payload}
}

func failureMessage(status int, body []byte) string {
	if msg := strings.TrimSpace(string(body)); msg != "" {
		return msg
	}
	if text := http.StatusText(status); text != "" {
		return text
	}
	return fmt.Sprintf("unexpected status %d", status)
}
