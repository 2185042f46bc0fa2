package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"bookshelf/internal/httpx"
)

// NewRequest creates a new HTTP request for testing.
// A string body is sent as-is, anything else is JSON encoded.
func NewRequest(method, path string, body any) *http.Request {
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		bodyBytes, _ := json.Marshal(b)
		reader = bytes.NewReader(bodyBytes)
	}
	r := httptest.NewRequest(method, path, reader)
	if reader != nil {
		r.Header.Set("Content-Type", "application/json")
	}
	return r
}

// NewRequestWithPathValue creates a request routed as if the mux had matched {name}.
func NewRequestWithPathValue(method, path string, body any, name, value string) *http.Request {
	r := NewRequest(method, path, body)
	r.SetPathValue(name, value)
	return r
}

// DecodeEnvelope decodes the recorded body into the response envelope.
func DecodeEnvelope(t testing.TB, w *httptest.ResponseRecorder) httpx.Response {
	t.Helper()
	var resp httpx.Response
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response envelope: %v", err)
	}
	return resp
}

// DataField returns data[key] from a decoded success envelope.
func DataField(t testing.TB, resp httpx.Response, key string) any {
	t.Helper()
	data, ok := resp.Data.(map[string]any)
	if !ok {
		t.Fatalf("response data is %T, want object", resp.Data)
	}
	value, ok := data[key]
	if !ok {
		t.Fatalf("response data missing key %q", key)
	}
	return value
}
