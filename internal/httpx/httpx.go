package httpx

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// Doer represents the subset of http.Client used across the SDK. Callers can
// supply their own implementation to add tracing or to record fixtures in
// tests.
type Doer interface {
	Do(*http.Request) (*http.Response, error)
}

// NewJSONRequest serialises the given payload as JSON (if non-nil) and creates
// an HTTP request bound to the supplied context.
func NewJSONRequest(ctx context.Context, method, rawURL string, payload any) (*http.Request, error) {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("marshal payload: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, body)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return req, nil
}

// JoinURL appends path to base and encodes query (if any). The path is used
// as given: identifiers interpolated by callers are not escaped.
func JoinURL(base, path string, query url.Values) string {
	full := strings.TrimRight(base, "/") + path
	if len(query) == 0 {
		return full
	}
	return full + "?" + query.Encode()
}
