package globus

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Result is the domain outcome of a call. Success and failure codes are both
// delivered here; the SDK never reinterprets Code.
type Result struct {
	StatusCode int

	// Code is the remote "code" field, e.g. "Deleted" or "ClientError.NotFound".
	Code      string
	Message   string
	DataType  string
	RequestID string

	// ClientRequestID is the X-Request-ID the SDK attached to the request.
	ClientRequestID string

	// Raw holds the undecoded body; JSON reports whether it parsed as JSON.
	Raw  []byte
	JSON bool
}

// OK reports whether the HTTP status was below 400.
func (r *Result) OK() bool {
	return r != nil && r.StatusCode < http.StatusBadRequest
}

// HasCode reports whether Code equals any of codes.
func (r *Result) HasCode(codes ...string) bool {
	if r == nil {
		return false
	}
	for _, code := range codes {
		if r.Code == code {
			return true
		}
	}
	return false
}

// HasCodePrefix reports whether Code starts with prefix.
func (r *Result) HasCodePrefix(prefix string) bool {
	return r != nil && hasPrefix(r.Code, prefix)
}

// IsActivated reports whether Code is one of the "Activated.*" family or AutoActivated.
func (r *Result) IsActivated() bool {
	return r.HasCodePrefix(CodeActivatedPrefix) || r.HasCode(CodeAutoActivated)
}

// IsDeleted treats a repeated delete as success: the second attempt reports
// AccessRuleNotFound.
func (r *Result) IsDeleted() bool {
	return r.HasCode(CodeDeleted, CodeAccessRuleNotFound)
}

// Decode unmarshals the body into target.
func (r *Result) Decode(target any) error {
	if r == nil {
		return errors.New("nil result")
	}
	if !r.JSON {
		return fmt.Errorf("response body is not JSON (status %d)", r.StatusCode)
	}
	if err := json.Unmarshal(r.Raw, target); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// Document decodes the body as a JSON object.
func (r *Result) Document() (Document, error) {
	var doc Document
	if err := r.Decode(&doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Value returns the "value" field, as carried by submission id responses.
func (r *Result) Value() (string, error) {
	var payload struct {
		Value string `json:"value"`
	}
	if err := r.Decode(&payload); err != nil {
		return "", err
	}
	if payload.Value == "" {
		return "", errors.New("response has no value")
	}
	return payload.Value, nil
}

// UserID extracts the user identifier from an identity lookup response. It
// accepts both a single user document and an "items" list, taking the first entry.
func (r *Result) UserID() (string, error) {
	var payload struct {
		ID    string `json:"id"`
		Items []struct {
			ID string `json:"id"`
		} `json:"items"`
	}
	if err := r.Decode(&payload); err != nil {
		return "", err
	}
	if payload.ID != "" {
		return payload.ID, nil
	}
	for _, item := range payload.Items {
		if item.ID != "" {
			return item.ID, nil
		}
	}
	return "", fmt.Errorf("no user found (code %q)", r.Code)
}
