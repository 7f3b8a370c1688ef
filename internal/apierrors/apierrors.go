package apierrors

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// ErrTransport is matched by every TransportError via errors.Is.
var ErrTransport = errors.New("globus: transport failure")

// TransportError reports a call that never produced a domain outcome: the
// request could not be sent, the connection failed, or the service answered
// with an error status and a body that is not JSON.
type TransportError struct {
	Op         string
	StatusCode int
	Status     string
	Body       []byte
	Err        error
}

// Error satisfies the error interface.
func (e *TransportError) Error() string {
	if e == nil {
		return "<nil>"
	}
	switch {
	case e.Err != nil:
		return fmt.Sprintf("globus: %s: %v", e.Op, e.Err)
	case len(e.Body) > 0:
		return fmt.Sprintf("globus: %s: %s: %s", e.Op, e.Status, string(e.Body))
	default:
		return fmt.Sprintf("globus: %s: %s", e.Op, e.Status)
	}
}

// Unwrap exposes the underlying network error, if any.
func (e *TransportError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is reports whether target is ErrTransport.
func (e *TransportError) Is(target error) bool {
	return target == ErrTransport
}

// Envelope holds the conventional fields found on most Globus responses.
type Envelope struct {
	DataType  string `json:"DATA_TYPE"`
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id"`
	Resource  string `json:"resource"`
}

// Response is a classified reply that carries a domain outcome.
type Response struct {
	Envelope
	StatusCode int
	Body       []byte
	JSON       bool
}

// Read drains resp.Body and classifies the reply. Any JSON body is a domain
// outcome regardless of status; error statuses without a JSON body become a
// TransportError. The caller still owns closing resp.Body.
func Read(op string, resp *http.Response) (*Response, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{
			Op:         op,
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Err:        fmt.Errorf("read response: %w", err),
		}
	}

	out := &Response{StatusCode: resp.StatusCode, Body: body}
	if len(body) > 0 && json.Valid(body) {
		out.JSON = true
		// Non-object bodies (lists, scalars) simply leave the envelope empty.
		_ = json.Unmarshal(body, &out.Envelope)
		return out, nil
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, &TransportError{
			Op:         op,
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       body,
		}
	}
	return out, nil
}
