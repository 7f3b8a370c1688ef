package apierrors

import (
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func response(status int, text, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Status:     text,
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func TestTransportErrorString(t *testing.T) {
	err := &TransportError{Op: "GetEndpoint", Err: errors.New("connection refused")}
	require.Equal(t, "globus: GetEndpoint: connection refused", err.Error())

	err = &TransportError{Op: "GetEndpoint", Status: "502 Bad Gateway", Body: []byte("<html>")}
	require.Equal(t, "globus: GetEndpoint: 502 Bad Gateway: <html>", err.Error())

	err = &TransportError{Op: "GetEndpoint", Status: "503 Service Unavailable"}
	require.Equal(t, "globus: GetEndpoint: 503 Service Unavailable", err.Error())
	require.True(t, errors.Is(err, ErrTransport))
}

func TestTransportErrorUnwrap(t *testing.T) {
	cause := errors.New("dial tcp: refused")
	err := &TransportError{Op: "Deactivate", Err: cause}
	require.ErrorIs(t, err, cause)
	require.ErrorIs(t, err, ErrTransport)
}

func TestReadErrorStatusWithJSONIsOutcome(t *testing.T) {
	resp := response(http.StatusNotFound, "404 Not Found",
		`{"DATA_TYPE":"result","code":"ClientError.NotFound","message":"No such endpoint","request_id":"abc123"}`)
	out, err := Read("Deactivate", resp)
	require.NoError(t, err)
	require.True(t, out.JSON)
	require.Equal(t, http.StatusNotFound, out.StatusCode)
	require.Equal(t, "ClientError.NotFound", out.Code)
	require.Equal(t, "No such endpoint", out.Message)
	require.Equal(t, "abc123", out.RequestID)
}

func TestReadListBody(t *testing.T) {
	out, err := Read("ListServers", response(http.StatusOK, "200 OK", `[{"id":1}]`))
	require.NoError(t, err)
	require.True(t, out.JSON)
	require.Empty(t, out.Code)
	require.Equal(t, `[{"id":1}]`, string(out.Body))
}

func TestReadFallbacks(t *testing.T) {
	_, err := Read("GetEndpoint", response(http.StatusInternalServerError, "500 Internal Server Error", ""))
	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
	require.Equal(t, http.StatusInternalServerError, transportErr.StatusCode)

	_, err = Read("GetEndpoint", response(http.StatusBadGateway, "502 Bad Gateway", "<html>"))
	require.ErrorAs(t, err, &transportErr)
	require.Equal(t, "<html>", string(transportErr.Body))

	out, err := Read("GetEndpoint", response(http.StatusOK, "200 OK", "plain text"))
	require.NoError(t, err)
	require.False(t, out.JSON)
	require.Equal(t, "plain text", string(out.Body))

	out, err = Read("DeleteEndpoint", response(http.StatusNoContent, "204 No Content", ""))
	require.NoError(t, err)
	require.False(t, out.JSON)
	require.Empty(t, out.Body)
}
