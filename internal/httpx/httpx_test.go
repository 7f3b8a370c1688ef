package httpx

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
)

type badJSON struct{}

func (badJSON) MarshalJSON() ([]byte, error) {
	return nil, io.EOF
}

func TestNewJSONRequestWithPayload(t *testing.T) {
	payload := map[string]string{"DATA_TYPE": "mkdir", "path": "/~/data"}
	req, err := NewJSONRequest(context.Background(), http.MethodPost, "https://example.com/mkdir", payload)
	require.NoError(t, err)
	require.Equal(t, http.MethodPost, req.Method)
	require.Equal(t, "https://example.com/mkdir", req.URL.String())
	require.Equal(t, "application/json", req.Header.Get("Content-Type"))
	require.Equal(t, "application/json", req.Header.Get("Accept"))

	var decoded map[string]string
	require.NoError(t, json.NewDecoder(req.Body).Decode(&decoded))
	require.Equal(t, payload, decoded)
}

func TestNewJSONRequestWithoutPayload(t *testing.T) {
	req, err := NewJSONRequest(context.Background(), http.MethodGet, "https://example.com/path", nil)
	require.NoError(t, err)
	require.Equal(t, http.MethodGet, req.Method)
	require.Empty(t, req.Header.Get("Content-Type"))
	require.Nil(t, req.Body)
}

func TestNewJSONRequestMarshalError(t *testing.T) {
	_, err := NewJSONRequest(context.Background(), http.MethodPost, "https://example.com", badJSON{})
	require.Error(t, err)
}

func TestJoinURL(t *testing.T) {
	require.Equal(t, "https://example.com/v0.10/endpoint/abc", JoinURL("https://example.com/v0.10/", "/endpoint/abc", nil))

	query := url.Values{}
	query.Set("path", "/~/")
	require.Equal(t, "https://example.com/ls?path=%2F~%2F", JoinURL("https://example.com", "/ls", query))
}
