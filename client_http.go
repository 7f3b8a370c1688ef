package globus

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/romgrk/globus-go/internal/apierrors"
	"github.com/romgrk/globus-go/internal/httpx"
)

const headerRequestID = "X-Request-ID"

type apiCall struct {
	op     string
	method string
	base   string
	path   string
	query  url.Values
	body   any
}

func (c *Client) transfer(op, method, path string, body any) apiCall {
	return apiCall{op: op, method: method, base: c.transferURL, path: path, body: body}
}

func (c *Client) do(ctx context.Context, token string, call apiCall) (*Result, error) {
	if strings.TrimSpace(token) == "" {
		return nil, invalidUsage(call.op, "bearer token is required")
	}

	target := httpx.JoinURL(call.base, call.path, call.query)
	requestID := uuid.NewString()
	logger := c.log.WithFields(logrus.Fields{
		"op":         call.op,
		"method":     call.method,
		"path":       call.path,
		"request_id": requestID,
	})

	req, err := httpx.NewJSONRequest(ctx, call.method, target, call.body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: build request: %w", call.op, ErrInvalidUsage, err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set(headerRequestID, requestID)
	req.Header.Set("User-Agent", c.userAgent)

	logger.Debug("globus request")

	resp, err := c.http.Do(req)
	if err != nil {
		logger.WithError(redactURL(err)).Warn("globus request failed")
		return nil, &TransportError{Op: call.op, Err: err}
	}
	defer closeSilently(resp)

	out, err := apierrors.Read(call.op, resp)
	if err != nil {
		logger.WithError(err).Warn("globus response unreadable")
		return nil, err
	}

	logger.WithFields(logrus.Fields{
		"status": out.StatusCode,
		"code":   out.Code,
	}).Debug("globus response")

	return &Result{
		StatusCode:      out.StatusCode,
		Code:            out.Code,
		Message:         out.Message,
		DataType:        out.DataType,
		RequestID:       out.RequestID,
		ClientRequestID: requestID,
		Raw:             out.Body,
		JSON:            out.JSON,
	}, nil
}

// redactURL drops the request URL from transport errors so query values
// such as e-mail addresses stay out of logs.
func redactURL(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return fmt.Errorf("%s: %w", urlErr.Op, urlErr.Err)
	}
	return err
}

func closeSilently(resp *http.Response) {
	if resp == nil {
		return
	}
	_ = resp.Body.Close()
}
