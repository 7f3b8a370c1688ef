package globus

import (
	"context"
	"net/http"
	"net/url"
)

// LookupUserOptions names the registered e-mail address to resolve.
type LookupUserOptions struct {
	Email string
}

// LookupUser resolves an e-mail address against the identity API. The
// address is percent-encoded in the query ("@" becomes "%40"). Use
// Result.UserID to extract the identifier, e.g. as the Principal of an
// identity access rule.
func (c *Client) LookupUser(ctx context.Context, token string, opts LookupUserOptions) (*Result, error) {
	const op = "LookupUser"
	if err := requireFields(op, "Email", opts.Email); err != nil {
		return nil, err
	}
	return c.do(ctx, token, apiCall{
		op:     op,
		method: http.MethodGet,
		base:   c.identityURL,
		path:   "/users",
		query:  url.Values{"email": {opts.Email}},
	})
}
