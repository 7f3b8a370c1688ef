package globus

import (
	"github.com/sirupsen/logrus"

	"github.com/romgrk/globus-go/internal/httpx"
)

// Client maps Globus Transfer and identity API calls onto Go methods. It holds
// no per-call state and is safe for concurrent use; every method performs a
// single request with the bearer token it is given.
type Client struct {
	transferURL string
	identityURL string
	http        httpx.Doer
	log         logrus.FieldLogger
	userAgent   string
}

// NewClient constructs a new Client instance using the supplied configuration.
func NewClient(cfg Config) (*Client, error) {
	cfgCopy := cfg
	if err := (&cfgCopy).Validate(); err != nil {
		return nil, err
	}

	return &Client{
		transferURL: cfgCopy.TransferBaseURL,
		identityURL: cfgCopy.IdentityBaseURL,
		http:        cfgCopy.HTTPClient,
		log:         cfgCopy.Logger,
		userAgent:   cfgCopy.UserAgent,
	}, nil
}

// Close is a no-op kept for API symmetry with clients that own resources.
// The Client holds none: the HTTP transport belongs to the caller.
func (c *Client) Close() error {
	return nil
}
