package globus

import (
	"context"
	"net/http"
)

// EndpointOptions identifies an endpoint. It is shared by every operation
// that only needs the endpoint id.
type EndpointOptions struct {
	EndpointID string
}

func (o EndpointOptions) validate(op string) error {
	return requireFields(op, "EndpointID", o.EndpointID)
}

// EndpointDocument holds the mutable fields of an endpoint. Zero values are
// omitted from the request body.
type EndpointDocument struct {
	DisplayName      string `json:"display_name,omitempty"`
	Description      string `json:"description,omitempty"`
	Organization     string `json:"organization,omitempty"`
	Department       string `json:"department,omitempty"`
	Keywords         string `json:"keywords,omitempty"`
	ContactEmail     string `json:"contact_email,omitempty"`
	ContactInfo      string `json:"contact_info,omitempty"`
	InfoLink         string `json:"info_link,omitempty"`
	DefaultDirectory string `json:"default_directory,omitempty"`
	MyProxyServer    string `json:"myproxy_server,omitempty"`
	MyProxyDN        string `json:"myproxy_dn,omitempty"`
	OAuthServer      string `json:"oauth_server,omitempty"`
	Public           *bool  `json:"public,omitempty"`
	IsGlobusConnect  *bool  `json:"is_globus_connect,omitempty"`
	ForceEncryption  *bool  `json:"force_encryption,omitempty"`
	DisableVerify    *bool  `json:"disable_verify,omitempty"`
}

type endpointBody struct {
	DataType string `json:"DATA_TYPE"`
	EndpointDocument
}

// CreateEndpointOptions describes a new endpoint. Endpoint.DisplayName is required.
type CreateEndpointOptions struct {
	Endpoint EndpointDocument
}

// UpdateEndpointOptions carries the fields to change on an existing endpoint.
type UpdateEndpointOptions struct {
	EndpointID string
	Endpoint   EndpointDocument
}

// CreateSharedEndpointOptions describes a shared endpoint hosted on a path of
// an existing endpoint.
type CreateSharedEndpointOptions struct {
	HostEndpoint string
	HostPath     string
	DisplayName  string
	Description  string
}

type sharedEndpointBody struct {
	DataType     string `json:"DATA_TYPE"`
	HostEndpoint string `json:"host_endpoint"`
	HostPath     string `json:"host_path"`
	DisplayName  string `json:"display_name"`
	Description  string `json:"description,omitempty"`
}

// GetEndpoint returns the endpoint document.
func (c *Client) GetEndpoint(ctx context.Context, token string, opts EndpointOptions) (*Result, error) {
	const op = "GetEndpoint"
	if err := opts.validate(op); err != nil {
		return nil, err
	}
	return c.do(ctx, token, c.transfer(op, http.MethodGet, "/endpoint/"+opts.EndpointID, nil))
}

// CreateEndpoint registers a new endpoint. The response carries the new id.
func (c *Client) CreateEndpoint(ctx context.Context, token string, opts CreateEndpointOptions) (*Result, error) {
	const op = "CreateEndpoint"
	if err := requireFields(op, "Endpoint.DisplayName", opts.Endpoint.DisplayName); err != nil {
		return nil, err
	}
	body := endpointBody{DataType: "endpoint", EndpointDocument: opts.Endpoint}
	return c.do(ctx, token, c.transfer(op, http.MethodPost, "/endpoint", body))
}

// UpdateEndpoint changes the non-zero fields of opts.Endpoint.
func (c *Client) UpdateEndpoint(ctx context.Context, token string, opts UpdateEndpointOptions) (*Result, error) {
	const op = "UpdateEndpoint"
	if err := requireFields(op, "EndpointID", opts.EndpointID); err != nil {
		return nil, err
	}
	body := endpointBody{DataType: "endpoint", EndpointDocument: opts.Endpoint}
	return c.do(ctx, token, c.transfer(op, http.MethodPut, "/endpoint/"+opts.EndpointID, body))
}

// DeleteEndpoint removes an endpoint.
func (c *Client) DeleteEndpoint(ctx context.Context, token string, opts EndpointOptions) (*Result, error) {
	const op = "DeleteEndpoint"
	if err := opts.validate(op); err != nil {
		return nil, err
	}
	return c.do(ctx, token, c.transfer(op, http.MethodDelete, "/endpoint/"+opts.EndpointID, nil))
}

// CreateSharedEndpoint creates a shared endpoint rooted at HostPath on HostEndpoint.
func (c *Client) CreateSharedEndpoint(ctx context.Context, token string, opts CreateSharedEndpointOptions) (*Result, error) {
	const op = "CreateSharedEndpoint"
	if err := requireFields(op,
		"HostEndpoint", opts.HostEndpoint,
		"HostPath", opts.HostPath,
		"DisplayName", opts.DisplayName,
	); err != nil {
		return nil, err
	}
	body := sharedEndpointBody{
		DataType:     "shared_endpoint",
		HostEndpoint: opts.HostEndpoint,
		HostPath:     opts.HostPath,
		DisplayName:  opts.DisplayName,
		Description:  opts.Description,
	}
	return c.do(ctx, token, c.transfer(op, http.MethodPost, "/shared_endpoint", body))
}

// ListSharedEndpoints lists the shared endpoints the caller hosts on an endpoint.
func (c *Client) ListSharedEndpoints(ctx context.Context, token string, opts EndpointOptions) (*Result, error) {
	const op = "ListSharedEndpoints"
	if err := opts.validate(op); err != nil {
		return nil, err
	}
	path := "/endpoint/" + opts.EndpointID + "/my_shared_endpoint_list"
	return c.do(ctx, token, c.transfer(op, http.MethodGet, path, nil))
}

// ListMyPauseRules lists the pause rules on an endpoint that apply to the caller.
func (c *Client) ListMyPauseRules(ctx context.Context, token string, opts EndpointOptions) (*Result, error) {
	const op = "ListMyPauseRules"
	if err := opts.validate(op); err != nil {
		return nil, err
	}
	path := "/endpoint/" + opts.EndpointID + "/my_effective_pause_rule_list"
	return c.do(ctx, token, c.transfer(op, http.MethodGet, path, nil))
}
