package globus

import (
	"context"
	"net/http"
)

const (
	// DefaultServerPort is applied by AddServer when Port is empty.
	DefaultServerPort = "2811"
	// DefaultServerScheme is applied by AddServer when Scheme is empty.
	DefaultServerScheme = "gsiftp"
)

// ServerOptions identifies one server of an endpoint.
type ServerOptions struct {
	EndpointID string
	ServerID   string
}

// AddServerOptions describes a GridFTP server to attach to an endpoint.
// Port and Scheme default to DefaultServerPort and DefaultServerScheme.
type AddServerOptions struct {
	EndpointID string
	Hostname   string
	Port       string
	Scheme     string
	Subject    string
}

// UpdateServerOptions changes the non-empty fields of a server.
type UpdateServerOptions struct {
	EndpointID string
	ServerID   string
	Hostname   string
	Port       string
	Scheme     string
	Subject    string
}

type serverBody struct {
	DataType string `json:"DATA_TYPE"`
	Hostname string `json:"hostname,omitempty"`
	Port     string `json:"port,omitempty"`
	Scheme   string `json:"scheme,omitempty"`
	Subject  string `json:"subject,omitempty"`
}

func serverPath(endpointID, serverID string) string {
	return "/endpoint/" + endpointID + "/server/" + serverID
}

// ListServers lists the servers of an endpoint.
func (c *Client) ListServers(ctx context.Context, token string, opts EndpointOptions) (*Result, error) {
	const op = "ListServers"
	if err := opts.validate(op); err != nil {
		return nil, err
	}
	return c.do(ctx, token, c.transfer(op, http.MethodGet, "/endpoint/"+opts.EndpointID+"/server_list", nil))
}

// GetServer returns a single server document. Both ids are required; the
// server id selects the resource rather than filtering the server list.
func (c *Client) GetServer(ctx context.Context, token string, opts ServerOptions) (*Result, error) {
	const op = "GetServer"
	if err := requireFields(op, "EndpointID", opts.EndpointID, "ServerID", opts.ServerID); err != nil {
		return nil, err
	}
	return c.do(ctx, token, c.transfer(op, http.MethodGet, serverPath(opts.EndpointID, opts.ServerID), nil))
}

// AddServer attaches a server to an endpoint.
func (c *Client) AddServer(ctx context.Context, token string, opts AddServerOptions) (*Result, error) {
	const op = "AddServer"
	if err := requireFields(op, "EndpointID", opts.EndpointID, "Hostname", opts.Hostname); err != nil {
		return nil, err
	}
	body := serverBody{
		DataType: "server",
		Hostname: opts.Hostname,
		Port:     opts.Port,
		Scheme:   opts.Scheme,
		Subject:  opts.Subject,
	}
	if body.Port == "" {
		body.Port = DefaultServerPort
	}
	if body.Scheme == "" {
		body.Scheme = DefaultServerScheme
	}
	return c.do(ctx, token, c.transfer(op, http.MethodPost, "/endpoint/"+opts.EndpointID+"/server", body))
}

// UpdateServer sends only the fields that are set; no defaults are applied.
func (c *Client) UpdateServer(ctx context.Context, token string, opts UpdateServerOptions) (*Result, error) {
	const op = "UpdateServer"
	if err := requireFields(op, "EndpointID", opts.EndpointID, "ServerID", opts.ServerID); err != nil {
		return nil, err
	}
	body := serverBody{
		DataType: "server",
		Hostname: opts.Hostname,
		Port:     opts.Port,
		Scheme:   opts.Scheme,
		Subject:  opts.Subject,
	}
	return c.do(ctx, token, c.transfer(op, http.MethodPut, serverPath(opts.EndpointID, opts.ServerID), body))
}

// DeleteServer detaches a server from an endpoint.
func (c *Client) DeleteServer(ctx context.Context, token string, opts ServerOptions) (*Result, error) {
	const op = "DeleteServer"
	if err := requireFields(op, "EndpointID", opts.EndpointID, "ServerID", opts.ServerID); err != nil {
		return nil, err
	}
	return c.do(ctx, token, c.transfer(op, http.MethodDelete, serverPath(opts.EndpointID, opts.ServerID), nil))
}
