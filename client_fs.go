package globus

import (
	"context"
	"net/http"
	"net/url"
)

// ListDirectoryOptions selects a directory to list. When Path is empty the
// service picks the endpoint's default ("/" or "/~/"). Query values are sent
// as given alongside path (e.g. show_hidden, limit, offset, filter).
type ListDirectoryOptions struct {
	EndpointID string
	Path       string
	Query      url.Values
}

// MakeDirectoryOptions names a directory to create.
type MakeDirectoryOptions struct {
	EndpointID string
	Path       string
}

// RenameOptions moves OldPath to NewPath on the same endpoint.
type RenameOptions struct {
	EndpointID string
	OldPath    string
	NewPath    string
}

type mkdirBody struct {
	DataType string `json:"DATA_TYPE"`
	Path     string `json:"path"`
}

type renameBody struct {
	DataType string `json:"DATA_TYPE"`
	OldPath  string `json:"old_path"`
	NewPath  string `json:"new_path"`
}

func operationPath(endpointID, action string) string {
	return "/operation/endpoint/" + endpointID + "/" + action
}

// ListDirectory lists the contents of a directory.
func (c *Client) ListDirectory(ctx context.Context, token string, opts ListDirectoryOptions) (*Result, error) {
	const op = "ListDirectory"
	if err := requireFields(op, "EndpointID", opts.EndpointID); err != nil {
		return nil, err
	}

	query := url.Values{}
	for key, values := range opts.Query {
		for _, value := range values {
			query.Add(key, value)
		}
	}
	if opts.Path != "" {
		query.Set("path", opts.Path)
	}

	call := c.transfer(op, http.MethodGet, operationPath(opts.EndpointID, "ls"), nil)
	call.query = query
	return c.do(ctx, token, call)
}

// MakeDirectory creates a directory.
func (c *Client) MakeDirectory(ctx context.Context, token string, opts MakeDirectoryOptions) (*Result, error) {
	const op = "MakeDirectory"
	if err := requireFields(op, "EndpointID", opts.EndpointID, "Path", opts.Path); err != nil {
		return nil, err
	}
	body := mkdirBody{DataType: "mkdir", Path: opts.Path}
	return c.do(ctx, token, c.transfer(op, http.MethodPost, operationPath(opts.EndpointID, "mkdir"), body))
}

// Rename renames or moves a file or directory.
func (c *Client) Rename(ctx context.Context, token string, opts RenameOptions) (*Result, error) {
	const op = "Rename"
	if err := requireFields(op,
		"EndpointID", opts.EndpointID,
		"OldPath", opts.OldPath,
		"NewPath", opts.NewPath,
	); err != nil {
		return nil, err
	}
	body := renameBody{DataType: "rename", OldPath: opts.OldPath, NewPath: opts.NewPath}
	return c.do(ctx, token, c.transfer(op, http.MethodPost, operationPath(opts.EndpointID, "rename"), body))
}
