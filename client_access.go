package globus

import (
	"context"
	"net/http"
)

// AccessRuleOptions identifies one access rule on an endpoint.
type AccessRuleOptions struct {
	EndpointID string
	RuleID     string
}

// CreateAccessRuleOptions grants Permissions on Path to a principal.
// Permissions defaults to PermissionRead. Principal is required for identity
// and group principals.
type CreateAccessRuleOptions struct {
	EndpointID    string
	PrincipalType PrincipalType
	Principal     string
	Path          string
	Permissions   Permission
	// NotifyEmail, when set, asks the service to e-mail the new grantee.
	NotifyEmail   string
	NotifyMessage string
}

// UpdateAccessRuleOptions carries a partial access rule document.
type UpdateAccessRuleOptions struct {
	EndpointID string
	RuleID     string
	Document   Document
}

type accessRuleBody struct {
	DataType      string        `json:"DATA_TYPE"`
	PrincipalType PrincipalType `json:"principal_type"`
	Principal     string        `json:"principal"`
	Path          string        `json:"path"`
	Permissions   Permission    `json:"permissions"`
	NotifyEmail   string        `json:"notify_email,omitempty"`
	NotifyMessage string        `json:"notify_message,omitempty"`
}

func accessRulePath(endpointID, ruleID string) string {
	return "/endpoint/" + endpointID + "/access/" + ruleID
}

// ListAccessRules lists the access rules of an endpoint.
func (c *Client) ListAccessRules(ctx context.Context, token string, opts EndpointOptions) (*Result, error) {
	const op = "ListAccessRules"
	if err := opts.validate(op); err != nil {
		return nil, err
	}
	return c.do(ctx, token, c.transfer(op, http.MethodGet, "/endpoint/"+opts.EndpointID+"/access_list", nil))
}

// GetAccessRule returns one access rule.
func (c *Client) GetAccessRule(ctx context.Context, token string, opts AccessRuleOptions) (*Result, error) {
	const op = "GetAccessRule"
	if err := requireFields(op, "EndpointID", opts.EndpointID, "RuleID", opts.RuleID); err != nil {
		return nil, err
	}
	return c.do(ctx, token, c.transfer(op, http.MethodGet, accessRulePath(opts.EndpointID, opts.RuleID), nil))
}

// CreateAccessRule adds an access rule. On success Code is "Created" and the
// body carries access_id.
func (c *Client) CreateAccessRule(ctx context.Context, token string, opts CreateAccessRuleOptions) (*Result, error) {
	const op = "CreateAccessRule"
	if err := requireFields(op,
		"EndpointID", opts.EndpointID,
		"PrincipalType", string(opts.PrincipalType),
		"Path", opts.Path,
	); err != nil {
		return nil, err
	}
	if opts.PrincipalType.needsPrincipal() && opts.Principal == "" {
		return nil, invalidUsage(op, "Principal is required for principal type %s", opts.PrincipalType)
	}

	permissions := opts.Permissions
	if permissions == "" {
		permissions = PermissionRead
	}

	body := accessRuleBody{
		DataType:      "access",
		PrincipalType: opts.PrincipalType,
		Principal:     opts.Principal,
		Path:          opts.Path,
		Permissions:   permissions,
		NotifyEmail:   opts.NotifyEmail,
		NotifyMessage: opts.NotifyMessage,
	}
	return c.do(ctx, token, c.transfer(op, http.MethodPost, "/endpoint/"+opts.EndpointID+"/access", body))
}

// UpdateAccessRule sends opts.Document as-is, adding DATA_TYPE when absent.
// The caller's map is not modified.
func (c *Client) UpdateAccessRule(ctx context.Context, token string, opts UpdateAccessRuleOptions) (*Result, error) {
	const op = "UpdateAccessRule"
	if err := requireFields(op, "EndpointID", opts.EndpointID, "RuleID", opts.RuleID); err != nil {
		return nil, err
	}
	if len(opts.Document) == 0 {
		return nil, invalidUsage(op, "Document is required")
	}

	body := make(Document, len(opts.Document)+1)
	for key, value := range opts.Document {
		body[key] = value
	}
	if _, ok := body["DATA_TYPE"]; !ok {
		body["DATA_TYPE"] = "access"
	}
	return c.do(ctx, token, c.transfer(op, http.MethodPut, accessRulePath(opts.EndpointID, opts.RuleID), body))
}

// DeleteAccessRule removes an access rule. Deleting twice is safe: use
// Result.IsDeleted, which accepts both "Deleted" and "AccessRuleNotFound".
func (c *Client) DeleteAccessRule(ctx context.Context, token string, opts AccessRuleOptions) (*Result, error) {
	const op = "DeleteAccessRule"
	if err := requireFields(op, "EndpointID", opts.EndpointID, "RuleID", opts.RuleID); err != nil {
		return nil, err
	}
	return c.do(ctx, token, c.transfer(op, http.MethodDelete, accessRulePath(opts.EndpointID, opts.RuleID), nil))
}
