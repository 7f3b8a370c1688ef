package globus

import (
	"context"
	"net/http"
)

// ActivateOptions carries an activation requirements document, normally the
// one returned by GetActivationRequirements with its values filled in.
type ActivateOptions struct {
	EndpointID   string
	Requirements Document
}

func activationPath(endpointID, action string) string {
	return "/endpoint/" + endpointID + "/" + action
}

// GetActivationRequirements returns the activation requirements document of an endpoint.
func (c *Client) GetActivationRequirements(ctx context.Context, token string, opts EndpointOptions) (*Result, error) {
	const op = "GetActivationRequirements"
	if err := opts.validate(op); err != nil {
		return nil, err
	}
	return c.do(ctx, token, c.transfer(op, http.MethodGet, activationPath(opts.EndpointID, "activation_requirements"), nil))
}

// Activate submits a filled requirements document. A successful activation
// reports a code such as "Activated.MyProxyCredential"; a malformed document
// reports "ClientError.BadRequest".
func (c *Client) Activate(ctx context.Context, token string, opts ActivateOptions) (*Result, error) {
	const op = "Activate"
	if err := requireFields(op, "EndpointID", opts.EndpointID); err != nil {
		return nil, err
	}
	if opts.Requirements == nil {
		return nil, invalidUsage(op, "Requirements is required")
	}
	return c.do(ctx, token, c.transfer(op, http.MethodPost, activationPath(opts.EndpointID, "activate"), opts.Requirements))
}

// AutoActivate asks the service to activate the endpoint with credentials it
// already holds.
func (c *Client) AutoActivate(ctx context.Context, token string, opts EndpointOptions) (*Result, error) {
	const op = "AutoActivate"
	if err := opts.validate(op); err != nil {
		return nil, err
	}
	return c.do(ctx, token, c.transfer(op, http.MethodPost, activationPath(opts.EndpointID, "autoactivate"), nil))
}

// Deactivate drops the endpoint's activation. An endpoint that is not active
// reports "NotActivated"; an unknown endpoint reports "ClientError.NotFound".
func (c *Client) Deactivate(ctx context.Context, token string, opts EndpointOptions) (*Result, error) {
	const op = "Deactivate"
	if err := opts.validate(op); err != nil {
		return nil, err
	}
	return c.do(ctx, token, c.transfer(op, http.MethodPost, activationPath(opts.EndpointID, "deactivate"), nil))
}
