package client

import (
	"context"
	"fmt"
	"net/http"
	"slices"
)

// Lifecycle actions are state-transition commands on a resource, distinct
// from plain CRUD. Each resource type has a fixed allow-list, and a subset
// of actions must carry a comment. Both checks are local and run before any
// network call.
var (
	adjustmentActions        = []string{"approve", "clear", "clearRequest", "copy", "insetup", "post", "complete"}
	adjustmentCommentActions = []string{"approve", "clearRequest"}

	contractActions        = []string{"approve", "complete", "copy", "insetup", "model", "resolve", "revise"}
	contractCommentActions = []string{"approve"}
)

func validateLifecycleAction(available, requireComment []string, action, comment string) error {
	if !slices.Contains(available, action) {
		return fmt.Errorf("%w: %q, available actions are %v", ErrActionNotImplemented, action, available)
	}

	if slices.Contains(requireComment, action) && comment == "" {
		return fmt.Errorf("%w: actions %v require a comment", ErrCommentRequired, requireComment)
	}

	return nil
}

// lifecycleAction issues PUT /data/<resource>/<action>/<guid>, with a
// {"comment": ...} body when the action carries one.
func (c *Client) lifecycleAction(ctx context.Context, resourceURL, guid, action, comment string) (*Response, error) {
	var body any
	if comment != "" {
		body = map[string]string{"comment": comment}
	}

	lr := newLogicalRequest(http.MethodPut, resourceURL+"/"+action+"/"+guid, "", body)

	resp, err := c.send(ctx, lr)
	if err != nil {
		return nil, err
	}

	return newResponse(resp, c.options.requestLogger), nil
}

// AdjustmentAction performs a lifecycle action on an adjustment header.
// Available actions are approve, clear, clearRequest, copy, insetup, post,
// and complete; approve and clearRequest require a comment. An action
// outside the allow-list fails with [ErrActionNotImplemented], and a
// comment-requiring action without a comment fails with
// [ErrCommentRequired], in both cases before any request is sent.
func (c *Client) AdjustmentAction(ctx context.Context, guid, action, comment string) (*Response, error) {
	if err := validateLifecycleAction(adjustmentActions, adjustmentCommentActions, action, comment); err != nil {
		return nil, err
	}

	return c.lifecycleAction(ctx, c.adjustmentHeadersURL, guid, action, comment)
}

// ContractAction performs a lifecycle action on a contract. Available
// actions are approve, complete, copy, insetup, model, resolve, and revise;
// approve requires a comment. Validation failures are reported before any
// request is sent, as for [Client.AdjustmentAction].
func (c *Client) ContractAction(ctx context.Context, guid, action, comment string) (*Response, error) {
	if err := validateLifecycleAction(contractActions, contractCommentActions, action, comment); err != nil {
		return nil, err
	}

	return c.lifecycleAction(ctx, c.contractsURL, guid, action, comment)
}
