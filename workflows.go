package client

import (
	"context"
	"fmt"
)

// Workflow helpers chain the low-level calls for common multi-step tasks.
// Each step re-reads the resource and checks its status before moving on,
// so a helper invoked against a resource already partway through its
// lifecycle picks up where it finds it.

// ProcessContractDeletion deletes a contract regardless of its current
// lifecycle state: an active contract is revised first, and a contract in
// revision or in setup is deleted directly. The returned string is a
// human-readable summary of what happened to the guid.
func (c *Client) ProcessContractDeletion(ctx context.Context, guid string) (string, error) {
	contract, err := c.LookupContract(ctx, guid, ResourceParams{})
	if err != nil {
		return "", err
	}

	if contract.ContractStatus == "Active" {
		if _, err := c.ContractAction(ctx, guid, "revise", ""); err != nil {
			return "", err
		}

		contract, err = c.LookupContract(ctx, guid, ResourceParams{})
		if err != nil {
			return "", err
		}

		c.options.requestLogger.Debugf("contract %s revised, status now %s", guid, contract.ContractStatus)
	}

	switch contract.ContractStatus {
	case "In Revision", "In Setup", "Prior Revision":
		resp, err := c.DeleteContract(ctx, guid)
		if err != nil {
			return "", err
		}

		if resp.StatusCode == 200 {
			return fmt.Sprintf("%s - successfully deleted", guid), nil
		}

		return fmt.Sprintf("%s - error - %v", guid, resp.Errors), nil
	}

	return fmt.Sprintf("%s - %s not deleted", guid, contract.ContractStatus), nil
}

// CompleteAndApproveContract takes a contract through the complete and
// approve stages of its lifecycle, using approveMessage as the approval
// comment. The final state of the contract is returned.
func (c *Client) CompleteAndApproveContract(ctx context.Context, guid, approveMessage string) (*Contract, error) {
	contract, err := c.LookupContract(ctx, guid, ResourceParams{})
	if err != nil {
		return nil, err
	}

	contractID := resultString(contract.Result, "id")
	c.options.requestLogger.Debugf("%s initial contract status is %s", contractID, contract.ContractStatus)

	switch contract.ContractStatus {
	case "In Revision", "In Setup":
		if _, err := c.ContractAction(ctx, guid, "complete", ""); err != nil {
			return nil, err
		}

		contract, err = c.LookupContract(ctx, guid, ResourceParams{})
		if err != nil {
			return nil, err
		}
	}

	if contract.ContractStatus == "Complete" {
		if _, err := c.ContractAction(ctx, guid, "approve", approveMessage); err != nil {
			return nil, err
		}

		contract, err = c.LookupContract(ctx, guid, ResourceParams{})
		if err != nil {
			return nil, err
		}
	}

	c.options.requestLogger.Debugf("%s final contract status is %s", contractID, contract.ContractStatus)

	return contract, nil
}

// CompleteApprovePostAdjustment takes an adjustment through the complete,
// approve, and post stages of its lifecycle, using approveMessage as the
// comment for the stages that require one. The final state of the
// adjustment is returned.
func (c *Client) CompleteApprovePostAdjustment(ctx context.Context, guid, approveMessage string) (*Adjustment, error) {
	adjustment, err := c.LookupAdjustment(ctx, guid, ResourceParams{})
	if err != nil {
		return nil, err
	}

	description := resultString(adjustment.Result, "description")
	c.options.requestLogger.Debugf("%s initial adjustment status is %s", description, adjustment.AdjustmentStatus)

	if adjustment.AdjustmentStatus == "In Setup" {
		if _, err := c.AdjustmentAction(ctx, guid, "complete", ""); err != nil {
			return nil, err
		}

		adjustment, err = c.LookupAdjustment(ctx, guid, ResourceParams{})
		if err != nil {
			return nil, err
		}
	}

	if adjustment.AdjustmentStatus == "Complete" {
		if _, err := c.AdjustmentAction(ctx, guid, "approve", approveMessage); err != nil {
			return nil, err
		}

		adjustment, err = c.LookupAdjustment(ctx, guid, ResourceParams{})
		if err != nil {
			return nil, err
		}
	}

	if adjustment.AdjustmentStatus == "Approved" {
		if _, err := c.AdjustmentAction(ctx, guid, "post", ""); err != nil {
			return nil, err
		}

		adjustment, err = c.LookupAdjustment(ctx, guid, ResourceParams{})
		if err != nil {
			return nil, err
		}
	}

	c.options.requestLogger.Debugf("%s final adjustment status is %s", description, adjustment.AdjustmentStatus)

	return adjustment, nil
}
