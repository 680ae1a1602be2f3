package client

import (
	"context"
	"fmt"
	"net/http"
)

// User transaction characteristic endpoints live at /data/user<N>, where N
// identifies the characteristic (1-20).

// LookupUserXCollection fetches a page of user transaction characteristic
// records.
func (c *Client) LookupUserXCollection(ctx context.Context, tcNumber string, params CollectionParams) (*Collection, error) {
	lr := newLogicalRequest(http.MethodGet, c.userXURLBase+tcNumber, params.QueryString(), nil)

	resp, err := c.send(ctx, lr)
	if err != nil {
		return nil, err
	}

	return newCollection(resp, c.options.requestLogger), nil
}

// LookupUserXWithFilter fetches the user transaction characteristic records
// matching filterField eq filterValue at the given verbosity (server
// default depth when empty).
func (c *Client) LookupUserXWithFilter(ctx context.Context, tcNumber, filterField, filterValue, verbosity string) (*Collection, error) {
	return c.LookupUserXCollection(ctx, tcNumber, eqFilterVerbosity(filterField, filterValue, verbosity))
}

// LookupUserXGUIDWithFilter is a fast route to the guid of a user
// transaction characteristic record matching filterField eq filterValue.
func (c *Client) LookupUserXGUIDWithFilter(ctx context.Context, tcNumber, filterField, filterValue string) (string, error) {
	coll, err := c.LookupUserXCollection(ctx, tcNumber, eqFilter(filterField, filterValue))
	if err != nil {
		return "", err
	}

	return firstGUID(coll, fmt.Sprintf("user%s with %s eq %q", tcNumber, filterField, filterValue))
}

// LookupUserX fetches a single user transaction characteristic record by
// guid.
func (c *Client) LookupUserX(ctx context.Context, tcNumber, guid string, params ResourceParams) (*Response, error) {
	lr := newLogicalRequest(http.MethodGet, c.userXURLBase+tcNumber+"/"+guid, params.QueryString(), nil)

	resp, err := c.send(ctx, lr)
	if err != nil {
		return nil, err
	}

	return newResponse(resp, c.options.requestLogger), nil
}

// PatchUserX applies a partial update to a user transaction characteristic
// record. The body carries only the fields to change.
func (c *Client) PatchUserX(ctx context.Context, tcNumber, guid string, body any, params ResourceParams) (*Response, error) {
	lr := newLogicalRequest(http.MethodPut, c.userXURLBase+tcNumber+"/"+guid, params.QueryString(), body)

	resp, err := c.send(ctx, lr)
	if err != nil {
		return nil, err
	}

	return newResponse(resp, c.options.requestLogger), nil
}

// CreateUserX creates a user transaction characteristic record.
func (c *Client) CreateUserX(ctx context.Context, tcNumber string, body any, params ResourceParams) (*Response, error) {
	lr := newLogicalRequest(http.MethodPost, c.userXURLBase+tcNumber, params.QueryString(), body)

	resp, err := c.send(ctx, lr)
	if err != nil {
		return nil, err
	}

	return newResponse(resp, c.options.requestLogger), nil
}

// LookupAdjustmentCollection fetches a page of adjustment headers.
func (c *Client) LookupAdjustmentCollection(ctx context.Context, params CollectionParams) (*Collection, error) {
	lr := newLogicalRequest(http.MethodGet, c.adjustmentHeadersURL, params.QueryString(), nil)

	resp, err := c.send(ctx, lr)
	if err != nil {
		return nil, err
	}

	return newCollection(resp, c.options.requestLogger), nil
}

// LookupAdjustmentWithFilter fetches the adjustment headers matching
// filterField eq filterValue at the given verbosity (server default depth
// when empty).
func (c *Client) LookupAdjustmentWithFilter(ctx context.Context, filterField, filterValue, verbosity string) (*Collection, error) {
	return c.LookupAdjustmentCollection(ctx, eqFilterVerbosity(filterField, filterValue, verbosity))
}

// LookupAdjustmentGUIDWithFilter is a fast route to the guid of an
// adjustment header matching filterField eq filterValue.
func (c *Client) LookupAdjustmentGUIDWithFilter(ctx context.Context, filterField, filterValue string) (string, error) {
	coll, err := c.LookupAdjustmentCollection(ctx, eqFilter(filterField, filterValue))
	if err != nil {
		return "", err
	}

	return firstGUID(coll, fmt.Sprintf("adjustment with %s eq %q", filterField, filterValue))
}

// LookupAdjustment fetches a single adjustment header by guid.
func (c *Client) LookupAdjustment(ctx context.Context, guid string, params ResourceParams) (*Adjustment, error) {
	lr := newLogicalRequest(http.MethodGet, c.adjustmentHeadersURL+"/"+guid, params.QueryString(), nil)

	resp, err := c.send(ctx, lr)
	if err != nil {
		return nil, err
	}

	return newAdjustment(resp, c.options.requestLogger), nil
}

// DeleteAdjustment deletes an adjustment header by guid.
func (c *Client) DeleteAdjustment(ctx context.Context, guid string) (*Response, error) {
	lr := newLogicalRequest(http.MethodDelete, c.adjustmentHeadersURL+"/"+guid, "", nil)

	resp, err := c.send(ctx, lr)
	if err != nil {
		return nil, err
	}

	return newResponse(resp, c.options.requestLogger), nil
}

// LookupContractCollection fetches a page of contracts.
func (c *Client) LookupContractCollection(ctx context.Context, params CollectionParams) (*Collection, error) {
	lr := newLogicalRequest(http.MethodGet, c.contractsURL, params.QueryString(), nil)

	resp, err := c.send(ctx, lr)
	if err != nil {
		return nil, err
	}

	return newCollection(resp, c.options.requestLogger), nil
}

// LookupContractWithFilter fetches the contracts matching filterField eq
// filterValue at the given verbosity (server default depth when empty).
func (c *Client) LookupContractWithFilter(ctx context.Context, filterField, filterValue, verbosity string) (*Collection, error) {
	return c.LookupContractCollection(ctx, eqFilterVerbosity(filterField, filterValue, verbosity))
}

// LookupContractGUIDWithFilter is a fast route to the guid of a contract
// matching filterField eq filterValue.
func (c *Client) LookupContractGUIDWithFilter(ctx context.Context, filterField, filterValue string) (string, error) {
	coll, err := c.LookupContractCollection(ctx, eqFilter(filterField, filterValue))
	if err != nil {
		return "", err
	}

	return firstGUID(coll, fmt.Sprintf("contract with %s eq %q", filterField, filterValue))
}

// LookupContract fetches a single contract by guid.
func (c *Client) LookupContract(ctx context.Context, guid string, params ResourceParams) (*Contract, error) {
	lr := newLogicalRequest(http.MethodGet, c.contractsURL+"/"+guid, params.QueryString(), nil)

	resp, err := c.send(ctx, lr)
	if err != nil {
		return nil, err
	}

	return newContract(resp, c.options.requestLogger), nil
}

// DeleteContract deletes a contract by guid. The server accepts the delete
// only while the contract is in revision or in setup; see
// [Client.ProcessContractDeletion] for the workflow that revises an active
// contract first.
func (c *Client) DeleteContract(ctx context.Context, guid string) (*Response, error) {
	lr := newLogicalRequest(http.MethodDelete, c.contractsURL+"/"+guid, "", nil)

	resp, err := c.send(ctx, lr)
	if err != nil {
		return nil, err
	}

	return newResponse(resp, c.options.requestLogger), nil
}

// LookupContactCollection fetches a page of contacts.
func (c *Client) LookupContactCollection(ctx context.Context, params CollectionParams) (*Collection, error) {
	lr := newLogicalRequest(http.MethodGet, c.contactsURL, params.QueryString(), nil)

	resp, err := c.send(ctx, lr)
	if err != nil {
		return nil, err
	}

	return newCollection(resp, c.options.requestLogger), nil
}

// LookupContactWithFilter fetches the contacts matching filterField eq
// filterValue at the given verbosity (server default depth when empty).
func (c *Client) LookupContactWithFilter(ctx context.Context, filterField, filterValue, verbosity string) (*Collection, error) {
	return c.LookupContactCollection(ctx, eqFilterVerbosity(filterField, filterValue, verbosity))
}

// LookupContactGUIDWithFilter is a fast route to the guid of a contact
// matching filterField eq filterValue.
func (c *Client) LookupContactGUIDWithFilter(ctx context.Context, filterField, filterValue string) (string, error) {
	coll, err := c.LookupContactCollection(ctx, eqFilter(filterField, filterValue))
	if err != nil {
		return "", err
	}

	return firstGUID(coll, fmt.Sprintf("contact with %s eq %q", filterField, filterValue))
}

// LookupContact fetches a single contact by guid.
func (c *Client) LookupContact(ctx context.Context, guid string, params ResourceParams) (*Response, error) {
	lr := newLogicalRequest(http.MethodGet, c.contactsURL+"/"+guid, params.QueryString(), nil)

	resp, err := c.send(ctx, lr)
	if err != nil {
		return nil, err
	}

	return newResponse(resp, c.options.requestLogger), nil
}

// DeleteContact deletes a contact by guid.
func (c *Client) DeleteContact(ctx context.Context, guid string) (*Response, error) {
	lr := newLogicalRequest(http.MethodDelete, c.contactsURL+"/"+guid, "", nil)

	resp, err := c.send(ctx, lr)
	if err != nil {
		return nil, err
	}

	return newResponse(resp, c.options.requestLogger), nil
}

// ResetMetadata invalidates the server-side metadata cache.
func (c *Client) ResetMetadata(ctx context.Context) (*Response, error) {
	lr := newLogicalRequest(http.MethodPost, c.metadataResetURL, "", nil)

	resp, err := c.send(ctx, lr)
	if err != nil {
		return nil, err
	}

	return newResponse(resp, c.options.requestLogger), nil
}

func firstGUID(coll *Collection, what string) (string, error) {
	if len(coll.GUIDs) == 0 {
		return "", fmt.Errorf("no %s found", what)
	}

	return coll.GUIDs[0], nil
}
