package ledger

import (
	"context"
	"fmt"
	"net/http"

	"github.com/hance08/teller/internal/model"
)

// ListCustomers accepts either a bare list or an object wrapping it under
// "customers".
func (c *Client) ListCustomers(ctx context.Context) ([]model.Customer, error) {
	resp, err := c.Do(ctx, "/customers", Request{})
	if err != nil {
		return nil, err
	}

	payload := resp.Data
	if _, isList := payload.([]any); !isList {
		wrapped, ok := asObject(payload)["customers"]
		if !ok {
			if msg := messageOf(payload); msg != "" {
				return nil, rejection("list customers", resp)
			}
			return []model.Customer{}, nil
		}
		payload = wrapped
	}

	var customers []model.Customer
	if err := convert(payload, &customers); err != nil {
		return nil, &TransportError{Op: http.MethodGet, Path: "/customers", Err: err}
	}
	if customers == nil {
		customers = []model.Customer{}
	}
	return customers, nil
}

func (c *Client) CreateCustomer(ctx context.Context, in model.CustomerInput) (*model.Customer, error) {
	resp, err := c.Do(ctx, "/customers", Request{Method: http.MethodPost, Body: in})
	if err != nil {
		return nil, err
	}

	v, ok := asObject(resp.Data)["customer"]
	if !ok || v == nil {
		return nil, rejection("create customer", resp)
	}

	var customer model.Customer
	if err := convert(v, &customer); err != nil {
		return nil, &TransportError{Op: http.MethodPost, Path: "/customers", Err: err}
	}
	return &customer, nil
}

// CustomerAccounts returns the customer record together with its accounts.
func (c *Client) CustomerAccounts(ctx context.Context, customerID int64) (*model.Customer, error) {
	path := fmt.Sprintf("/customers/%d/accounts", customerID)
	resp, err := c.Do(ctx, path, Request{})
	if err != nil {
		return nil, err
	}

	obj, ok := resp.Data.(map[string]any)
	if !ok || (obj["id"] == nil && obj["accounts"] == nil) {
		return nil, rejection("load accounts", resp)
	}

	var customer model.Customer
	if err := convert(obj, &customer); err != nil {
		return nil, &TransportError{Op: http.MethodGet, Path: path, Err: err}
	}
	if customer.ID == 0 {
		customer.ID = customerID
	}
	return &customer, nil
}
