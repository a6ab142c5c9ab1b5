package ledger

import "context"

// Stats returns the raw statistics object. Field values are left untouched;
// callers coerce them.
func (c *Client) Stats(ctx context.Context) (map[string]any, error) {
	resp, err := c.Do(ctx, "/stats", Request{})
	if err != nil {
		return nil, err
	}
	return asObject(resp.Data), nil
}

// RecentTransactions returns the raw feed payload, which is expected but not
// guaranteed to be a list.
func (c *Client) RecentTransactions(ctx context.Context) (any, error) {
	resp, err := c.Do(ctx, "/accounts/recent/all", Request{})
	if err != nil {
		return nil, err
	}
	return resp.Data, nil
}
