package ledger

import (
	"context"
	"net/http"
)

// DailyReport requests the rendered daily report.
func (c *Client) DailyReport(ctx context.Context) (*Artifact, error) {
	return c.report(ctx, "/reports/daily", "generate report")
}

// SendDailyReport requests the daily report and asks the ledger to deliver a
// copy to the HR recipient.
func (c *Client) SendDailyReport(ctx context.Context) (*Artifact, error) {
	return c.report(ctx, "/reports/daily/send", "send report")
}

func (c *Client) report(ctx context.Context, path, op string) (*Artifact, error) {
	resp, err := c.Do(ctx, path, Request{Method: http.MethodGet, Kind: KindBinary})
	if err != nil {
		return nil, err
	}
	if resp.Artifact == nil {
		return nil, rejection(op, resp)
	}
	return resp.Artifact, nil
}
