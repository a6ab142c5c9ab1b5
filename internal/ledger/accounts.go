package ledger

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/hance08/teller/internal/model"
	"github.com/shopspring/decimal"
)

// Amounts go over the wire as JSON numbers, not quoted strings.
type amountRequest struct {
	Amount json.Number `json:"amount"`
}

type createAccountRequest struct {
	CustomerID     int64       `json:"customer_id"`
	AccountType    string      `json:"account_type"`
	InitialBalance json.Number `json:"initial_balance"`
}

// TransferResult holds whichever sides of a transfer the ledger echoed back.
type TransferResult struct {
	From *model.Account
	To   *model.Account
}

func (c *Client) CreateAccount(ctx context.Context, in model.AccountInput) (*model.Account, error) {
	resp, err := c.Do(ctx, "/accounts", Request{
		Method: http.MethodPost,
		Body: createAccountRequest{
			CustomerID:     in.CustomerID,
			AccountType:    in.Type,
			InitialBalance: json.Number(in.InitialBalance.String()),
		},
	})
	if err != nil {
		return nil, err
	}
	return c.accountFrom(resp, "create account", "/accounts")
}

// Transactions returns the ledger history for one account.
func (c *Client) Transactions(ctx context.Context, accountID int64) ([]model.Transaction, error) {
	resp, err := c.Do(ctx, fmt.Sprintf("/accounts/%d/transactions", accountID), Request{})
	if err != nil {
		return nil, err
	}

	list, ok := resp.Data.([]any)
	if !ok {
		return nil, rejection("load transactions", resp)
	}

	txs := make([]model.Transaction, 0, len(list))
	for _, raw := range list {
		if obj, ok := raw.(map[string]any); ok {
			tx := transactionFrom(obj)
			if tx.AccountID == 0 {
				tx.AccountID = accountID
			}
			txs = append(txs, tx)
		}
	}
	return txs, nil
}

func (c *Client) Deposit(ctx context.Context, accountID int64, amount decimal.Decimal) (*model.Account, error) {
	return c.move(ctx, accountID, "deposit", amount)
}

func (c *Client) Withdraw(ctx context.Context, accountID int64, amount decimal.Decimal) (*model.Account, error) {
	return c.move(ctx, accountID, "withdraw", amount)
}

func (c *Client) move(ctx context.Context, accountID int64, op string, amount decimal.Decimal) (*model.Account, error) {
	path := fmt.Sprintf("/accounts/%d/%s", accountID, op)
	resp, err := c.Do(ctx, path, Request{Method: http.MethodPost, Body: amountRequest{Amount: json.Number(amount.String())}})
	if err != nil {
		return nil, err
	}
	return c.accountFrom(resp, op, path)
}

// Transfer moves amount between two accounts. A response echoing only one
// side is a success; a response echoing neither is a rejection.
func (c *Client) Transfer(ctx context.Context, fromID, toID int64, amount decimal.Decimal) (*TransferResult, error) {
	path := fmt.Sprintf("/accounts/%d/transfer/%d", fromID, toID)
	resp, err := c.Do(ctx, path, Request{Method: http.MethodPost, Body: amountRequest{Amount: json.Number(amount.String())}})
	if err != nil {
		return nil, err
	}

	obj := asObject(resp.Data)
	from, err := accountField(obj, "from_account")
	if err != nil {
		return nil, &TransportError{Op: http.MethodPost, Path: path, Err: err}
	}
	to, err := accountField(obj, "to_account")
	if err != nil {
		return nil, &TransportError{Op: http.MethodPost, Path: path, Err: err}
	}
	if from == nil && to == nil {
		return nil, rejection("transfer", resp)
	}

	return &TransferResult{From: from, To: to}, nil
}

func (c *Client) accountFrom(resp *Response, op, path string) (*model.Account, error) {
	acc, err := accountField(asObject(resp.Data), "account")
	if err != nil {
		return nil, &TransportError{Op: http.MethodPost, Path: path, Err: err}
	}
	if acc == nil {
		return nil, rejection(op, resp)
	}
	return acc, nil
}
