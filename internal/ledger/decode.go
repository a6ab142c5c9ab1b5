package ledger

import (
	"encoding/json"
	"fmt"

	"github.com/hance08/teller/internal/model"
	"github.com/hance08/teller/internal/utils"
)

func asObject(data any) map[string]any {
	obj, ok := data.(map[string]any)
	if !ok {
		return map[string]any{}
	}
	return obj
}

// messageOf extracts the human readable reason from a ledger payload.
func messageOf(data any) string {
	obj := asObject(data)
	for _, key := range []string{"message", "error"} {
		if s, ok := obj[key].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

func rejection(op string, resp *Response) *RejectionError {
	return &RejectionError{Op: op, Status: resp.Status, Message: messageOf(resp.Data)}
}

// convert re-encodes a generic payload into a typed value.
func convert(data any, out any) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("unexpected payload shape: %w", err)
	}
	return nil
}

// accountField decodes obj[key] into an account. A missing or null field
// returns nil without error.
func accountField(obj map[string]any, key string) (*model.Account, error) {
	v, ok := obj[key]
	if !ok || v == nil {
		return nil, nil
	}
	var acc model.Account
	if err := convert(v, &acc); err != nil {
		return nil, err
	}
	return &acc, nil
}

func transactionFrom(item map[string]any) model.Transaction {
	return model.Transaction{
		ID:          utils.CoerceID(item["id"]),
		AccountID:   utils.CoerceID(item["account_id"]),
		Type:        utils.CoerceString(item["type"]),
		Amount:      utils.Coerce(item["amount"]),
		Description: utils.CoerceString(item["description"]),
		CreatedAt:   utils.CoerceTime(item["created_at"]),
	}
}

// FeedItems converts a recent-transactions payload into feed rows. ok is
// false when the payload is not a list.
func FeedItems(data any) (items []model.FeedItem, ok bool) {
	list, ok := data.([]any)
	if !ok {
		return nil, false
	}

	items = make([]model.FeedItem, 0, len(list))
	for _, raw := range list {
		obj, isObj := raw.(map[string]any)
		if !isObj {
			continue
		}
		items = append(items, model.FeedItem{
			Transaction:   transactionFrom(obj),
			FirstName:     utils.CoerceString(obj["first_name"]),
			LastName:      utils.CoerceString(obj["last_name"]),
			AccountNumber: utils.CoerceString(obj["account_number"]),
		})
	}
	return items, true
}
