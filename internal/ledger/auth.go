package ledger

import (
	"context"
	"net/http"

	"github.com/hance08/teller/internal/model"
)

type authRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login exchanges staff credentials for a session.
func (c *Client) Login(ctx context.Context, username, password string) (*model.Credentials, error) {
	return c.authenticate(ctx, "/auth/login", "login", username, password)
}

// Register creates a staff user and returns its session.
func (c *Client) Register(ctx context.Context, username, password string) (*model.Credentials, error) {
	return c.authenticate(ctx, "/auth/register", "signup", username, password)
}

func (c *Client) authenticate(ctx context.Context, path, op, username, password string) (*model.Credentials, error) {
	resp, err := c.Do(ctx, path, Request{
		Method: http.MethodPost,
		Body:   authRequest{Username: username, Password: password},
	})
	if err != nil {
		return nil, err
	}

	obj := asObject(resp.Data)
	access, _ := obj["accessToken"].(string)
	if access == "" {
		return nil, rejection(op, resp)
	}
	refresh, _ := obj["refreshToken"].(string)

	return &model.Credentials{AccessToken: access, RefreshToken: refresh}, nil
}
