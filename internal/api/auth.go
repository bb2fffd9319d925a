package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// User is the account behind the current token.
type User struct {
	ID          ID     `json:"id"`
	Email       string `json:"email"`
	FullName    string `json:"full_name"`
	Role        string `json:"role"`
	CouncilName string `json:"council_name"`
}

// loginResponse covers both {"success", "data": {"token"}} and the OAuth2
// style {"access_token"} bodies.
type loginResponse struct {
	Success     *bool  `json:"success"`
	Message     string `json:"message"`
	AccessToken string `json:"access_token"`
	Data        *struct {
		Token string `json:"token"`
		User  *User  `json:"user"`
	} `json:"data"`
	User *User `json:"user"`
}

func (r loginResponse) token() string {
	if r.Data != nil && r.Data.Token != "" {
		return r.Data.Token
	}
	return r.AccessToken
}

func (r loginResponse) user() *User {
	if r.Data != nil && r.Data.User != nil {
		return r.Data.User
	}
	return r.User
}

// ErrNoTokenIssued is returned when a login succeeds without a token.
var ErrNoTokenIssued = errors.New("login response did not contain a token")

// Login exchanges credentials for a bearer token and stores it.
func (c *Client) Login(ctx context.Context, email, password string) (*User, error) {
	body := map[string]string{"email": email, "password": password}

	var resp loginResponse
	if err := c.post(ctx, "login", "/auth/login", body, &resp, nil); err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	if resp.Success != nil && !*resp.Success {
		return nil, fmt.Errorf("login: %w", &APIError{Status: http.StatusOK, Message: resp.Message})
	}

	token := resp.token()
	if token == "" {
		return nil, ErrNoTokenIssued
	}
	if c.tokens != nil {
		if err := c.tokens.SetToken(token); err != nil {
			return nil, fmt.Errorf("store token: %w", err)
		}
	}
	return resp.user(), nil
}

// Logout ends the session on the server and always clears the stored token.
// A server-side failure is returned after the token is cleared.
func (c *Client) Logout(ctx context.Context) error {
	err := c.post(ctx, "logout", "/auth/logout", nil, nil, nil)
	if c.tokens != nil {
		if clearErr := c.tokens.Clear(); clearErr != nil {
			return fmt.Errorf("clear token: %w", clearErr)
		}
	}
	if err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

// CurrentUser returns the account behind the stored token.
func (c *Client) CurrentUser(ctx context.Context) (*User, error) {
	var raw json.RawMessage
	if err := c.get(ctx, "current_user", "/users/me", &raw); err != nil {
		return nil, fmt.Errorf("get current user: %w", err)
	}

	var env struct {
		User *User `json:"user"`
		Data *User `json:"data"`
	}
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("parse current user: %w", err)
	}
	switch {
	case env.User != nil:
		return env.User, nil
	case env.Data != nil:
		return env.Data, nil
	}

	var u User
	if err := json.Unmarshal(raw, &u); err != nil {
		return nil, fmt.Errorf("parse current user: %w", err)
	}
	return &u, nil
}
