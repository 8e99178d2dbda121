// Package session resolves the signed-in user whose admin flag gates the
// delete control. The flag is display-only; the server re-checks every call.
package session

import (
	"context"
	"fmt"
	"net/http"

	jwt "github.com/golang-jwt/jwt/v5"

	"deptdash/internal/apiclient"
)

// UserInfo is the login response and the session the screen reads.
type UserInfo struct {
	ID      string `json:"_id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"isAdmin"`
	Token   string `json:"token"`
}

// Anonymous returns a non-admin session with no token.
func Anonymous() *UserInfo {
	return &UserInfo{Name: "anonymous"}
}

// Claims is the JWT payload issued by the department API.
type Claims struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"isAdmin"`
	jwt.RegisteredClaims
}

// FromToken decodes a token's claims without verifying its signature.
func FromToken(token string) (*UserInfo, error) {
	var claims Claims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return nil, fmt.Errorf("decode token: %w", err)
	}
	return &UserInfo{
		ID:      claims.Subject,
		Name:    claims.Name,
		Email:   claims.Email,
		IsAdmin: claims.IsAdmin,
		Token:   token,
	}, nil
}

// Client signs users in against the API.
type Client struct {
	api *apiclient.Client
}

// NewClient wraps an apiclient transport.
func NewClient(api *apiclient.Client) *Client {
	return &Client{api: api}
}

// Login exchanges credentials for a UserInfo and installs its token on the
// shared transport.
func (c *Client) Login(ctx context.Context, email, password string) (*UserInfo, error) {
	body := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{Email: email, Password: password}

	var info UserInfo
	if err := c.api.Do(ctx, "user.login", http.MethodPost, "/api/users/login", body, &info); err != nil {
		return nil, err
	}
	c.api.SetToken(info.Token)
	return &info, nil
}

// Credentials are the inputs Resolve chooses from.
type Credentials struct {
	Email    string
	Password string
	Token    string
}

// Resolve picks the session: login when credentials are set, else the
// configured token, else an anonymous user.
func (c *Client) Resolve(ctx context.Context, creds Credentials) (*UserInfo, error) {
	switch {
	case creds.Email != "" && creds.Password != "":
		return c.Login(ctx, creds.Email, creds.Password)
	case creds.Token != "":
		info, err := FromToken(creds.Token)
		if err != nil {
			return nil, err
		}
		c.api.SetToken(creds.Token)
		return info, nil
	default:
		return Anonymous(), nil
	}
}
