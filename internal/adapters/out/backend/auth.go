package backend

import (
	"context"
	"net/http"

	"dashboard/internal/core/domain/model/account"
	"dashboard/internal/core/domain/model/kernel"
)

const (
	pathLogin = "/api/login"
	pathUser  = "/api/users/{id}"
)

// Login exchanges credentials for a user and bearer token. It is the only
// call sent without a token.
func (c *Client) Login(ctx context.Context, credentials account.Credentials) (account.User, string, error) {
	var resp loginResponse
	req := request{
		method: http.MethodPost,
		path:   pathLogin,
		body:   loginRequest{Email: credentials.Email, Password: credentials.Password},
		schema: schemaLogin,
		public: true,
	}
	if err := c.do(ctx, req, &resp); err != nil {
		return account.User{}, "", err
	}
	return resp.Data.toDomain(), resp.Token, nil
}

// GetUser fetches one platform user.
func (c *Client) GetUser(ctx context.Context, id kernel.ID) (account.User, error) {
	path, err := pathWithID(pathUser, id)
	if err != nil {
		return account.User{}, err
	}

	var resp userResponse
	if err = c.do(ctx, request{method: http.MethodGet, path: path, schema: schemaUser}, &resp); err != nil {
		return account.User{}, err
	}
	return resp.Data.toDomain(), nil
}
