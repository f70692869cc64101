package backend

import (
	"context"
	"net/http"
)

const (
	pathCategories = "/api/categories"
	pathFoods      = "/api/foods/fetchAllFoods"
	pathUsers      = "/api/users"
)

func (c *Client) CountCategories(ctx context.Context) (int, error) {
	return c.count(ctx, pathCategories)
}

func (c *Client) CountFoods(ctx context.Context) (int, error) {
	return c.count(ctx, pathFoods)
}

func (c *Client) CountUsers(ctx context.Context) (int, error) {
	return c.count(ctx, pathUsers)
}

func (c *Client) count(ctx context.Context, path string) (int, error) {
	var resp collectionResponse
	if err := c.do(ctx, request{method: http.MethodGet, path: path, schema: schemaCollection}, &resp); err != nil {
		return 0, err
	}
	return len(resp.Data), nil
}
