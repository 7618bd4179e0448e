package client

import (
	"context"

	"backoffice/internal/models"
)

// ListAccounts fetches all accounts.
func (c *Client) ListAccounts(ctx context.Context) ([]models.Account, error) {
	return list[models.Account](ctx, c, models.ResourceAccounts, nil)
}

// GetAccount fetches one account.
func (c *Client) GetAccount(ctx context.Context, id int64) (*models.Account, error) {
	return get[models.Account](ctx, c, models.ResourceAccounts, id)
}

// CreateAccount creates an account and returns it with its assigned ID.
func (c *Client) CreateAccount(ctx context.Context, account models.Account) (*models.Account, error) {
	return create[models.Account](ctx, c, models.ResourceAccounts, account)
}

// UpdateAccount replaces account id.
func (c *Client) UpdateAccount(ctx context.Context, id int64, account models.Account) (*models.Account, error) {
	return update(ctx, c, models.ResourceAccounts, id, account)
}

// DeleteAccount deletes account id and, on the server, its orders.
func (c *Client) DeleteAccount(ctx context.Context, id int64) error {
	return c.remove(ctx, models.ResourceAccounts, id)
}
