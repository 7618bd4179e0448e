package admin

import (
	"context"

	"backoffice/internal/cache"
	"backoffice/internal/forms"
	"backoffice/internal/models"
)

// Accounts returns all accounts.
func (a *Admin) Accounts(ctx context.Context) ([]models.Account, error) {
	return cache.Query(ctx, a.cache, cache.KeyFor(models.ResourceAccounts, nil), a.client.ListAccounts)
}

// Account returns one account with its orders and products.
func (a *Admin) Account(ctx context.Context, id int64) (*models.Account, error) {
	return cache.Query(ctx, a.cache, itemKey(models.ResourceAccounts, id), func(ctx context.Context) (*models.Account, error) {
		return a.client.GetAccount(ctx, id)
	})
}

// CreateAccount validates d and submits it as a new account.
func (a *Admin) CreateAccount(ctx context.Context, d *forms.AccountDraft) (*models.Account, error) {
	payload, err := d.Payload()
	if err != nil {
		return nil, err
	}
	payload.ID = 0
	created, err := a.client.CreateAccount(ctx, payload)
	if err != nil {
		return nil, err
	}
	a.invalidate(models.ResourceAccounts)
	return created, nil
}

// UpdateAccount validates d and replaces the account it was started from.
func (a *Admin) UpdateAccount(ctx context.Context, d *forms.AccountDraft) (*models.Account, error) {
	if d.ID == 0 {
		return nil, ErrMissingID
	}
	payload, err := d.Payload()
	if err != nil {
		return nil, err
	}
	updated, err := a.client.UpdateAccount(ctx, d.ID, payload)
	if err != nil {
		return nil, err
	}
	a.invalidate(models.ResourceAccounts)
	return updated, nil
}

// DeleteAccount removes an account together with its orders.
func (a *Admin) DeleteAccount(ctx context.Context, id int64) error {
	if err := a.client.DeleteAccount(ctx, id); err != nil {
		return err
	}
	a.invalidate(models.ResourceAccounts)
	// The server cascades to the account's orders, which products embed.
	a.invalidate(models.ResourceOrders)
	return nil
}
