package admin

import (
	"context"
	"net/url"
	"strconv"

	"backoffice/internal/cache"
	"backoffice/internal/forms"
	"backoffice/internal/models"
)

// Orders returns all orders.
func (a *Admin) Orders(ctx context.Context) ([]models.Order, error) {
	return cache.Query(ctx, a.cache, cache.KeyFor(models.ResourceOrders, nil), a.client.ListOrders)
}

// OrdersByAccount returns the orders placed by one account.
func (a *Admin) OrdersByAccount(ctx context.Context, accountID int64) ([]models.Order, error) {
	key := cache.KeyFor(models.ResourceOrders, url.Values{"accountId": {strconv.FormatInt(accountID, 10)}})
	return cache.Query(ctx, a.cache, key, func(ctx context.Context) ([]models.Order, error) {
		return a.client.ListOrdersByAccount(ctx, accountID)
	})
}

// OrdersByProduct returns the orders containing a product that matches filter.
func (a *Admin) OrdersByProduct(ctx context.Context, filter models.ProductFilter) ([]models.Order, error) {
	if filter.IsZero() {
		return a.Orders(ctx)
	}
	return cache.Query(ctx, a.cache, cache.KeyFor(models.ResourceOrders, filter.Values()), func(ctx context.Context) ([]models.Order, error) {
		return a.client.ListOrdersByProduct(ctx, filter)
	})
}

// Order returns one order with its account and products.
func (a *Admin) Order(ctx context.Context, id int64) (*models.Order, error) {
	return cache.Query(ctx, a.cache, itemKey(models.ResourceOrders, id), func(ctx context.Context) (*models.Order, error) {
		return a.client.GetOrder(ctx, id)
	})
}

// NewOrderDraft starts an empty order priced against the current product catalog.
func (a *Admin) NewOrderDraft(ctx context.Context) (*forms.OrderDraft, error) {
	catalog, err := a.Products(ctx, models.ProductFilter{})
	if err != nil {
		return nil, err
	}
	return forms.NewOrderDraft(catalog), nil
}

// EditOrderDraft starts a draft from an existing order.
func (a *Admin) EditOrderDraft(ctx context.Context, id int64) (*forms.OrderDraft, error) {
	order, err := a.Order(ctx, id)
	if err != nil {
		return nil, err
	}
	catalog, err := a.Products(ctx, models.ProductFilter{})
	if err != nil {
		return nil, err
	}
	return forms.EditOrder(*order, catalog), nil
}

// orderPayload prices the draft against the current catalog and resolves its
// account against the cached accounts.
func (a *Admin) orderPayload(ctx context.Context, d *forms.OrderDraft) (models.Order, error) {
	if err := d.Validate(); err != nil {
		return models.Order{}, err
	}
	catalog, err := a.Products(ctx, models.ProductFilter{})
	if err != nil {
		return models.Order{}, err
	}
	accounts, err := a.Accounts(ctx)
	if err != nil {
		return models.Order{}, err
	}
	d.SetCatalog(catalog)
	return d.Payload(accounts)
}

// CreateOrder submits d as a new order priced from the current catalog.
func (a *Admin) CreateOrder(ctx context.Context, d *forms.OrderDraft) (*models.Order, error) {
	payload, err := a.orderPayload(ctx, d)
	if err != nil {
		return nil, err
	}
	payload.ID = 0
	created, err := a.client.CreateOrder(ctx, payload)
	if err != nil {
		return nil, err
	}
	a.invalidate(models.ResourceOrders)
	return created, nil
}

// UpdateOrder replaces the order d was started from.
func (a *Admin) UpdateOrder(ctx context.Context, d *forms.OrderDraft) (*models.Order, error) {
	if d.ID == 0 {
		return nil, ErrMissingID
	}
	payload, err := a.orderPayload(ctx, d)
	if err != nil {
		return nil, err
	}
	updated, err := a.client.UpdateOrder(ctx, d.ID, payload)
	if err != nil {
		return nil, err
	}
	a.invalidate(models.ResourceOrders)
	return updated, nil
}

// DeleteOrder removes one order.
func (a *Admin) DeleteOrder(ctx context.Context, id int64) error {
	if err := a.client.DeleteOrder(ctx, id); err != nil {
		return err
	}
	a.invalidate(models.ResourceOrders)
	return nil
}
