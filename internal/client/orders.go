package client

import (
	"context"
	"net/url"
	"strconv"

	"backoffice/internal/models"
)

// ListOrders fetches all orders.
func (c *Client) ListOrders(ctx context.Context) ([]models.Order, error) {
	return list[models.Order](ctx, c, models.ResourceOrders, nil)
}

// ListOrdersByAccount fetches the orders placed by one account.
func (c *Client) ListOrdersByAccount(ctx context.Context, accountID int64) ([]models.Order, error) {
	query := url.Values{"accountId": []string{strconv.FormatInt(accountID, 10)}}
	return list[models.Order](ctx, c, models.ResourceOrders, query)
}

// ListOrdersByProduct fetches the orders containing a product that matches filter.
// An empty filter lists all orders.
func (c *Client) ListOrdersByProduct(ctx context.Context, filter models.ProductFilter) ([]models.Order, error) {
	return list[models.Order](ctx, c, models.ResourceOrders, filter.Values())
}

// GetOrder fetches one order.
func (c *Client) GetOrder(ctx context.Context, id int64) (*models.Order, error) {
	return get[models.Order](ctx, c, models.ResourceOrders, id)
}

// CreateOrder creates an order and returns it with its assigned ID.
func (c *Client) CreateOrder(ctx context.Context, order models.Order) (*models.Order, error) {
	return create[models.Order](ctx, c, models.ResourceOrders, order)
}

// UpdateOrder replaces order id.
func (c *Client) UpdateOrder(ctx context.Context, id int64, order models.Order) (*models.Order, error) {
	return update(ctx, c, models.ResourceOrders, id, order)
}

// DeleteOrder deletes order id.
func (c *Client) DeleteOrder(ctx context.Context, id int64) error {
	return c.remove(ctx, models.ResourceOrders, id)
}
