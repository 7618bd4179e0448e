package client

import (
	"context"
	"net/http"

	"backoffice/internal/models"
)

// ListProducts fetches the products matching filter. An empty filter lists all products.
func (c *Client) ListProducts(ctx context.Context, filter models.ProductFilter) ([]models.Product, error) {
	return list[models.Product](ctx, c, models.ResourceProducts, filter.Values())
}

// GetProduct fetches one product.
func (c *Client) GetProduct(ctx context.Context, id int64) (*models.Product, error) {
	return get[models.Product](ctx, c, models.ResourceProducts, id)
}

// CreateProduct creates a product and returns it with its assigned ID.
func (c *Client) CreateProduct(ctx context.Context, product models.Product) (*models.Product, error) {
	return create[models.Product](ctx, c, models.ResourceProducts, product)
}

// CreateProducts creates several products in one call.
func (c *Client) CreateProducts(ctx context.Context, products []models.Product) ([]models.Product, error) {
	created := []models.Product{}
	r := request{op: OpCreate, resource: models.ResourceProducts, suffix: "/bulk", method: http.MethodPost, body: products}
	if err := c.do(ctx, r, &created); err != nil {
		return nil, err
	}
	return created, nil
}

// UpdateProduct replaces product id.
func (c *Client) UpdateProduct(ctx context.Context, id int64, product models.Product) (*models.Product, error) {
	return update(ctx, c, models.ResourceProducts, id, product)
}

// DeleteProduct deletes product id.
func (c *Client) DeleteProduct(ctx context.Context, id int64) error {
	return c.remove(ctx, models.ResourceProducts, id)
}
