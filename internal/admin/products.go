package admin

import (
	"context"

	"backoffice/internal/cache"
	"backoffice/internal/forms"
	"backoffice/internal/models"
)

// Products returns the products matching filter.
func (a *Admin) Products(ctx context.Context, filter models.ProductFilter) ([]models.Product, error) {
	key := cache.KeyFor(models.ResourceProducts, filter.Values())
	return cache.Query(ctx, a.cache, key, func(ctx context.Context) ([]models.Product, error) {
		return a.client.ListProducts(ctx, filter)
	})
}

// Product returns one product with its orders.
func (a *Admin) Product(ctx context.Context, id int64) (*models.Product, error) {
	return cache.Query(ctx, a.cache, itemKey(models.ResourceProducts, id), func(ctx context.Context) (*models.Product, error) {
		return a.client.GetProduct(ctx, id)
	})
}

// CreateProduct submits a new product.
func (a *Admin) CreateProduct(ctx context.Context, d *forms.ProductDraft) (*models.Product, error) {
	payload, err := d.Payload()
	if err != nil {
		return nil, err
	}
	payload.ID = 0
	created, err := a.client.CreateProduct(ctx, payload)
	if err != nil {
		return nil, err
	}
	a.invalidate(models.ResourceProducts)
	return created, nil
}

// CreateProducts submits several products in one request. Nothing is sent if any draft is invalid.
func (a *Admin) CreateProducts(ctx context.Context, drafts []*forms.ProductDraft) ([]models.Product, error) {
	payloads := make([]models.Product, 0, len(drafts))
	for _, d := range drafts {
		p, err := d.Payload()
		if err != nil {
			return nil, err
		}
		p.ID = 0
		payloads = append(payloads, p)
	}
	created, err := a.client.CreateProducts(ctx, payloads)
	if err != nil {
		return nil, err
	}
	a.invalidate(models.ResourceProducts)
	return created, nil
}

// UpdateProduct replaces the product the draft was started from.
func (a *Admin) UpdateProduct(ctx context.Context, d *forms.ProductDraft) (*models.Product, error) {
	if d.ID == 0 {
		return nil, ErrMissingID
	}
	payload, err := d.Payload()
	if err != nil {
		return nil, err
	}
	updated, err := a.client.UpdateProduct(ctx, d.ID, payload)
	if err != nil {
		return nil, err
	}
	a.invalidate(models.ResourceProducts)
	return updated, nil
}

// DeleteProduct removes a product. Orders containing it lose it.
func (a *Admin) DeleteProduct(ctx context.Context, id int64) error {
	if err := a.client.DeleteProduct(ctx, id); err != nil {
		return err
	}
	a.invalidate(models.ResourceProducts)
	return nil
}
