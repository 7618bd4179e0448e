// Package admin is the back-office facade: reads are served through the cache,
// writes go through the client and invalidate every resource they affect.
package admin

import (
	"context"
	"errors"
	"net/url"
	"strconv"

	"backoffice/internal/cache"
	"backoffice/internal/models"
	"backoffice/internal/views"
)

// ErrMissingID is returned when updating a draft that was not started from an existing entity.
var ErrMissingID = errors.New("admin: draft has no id")

// Client is the REST surface the facade needs. *client.Client implements it.
type Client interface {
	ListProducts(ctx context.Context, filter models.ProductFilter) ([]models.Product, error)
	GetProduct(ctx context.Context, id int64) (*models.Product, error)
	CreateProduct(ctx context.Context, product models.Product) (*models.Product, error)
	CreateProducts(ctx context.Context, products []models.Product) ([]models.Product, error)
	UpdateProduct(ctx context.Context, id int64, product models.Product) (*models.Product, error)
	DeleteProduct(ctx context.Context, id int64) error

	ListAccounts(ctx context.Context) ([]models.Account, error)
	GetAccount(ctx context.Context, id int64) (*models.Account, error)
	CreateAccount(ctx context.Context, account models.Account) (*models.Account, error)
	UpdateAccount(ctx context.Context, id int64, account models.Account) (*models.Account, error)
	DeleteAccount(ctx context.Context, id int64) error

	ListOrders(ctx context.Context) ([]models.Order, error)
	ListOrdersByAccount(ctx context.Context, accountID int64) ([]models.Order, error)
	ListOrdersByProduct(ctx context.Context, filter models.ProductFilter) ([]models.Order, error)
	GetOrder(ctx context.Context, id int64) (*models.Order, error)
	CreateOrder(ctx context.Context, order models.Order) (*models.Order, error)
	UpdateOrder(ctx context.Context, id int64, order models.Order) (*models.Order, error)
	DeleteOrder(ctx context.Context, id int64) error
}

// Admin coordinates the client and the cache. The cache is owned by the caller.
type Admin struct {
	client Client
	cache  *cache.Cache
}

// New creates a facade over client and c.
func New(client Client, c *cache.Cache) *Admin {
	return &Admin{client: client, cache: c}
}

func itemKey(resource models.Resource, id int64) cache.Key {
	return cache.KeyFor(resource, url.Values{"id": {strconv.FormatInt(id, 10)}})
}

// invalidate marks resource and everything embedding it stale.
func (a *Admin) invalidate(resource models.Resource) {
	a.cache.InvalidateResource(resource.Related()...)
}

// ProductList returns a list view over the products matching filter.
func (a *Admin) ProductList(filter models.ProductFilter) *views.ListView[models.Product] {
	return views.NewProductList(func(ctx context.Context) ([]models.Product, error) {
		return a.Products(ctx, filter)
	})
}

// AccountList returns a list view over all accounts.
func (a *Admin) AccountList() *views.ListView[models.Account] {
	return views.NewAccountList(a.Accounts)
}

// OrderList returns a list view over all orders.
func (a *Admin) OrderList() *views.ListView[models.Order] {
	return views.NewOrderList(a.Orders)
}
