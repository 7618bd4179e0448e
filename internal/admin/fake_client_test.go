package admin

import (
	"context"
	"sort"
	"sync"

	"backoffice/internal/client"
	"backoffice/internal/models"
)

// fakeClient is an in-memory REST backend that counts calls per operation.
type fakeClient struct {
	mu       sync.Mutex
	calls    map[string]int
	products map[int64]models.Product
	accounts map[int64]models.Account
	orders   map[int64]models.Order
	nextID   int64
	fail     map[string]error
	received []models.Order
}

func newFakeClient() *fakeClient {
	return &fakeClient{
		calls:    make(map[string]int),
		products: make(map[int64]models.Product),
		accounts: make(map[int64]models.Account),
		orders:   make(map[int64]models.Order),
		fail:     make(map[string]error),
		nextID:   100,
	}
}

func (f *fakeClient) record(op string) error {
	f.calls[op]++
	return f.fail[op]
}

func (f *fakeClient) count(op string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[op]
}

func (f *fakeClient) total() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		n += c
	}
	return n
}

func (f *fakeClient) failOn(op string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fail[op] = err
}

func (f *fakeClient) id() int64 {
	f.nextID++
	return f.nextID
}

func notFound(op string, resource models.Resource, id int64) error {
	return &client.OperationError{Op: op, Resource: resource, ID: id, StatusCode: 404}
}

func sortedValues[T any](m map[int64]T) []T {
	keys := make([]int64, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	out := make([]T, 0, len(m))
	for _, k := range keys {
		out = append(out, m[k])
	}
	return out
}

func (f *fakeClient) ListProducts(ctx context.Context, filter models.ProductFilter) ([]models.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("ListProducts"); err != nil {
		return nil, err
	}
	var out []models.Product
	for _, p := range sortedValues(f.products) {
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		if filter.Price != nil && p.Price != *filter.Price {
			continue
		}
		out = append(out, f.withOrders(p))
	}
	return out, nil
}

// withOrders projects the stored orders containing p onto it, as the server does.
func (f *fakeClient) withOrders(p models.Product) models.Product {
	p.Orders = nil
	for _, o := range sortedValues(f.orders) {
		if containsProduct(o, p.ID) {
			p.Orders = append(p.Orders, models.Order{ID: o.ID, OrderDate: o.OrderDate, TotalPrice: o.TotalPrice})
		}
	}
	return p
}

func containsProduct(o models.Order, id int64) bool {
	for _, p := range o.Products {
		if p.ID == id {
			return true
		}
	}
	return false
}

func (f *fakeClient) GetProduct(ctx context.Context, id int64) (*models.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("GetProduct"); err != nil {
		return nil, err
	}
	p, ok := f.products[id]
	if !ok {
		return nil, notFound(client.OpGet, models.ResourceProducts, id)
	}
	p = f.withOrders(p)
	return &p, nil
}

func (f *fakeClient) CreateProduct(ctx context.Context, product models.Product) (*models.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("CreateProduct"); err != nil {
		return nil, err
	}
	product.ID = f.id()
	f.products[product.ID] = product
	return &product, nil
}

func (f *fakeClient) CreateProducts(ctx context.Context, products []models.Product) ([]models.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("CreateProducts"); err != nil {
		return nil, err
	}
	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		p.ID = f.id()
		f.products[p.ID] = p
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeClient) UpdateProduct(ctx context.Context, id int64, product models.Product) (*models.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("UpdateProduct"); err != nil {
		return nil, err
	}
	if _, ok := f.products[id]; !ok {
		return nil, notFound(client.OpUpdate, models.ResourceProducts, id)
	}
	product.ID = id
	f.products[id] = product
	return &product, nil
}

func (f *fakeClient) DeleteProduct(ctx context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("DeleteProduct"); err != nil {
		return err
	}
	if _, ok := f.products[id]; !ok {
		return notFound(client.OpDelete, models.ResourceProducts, id)
	}
	delete(f.products, id)
	return nil
}

func (f *fakeClient) ListAccounts(ctx context.Context) ([]models.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("ListAccounts"); err != nil {
		return nil, err
	}
	return sortedValues(f.accounts), nil
}

func (f *fakeClient) GetAccount(ctx context.Context, id int64) (*models.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("GetAccount"); err != nil {
		return nil, err
	}
	a, ok := f.accounts[id]
	if !ok {
		return nil, notFound(client.OpGet, models.ResourceAccounts, id)
	}
	return &a, nil
}

func (f *fakeClient) CreateAccount(ctx context.Context, account models.Account) (*models.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("CreateAccount"); err != nil {
		return nil, err
	}
	account.ID = f.id()
	f.accounts[account.ID] = account
	return &account, nil
}

func (f *fakeClient) UpdateAccount(ctx context.Context, id int64, account models.Account) (*models.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("UpdateAccount"); err != nil {
		return nil, err
	}
	account.ID = id
	f.accounts[id] = account
	return &account, nil
}

func (f *fakeClient) DeleteAccount(ctx context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("DeleteAccount"); err != nil {
		return err
	}
	delete(f.accounts, id)
	for oid, o := range f.orders {
		if o.Account != nil && o.Account.ID == id {
			delete(f.orders, oid)
		}
	}
	return nil
}

func (f *fakeClient) ListOrders(ctx context.Context) ([]models.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("ListOrders"); err != nil {
		return nil, err
	}
	return sortedValues(f.orders), nil
}

func (f *fakeClient) ListOrdersByAccount(ctx context.Context, accountID int64) ([]models.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("ListOrdersByAccount"); err != nil {
		return nil, err
	}
	var out []models.Order
	for _, o := range sortedValues(f.orders) {
		if o.Account != nil && o.Account.ID == accountID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeClient) ListOrdersByProduct(ctx context.Context, filter models.ProductFilter) ([]models.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("ListOrdersByProduct"); err != nil {
		return nil, err
	}
	var out []models.Order
	for _, o := range sortedValues(f.orders) {
		for _, p := range o.Products {
			if (filter.Category == "" || p.Category == filter.Category) && (filter.Price == nil || p.Price == *filter.Price) {
				out = append(out, o)
				break
			}
		}
	}
	return out, nil
}

func (f *fakeClient) GetOrder(ctx context.Context, id int64) (*models.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("GetOrder"); err != nil {
		return nil, err
	}
	o, ok := f.orders[id]
	if !ok {
		return nil, notFound(client.OpGet, models.ResourceOrders, id)
	}
	return &o, nil
}

// expand turns a submitted payload into the stored read view.
func (f *fakeClient) expand(order models.Order) models.Order {
	f.received = append(f.received, order)
	if order.Account != nil {
		account := f.accounts[order.Account.ID]
		order.Account = &account
	}
	order.Products = nil
	for _, id := range order.ProductIDs {
		order.Products = append(order.Products, f.products[id])
	}
	order.ProductIDs = nil
	return order
}

func (f *fakeClient) CreateOrder(ctx context.Context, order models.Order) (*models.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("CreateOrder"); err != nil {
		return nil, err
	}
	order = f.expand(order)
	order.ID = f.id()
	f.orders[order.ID] = order
	return &order, nil
}

func (f *fakeClient) UpdateOrder(ctx context.Context, id int64, order models.Order) (*models.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("UpdateOrder"); err != nil {
		return nil, err
	}
	if _, ok := f.orders[id]; !ok {
		return nil, notFound(client.OpUpdate, models.ResourceOrders, id)
	}
	order = f.expand(order)
	order.ID = id
	f.orders[id] = order
	return &order, nil
}

func (f *fakeClient) DeleteOrder(ctx context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.record("DeleteOrder"); err != nil {
		return err
	}
	if _, ok := f.orders[id]; !ok {
		return notFound(client.OpDelete, models.ResourceOrders, id)
	}
	delete(f.orders, id)
	return nil
}

var _ Client = (*fakeClient)(nil)
var _ Client = (*client.Client)(nil)
