package forms

import (
	"time"

	"backoffice/internal/models"

	"github.com/shopspring/decimal"
)

// OrderDraft is the editable state of an order form.
//
// The selection is a set of product identities. TotalPrice is recomputed from the
// catalog every time the selection or the catalog changes.
type OrderDraft struct {
	ID        int64     `json:"-"`
	OrderDate time.Time `json:"orderDate"`
	AccountID int64     `json:"account" validate:"required,gt=0"`

	selected []int64
	catalog  map[int64]models.Product
	total    decimal.Decimal
}

// NewOrderDraft starts an empty draft priced against catalog.
func NewOrderDraft(catalog []models.Product) *OrderDraft {
	d := &OrderDraft{}
	d.SetCatalog(catalog)
	return d
}

// EditOrder starts a draft from an existing order, selecting its products.
func EditOrder(o models.Order, catalog []models.Product) *OrderDraft {
	d := &OrderDraft{ID: o.ID, OrderDate: o.OrderDate}
	if o.Account != nil {
		d.AccountID = o.Account.ID
	}
	for _, p := range o.Products {
		if !d.IsSelected(p.ID) {
			d.selected = append(d.selected, p.ID)
		}
	}
	d.SetCatalog(catalog)
	return d
}

// SetCatalog replaces the products prices are looked up in.
func (d *OrderDraft) SetCatalog(products []models.Product) {
	d.catalog = make(map[int64]models.Product, len(products))
	for _, p := range products {
		d.catalog[p.ID] = p
	}
	d.recompute()
}

// Toggle adds id to the selection, or removes it if it is already selected.
func (d *OrderDraft) Toggle(id int64) {
	for i, selected := range d.selected {
		if selected == id {
			d.selected = append(d.selected[:i:i], d.selected[i+1:]...)
			d.recompute()
			return
		}
	}
	d.selected = append(d.selected, id)
	d.recompute()
}

// IsSelected reports whether id is in the selection.
func (d *OrderDraft) IsSelected(id int64) bool {
	for _, selected := range d.selected {
		if selected == id {
			return true
		}
	}
	return false
}

// Selected returns the selected product identities in selection order.
func (d *OrderDraft) Selected() []int64 {
	out := make([]int64, len(d.selected))
	copy(out, d.selected)
	return out
}

// TotalPrice is the sum of the catalog prices of the selected products. Selected
// identities missing from the catalog contribute nothing.
func (d *OrderDraft) TotalPrice() float64 {
	return d.total.InexactFloat64()
}

func (d *OrderDraft) recompute() {
	total := decimal.Zero
	for _, id := range d.selected {
		if p, ok := d.catalog[id]; ok {
			total = total.Add(decimal.NewFromFloat(p.Price))
		}
	}
	d.total = total
}

// Validate checks that an account is selected.
func (d *OrderDraft) Validate() error {
	return check("order", d)
}

// Payload validates the draft and builds the order to submit.
//
// The account is resolved against accounts and every selected product against the
// catalog; a missing one fails with a *ReferenceError. The embedded account carries
// no relations and the selection travels only as productIds.
func (d *OrderDraft) Payload(accounts []models.Account) (models.Order, error) {
	if err := d.Validate(); err != nil {
		return models.Order{}, err
	}
	account, ok := findAccount(accounts, d.AccountID)
	if !ok {
		return models.Order{}, &ReferenceError{Resource: models.ResourceAccounts, ID: d.AccountID}
	}
	for _, id := range d.selected {
		if _, ok := d.catalog[id]; !ok {
			return models.Order{}, &ReferenceError{Resource: models.ResourceProducts, ID: id}
		}
	}
	return StripOrder(models.Order{
		ID:         d.ID,
		OrderDate:  d.OrderDate,
		TotalPrice: d.TotalPrice(),
		Account:    &account,
		ProductIDs: d.Selected(),
	}), nil
}

func findAccount(accounts []models.Account, id int64) (models.Account, bool) {
	for _, a := range accounts {
		if a.ID == id {
			return a, true
		}
	}
	return models.Account{}, false
}
