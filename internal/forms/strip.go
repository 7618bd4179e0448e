package forms

import "backoffice/internal/models"

// The strip functions drop the server-populated relations of an entity so a
// submission payload never embeds an object that points back at it.

// StripProduct returns p without its orders.
func StripProduct(p models.Product) models.Product {
	p.Orders = nil
	return p
}

// StripAccount returns a without its orders and products.
func StripAccount(a models.Account) models.Account {
	a.Orders = nil
	a.Products = nil
	return a
}

// StripOrder returns o without embedded products and with a stripped account.
// The selection is kept in ProductIDs.
func StripOrder(o models.Order) models.Order {
	if o.Account != nil {
		account := StripAccount(*o.Account)
		o.Account = &account
	}
	if len(o.ProductIDs) == 0 && len(o.Products) > 0 {
		o.ProductIDs = make([]int64, 0, len(o.Products))
		for _, p := range o.Products {
			o.ProductIDs = append(o.ProductIDs, p.ID)
		}
	}
	o.Products = nil
	return o
}
