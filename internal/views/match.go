package views

import (
	"context"

	"backoffice/internal/models"
)

// MatchProduct matches on name or category.
func MatchProduct(p models.Product, text string) bool {
	return containsFold(p.Name, text) || containsFold(p.Category, text)
}

// MatchAccount matches on nickname, first name, last name or email.
func MatchAccount(a models.Account, text string) bool {
	return containsFold(a.Nickname, text) ||
		containsFold(a.FirstName, text) ||
		containsFold(a.LastName, text) ||
		containsFold(a.Email, text)
}

// MatchOrder matches on the account's names or the names of the ordered products.
func MatchOrder(o models.Order, text string) bool {
	if o.Account != nil && (containsFold(o.Account.Nickname, text) || containsFold(o.Account.DisplayName(), text)) {
		return true
	}
	for _, p := range o.Products {
		if containsFold(p.Name, text) {
			return true
		}
	}
	return false
}

// NewProductList returns a list view over load, filtered with MatchProduct.
func NewProductList(load func(context.Context) ([]models.Product, error)) *ListView[models.Product] {
	return NewListView(Loader[models.Product](load), MatchProduct)
}

// NewAccountList returns a list view over load, filtered with MatchAccount.
func NewAccountList(load func(context.Context) ([]models.Account, error)) *ListView[models.Account] {
	return NewListView(Loader[models.Account](load), MatchAccount)
}

// NewOrderList returns a list view over load, filtered with MatchOrder.
func NewOrderList(load func(context.Context) ([]models.Order, error)) *ListView[models.Order] {
	return NewListView(Loader[models.Order](load), MatchOrder)
}
