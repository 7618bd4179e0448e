package models

// Resource names a REST-addressable entity collection.
type Resource string

const (
	ResourceProducts Resource = "products"
	ResourceAccounts Resource = "accounts"
	ResourceOrders   Resource = "orders"
)

func (r Resource) String() string { return string(r) }

// Related returns the resources whose server projections embed r, r included.
// A mutation of r can change what any of them returns.
func (r Resource) Related() []Resource {
	switch r {
	case ResourceProducts:
		return []Resource{ResourceProducts, ResourceOrders, ResourceAccounts}
	case ResourceAccounts:
		return []Resource{ResourceAccounts, ResourceOrders}
	case ResourceOrders:
		return []Resource{ResourceOrders, ResourceAccounts, ResourceProducts}
	}
	return []Resource{r}
}
