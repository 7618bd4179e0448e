package models

import (
	"net/url"
	"strconv"
)

// Product represents a product in the store.
type Product struct {
	ID       int64   `json:"id,omitempty" gorm:"primaryKey;autoIncrement"`
	Name     string  `json:"name" gorm:"not null" validate:"required,max=255"`
	Price    float64 `json:"price" gorm:"not null" validate:"gte=0"`
	Category string  `json:"category" gorm:"not null;index" validate:"required,max=100"`
	// Orders is populated by the server and never written by clients.
	Orders []Order `json:"orders,omitempty" gorm:"many2many:order_product;"`
}

// ProductFilter holds the equality filters supported by the product list endpoint.
// Zero values mean "not filtered".
type ProductFilter struct {
	Category string
	Price    *float64
}

// IsZero reports whether no filter is set.
func (f ProductFilter) IsZero() bool {
	return f.Category == "" && f.Price == nil
}

// Values encodes the filter as query parameters. Unset filters are omitted.
func (f ProductFilter) Values() url.Values {
	q := url.Values{}
	if f.Category != "" {
		q.Set("category", f.Category)
	}
	if f.Price != nil {
		q.Set("price", strconv.FormatFloat(*f.Price, 'f', -1, 64))
	}
	return q
}
