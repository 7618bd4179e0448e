// Package forms holds the editable drafts behind the create and edit forms.
//
// A draft is local state: nothing is sent until Payload succeeds, and Payload
// validates before returning, so a rejected draft never reaches the network.
package forms

import "backoffice/internal/models"

// ProductDraft is the editable state of a product form.
type ProductDraft struct {
	ID       int64   `json:"-"`
	Name     string  `json:"name" validate:"required,max=255"`
	Price    float64 `json:"price" validate:"gte=0"`
	Category string  `json:"category" validate:"required,max=100"`
}

// EditProduct starts a draft from an existing product.
func EditProduct(p models.Product) *ProductDraft {
	return &ProductDraft{ID: p.ID, Name: p.Name, Price: p.Price, Category: p.Category}
}

// Validate checks required fields and bounds.
func (d *ProductDraft) Validate() error {
	return check("product", d)
}

// Payload validates the draft and builds the product to submit.
func (d *ProductDraft) Payload() (models.Product, error) {
	if err := d.Validate(); err != nil {
		return models.Product{}, err
	}
	return models.Product{ID: d.ID, Name: d.Name, Price: d.Price, Category: d.Category}, nil
}
