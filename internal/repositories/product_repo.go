package repositories

import (
	"backoffice/internal/models"
)

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	GetAll(filter models.ProductFilter) ([]models.Product, error)
	GetByID(id int64) (*models.Product, error)
	GetByIDs(ids []int64) ([]models.Product, error)
	Create(product *models.Product) error
	CreateAll(products []models.Product) error
	Update(product *models.Product) error
	Delete(id int64) error
}
