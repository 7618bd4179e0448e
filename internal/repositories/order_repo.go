package repositories

import (
	"backoffice/internal/models"
)

// OrderRepository defines the interface for order data access.
// Create and Update persist order.Products as the order's product set.
type OrderRepository interface {
	GetAll() ([]models.Order, error)
	GetByAccountID(accountID int64) ([]models.Order, error)
	GetByProduct(filter models.ProductFilter) ([]models.Order, error)
	GetByID(id int64) (*models.Order, error)
	Create(order *models.Order) error
	Update(order *models.Order) error
	Delete(id int64) error
}
