package repositories

import (
	"errors"
	"fmt"

	"backoffice/internal/models"

	"gorm.io/gorm"
)

// GORMOrderRepository is a GORM implementation of OrderRepository.
type GORMOrderRepository struct {
	db *gorm.DB
}

// NewGORMOrderRepository creates a new instance of GORMOrderRepository.
func NewGORMOrderRepository(db *gorm.DB) *GORMOrderRepository {
	return &GORMOrderRepository{
		db: db,
	}
}

func (r *GORMOrderRepository) withRelations() *gorm.DB {
	return r.db.Preload("Account").Preload("Products", orderByID)
}

// GetAll returns all orders with their account and products.
func (r *GORMOrderRepository) GetAll() ([]models.Order, error) {
	orders := []models.Order{}
	if err := r.withRelations().Order("id").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to get all orders: %w", err)
	}
	return orders, nil
}

// GetByAccountID returns the orders placed by one account.
func (r *GORMOrderRepository) GetByAccountID(accountID int64) ([]models.Order, error) {
	orders := []models.Order{}
	if err := r.withRelations().Where("account_id = ?", accountID).Order("id").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to get orders of account %d: %w", accountID, err)
	}
	return orders, nil
}

// GetByProduct returns the orders containing at least one product matching filter.
func (r *GORMOrderRepository) GetByProduct(filter models.ProductFilter) ([]models.Order, error) {
	matching := r.db.Table("order_product").
		Select("order_product.order_id").
		Joins("JOIN products ON products.id = order_product.product_id")
	if filter.Category != "" {
		matching = matching.Where("products.category = ?", filter.Category)
	}
	if filter.Price != nil {
		matching = matching.Where("products.price = ?", *filter.Price)
	}

	orders := []models.Order{}
	if err := r.withRelations().Where("id IN (?)", matching).Order("id").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to get orders by product: %w", err)
	}
	return orders, nil
}

// GetByID returns an order by its ID.
func (r *GORMOrderRepository) GetByID(id int64) (*models.Order, error) {
	var order models.Order
	if err := r.withRelations().First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("order with ID %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get order by ID %d: %w", id, err)
	}
	return &order, nil
}

// Create inserts the order and links it to order.Products.
func (r *GORMOrderRepository) Create(order *models.Order) error {
	if err := r.db.Omit("Account", "Products.*").Create(order).Error; err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}

// Update replaces the order's fields and its product set.
func (r *GORMOrderRepository) Update(order *models.Order) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Order{}).Where("id = ?", order.ID).Updates(map[string]interface{}{
			"order_date":  order.OrderDate,
			"total_price": order.TotalPrice,
			"account_id":  order.AccountID,
		})
		if res.Error != nil {
			return fmt.Errorf("failed to update order: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("order with ID %d: %w", order.ID, ErrNotFound)
		}

		association := tx.Omit("Products.*").Model(&models.Order{ID: order.ID}).Association("Products")
		var err error
		if len(order.Products) == 0 {
			err = association.Clear()
		} else {
			err = association.Replace(order.Products)
		}
		if err != nil {
			return fmt.Errorf("failed to replace products of order %d: %w", order.ID, err)
		}
		return nil
	})
}

// Delete removes an order and its product links.
func (r *GORMOrderRepository) Delete(id int64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.First(&order, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("order with ID %d: %w", id, ErrNotFound)
			}
			return fmt.Errorf("failed to delete order: %w", err)
		}
		if err := tx.Model(&order).Association("Products").Clear(); err != nil {
			return fmt.Errorf("failed to unlink products of order %d: %w", id, err)
		}
		if err := tx.Delete(&order).Error; err != nil {
			return fmt.Errorf("failed to delete order: %w", err)
		}
		return nil
	})
}
