package repositories

import (
	"errors"
	"fmt"

	"backoffice/internal/models"

	"gorm.io/gorm"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

// GetAll retrieves the products matching filter, with their orders.
func (r *GORMProductRepository) GetAll(filter models.ProductFilter) ([]models.Product, error) {
	query := r.db.Preload("Orders", orderByID).Order("id")
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Price != nil {
		query = query.Where("price = ?", *filter.Price)
	}

	products := []models.Product{}
	if err := query.Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to get products: %w", err)
	}
	return products, nil
}

// GetByID retrieves a single product by its ID from the database.
func (r *GORMProductRepository) GetByID(id int64) (*models.Product, error) {
	var product models.Product
	if err := r.db.Preload("Orders", orderByID).First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product with ID %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get product by ID %d: %w", id, err)
	}
	return &product, nil
}

// GetByIDs retrieves the products whose IDs are in ids. Missing IDs are skipped.
func (r *GORMProductRepository) GetByIDs(ids []int64) ([]models.Product, error) {
	products := []models.Product{}
	if len(ids) == 0 {
		return products, nil
	}
	if err := r.db.Where("id IN ?", ids).Order("id").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to get products by IDs: %w", err)
	}
	return products, nil
}

// Create creates a new product in the database.
func (r *GORMProductRepository) Create(product *models.Product) error {
	if err := r.db.Omit("Orders").Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// CreateAll creates every product in one transaction.
func (r *GORMProductRepository) CreateAll(products []models.Product) error {
	if len(products) == 0 {
		return nil
	}
	if err := r.db.Omit("Orders").Create(&products).Error; err != nil {
		return fmt.Errorf("failed to create products: %w", err)
	}
	return nil
}

// Update overwrites the scalar fields of an existing product.
func (r *GORMProductRepository) Update(product *models.Product) error {
	res := r.db.Model(&models.Product{}).Where("id = ?", product.ID).Updates(map[string]interface{}{
		"name":     product.Name,
		"price":    product.Price,
		"category": product.Category,
	})
	if res.Error != nil {
		return fmt.Errorf("failed to update product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("product with ID %d: %w", product.ID, ErrNotFound)
	}
	return nil
}

// Delete detaches the product from its orders and deletes it.
func (r *GORMProductRepository) Delete(id int64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var product models.Product
		if err := tx.First(&product, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("product with ID %d: %w", id, ErrNotFound)
			}
			return fmt.Errorf("failed to delete product: %w", err)
		}
		if err := tx.Model(&product).Association("Orders").Clear(); err != nil {
			return fmt.Errorf("failed to detach product %d from orders: %w", id, err)
		}
		if err := tx.Delete(&product).Error; err != nil {
			return fmt.Errorf("failed to delete product: %w", err)
		}
		return nil
	})
}

func orderByID(db *gorm.DB) *gorm.DB {
	return db.Order("id")
}
