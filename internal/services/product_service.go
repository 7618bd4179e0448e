package services

import (
	"fmt"

	"backoffice/internal/models"
	"backoffice/internal/repositories"
)

// ProductService handles business logic related to products.
type ProductService struct {
	repo      repositories.ProductRepository
	publisher EventPublisher
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository, publisher EventPublisher) *ProductService {
	return &ProductService{
		repo:      repo,
		publisher: publisher,
	}
}

// GetProducts retrieves the products matching filter.
func (s *ProductService) GetProducts(filter models.ProductFilter) ([]models.Product, error) {
	return s.repo.GetAll(filter)
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(id int64) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// CreateProduct creates a new product. Relations sent by the client are ignored.
func (s *ProductService) CreateProduct(product *models.Product) error {
	product.ID = 0
	product.Orders = nil
	if err := s.repo.Create(product); err != nil {
		return err
	}
	publishChange(s.publisher, models.ResourceProducts, ActionCreated, product.ID)
	return nil
}

// CreateProducts creates several products at once.
func (s *ProductService) CreateProducts(products []models.Product) error {
	for i := range products {
		products[i].ID = 0
		products[i].Orders = nil
	}
	if err := s.repo.CreateAll(products); err != nil {
		return err
	}
	for _, p := range products {
		publishChange(s.publisher, models.ResourceProducts, ActionCreated, p.ID)
	}
	return nil
}

// UpdateProduct replaces an existing product and returns its stored state.
func (s *ProductService) UpdateProduct(product *models.Product) (*models.Product, error) {
	if err := s.repo.Update(product); err != nil {
		return nil, err
	}
	updated, err := s.repo.GetByID(product.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload product %d: %w", product.ID, err)
	}
	publishChange(s.publisher, models.ResourceProducts, ActionUpdated, product.ID)
	return updated, nil
}

// DeleteProduct deletes a product by its ID.
func (s *ProductService) DeleteProduct(id int64) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	publishChange(s.publisher, models.ResourceProducts, ActionDeleted, id)
	return nil
}
