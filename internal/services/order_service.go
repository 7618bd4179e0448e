package services

import (
	"errors"
	"fmt"
	"time"

	"backoffice/internal/models"
	"backoffice/internal/repositories"
)

// OrderService handles business logic related to orders.
type OrderService struct {
	orderRepo   repositories.OrderRepository
	productRepo repositories.ProductRepository
	accountRepo repositories.AccountRepository
	publisher   EventPublisher
}

// NewOrderService creates a new OrderService.
func NewOrderService(orderRepo repositories.OrderRepository, productRepo repositories.ProductRepository, accountRepo repositories.AccountRepository, publisher EventPublisher) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		accountRepo: accountRepo,
		publisher:   publisher,
	}
}

// GetAllOrders retrieves all orders.
func (s *OrderService) GetAllOrders() ([]models.Order, error) {
	return s.orderRepo.GetAll()
}

// GetOrdersByAccount retrieves the orders of one account.
func (s *OrderService) GetOrdersByAccount(accountID int64) ([]models.Order, error) {
	return s.orderRepo.GetByAccountID(accountID)
}

// GetOrdersByProduct retrieves the orders containing a product that matches filter.
func (s *OrderService) GetOrdersByProduct(filter models.ProductFilter) ([]models.Order, error) {
	return s.orderRepo.GetByProduct(filter)
}

// GetOrderByID retrieves a single order by its ID.
func (s *OrderService) GetOrderByID(id int64) (*models.Order, error) {
	return s.orderRepo.GetByID(id)
}

// CreateOrder resolves the order's account and products, stores it and returns the stored order.
// The total price is taken as sent.
func (s *OrderService) CreateOrder(orderRequest models.Order) (*models.Order, error) {
	orderRequest.ID = 0
	if err := s.resolveRelations(&orderRequest); err != nil {
		return nil, err
	}
	if orderRequest.OrderDate.IsZero() {
		orderRequest.OrderDate = time.Now().UTC()
	}

	if err := s.orderRepo.Create(&orderRequest); err != nil {
		return nil, fmt.Errorf("failed to create order in repository: %w", err)
	}

	created, err := s.orderRepo.GetByID(orderRequest.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload order %d: %w", orderRequest.ID, err)
	}
	publishChange(s.publisher, models.ResourceOrders, ActionCreated, created.ID)
	return created, nil
}

// UpdateOrder fully replaces order id with orderRequest.
func (s *OrderService) UpdateOrder(id int64, orderRequest models.Order) (*models.Order, error) {
	orderRequest.ID = id
	if err := s.resolveRelations(&orderRequest); err != nil {
		return nil, err
	}
	if orderRequest.OrderDate.IsZero() {
		current, err := s.orderRepo.GetByID(id)
		if err != nil {
			return nil, err
		}
		orderRequest.OrderDate = current.OrderDate
	}

	if err := s.orderRepo.Update(&orderRequest); err != nil {
		return nil, err
	}

	updated, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to reload order %d: %w", id, err)
	}
	publishChange(s.publisher, models.ResourceOrders, ActionUpdated, id)
	return updated, nil
}

// DeleteOrder deletes an order by its ID.
func (s *OrderService) DeleteOrder(id int64) error {
	if err := s.orderRepo.Delete(id); err != nil {
		return err
	}
	publishChange(s.publisher, models.ResourceOrders, ActionDeleted, id)
	return nil
}

// resolveRelations replaces the embedded account and product list of order with
// the stored entities named by order.Account.ID and order.ProductIDs.
func (s *OrderService) resolveRelations(order *models.Order) error {
	if order.Account == nil || order.Account.ID == 0 {
		return ErrAccountRequired
	}

	account, err := s.accountRepo.GetByID(order.Account.ID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return fmt.Errorf("account %d: %w", order.Account.ID, ErrInvalidReference)
		}
		return err
	}
	order.AccountID = account.ID
	order.Account = nil

	ids := uniqueIDs(order.ProductIDs)
	products, err := s.productRepo.GetByIDs(ids)
	if err != nil {
		return err
	}
	if len(products) != len(ids) {
		return fmt.Errorf("products %v: %w", missingIDs(ids, products), ErrInvalidReference)
	}
	order.Products = products
	order.ProductIDs = ids
	return nil
}

func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]bool, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

func missingIDs(ids []int64, found []models.Product) []int64 {
	present := make(map[int64]bool, len(found))
	for _, p := range found {
		present[p.ID] = true
	}
	var missing []int64
	for _, id := range ids {
		if !present[id] {
			missing = append(missing, id)
		}
	}
	return missing
}
