package services_test

import (
	"backoffice/internal/models"
	"backoffice/pkg/rabbitmq"

	"github.com/stretchr/testify/mock"
)

// MockProductRepository is a mock implementation of repositories.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) GetAll(filter models.ProductFilter) ([]models.Product, error) {
	args := m.Called(filter)
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) GetByID(id int64) (*models.Product, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) GetByIDs(ids []int64) ([]models.Product, error) {
	args := m.Called(ids)
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) Create(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) CreateAll(products []models.Product) error {
	args := m.Called(products)
	return args.Error(0)
}

func (m *MockProductRepository) Update(product *models.Product) error {
	args := m.Called(product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(id int64) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockAccountRepository is a mock implementation of repositories.AccountRepository
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) GetAll() ([]models.Account, error) {
	args := m.Called()
	return args.Get(0).([]models.Account), args.Error(1)
}

func (m *MockAccountRepository) GetByID(id int64) (*models.Account, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Account), args.Error(1)
}

func (m *MockAccountRepository) Create(account *models.Account) error {
	args := m.Called(account)
	return args.Error(0)
}

func (m *MockAccountRepository) Update(account *models.Account) error {
	args := m.Called(account)
	return args.Error(0)
}

func (m *MockAccountRepository) Delete(id int64) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockOrderRepository is a mock implementation of repositories.OrderRepository
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) GetAll() ([]models.Order, error) {
	args := m.Called()
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByAccountID(accountID int64) ([]models.Order, error) {
	args := m.Called(accountID)
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByProduct(filter models.ProductFilter) ([]models.Order, error) {
	args := m.Called(filter)
	return args.Get(0).([]models.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByID(id int64) (*models.Order, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *MockOrderRepository) Create(order *models.Order) error {
	args := m.Called(order)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(order *models.Order) error {
	args := m.Called(order)
	return args.Error(0)
}

func (m *MockOrderRepository) Delete(id int64) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockPublisher is a mock implementation of services.EventPublisher
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishEvent(event rabbitmq.Event) error {
	args := m.Called(event)
	return args.Error(0)
}

// eventFor matches an event by routing key and entity.
func eventFor(routingKey string, id int64) interface{} {
	return mock.MatchedBy(func(e rabbitmq.Event) bool {
		return e.RoutingKey() == routingKey && e.EntityID == id && e.ID != ""
	})
}
