package services_test

import (
	"errors"
	"testing"

	"backoffice/internal/models"
	"backoffice/internal/repositories"
	"backoffice/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestProductService_GetProducts(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil)

	expectedProducts := []models.Product{
		{ID: 1, Name: "Widget", Category: "Tools", Price: 10.0},
		{ID: 2, Name: "Gadget", Category: "Tools", Price: 20.0},
	}
	filter := models.ProductFilter{Category: "Tools"}

	mockRepo.On("GetAll", filter).Return(expectedProducts, nil).Once()

	products, err := service.GetProducts(filter)

	assert.NoError(t, err)
	assert.Equal(t, expectedProducts, products)
	mockRepo.AssertExpectations(t)
}

func TestProductService_GetProductByID(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil)

	expectedProduct := &models.Product{ID: 1, Name: "Widget", Category: "Tools", Price: 10.0}

	// Test successful retrieval
	mockRepo.On("GetByID", int64(1)).Return(expectedProduct, nil).Once()
	product, err := service.GetProductByID(1)
	assert.NoError(t, err)
	assert.Equal(t, expectedProduct, product)

	// Test product not found
	mockRepo.On("GetByID", int64(99)).Return(nil, repositories.ErrNotFound).Once()
	product, err = service.GetProductByID(99)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	assert.Nil(t, product)
	mockRepo.AssertExpectations(t)
}

func TestProductService_CreateProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	publisher := new(MockPublisher)
	service := services.NewProductService(mockRepo, publisher)

	newProduct := &models.Product{ID: 42, Name: "Widget", Category: "Tools", Price: 10.0, Orders: []models.Order{{ID: 1}}}

	mockRepo.On("Create", mock.MatchedBy(func(p *models.Product) bool {
		return p.ID == 0 && p.Orders == nil
	})).Run(func(args mock.Arguments) {
		args.Get(0).(*models.Product).ID = 7
	}).Return(nil).Once()
	publisher.On("PublishEvent", eventFor("products.created", 7)).Return(nil).Once()

	err := service.CreateProduct(newProduct)

	assert.NoError(t, err)
	assert.Equal(t, int64(7), newProduct.ID)
	mockRepo.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestProductService_CreateProduct_PublishFailureIsIgnored(t *testing.T) {
	mockRepo := new(MockProductRepository)
	publisher := new(MockPublisher)
	service := services.NewProductService(mockRepo, publisher)

	mockRepo.On("Create", mock.AnythingOfType("*models.Product")).Return(nil).Once()
	publisher.On("PublishEvent", mock.Anything).Return(errors.New("broker down")).Once()

	err := service.CreateProduct(&models.Product{Name: "Widget", Category: "Tools"})

	assert.NoError(t, err)
	publisher.AssertExpectations(t)
}

func TestProductService_CreateProducts(t *testing.T) {
	mockRepo := new(MockProductRepository)
	publisher := new(MockPublisher)
	service := services.NewProductService(mockRepo, publisher)

	products := []models.Product{{Name: "Widget"}, {Name: "Gadget"}}
	mockRepo.On("CreateAll", mock.Anything).Run(func(args mock.Arguments) {
		created := args.Get(0).([]models.Product)
		for i := range created {
			created[i].ID = int64(i + 1)
		}
	}).Return(nil).Once()
	publisher.On("PublishEvent", eventFor("products.created", 1)).Return(nil).Once()
	publisher.On("PublishEvent", eventFor("products.created", 2)).Return(nil).Once()

	err := service.CreateProducts(products)

	assert.NoError(t, err)
	assert.Equal(t, int64(2), products[1].ID)
	publisher.AssertExpectations(t)
}

func TestProductService_UpdateProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	service := services.NewProductService(mockRepo, nil)

	productToUpdate := &models.Product{ID: 1, Name: "Widget v2", Category: "Tools", Price: 12.0}

	// Test successful update
	mockRepo.On("Update", productToUpdate).Return(nil).Once()
	mockRepo.On("GetByID", int64(1)).Return(productToUpdate, nil).Once()
	updated, err := service.UpdateProduct(productToUpdate)
	assert.NoError(t, err)
	assert.Equal(t, productToUpdate, updated)

	// Test product not found for update
	missing := &models.Product{ID: 99, Name: "Nope", Category: "Tools"}
	mockRepo.On("Update", missing).Return(repositories.ErrNotFound).Once()
	_, err = service.UpdateProduct(missing)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	mockRepo.AssertExpectations(t)
}

func TestProductService_DeleteProduct(t *testing.T) {
	mockRepo := new(MockProductRepository)
	publisher := new(MockPublisher)
	service := services.NewProductService(mockRepo, publisher)

	// Test successful deletion
	mockRepo.On("Delete", int64(1)).Return(nil).Once()
	publisher.On("PublishEvent", eventFor("products.deleted", 1)).Return(nil).Once()
	err := service.DeleteProduct(1)
	assert.NoError(t, err)

	// Test product not found for deletion
	mockRepo.On("Delete", int64(99)).Return(repositories.ErrNotFound).Once()
	err = service.DeleteProduct(99)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
	mockRepo.AssertExpectations(t)
	publisher.AssertExpectations(t)
}
