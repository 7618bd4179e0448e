package handlers

import (
	"backoffice/internal/models"
	"backoffice/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ProductHandler handles HTTP requests for products.
type ProductHandler struct {
	service  *services.ProductService
	validate *validator.Validate
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the product routes with the Fiber app.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleGetProducts)
	productRoutes.Post("/bulk", h.HandleCreateProducts)
	productRoutes.Get("/:id", h.HandleGetProductByID)
	productRoutes.Post("/", h.HandleCreateProduct)
	productRoutes.Put("/:id", h.HandleUpdateProduct)
	productRoutes.Delete("/:id", h.HandleDeleteProduct)
}

// HandleGetProducts lists products, filtered by the optional category and price query parameters.
func (h *ProductHandler) HandleGetProducts(c *fiber.Ctx) error {
	filter, err := parseProductFilter(c)
	if err != nil {
		return badFilter(c, err)
	}

	products, err := h.service.GetProducts(filter)
	if err != nil {
		return serviceError(c, "Could not retrieve products", err)
	}
	return c.JSON(products)
}

// HandleGetProductByID retrieves a single product by its ID.
func (h *ProductHandler) HandleGetProductByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badID(c, err)
	}
	product, err := h.service.GetProductByID(id)
	if err != nil {
		return serviceError(c, "Could not retrieve product", err)
	}
	return c.JSON(product)
}

// HandleCreateProduct creates a new product.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		return invalidBody(c, err)
	}
	if err := h.validate.Struct(product); err != nil {
		return validationFailed(c, err)
	}
	if err := h.service.CreateProduct(&product); err != nil {
		return serviceError(c, "Could not create product", err)
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// HandleCreateProducts creates every product of a JSON array.
func (h *ProductHandler) HandleCreateProducts(c *fiber.Ctx) error {
	var products []models.Product
	if err := c.BodyParser(&products); err != nil {
		return invalidBody(c, err)
	}
	for _, product := range products {
		if err := h.validate.Struct(product); err != nil {
			return validationFailed(c, err)
		}
	}
	if err := h.service.CreateProducts(products); err != nil {
		return serviceError(c, "Could not create products", err)
	}
	if products == nil {
		products = []models.Product{}
	}
	return c.Status(fiber.StatusCreated).JSON(products)
}

// HandleUpdateProduct replaces an existing product.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badID(c, err)
	}
	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		return invalidBody(c, err)
	}
	if err := h.validate.Struct(product); err != nil {
		return validationFailed(c, err)
	}
	product.ID = id

	updated, err := h.service.UpdateProduct(&product)
	if err != nil {
		return serviceError(c, "Could not update product", err)
	}
	return c.JSON(updated)
}

// HandleDeleteProduct deletes a product and answers 204.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badID(c, err)
	}
	if err := h.service.DeleteProduct(id); err != nil {
		return serviceError(c, "Could not delete product", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
