package handlers

import (
	"strconv"

	"backoffice/internal/models"
	"backoffice/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// OrderHandler handles HTTP requests for orders.
type OrderHandler struct {
	service  *services.OrderService
	validate *validator.Validate
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService) *OrderHandler {
	return &OrderHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the order routes with the Fiber app.
func (h *OrderHandler) RegisterRoutes(router fiber.Router) {
	orderRoutes := router.Group("/orders")
	orderRoutes.Get("/", h.HandleGetOrders)
	orderRoutes.Get("/:id", h.HandleGetOrderByID)
	orderRoutes.Post("/", h.HandleCreateOrder)
	orderRoutes.Put("/:id", h.HandleUpdateOrder)
	orderRoutes.Delete("/:id", h.HandleDeleteOrder)
}

// HandleGetOrders lists all orders. With accountId it lists one account's orders;
// with category or price it lists the orders containing a matching product.
func (h *OrderHandler) HandleGetOrders(c *fiber.Ctx) error {
	var (
		orders []models.Order
		err    error
	)
	filter, filterErr := parseProductFilter(c)
	if filterErr != nil {
		return badFilter(c, filterErr)
	}
	switch raw := c.Query("accountId"); {
	case raw != "":
		accountID, parseErr := strconv.ParseInt(raw, 10, 64)
		if parseErr != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Invalid accountId filter",
				"error":   parseErr.Error(),
			})
		}
		orders, err = h.service.GetOrdersByAccount(accountID)
	case !filter.IsZero():
		orders, err = h.service.GetOrdersByProduct(filter)
	default:
		orders, err = h.service.GetAllOrders()
	}
	if err != nil {
		return serviceError(c, "Could not retrieve orders", err)
	}
	return c.JSON(orders)
}

// HandleGetOrderByID retrieves a single order by its ID.
func (h *OrderHandler) HandleGetOrderByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badID(c, err)
	}
	order, err := h.service.GetOrderByID(id)
	if err != nil {
		return serviceError(c, "Could not retrieve order", err)
	}
	return c.JSON(order)
}

// HandleCreateOrder creates a new order from an account reference and productIds.
func (h *OrderHandler) HandleCreateOrder(c *fiber.Ctx) error {
	var orderRequest models.Order
	if err := c.BodyParser(&orderRequest); err != nil {
		return invalidBody(c, err)
	}
	if err := h.validate.Struct(orderRequest); err != nil {
		return validationFailed(c, err)
	}

	createdOrder, err := h.service.CreateOrder(orderRequest)
	if err != nil {
		return serviceError(c, "Could not create order", err)
	}
	return c.Status(fiber.StatusCreated).JSON(createdOrder)
}

// HandleUpdateOrder fully replaces an existing order.
func (h *OrderHandler) HandleUpdateOrder(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badID(c, err)
	}
	var orderRequest models.Order
	if err := c.BodyParser(&orderRequest); err != nil {
		return invalidBody(c, err)
	}
	if err := h.validate.Struct(orderRequest); err != nil {
		return validationFailed(c, err)
	}

	updatedOrder, err := h.service.UpdateOrder(id, orderRequest)
	if err != nil {
		return serviceError(c, "Could not update order", err)
	}
	return c.JSON(updatedOrder)
}

// HandleDeleteOrder deletes an order and answers 204.
func (h *OrderHandler) HandleDeleteOrder(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badID(c, err)
	}
	if err := h.service.DeleteOrder(id); err != nil {
		return serviceError(c, "Could not delete order", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
