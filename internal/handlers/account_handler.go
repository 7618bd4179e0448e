package handlers

import (
	"backoffice/internal/models"
	"backoffice/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// AccountHandler handles HTTP requests for accounts.
type AccountHandler struct {
	service  *services.AccountService
	validate *validator.Validate
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(service *services.AccountService) *AccountHandler {
	return &AccountHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the account routes with the Fiber app.
func (h *AccountHandler) RegisterRoutes(router fiber.Router) {
	accountRoutes := router.Group("/accounts")
	accountRoutes.Get("/", h.HandleGetAccounts)
	accountRoutes.Get("/:id", h.HandleGetAccountByID)
	accountRoutes.Post("/", h.HandleCreateAccount)
	accountRoutes.Put("/:id", h.HandleUpdateAccount)
	accountRoutes.Delete("/:id", h.HandleDeleteAccount)
}

// HandleGetAccounts lists all accounts.
func (h *AccountHandler) HandleGetAccounts(c *fiber.Ctx) error {
	accounts, err := h.service.GetAllAccounts()
	if err != nil {
		return serviceError(c, "Could not retrieve accounts", err)
	}
	return c.JSON(accounts)
}

// HandleGetAccountByID retrieves a single account by its ID.
func (h *AccountHandler) HandleGetAccountByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badID(c, err)
	}
	account, err := h.service.GetAccountByID(id)
	if err != nil {
		return serviceError(c, "Could not retrieve account", err)
	}
	return c.JSON(account)
}

// HandleCreateAccount creates a new account.
func (h *AccountHandler) HandleCreateAccount(c *fiber.Ctx) error {
	var account models.Account
	if err := c.BodyParser(&account); err != nil {
		return invalidBody(c, err)
	}
	if err := h.validate.Struct(account); err != nil {
		return validationFailed(c, err)
	}
	if err := h.service.CreateAccount(&account); err != nil {
		return serviceError(c, "Could not create account", err)
	}
	return c.Status(fiber.StatusCreated).JSON(account)
}

// HandleUpdateAccount replaces an existing account.
func (h *AccountHandler) HandleUpdateAccount(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badID(c, err)
	}
	var account models.Account
	if err := c.BodyParser(&account); err != nil {
		return invalidBody(c, err)
	}
	if err := h.validate.Struct(account); err != nil {
		return validationFailed(c, err)
	}
	account.ID = id

	updated, err := h.service.UpdateAccount(&account)
	if err != nil {
		return serviceError(c, "Could not update account", err)
	}
	return c.JSON(updated)
}

// HandleDeleteAccount deletes an account together with its orders.
func (h *AccountHandler) HandleDeleteAccount(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badID(c, err)
	}
	if err := h.service.DeleteAccount(id); err != nil {
		return serviceError(c, "Could not delete account", err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
