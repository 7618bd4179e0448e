package handlers

import (
	"errors"
	"fmt"
	"log"
	"strconv"

	"backoffice/internal/models"
	"backoffice/internal/repositories"
	"backoffice/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// parseID reads the ":id" route parameter.
func parseID(c *fiber.Ctx) (int64, error) {
	raw := c.Params("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid ID %q", raw)
	}
	return id, nil
}

// parseProductFilter reads the optional category and price query parameters.
func parseProductFilter(c *fiber.Ctx) (models.ProductFilter, error) {
	filter := models.ProductFilter{Category: c.Query("category")}
	if raw := c.Query("price"); raw != "" {
		price, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return filter, err
		}
		filter.Price = &price
	}
	return filter, nil
}

func badFilter(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": "Invalid price filter",
		"error":   err.Error(),
	})
}

func badID(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": "Invalid ID supplied",
		"error":   err.Error(),
	})
}

// validationFailed renders validator errors as a field → message map.
func validationFailed(c *fiber.Ctx, err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"error":   err.Error(),
		})
	}
	errorMessages := make(map[string]string)
	for _, e := range validationErrors {
		errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
	}
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": "Validation failed",
		"errors":  errorMessages,
	})
}

// serviceError maps a service error to a status code and response body.
func serviceError(c *fiber.Ctx, message string, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, repositories.ErrNotFound), errors.Is(err, services.ErrInvalidReference):
		status = fiber.StatusNotFound
	case errors.Is(err, services.ErrAccountRequired):
		status = fiber.StatusBadRequest
	default:
		log.Printf("%s: %v", message, err)
	}
	return c.Status(status).JSON(fiber.Map{
		"message": message,
		"error":   err.Error(),
	})
}

func invalidBody(c *fiber.Ctx, err error) error {
	log.Printf("Error parsing request body: %v", err)
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": "Invalid request body",
		"error":   err.Error(),
	})
}
