package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/terraincognita07/liftlog/internal/services"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// respondWorkoutError translates service failures into the HTTP taxonomy:
// field validation → 422 with per-field detail, merged not-found/unowned →
// 404, missing identity → 401, anything else → 503 (transient storage
// failure, caller decides whether to retry).
func respondWorkoutError(c *fiber.Ctx, err error) error {
	var validationErr *services.ValidationError
	if errors.As(err, &validationErr) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error":  "validation failed",
			"fields": validationErr.Fields,
		})
	}
	if errors.Is(err, services.ErrWorkoutNotFound) {
		return apiError(c, fiber.StatusNotFound, "workout not found")
	}
	if errors.Is(err, services.ErrMissingUserID) {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	return apiError(c, fiber.StatusServiceUnavailable, "storage unavailable")
}
