package api

import "github.com/gofiber/fiber/v2"

// GetExercises lists the global exercise library. The library is read-only
// over HTTP; new entries arrive through migrations or seeding.
func (handler *Handler) GetExercises(c *fiber.Ctx) error {
	if _, ok := currentUser(c); !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	exercises, err := handler.repositories.Exercises.List(c.UserContext())
	if err != nil {
		return apiError(c, fiber.StatusServiceUnavailable, "storage unavailable")
	}
	return c.JSON(exercises)
}
