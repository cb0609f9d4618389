package api

import "github.com/gofiber/fiber/v2"

// ClearData removes every workout the caller owns; exercise entries and sets
// go with them through the cascade. The exercise library and the account
// itself stay.
func (handler *Handler) ClearData(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	if err := handler.workoutService.DeleteAllWorkouts(c.UserContext(), user.ID); err != nil {
		return respondWorkoutError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}
