package api

import "github.com/gofiber/fiber/v2"

// AuthRequired refuses every request without a verified identity; handlers
// behind it can rely on currentUser being present.
func (handler *Handler) AuthRequired(c *fiber.Ctx) error {
	user, err := handler.authenticateRequest(c)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	c.Locals(contextUserKey, user)
	return c.Next()
}
