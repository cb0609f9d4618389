package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/terraincognita07/liftlog/internal/services"
)

func (handler *Handler) Register(c *fiber.Ctx) error {
	credentials, err := parseCredentials(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if err := services.ValidatePasswordStrength(credentials.Password); err != nil {
		return apiError(c, fiber.StatusBadRequest, "weak password")
	}

	user, err := handler.authService.Register(c.UserContext(), credentials.Email, credentials.Password)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			return apiError(c, fiber.StatusConflict, "email already exists")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to create account")
	}

	if err := handler.setAuthCookie(c, &user); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"ok": true, "userId": user.ID})
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	credentials, err := parseCredentials(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	user, err := handler.authService.Authenticate(c.UserContext(), credentials.Email, credentials.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return apiError(c, fiber.StatusUnauthorized, "invalid credentials")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to sign in")
	}

	if err := handler.setAuthCookie(c, &user); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) Logout(c *fiber.Ctx) error {
	handler.clearAuthCookie(c)
	return c.JSON(fiber.Map{"ok": true})
}
