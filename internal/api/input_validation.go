package api

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/terraincognita07/liftlog/internal/services"
)

type credentialsInput struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

type workoutPayload struct {
	Name  string  `json:"name" form:"name"`
	Date  string  `json:"date" form:"date"`
	Notes *string `json:"notes" form:"notes"`
}

func parseCredentials(c *fiber.Ctx) (credentialsInput, error) {
	credentials := credentialsInput{}
	if err := c.BodyParser(&credentials); err != nil {
		return credentialsInput{}, err
	}

	email, password, err := services.NormalizeCredentialsInput(credentials.Email, credentials.Password)
	if err != nil {
		return credentialsInput{}, err
	}
	return credentialsInput{Email: email, Password: password}, nil
}

// parseWorkoutPayload only decodes; the validation layer in services owns
// every constraint check.
func parseWorkoutPayload(c *fiber.Ctx) (services.WorkoutInput, error) {
	payload := workoutPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return services.WorkoutInput{}, err
	}

	return services.WorkoutInput{
		Name:  payload.Name,
		Date:  strings.TrimSpace(payload.Date),
		Notes: payload.Notes,
	}, nil
}

func parseWorkoutID(raw string) (uint, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, errors.New("workout id is required")
	}
	parsed, err := strconv.ParseUint(trimmed, 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(parsed), nil
}
