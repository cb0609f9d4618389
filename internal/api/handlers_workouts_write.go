package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) CreateWorkout(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input, err := parseWorkoutPayload(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	workoutID, err := handler.workoutService.CreateWorkout(c.UserContext(), user.ID, input)
	if err != nil {
		return respondWorkoutError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": workoutID})
}

func (handler *Handler) UpdateWorkout(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	workoutID, err := parseWorkoutID(c.Params("id"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid workout id")
	}

	input, err := parseWorkoutPayload(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	if err := handler.workoutService.UpdateWorkout(c.UserContext(), workoutID, user.ID, input); err != nil {
		return respondWorkoutError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}
