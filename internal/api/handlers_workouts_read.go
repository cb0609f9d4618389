package api

import "github.com/gofiber/fiber/v2"

// GetWorkoutsByDate returns every workout the caller logged on the requested
// date as nested views. An empty day is an empty array, not an error.
func (handler *Handler) GetWorkoutsByDate(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	date := c.Query("date")
	if date == "" {
		return apiError(c, fiber.StatusBadRequest, "date is required")
	}

	views, err := handler.workoutService.FetchWorkoutsForDate(c.UserContext(), user.ID, date)
	if err != nil {
		return respondWorkoutError(c, err)
	}
	return c.JSON(views)
}

func (handler *Handler) GetWorkout(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	workoutID, err := parseWorkoutID(c.Params("id"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid workout id")
	}

	workout, err := handler.workoutService.FetchWorkoutByID(c.UserContext(), workoutID, user.ID)
	if err != nil {
		return respondWorkoutError(c, err)
	}
	return c.JSON(workout)
}
