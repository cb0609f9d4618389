package api

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
)

var exportCSVHeaders = []string{
	"date",
	"workout",
	"workout_notes",
	"exercise",
	"exercise_order",
	"set_number",
	"weight",
	"reps",
	"completed",
}

func (handler *Handler) ExportJSON(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	views, err := handler.workoutService.FetchAllWorkouts(c.UserContext(), user.ID)
	if err != nil {
		return respondWorkoutError(c, err)
	}

	setExportAttachmentHeaders(c, "application/json", buildExportFilename(time.Now(), "json"))
	return c.JSON(fiber.Map{"workouts": views})
}

// ExportCSV flattens the nested history into one row per set; workouts with
// no exercises still produce a row so the export is complete.
func (handler *Handler) ExportCSV(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	views, err := handler.workoutService.FetchAllWorkouts(c.UserContext(), user.ID)
	if err != nil {
		return respondWorkoutError(c, err)
	}

	var output bytes.Buffer
	writer := csv.NewWriter(&output)
	if err := writer.Write(exportCSVHeaders); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}

	for _, view := range views {
		name := csvOptional(view.Name)
		notes := csvOptional(view.Notes)
		if len(view.Exercises) == 0 {
			if err := writer.Write([]string{view.Date, name, notes, "", "", "", "", "", ""}); err != nil {
				return apiError(c, fiber.StatusInternalServerError, "failed to build export")
			}
			continue
		}
		for _, exercise := range view.Exercises {
			for _, set := range exercise.Sets {
				if err := writer.Write([]string{
					view.Date,
					name,
					notes,
					exercise.Exercise.Name,
					strconv.Itoa(exercise.Order),
					strconv.Itoa(set.SetNumber),
					csvWeight(set.Weight),
					csvReps(set.Reps),
					strconv.FormatBool(set.Completed),
				}); err != nil {
					return apiError(c, fiber.StatusInternalServerError, "failed to build export")
				}
			}
			if len(exercise.Sets) == 0 {
				if err := writer.Write([]string{
					view.Date, name, notes, exercise.Exercise.Name,
					strconv.Itoa(exercise.Order), "", "", "", "",
				}); err != nil {
					return apiError(c, fiber.StatusInternalServerError, "failed to build export")
				}
			}
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}

	setExportAttachmentHeaders(c, "text/csv", buildExportFilename(time.Now(), "csv"))
	return c.Send(output.Bytes())
}

func setExportAttachmentHeaders(c *fiber.Ctx, contentType string, filename string) {
	c.Set("Content-Type", contentType)
	c.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
}

func buildExportFilename(now time.Time, extension string) string {
	return fmt.Sprintf("liftlog-export-%s.%s", now.Format("2006-01-02"), extension)
}

func csvOptional(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}

func csvWeight(weight *float64) string {
	if weight == nil {
		return ""
	}
	return strconv.FormatFloat(*weight, 'f', 2, 64)
}

func csvReps(reps *int) string {
	if reps == nil {
		return ""
	}
	return strconv.Itoa(*reps)
}
