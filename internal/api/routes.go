package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.AuthRequired, handler.Logout)

	exercises := api.Group("/exercises", handler.AuthRequired)
	exercises.Get("", handler.GetExercises)

	workouts := api.Group("/workouts", handler.AuthRequired)
	workouts.Get("", handler.GetWorkoutsByDate)
	workouts.Get("/:id", handler.GetWorkout)
	workouts.Post("", handler.CreateWorkout)
	workouts.Put("/:id", handler.UpdateWorkout)

	export := api.Group("/export", handler.AuthRequired)
	export.Get("/json", handler.ExportJSON)
	export.Get("/csv", handler.ExportCSV)

	account := api.Group("/account", handler.AuthRequired)
	account.Delete("/data", handler.ClearData)
}
