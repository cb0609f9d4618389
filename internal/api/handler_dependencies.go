package api

import (
	"time"

	"gorm.io/gorm"

	"github.com/terraincognita07/liftlog/internal/db"
	"github.com/terraincognita07/liftlog/internal/services"
)

func NewHandler(database *gorm.DB, secretKey string, cookieSecure bool, tokenTTL time.Duration) *Handler {
	if tokenTTL <= 0 {
		tokenTTL = defaultAuthTokenTTL
	}

	handler := &Handler{
		db:           database,
		secretKey:    []byte(secretKey),
		cookieSecure: cookieSecure,
		tokenTTL:     tokenTTL,
	}
	handler.repositories = db.NewRepositories(database)
	handler.authService = services.NewAuthService(handler.repositories.Users)
	handler.workoutService = services.NewWorkoutService(handler.repositories.Workouts)
	return handler
}
