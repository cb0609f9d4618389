package api

import (
	"time"

	"gorm.io/gorm"

	"github.com/terraincognita07/liftlog/internal/db"
	"github.com/terraincognita07/liftlog/internal/services"
)

type Handler struct {
	db           *gorm.DB
	secretKey    []byte
	cookieSecure bool
	tokenTTL     time.Duration

	repositories   *db.Repositories
	authService    *services.AuthService
	workoutService *services.WorkoutService
}

const (
	authCookieName = "liftlog_auth"
	contextUserKey = "current_user"

	defaultAuthTokenTTL = 7 * 24 * time.Hour
)
