package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/terraincognita07/liftlog/internal/models"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailTaken         = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
)

type AuthUserRepository interface {
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	FindByEmail(ctx context.Context, email string) (models.User, bool, error)
	FindByID(ctx context.Context, userID string) (models.User, bool, error)
	Create(ctx context.Context, user *models.User) error
}

type AuthService struct {
	users AuthUserRepository
}

func NewAuthService(users AuthUserRepository) *AuthService {
	return &AuthService{users: users}
}

// Register creates an account with a fresh opaque id. The id, not the email,
// is what workout rows are bound to.
func (service *AuthService) Register(ctx context.Context, email string, password string) (models.User, error) {
	exists, err := service.users.ExistsByEmail(ctx, email)
	if err != nil {
		return models.User{}, err
	}
	if exists {
		return models.User{}, ErrEmailTaken
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(passwordHash),
		CreatedAt:    time.Now(),
	}
	if err := service.users.Create(ctx, &user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (service *AuthService) Authenticate(ctx context.Context, email string, password string) (models.User, error) {
	user, found, err := service.users.FindByEmail(ctx, email)
	if err != nil {
		return models.User{}, err
	}
	if !found {
		return models.User{}, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return models.User{}, ErrInvalidCredentials
	}
	return user, nil
}

func (service *AuthService) FindByID(ctx context.Context, userID string) (models.User, error) {
	user, found, err := service.users.FindByID(ctx, userID)
	if err != nil {
		return models.User{}, err
	}
	if !found {
		return models.User{}, ErrUserNotFound
	}
	return user, nil
}
