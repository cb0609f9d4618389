package db

import (
	"context"

	"github.com/terraincognita07/liftlog/internal/models"
	"gorm.io/gorm"
)

type UserRepository struct {
	database *gorm.DB
}

func NewUserRepository(database *gorm.DB) *UserRepository {
	return &UserRepository{database: database}
}

func (repo *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := repo.database.WithContext(ctx).
		Model(&models.User{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (repo *UserRepository) FindByEmail(ctx context.Context, email string) (models.User, bool, error) {
	user := models.User{}
	result := repo.database.WithContext(ctx).
		Where("email = ?", email).
		Limit(1).
		Find(&user)
	if result.Error != nil {
		return models.User{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.User{}, false, nil
	}
	return user, true, nil
}

func (repo *UserRepository) FindByID(ctx context.Context, userID string) (models.User, bool, error) {
	user := models.User{}
	result := repo.database.WithContext(ctx).
		Where("id = ?", userID).
		Limit(1).
		Find(&user)
	if result.Error != nil {
		return models.User{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.User{}, false, nil
	}
	return user, true, nil
}

func (repo *UserRepository) Create(ctx context.Context, user *models.User) error {
	return repo.database.WithContext(ctx).Create(user).Error
}
