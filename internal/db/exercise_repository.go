package db

import (
	"context"
	"fmt"

	"github.com/terraincognita07/liftlog/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ExerciseRepository struct {
	database *gorm.DB
}

func NewExerciseRepository(database *gorm.DB) *ExerciseRepository {
	return &ExerciseRepository{database: database}
}

func (repo *ExerciseRepository) List(ctx context.Context) ([]models.Exercise, error) {
	exercises := make([]models.Exercise, 0)
	if err := repo.database.WithContext(ctx).
		Order("name ASC").
		Find(&exercises).Error; err != nil {
		return nil, err
	}
	return exercises, nil
}

func (repo *ExerciseRepository) FindByName(ctx context.Context, name string) (models.Exercise, bool, error) {
	exercise := models.Exercise{}
	result := repo.database.WithContext(ctx).
		Where("name = ?", name).
		Limit(1).
		Find(&exercise)
	if result.Error != nil {
		return models.Exercise{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Exercise{}, false, nil
	}
	return exercise, true, nil
}

// seedExerciseLibrary inserts the built-in library once; name uniqueness
// makes re-runs no-ops.
func seedExerciseLibrary(database *gorm.DB) error {
	for _, name := range models.DefaultExerciseLibrary() {
		exercise := models.Exercise{Name: name}
		if err := database.
			Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "name"}}, DoNothing: true}).
			Create(&exercise).Error; err != nil {
			return fmt.Errorf("seed exercise %q: %w", name, err)
		}
	}
	return nil
}
