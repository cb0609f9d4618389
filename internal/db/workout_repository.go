package db

import (
	"context"

	"github.com/terraincognita07/liftlog/internal/models"
	"gorm.io/gorm"
)

type WorkoutRepository struct {
	database *gorm.DB
}

func NewWorkoutRepository(database *gorm.DB) *WorkoutRepository {
	return &WorkoutRepository{database: database}
}

// ListByUserAndDate matches the stored date string exactly; no range
// predicates and no timezone normalization.
func (repo *WorkoutRepository) ListByUserAndDate(ctx context.Context, userID string, date string) ([]models.Workout, error) {
	workouts := make([]models.Workout, 0)
	if err := repo.database.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date).
		Order(`"order" ASC, id ASC`).
		Find(&workouts).Error; err != nil {
		return nil, err
	}
	return workouts, nil
}

// ListByUser returns every workout owned by the user, oldest day first.
func (repo *WorkoutRepository) ListByUser(ctx context.Context, userID string) ([]models.Workout, error) {
	workouts := make([]models.Workout, 0)
	if err := repo.database.WithContext(ctx).
		Where("user_id = ?", userID).
		Order(`date ASC, "order" ASC, id ASC`).
		Find(&workouts).Error; err != nil {
		return nil, err
	}
	return workouts, nil
}

func (repo *WorkoutRepository) FindByIDAndUser(ctx context.Context, workoutID uint, userID string) (models.Workout, bool, error) {
	workout := models.Workout{}
	result := repo.database.WithContext(ctx).
		Where("id = ? AND user_id = ?", workoutID, userID).
		Limit(1).
		Find(&workout)
	if result.Error != nil {
		return models.Workout{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.Workout{}, false, nil
	}
	return workout, true, nil
}

func (repo *WorkoutRepository) Create(ctx context.Context, workout *models.Workout) error {
	return repo.database.WithContext(ctx).Create(workout).Error
}

// UpdateMetadata overwrites name, date and notes for the row matching both
// id and owner. The affected-row count is returned so a zero-row update can
// be surfaced instead of silently succeeding.
func (repo *WorkoutRepository) UpdateMetadata(ctx context.Context, workoutID uint, userID string, updates map[string]any) (int64, error) {
	result := repo.database.WithContext(ctx).
		Model(&models.Workout{}).
		Where("id = ? AND user_id = ?", workoutID, userID).
		Updates(updates)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

func (repo *WorkoutRepository) DeleteByIDAndUser(ctx context.Context, workoutID uint, userID string) (int64, error) {
	result := repo.database.WithContext(ctx).
		Where("id = ? AND user_id = ?", workoutID, userID).
		Delete(&models.Workout{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

func (repo *WorkoutRepository) DeleteAllForUser(ctx context.Context, userID string) error {
	return repo.database.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&models.Workout{}).Error
}

func (repo *WorkoutRepository) ListExerciseRows(ctx context.Context, workoutID uint) ([]models.WorkoutExerciseRow, error) {
	rows := make([]models.WorkoutExerciseRow, 0)
	if err := repo.database.WithContext(ctx).
		Table("workout_exercises").
		Select(`workout_exercises.id, workout_exercises."order", workout_exercises.notes, workout_exercises.exercise_id, exercises.name AS exercise_name`).
		Joins("INNER JOIN exercises ON exercises.id = workout_exercises.exercise_id").
		Where("workout_exercises.workout_id = ?", workoutID).
		Order(`workout_exercises."order" ASC, workout_exercises.id ASC`).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (repo *WorkoutRepository) ListSets(ctx context.Context, workoutExerciseID uint) ([]models.Set, error) {
	sets := make([]models.Set, 0)
	if err := repo.database.WithContext(ctx).
		Where("workout_exercise_id = ?", workoutExerciseID).
		Order("set_number ASC, id ASC").
		Find(&sets).Error; err != nil {
		return nil, err
	}
	return sets, nil
}

func (repo *WorkoutRepository) AddExercise(ctx context.Context, entry *models.WorkoutExercise) error {
	return repo.database.WithContext(ctx).Create(entry).Error
}

func (repo *WorkoutRepository) AddSet(ctx context.Context, set *models.Set) error {
	return repo.database.WithContext(ctx).Create(set).Error
}
