package services

import (
	"context"
	"errors"

	"github.com/terraincognita07/liftlog/internal/models"
	"golang.org/x/sync/errgroup"
)

var (
	ErrMissingUserID = errors.New("missing user id")
	// ErrWorkoutNotFound covers both an absent id and a workout owned by a
	// different user; callers cannot tell the two apart.
	ErrWorkoutNotFound = errors.New("workout not found")
)

type WorkoutRepository interface {
	ListByUser(ctx context.Context, userID string) ([]models.Workout, error)
	ListByUserAndDate(ctx context.Context, userID string, date string) ([]models.Workout, error)
	FindByIDAndUser(ctx context.Context, workoutID uint, userID string) (models.Workout, bool, error)
	Create(ctx context.Context, workout *models.Workout) error
	UpdateMetadata(ctx context.Context, workoutID uint, userID string, updates map[string]any) (int64, error)
	DeleteByIDAndUser(ctx context.Context, workoutID uint, userID string) (int64, error)
	DeleteAllForUser(ctx context.Context, userID string) error
	ListExerciseRows(ctx context.Context, workoutID uint) ([]models.WorkoutExerciseRow, error)
	ListSets(ctx context.Context, workoutExerciseID uint) ([]models.Set, error)
}

type WorkoutService struct {
	workouts WorkoutRepository
}

func NewWorkoutService(workouts WorkoutRepository) *WorkoutService {
	return &WorkoutService{workouts: workouts}
}

// FetchWorkoutsForDate loads every workout for the (user, date) pair and
// assembles the nested view for each. Child fetches fan out per workout and
// per exercise; results land in index-addressed slots so the returned order
// never depends on completion order. A date with no workouts is an empty
// slice, not an error.
func (service *WorkoutService) FetchWorkoutsForDate(ctx context.Context, userID string, date string) ([]models.WorkoutView, error) {
	if userID == "" {
		return nil, ErrMissingUserID
	}

	workouts, err := service.workouts.ListByUserAndDate(ctx, userID, date)
	if err != nil {
		return nil, err
	}
	return service.assembleViews(ctx, workouts)
}

// FetchAllWorkouts returns the caller's full nested history, oldest first.
func (service *WorkoutService) FetchAllWorkouts(ctx context.Context, userID string) ([]models.WorkoutView, error) {
	if userID == "" {
		return nil, ErrMissingUserID
	}

	workouts, err := service.workouts.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return service.assembleViews(ctx, workouts)
}

func (service *WorkoutService) FetchWorkoutByID(ctx context.Context, workoutID uint, userID string) (models.Workout, error) {
	if userID == "" {
		return models.Workout{}, ErrMissingUserID
	}

	workout, found, err := service.workouts.FindByIDAndUser(ctx, workoutID, userID)
	if err != nil {
		return models.Workout{}, err
	}
	if !found {
		return models.Workout{}, ErrWorkoutNotFound
	}
	return workout, nil
}

// CreateWorkout validates and inserts one workout bound to userID. Several
// workouts may share a user and date; a user can log more than one session
// per day.
func (service *WorkoutService) CreateWorkout(ctx context.Context, userID string, input WorkoutInput) (uint, error) {
	if userID == "" {
		return 0, ErrMissingUserID
	}
	if err := ValidateWorkoutInput(input); err != nil {
		return 0, err
	}

	name := input.Name
	workout := models.Workout{
		UserID: userID,
		Name:   &name,
		Date:   input.Date,
		Notes:  input.Notes,
	}
	if err := service.workouts.Create(ctx, &workout); err != nil {
		return 0, err
	}
	return workout.ID, nil
}

// UpdateWorkout overwrites name, date and notes on the workout matching both
// id and owner. An update that touches zero rows is a failure, never a
// silent success.
func (service *WorkoutService) UpdateWorkout(ctx context.Context, workoutID uint, userID string, input WorkoutInput) error {
	if userID == "" {
		return ErrMissingUserID
	}
	if err := ValidateWorkoutInput(input); err != nil {
		return err
	}

	updates := map[string]any{
		"name":  input.Name,
		"date":  input.Date,
		"notes": input.Notes,
	}
	affected, err := service.workouts.UpdateMetadata(ctx, workoutID, userID, updates)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrWorkoutNotFound
	}
	return nil
}

// DeleteAllWorkouts removes every workout the user owns; the schema cascades
// to workout_exercises and sets.
func (service *WorkoutService) DeleteAllWorkouts(ctx context.Context, userID string) error {
	if userID == "" {
		return ErrMissingUserID
	}
	return service.workouts.DeleteAllForUser(ctx, userID)
}

func (service *WorkoutService) assembleViews(ctx context.Context, workouts []models.Workout) ([]models.WorkoutView, error) {
	views := make([]models.WorkoutView, len(workouts))
	group, groupCtx := errgroup.WithContext(ctx)
	for index, workout := range workouts {
		index, workout := index, workout
		group.Go(func() error {
			view, err := service.assembleWorkoutView(groupCtx, workout)
			if err != nil {
				return err
			}
			views[index] = view
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return views, nil
}

func (service *WorkoutService) assembleWorkoutView(ctx context.Context, workout models.Workout) (models.WorkoutView, error) {
	rows, err := service.workouts.ListExerciseRows(ctx, workout.ID)
	if err != nil {
		return models.WorkoutView{}, err
	}

	exercises := make([]models.ExerciseView, len(rows))
	group, groupCtx := errgroup.WithContext(ctx)
	for index, row := range rows {
		index, row := index, row
		group.Go(func() error {
			sets, err := service.workouts.ListSets(groupCtx, row.ID)
			if err != nil {
				return err
			}

			setViews := make([]models.SetView, 0, len(sets))
			for _, set := range sets {
				setViews = append(setViews, models.SetView{
					ID:        set.ID,
					SetNumber: set.SetNumber,
					Weight:    set.Weight,
					Reps:      set.Reps,
					Completed: set.Completed,
				})
			}

			exercises[index] = models.ExerciseView{
				ID:    row.ID,
				Order: row.Order,
				Notes: row.Notes,
				Exercise: models.ExerciseRef{
					ID:   row.ExerciseID,
					Name: row.ExerciseName,
				},
				Sets: setViews,
			}
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return models.WorkoutView{}, err
	}

	return models.WorkoutView{Workout: workout, Exercises: exercises}, nil
}
