package db

import "gorm.io/gorm"

type Repositories struct {
	Users     *UserRepository
	Exercises *ExerciseRepository
	Workouts  *WorkoutRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:     NewUserRepository(database),
		Exercises: NewExerciseRepository(database),
		Workouts:  NewWorkoutRepository(database),
	}
}
