package models

// WorkoutView is the fully nested, ordered read model for one workout:
// the workout row plus its exercises (by "order") and their sets (by
// set_number).
type WorkoutView struct {
	Workout
	Exercises []ExerciseView `json:"exercises"`
}

type ExerciseView struct {
	ID       uint        `json:"id"`
	Order    int         `json:"order"`
	Notes    *string     `json:"notes"`
	Exercise ExerciseRef `json:"exercise"`
	Sets     []SetView   `json:"sets"`
}

type ExerciseRef struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type SetView struct {
	ID        uint     `json:"id"`
	SetNumber int      `json:"setNumber"`
	Weight    *float64 `json:"weight"`
	Reps      *int     `json:"reps"`
	Completed bool     `json:"completed"`
}

// WorkoutExerciseRow is one workout_exercises row joined with its exercise.
// The join is inner: rows referencing a missing exercise never surface.
type WorkoutExerciseRow struct {
	ID           uint    `gorm:"column:id"`
	Order        int     `gorm:"column:order"`
	Notes        *string `gorm:"column:notes"`
	ExerciseID   uint    `gorm:"column:exercise_id"`
	ExerciseName string  `gorm:"column:exercise_name"`
}
