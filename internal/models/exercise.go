package models

import "time"

// Exercise is a global library entry; names are unique across the library.
type Exercise struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255;uniqueIndex;not null" json:"name"`
	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null" json:"updatedAt"`
}

func DefaultExerciseLibrary() []string {
	return []string{
		"Bench Press",
		"Squat",
		"Deadlift",
		"Overhead Press",
		"Barbell Row",
		"Pull-up",
		"Dip",
		"Bicep Curl",
		"Tricep Extension",
		"Lat Pulldown",
		"Leg Press",
		"Romanian Deadlift",
		"Lunge",
		"Calf Raise",
		"Plank",
	}
}
