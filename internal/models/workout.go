package models

import "time"

// Workout is one logged session. Date is kept as the literal YYYY-MM-DD
// string the client submitted; daily views compare it byte-for-byte, so no
// timezone math ever applies to stored rows.
type Workout struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	UserID      string     `gorm:"size:255;not null;index" json:"userId"`
	Name        *string    `gorm:"size:255" json:"name"`
	Date        string     `gorm:"type:date;not null;index" json:"date"`
	Notes       *string    `gorm:"type:text" json:"notes"`
	Order       int        `gorm:"column:order;not null;default:0" json:"order"`
	StartedAt   *time.Time `json:"startedAt"`
	CompletedAt *time.Time `json:"completedAt"`
	CreatedAt   time.Time  `gorm:"not null" json:"createdAt"`
	UpdatedAt   time.Time  `gorm:"not null" json:"updatedAt"`
}

// WorkoutExercise links one library exercise into one workout. The child
// stores the parent id; deleting the workout cascades here.
type WorkoutExercise struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	WorkoutID  uint      `gorm:"not null;index" json:"workoutId"`
	ExerciseID uint      `gorm:"not null" json:"exerciseId"`
	Order      int       `gorm:"column:order;not null;default:0" json:"order"`
	Notes      *string   `gorm:"type:text" json:"notes"`
	CreatedAt  time.Time `gorm:"not null" json:"createdAt"`
}

// Set is one recorded attempt. Weight carries at most two fractional digits;
// the column is declared decimal(10,2).
type Set struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	WorkoutExerciseID uint      `gorm:"not null;index" json:"workoutExerciseId"`
	SetNumber         int       `gorm:"not null" json:"setNumber"`
	Weight            *float64  `gorm:"type:decimal(10,2)" json:"weight"`
	Reps              *int      `json:"reps"`
	Completed         bool      `gorm:"not null;default:false" json:"completed"`
	CreatedAt         time.Time `gorm:"not null" json:"createdAt"`
}
