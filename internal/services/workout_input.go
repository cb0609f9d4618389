package services

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

const (
	maxWorkoutNameLength  = 255
	maxWorkoutNotesLength = 1000
)

// Date inputs are checked for shape only; calendar validity is left to the
// storage layer, so "2024-02-31" passes here and is stored as given.
var workoutDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// WorkoutInput carries the caller-supplied workout metadata for both create
// and update.
type WorkoutInput struct {
	Name  string
	Date  string
	Notes *string
}

// ValidationError reports every offending field at once; no partial
// application ever happens on a failed input.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		names = append(names, field)
	}
	sort.Strings(names)
	return fmt.Sprintf("validation failed: %s", strings.Join(names, ", "))
}

func ValidateWorkoutInput(input WorkoutInput) error {
	fields := make(map[string]string)

	if input.Name == "" {
		fields["name"] = "workout name is required"
	} else if utf8.RuneCountInString(input.Name) > maxWorkoutNameLength {
		fields["name"] = fmt.Sprintf("workout name must be at most %d characters", maxWorkoutNameLength)
	}

	if !workoutDatePattern.MatchString(input.Date) {
		fields["date"] = "invalid date format"
	}

	if input.Notes != nil && utf8.RuneCountInString(*input.Notes) > maxWorkoutNotesLength {
		fields["notes"] = fmt.Sprintf("notes must be at most %d characters", maxWorkoutNotesLength)
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
