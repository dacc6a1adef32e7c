package workouts

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/2beens/fittrack/pkg"
)

var (
	ErrWorkoutNotFound   = errors.New("workout not found")
	ErrScheduledNotFound = errors.New("scheduled workout not found")
)

type Exercise struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Sets     int     `json:"sets"`
	Reps     int     `json:"reps"`
	WeightKg float64 `json:"weightKg"`
	Notes    string  `json:"notes,omitempty"`
}

type Workout struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Exercises   []Exercise `json:"exercises"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// ScheduledWorkout binds a snapshot of a workout to a calendar date.
type ScheduledWorkout struct {
	ID        string    `json:"id"`
	Workout   Workout   `json:"workout"`
	Date      time.Time `json:"date"`
	Completed bool      `json:"completed"`
}

// Draft is the user editable part of a workout. Exercise ids in a draft are ignored.
type Draft struct {
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Exercises   []Exercise `json:"exercises"`
}

func ValidateDraft(draft Draft) error {
	if strings.TrimSpace(draft.Name) == "" {
		return pkg.NewInvalidInputError("name", "workout name is required")
	}
	if len(draft.Exercises) == 0 {
		return pkg.NewInvalidInputError("exercises", "at least one exercise is required")
	}

	for i, e := range draft.Exercises {
		field := fmt.Sprintf("exercises[%d]", i)
		if strings.TrimSpace(e.Name) == "" {
			return pkg.NewInvalidInputError(field+".name", "exercise name is required")
		}
		if e.Sets <= 0 {
			return pkg.NewInvalidInputError(field+".sets", "must be a positive integer")
		}
		if e.Reps <= 0 {
			return pkg.NewInvalidInputError(field+".reps", "must be a positive integer")
		}
		if !pkg.IsFinite(e.WeightKg) || e.WeightKg < 0 {
			return pkg.NewInvalidInputError(field+".weightKg", "must not be negative")
		}
	}

	return nil
}

// NewWorkout builds a workout from a validated draft, every exercise gets a fresh id.
func NewWorkout(draft Draft, createdAt time.Time, newID func() string) Workout {
	return Workout{
		ID:          newID(),
		Name:        strings.TrimSpace(draft.Name),
		Description: strings.TrimSpace(draft.Description),
		Exercises:   exercisesWithIDs(draft.Exercises, newID),
		CreatedAt:   createdAt,
	}
}

func exercisesWithIDs(exercises []Exercise, newID func() string) []Exercise {
	out := make([]Exercise, len(exercises))
	for i, e := range exercises {
		e.ID = newID()
		e.Name = strings.TrimSpace(e.Name)
		e.Notes = strings.TrimSpace(e.Notes)
		out[i] = e
	}
	return out
}
