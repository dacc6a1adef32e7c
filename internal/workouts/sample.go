package workouts

import (
	"time"
)

// SampleData gives the two demo workouts shown on first use,
// scheduled for today and tomorrow.
func SampleData(now time.Time, newID func() string) ([]Workout, []ScheduledWorkout) {
	chest := NewWorkout(Draft{
		Name:        "Chest and Triceps",
		Description: "Hypertrophy focus with moderate loads",
		Exercises: []Exercise{
			{Name: "Flat Bench Press", Sets: 4, Reps: 12, WeightKg: 60},
			{Name: "Dumbbell Fly", Sets: 3, Reps: 15, WeightKg: 14},
			{Name: "Incline Bench Press", Sets: 3, Reps: 12, WeightKg: 50},
			{Name: "Triceps Rope Pushdown", Sets: 4, Reps: 12, WeightKg: 25},
			{Name: "French Press", Sets: 3, Reps: 12, WeightKg: 15},
		},
	}, now, newID)

	back := NewWorkout(Draft{
		Name:        "Back and Biceps",
		Description: "Width and thickness focus",
		Exercises: []Exercise{
			{Name: "Lat Pulldown", Sets: 4, Reps: 12, WeightKg: 70},
			{Name: "Bent Over Row", Sets: 3, Reps: 12, WeightKg: 50},
			{Name: "One Arm Dumbbell Row", Sets: 3, Reps: 12, WeightKg: 20},
			{Name: "Barbell Curl", Sets: 3, Reps: 12, WeightKg: 25},
			{Name: "Hammer Curl", Sets: 3, Reps: 12, WeightKg: 14},
		},
	}, now, newID)

	scheduled := []ScheduledWorkout{
		{ID: newID(), Workout: chest, Date: now},
		{ID: newID(), Workout: back, Date: now.AddDate(0, 0, 1)},
	}

	return []Workout{chest, back}, scheduled
}
