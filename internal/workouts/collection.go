package workouts

import (
	"strings"
	"time"
)

// The functions below never modify the slices they get, they always
// return new ones.

func AddWorkout(ws []Workout, w Workout) []Workout {
	out := make([]Workout, 0, len(ws)+1)
	out = append(out, ws...)
	return append(out, w)
}

func FindWorkout(ws []Workout, id string) (Workout, bool) {
	for _, w := range ws {
		if w.ID == id {
			return w, true
		}
	}
	return Workout{}, false
}

// ReplaceWorkout keeps the id and creation time of the workout and
// replaces everything else with the draft.
func ReplaceWorkout(ws []Workout, id string, draft Draft, newID func() string) ([]Workout, error) {
	idx := workoutIndex(ws, id)
	if idx < 0 {
		return nil, ErrWorkoutNotFound
	}

	updated := Workout{
		ID:          id,
		Name:        strings.TrimSpace(draft.Name),
		Description: strings.TrimSpace(draft.Description),
		Exercises:   exercisesWithIDs(draft.Exercises, newID),
		CreatedAt:   ws[idx].CreatedAt,
	}

	out := make([]Workout, len(ws))
	copy(out, ws)
	out[idx] = updated
	return out, nil
}

// RemoveWorkout also drops every scheduled record of that workout.
func RemoveWorkout(ws []Workout, ss []ScheduledWorkout, id string) ([]Workout, []ScheduledWorkout, error) {
	if workoutIndex(ws, id) < 0 {
		return nil, nil, ErrWorkoutNotFound
	}

	outWorkouts := make([]Workout, 0, len(ws))
	for _, w := range ws {
		if w.ID != id {
			outWorkouts = append(outWorkouts, w)
		}
	}

	outScheduled := make([]ScheduledWorkout, 0, len(ss))
	for _, s := range ss {
		if s.Workout.ID != id {
			outScheduled = append(outScheduled, s)
		}
	}

	return outWorkouts, outScheduled, nil
}

func AddScheduled(ss []ScheduledWorkout, s ScheduledWorkout) []ScheduledWorkout {
	out := make([]ScheduledWorkout, 0, len(ss)+1)
	out = append(out, ss...)
	return append(out, s)
}

func SetCompleted(ss []ScheduledWorkout, id string, completed bool) ([]ScheduledWorkout, error) {
	return updateScheduled(ss, id, func(s *ScheduledWorkout) {
		s.Completed = completed
	})
}

func ToggleCompleted(ss []ScheduledWorkout, id string) ([]ScheduledWorkout, error) {
	return updateScheduled(ss, id, func(s *ScheduledWorkout) {
		s.Completed = !s.Completed
	})
}

func RemoveScheduled(ss []ScheduledWorkout, id string) ([]ScheduledWorkout, error) {
	idx := scheduledIndex(ss, id)
	if idx < 0 {
		return nil, ErrScheduledNotFound
	}

	out := make([]ScheduledWorkout, 0, len(ss)-1)
	out = append(out, ss[:idx]...)
	return append(out, ss[idx+1:]...), nil
}

func FindScheduled(ss []ScheduledWorkout, id string) (ScheduledWorkout, bool) {
	if idx := scheduledIndex(ss, id); idx >= 0 {
		return ss[idx], true
	}
	return ScheduledWorkout{}, false
}

// ScheduledOn returns the records on the same calendar day as day, in day's location.
func ScheduledOn(ss []ScheduledWorkout, day time.Time) []ScheduledWorkout {
	out := make([]ScheduledWorkout, 0)
	for _, s := range ss {
		if sameDay(s.Date, day) {
			out = append(out, s)
		}
	}
	return out
}

// AllCompletedOn reports whether there is at least one record on the day and all of them are completed.
func AllCompletedOn(ss []ScheduledWorkout, day time.Time) bool {
	onDay := ScheduledOn(ss, day)
	if len(onDay) == 0 {
		return false
	}
	for _, s := range onDay {
		if !s.Completed {
			return false
		}
	}
	return true
}

func updateScheduled(ss []ScheduledWorkout, id string, update func(s *ScheduledWorkout)) ([]ScheduledWorkout, error) {
	idx := scheduledIndex(ss, id)
	if idx < 0 {
		return nil, ErrScheduledNotFound
	}

	out := make([]ScheduledWorkout, len(ss))
	copy(out, ss)
	update(&out[idx])
	return out, nil
}

func workoutIndex(ws []Workout, id string) int {
	for i, w := range ws {
		if w.ID == id {
			return i
		}
	}
	return -1
}

func scheduledIndex(ss []ScheduledWorkout, id string) int {
	for i, s := range ss {
		if s.ID == id {
			return i
		}
	}
	return -1
}

func sameDay(t, day time.Time) bool {
	y1, m1, d1 := t.In(day.Location()).Date()
	y2, m2, d2 := day.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
