//go:build integration_test || all_tests

package test

import (
	"context"
	"net/http"
	"time"

	"github.com/2beens/fittrack/internal/calories"
	"github.com/2beens/fittrack/internal/weight"
	"github.com/2beens/fittrack/internal/workouts"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *IntegrationTestSuite) TestCalories() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	token := s.doLogin(ctx, t)
	s.doAuthRequest(ctx, t, token, "DELETE", "/calories/history", nil, http.StatusOK, nil)

	input := calories.BiometricInput{
		Sex:           calories.SexMale,
		AgeYears:      30,
		WeightKg:      80,
		HeightCm:      180,
		ActivityLevel: calories.ActivityModerate,
		Goal:          calories.GoalMaintain,
	}

	var calculation calories.Calculation
	s.doAuthRequest(ctx, t, token, "POST", "/calories/calculate", input, http.StatusCreated, &calculation)
	assert.NotEmpty(t, calculation.ID)
	assert.Equal(t, 1854, calculation.BMR)
	assert.Equal(t, 2873, calculation.TDEE)
	assert.Equal(t, 2873, calculation.TargetCalories)
	assert.False(t, calculation.Infeasible)

	input.AgeYears = 0
	s.doAuthRequest(ctx, t, token, "POST", "/calories/calculate", input, http.StatusBadRequest, nil)

	var history []calories.Calculation
	s.doAuthRequest(ctx, t, token, "GET", "/calories/history", nil, http.StatusOK, &history)
	require.Len(t, history, 1)
	assert.Equal(t, calculation.ID, history[0].ID)
}

func (s *IntegrationTestSuite) TestWorkoutsAndSchedule() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	token := s.doLogin(ctx, t)

	var existing []workouts.Workout
	s.doAuthRequest(ctx, t, token, "GET", "/workouts", nil, http.StatusOK, &existing)
	// sample workouts on first load
	require.NotEmpty(t, existing)

	draft := workouts.Draft{
		Name: gofakeit.Word() + " day",
		Exercises: []workouts.Exercise{
			{Name: gofakeit.Word(), Sets: 3, Reps: 10, WeightKg: 42.5},
			{Name: gofakeit.Word(), Sets: 4, Reps: 8},
		},
	}
	var created workouts.Workout
	s.doAuthRequest(ctx, t, token, "POST", "/workouts", draft, http.StatusCreated, &created)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, draft.Name, created.Name)
	require.Len(t, created.Exercises, 2)
	assert.Equal(t, 42.5, created.Exercises[0].WeightKg)

	s.doAuthRequest(ctx, t, token, "POST", "/workouts", workouts.Draft{Name: "empty"}, http.StatusBadRequest, nil)

	var scheduled workouts.ScheduledWorkout
	s.doAuthRequest(
		ctx, t, token, "POST", "/workouts/"+created.ID+"/schedule",
		workouts.ScheduleRequest{Date: time.Now()},
		http.StatusCreated, &scheduled,
	)
	assert.Equal(t, created.ID, scheduled.Workout.ID)
	assert.False(t, scheduled.Completed)

	var toggled workouts.ScheduledWorkout
	s.doAuthRequest(ctx, t, token, "POST", "/schedule/"+scheduled.ID+"/toggle", nil, http.StatusOK, &toggled)
	assert.True(t, toggled.Completed)

	var stats workouts.Stats
	s.doAuthRequest(ctx, t, token, "GET", "/schedule/stats", nil, http.StatusOK, &stats)
	assert.GreaterOrEqual(t, stats.Total, 1)
	assert.GreaterOrEqual(t, stats.Completed, 1)
	assert.GreaterOrEqual(t, stats.CurrentStreak, 1)

	// removing the workout removes its schedule too
	s.doAuthRequest(ctx, t, token, "DELETE", "/workouts/"+created.ID, nil, http.StatusOK, nil)
	s.doAuthRequest(ctx, t, token, "DELETE", "/schedule/"+scheduled.ID, nil, http.StatusNotFound, nil)
	s.doAuthRequest(ctx, t, token, "GET", "/workouts/"+created.ID, nil, http.StatusNotFound, nil)
}

func (s *IntegrationTestSuite) TestWeight() {
	t := s.T()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	token := s.doLogin(ctx, t)

	now := time.Now()
	var first, second weight.Record
	s.doAuthRequest(ctx, t, token, "POST", "/weight", weight.Entry{WeightKg: 81.24, Date: now.Add(-48 * time.Hour)}, http.StatusCreated, &first)
	s.doAuthRequest(ctx, t, token, "POST", "/weight", weight.Entry{WeightKg: 80.5, Date: now, Notes: " after run "}, http.StatusCreated, &second)
	assert.Equal(t, 81.2, first.WeightKg)
	assert.Equal(t, "after run", second.Notes)

	s.doAuthRequest(ctx, t, token, "POST", "/weight", weight.Entry{WeightKg: -1}, http.StatusBadRequest, nil)

	var summary weight.Summary
	s.doAuthRequest(ctx, t, token, "GET", "/weight/summary", nil, http.StatusOK, &summary)
	require.Equal(t, 2, summary.Count)
	assert.Equal(t, -0.7, summary.Diff)
	require.Len(t, summary.Entries, 2)
	assert.Equal(t, second.ID, summary.Entries[0].ID)
	require.NotNil(t, summary.Entries[0].Change)
	assert.Equal(t, -0.7, *summary.Entries[0].Change)
	assert.Nil(t, summary.Entries[1].Change)

	s.doAuthRequest(ctx, t, token, "DELETE", "/weight/"+first.ID, nil, http.StatusOK, nil)
	s.doAuthRequest(ctx, t, token, "DELETE", "/weight/"+first.ID, nil, http.StatusNotFound, nil)

	var records []weight.Record
	s.doAuthRequest(ctx, t, token, "GET", "/weight", nil, http.StatusOK, &records)
	require.Len(t, records, 1)
	assert.Equal(t, second.ID, records[0].ID)
}
