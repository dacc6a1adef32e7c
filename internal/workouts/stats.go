package workouts

import (
	"math"
	"sort"
	"time"
)

const (
	oneDay = 24 * time.Hour
	// one rest day between completed workouts does not break a streak
	maxStreakGapDays = 2
)

type Stats struct {
	Total           int       `json:"total"`
	Completed       int       `json:"completed"`
	CompletionRate  int       `json:"completionRate"`
	WeeklyTotal     int       `json:"weeklyTotal"`
	WeeklyCompleted int       `json:"weeklyCompleted"`
	WeeklyProgress  int       `json:"weeklyProgress"`
	WeekStart       time.Time `json:"weekStart"`
	WeekEnd         time.Time `json:"weekEnd"`
	CurrentStreak   int       `json:"currentStreak"`
	LongestStreak   int       `json:"longestStreak"`
}

// ComputeStats derives completion metrics from the records. It is pure and
// the result does not depend on the order of records.
func ComputeStats(records []ScheduledWorkout, now time.Time) Stats {
	weekStart, weekEnd := WeekBounds(now)
	stats := Stats{
		Total:     len(records),
		WeekStart: weekStart,
		WeekEnd:   weekEnd,
	}

	completedDates := make([]time.Time, 0, len(records))
	for _, r := range records {
		inWeek := !r.Date.Before(weekStart) && !r.Date.After(weekEnd)
		if inWeek {
			stats.WeeklyTotal++
		}
		if !r.Completed {
			continue
		}
		stats.Completed++
		if inWeek {
			stats.WeeklyCompleted++
		}
		completedDates = append(completedDates, r.Date)
	}

	stats.CompletionRate = percent(stats.Completed, stats.Total)
	stats.WeeklyProgress = percent(stats.WeeklyCompleted, stats.WeeklyTotal)
	stats.CurrentStreak, stats.LongestStreak = streaks(completedDates)

	return stats
}

// WeekBounds gives Monday 00:00 and the last nanosecond of Sunday of the
// week containing now, in now's location.
func WeekBounds(now time.Time) (time.Time, time.Time) {
	y, m, d := now.Date()
	midnight := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	sinceMonday := (int(now.Weekday()) + 6) % 7
	start := midnight.AddDate(0, 0, -sinceMonday)
	end := start.AddDate(0, 0, 7).Add(-time.Nanosecond)
	return start, end
}

// streaks walks completed dates newest first. current is the run still open
// when the walk ends, which is the oldest run; longest is the longest run.
// dates is sorted in place, callers pass their own copy.
func streaks(dates []time.Time) (current, longest int) {
	if len(dates) == 0 {
		return 0, 0
	}

	sort.Slice(dates, func(i, j int) bool {
		return dates[i].After(dates[j])
	})

	run := 1
	for i := 1; i < len(dates); i++ {
		if gapDays(dates[i-1], dates[i]) <= maxStreakGapDays {
			run++
			continue
		}
		longest = max(longest, run)
		run = 1
	}
	longest = max(longest, run)

	return run, longest
}

// gapDays is the number of started days between a and b.
func gapDays(a, b time.Time) int {
	diff := a.Sub(b)
	if diff < 0 {
		diff = -diff
	}
	days := int(diff / oneDay)
	if diff%oneDay != 0 {
		days++
	}
	return days
}

func percent(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(part) / float64(total)))
}
