package workouts

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/2beens/fittrack/internal/notify"
	"github.com/2beens/fittrack/internal/store"
	"github.com/2beens/fittrack/internal/telemetry/metrics"
	"github.com/2beens/fittrack/internal/telemetry/tracing"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const dateFormat = "02/01/2006"

type Service struct {
	store          store.Store
	notifier       notify.Sink
	metricsManager *metrics.Manager
	// guards load-modify-save of both collections
	mutex sync.Mutex
	newID func() string
	now   func() time.Time
}

func NewService(
	st store.Store,
	notifier notify.Sink,
	metricsManager *metrics.Manager,
) *Service {
	return &Service{
		store:          st,
		notifier:       notifier,
		metricsManager: metricsManager,
		newID:          uuid.NewString,
		now:            time.Now,
	}
}

// load returns both collections, seeding the sample data if workouts were never saved.
func (s *Service) load(ctx context.Context) ([]Workout, []ScheduledWorkout, error) {
	raw, err := s.store.Load(ctx, store.KeyWorkouts)
	if err != nil {
		return nil, nil, fmt.Errorf("load workouts: %w", err)
	}
	if raw == nil {
		ws, ss := SampleData(s.now(), s.newID)
		if err := s.save(ctx, ws, ss); err != nil {
			return nil, nil, fmt.Errorf("seed sample data: %w", err)
		}
		log.Debugf("workouts: seeded %d sample workouts", len(ws))
		return ws, ss, nil
	}

	ws, err := store.LoadCollection[Workout](ctx, s.store, store.KeyWorkouts)
	if err != nil {
		return nil, nil, err
	}
	ss, err := store.LoadCollection[ScheduledWorkout](ctx, s.store, store.KeyScheduledWorkouts)
	if err != nil {
		return nil, nil, err
	}

	return ws, ss, nil
}

func (s *Service) save(ctx context.Context, ws []Workout, ss []ScheduledWorkout) error {
	if ws != nil {
		if err := store.SaveCollection(ctx, s.store, store.KeyWorkouts, ws); err != nil {
			return err
		}
	}
	if ss != nil {
		if err := store.SaveCollection(ctx, s.store, store.KeyScheduledWorkouts, ss); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) countOp(op string) {
	if s.metricsManager != nil {
		s.metricsManager.CounterWorkoutOps.WithLabelValues(op).Inc()
	}
}

func (s *Service) ListWorkouts(ctx context.Context) (_ []Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	s.mutex.Lock()
	defer s.mutex.Unlock()

	ws, _, err := s.load(ctx)
	return ws, err
}

func (s *Service) GetWorkout(ctx context.Context, id string) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	s.mutex.Lock()
	defer s.mutex.Unlock()

	ws, _, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	w, ok := FindWorkout(ws, id)
	if !ok {
		return nil, ErrWorkoutNotFound
	}
	return &w, nil
}

func (s *Service) CreateWorkout(ctx context.Context, draft Draft) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := ValidateDraft(draft); err != nil {
		s.notifier.Notify(ctx, err.Error(), notify.KindError)
		return nil, err
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	ws, _, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	w := NewWorkout(draft, s.now(), s.newID)
	if err := s.save(ctx, AddWorkout(ws, w), nil); err != nil {
		s.notifier.Notify(ctx, "Failed to save the workout", notify.KindError)
		return nil, err
	}

	s.countOp("create")
	s.notifier.Notify(ctx, "Workout created successfully!", notify.KindSuccess)
	return &w, nil
}

// UpdateWorkout does not touch the snapshots already scheduled.
func (s *Service) UpdateWorkout(ctx context.Context, id string, draft Draft) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := ValidateDraft(draft); err != nil {
		s.notifier.Notify(ctx, err.Error(), notify.KindError)
		return nil, err
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	ws, _, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	updated, err := ReplaceWorkout(ws, id, draft, s.newID)
	if err != nil {
		return nil, err
	}
	if err := s.save(ctx, updated, nil); err != nil {
		s.notifier.Notify(ctx, "Failed to save the workout", notify.KindError)
		return nil, err
	}

	w, _ := FindWorkout(updated, id)
	s.countOp("update")
	s.notifier.Notify(ctx, "Workout updated successfully!", notify.KindSuccess)
	return &w, nil
}

func (s *Service) DeleteWorkout(ctx context.Context, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workouts.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	s.mutex.Lock()
	defer s.mutex.Unlock()

	ws, ss, err := s.load(ctx)
	if err != nil {
		return err
	}

	ws, ss, err = RemoveWorkout(ws, ss, id)
	if err != nil {
		return err
	}
	if err := s.save(ctx, ws, ss); err != nil {
		s.notifier.Notify(ctx, "Failed to delete the workout", notify.KindError)
		return err
	}

	s.countOp("delete")
	s.notifier.Notify(ctx, "Workout deleted successfully!", notify.KindSuccess)
	return nil
}

// ListScheduled returns all scheduled records, or only those on the given day.
func (s *Service) ListScheduled(ctx context.Context, day *time.Time) (_ []ScheduledWorkout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.schedule.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	s.mutex.Lock()
	defer s.mutex.Unlock()

	_, ss, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	if day == nil {
		return ss, nil
	}
	return ScheduledOn(ss, *day), nil
}

func (s *Service) Schedule(ctx context.Context, workoutID string, date time.Time) (_ *ScheduledWorkout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.schedule.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if date.IsZero() {
		date = s.now()
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	ws, ss, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	w, ok := FindWorkout(ws, workoutID)
	if !ok {
		return nil, ErrWorkoutNotFound
	}

	scheduled := ScheduledWorkout{
		ID:      s.newID(),
		Workout: w,
		Date:    date,
	}
	if err := s.save(ctx, nil, AddScheduled(ss, scheduled)); err != nil {
		s.notifier.Notify(ctx, "Failed to schedule the workout", notify.KindError)
		return nil, err
	}

	s.countOp("schedule")
	s.notifier.Notify(ctx, fmt.Sprintf("Workout scheduled for %s", date.Format(dateFormat)), notify.KindSuccess)
	return &scheduled, nil
}

func (s *Service) SetCompleted(ctx context.Context, id string, completed bool) (*ScheduledWorkout, error) {
	return s.updateScheduled(ctx, "service.schedule.setCompleted", id, func(ss []ScheduledWorkout) ([]ScheduledWorkout, error) {
		return SetCompleted(ss, id, completed)
	})
}

func (s *Service) ToggleCompleted(ctx context.Context, id string) (*ScheduledWorkout, error) {
	return s.updateScheduled(ctx, "service.schedule.toggleCompleted", id, func(ss []ScheduledWorkout) ([]ScheduledWorkout, error) {
		return ToggleCompleted(ss, id)
	})
}

func (s *Service) updateScheduled(
	ctx context.Context,
	spanName, id string,
	update func(ss []ScheduledWorkout) ([]ScheduledWorkout, error),
) (_ *ScheduledWorkout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, spanName)
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	s.mutex.Lock()
	defer s.mutex.Unlock()

	_, ss, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	ss, err = update(ss)
	if err != nil {
		return nil, err
	}
	if err := s.save(ctx, nil, ss); err != nil {
		return nil, err
	}

	s.countOp("complete")
	updated, _ := FindScheduled(ss, id)
	return &updated, nil
}

func (s *Service) Unschedule(ctx context.Context, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.schedule.remove")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	s.mutex.Lock()
	defer s.mutex.Unlock()

	_, ss, err := s.load(ctx)
	if err != nil {
		return err
	}

	ss, err = RemoveScheduled(ss, id)
	if err != nil {
		return err
	}
	if err := s.save(ctx, nil, ss); err != nil {
		return err
	}

	s.countOp("unschedule")
	s.notifier.Notify(ctx, "Scheduled workout removed", notify.KindInfo)
	return nil
}

func (s *Service) Stats(ctx context.Context, now time.Time) (_ *Stats, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.schedule.stats")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	s.mutex.Lock()
	defer s.mutex.Unlock()

	_, ss, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	stats := ComputeStats(ss, now)
	return &stats, nil
}
