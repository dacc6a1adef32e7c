package calories

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

// Calculation is a persisted calculation, never mutated after creation.
type Calculation struct {
	ID   string    `json:"id"`
	Date time.Time `json:"date"`
	BiometricInput
	Result
}

type Service struct {
	store          store.Store
	calculator     *Calculator
	notifier       notify.Sink
	metricsManager *metrics.Manager
	// guards load-modify-save of the history
	mutex sync.Mutex
	newID func() string
}

func NewService(
	st store.Store,
	notifier notify.Sink,
	metricsManager *metrics.Manager,
) *Service {
	return &Service{
		store:          st,
		calculator:     NewCalculator(),
		notifier:       notifier,
		metricsManager: metricsManager,
		newID:          uuid.NewString,
	}
}

func (s *Service) Calculate(ctx context.Context, input BiometricInput, now time.Time) (_ *Calculation, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.calories.calculate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := Validate(input); err != nil {
		s.notifier.Notify(ctx, "Please enter valid values for all fields!", notify.KindError)
		return nil, err
	}

	result := s.calculator.Compute(input)
	calculation := Calculation{
		ID:             s.newID(),
		Date:           now,
		BiometricInput: input,
		Result:         result,
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	history, err := store.LoadCollection[Calculation](ctx, s.store, store.KeyCalorieCalculations)
	if err != nil {
		s.notifier.Notify(ctx, "Failed to save the calculation", notify.KindError)
		return nil, fmt.Errorf("load history: %w", err)
	}

	// newest first
	history = append([]Calculation{calculation}, history...)
	if err := store.SaveCollection(ctx, s.store, store.KeyCalorieCalculations, history); err != nil {
		s.notifier.Notify(ctx, "Failed to save the calculation", notify.KindError)
		return nil, fmt.Errorf("save history: %w", err)
	}

	if s.metricsManager != nil {
		s.metricsManager.CounterCalculations.WithLabelValues(string(input.Goal)).Inc()
	}

	if result.Infeasible {
		log.Debugf("infeasible goal [%s] for %.1f kg: carbs %d g", input.Goal, input.WeightKg, result.CarbGrams)
		s.notifier.Notify(ctx, "Goal infeasible: protein and fat exceed the calorie target", notify.KindWarning)
	}
	s.notifier.Notify(ctx, "Calculation completed successfully!", notify.KindSuccess)

	return &calculation, nil
}

func (s *Service) History(ctx context.Context) (_ []Calculation, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.calories.history")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	s.mutex.Lock()
	defer s.mutex.Unlock()

	return store.LoadCollection[Calculation](ctx, s.store, store.KeyCalorieCalculations)
}

func (s *Service) ClearHistory(ctx context.Context) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.calories.clearHistory")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	s.mutex.Lock()
	defer s.mutex.Unlock()

	if err := store.SaveCollection(ctx, s.store, store.KeyCalorieCalculations, []Calculation{}); err != nil {
		s.notifier.Notify(ctx, "Failed to clear the history", notify.KindError)
		return fmt.Errorf("clear history: %w", err)
	}

	s.notifier.Notify(ctx, "Calculation history cleared", notify.KindInfo)
	return nil
}
