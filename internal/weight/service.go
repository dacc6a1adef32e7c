package weight

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
)

type Service struct {
	store          store.Store
	notifier       notify.Sink
	metricsManager *metrics.Manager
	mutex          sync.Mutex
	newID          func() string
	now            func() time.Time
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

// Add stores a new record; a zero date means now.
func (s *Service) Add(ctx context.Context, entry Entry) (_ *Record, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.weight.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := entry.Validate(); err != nil {
		s.notifier.Notify(ctx, "Please enter a valid weight", notify.KindError)
		return nil, err
	}
	if entry.Date.IsZero() {
		entry.Date = s.now()
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	records, err := store.LoadCollection[Record](ctx, s.store, store.KeyWeightRecords)
	if err != nil {
		return nil, fmt.Errorf("load weight records: %w", err)
	}

	record := NewRecord(s.newID(), entry)
	records = newestFirst(append(records, record))
	if err := store.SaveCollection(ctx, s.store, store.KeyWeightRecords, records); err != nil {
		s.notifier.Notify(ctx, "Failed to save the record", notify.KindError)
		return nil, fmt.Errorf("save weight records: %w", err)
	}

	if s.metricsManager != nil {
		s.metricsManager.CounterWeightRecords.Inc()
	}
	s.notifier.Notify(ctx, "Record added successfully!", notify.KindSuccess)

	return &record, nil
}

func (s *Service) Delete(ctx context.Context, id string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.weight.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	s.mutex.Lock()
	defer s.mutex.Unlock()

	records, err := store.LoadCollection[Record](ctx, s.store, store.KeyWeightRecords)
	if err != nil {
		return fmt.Errorf("load weight records: %w", err)
	}

	records, err = removeRecord(records, id)
	if err != nil {
		return err
	}
	if err := store.SaveCollection(ctx, s.store, store.KeyWeightRecords, records); err != nil {
		s.notifier.Notify(ctx, "Failed to delete the record", notify.KindError)
		return fmt.Errorf("save weight records: %w", err)
	}

	s.notifier.Notify(ctx, "Record deleted successfully!", notify.KindSuccess)
	return nil
}

// List returns all records, newest first.
func (s *Service) List(ctx context.Context) (_ []Record, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.weight.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	s.mutex.Lock()
	defer s.mutex.Unlock()

	records, err := store.LoadCollection[Record](ctx, s.store, store.KeyWeightRecords)
	if err != nil {
		return nil, fmt.Errorf("load weight records: %w", err)
	}
	return newestFirst(records), nil
}

func (s *Service) Summary(ctx context.Context) (*Summary, error) {
	records, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	summary := Summarize(records)
	return &summary, nil
}
