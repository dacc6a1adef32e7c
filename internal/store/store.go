package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/2beens/fittrack/internal/telemetry/tracing"
)

// collection keys
const (
	KeyWorkouts            = "workouts"
	KeyScheduledWorkouts   = "scheduledWorkouts"
	KeyCalorieCalculations = "calorieCalculations"
	KeyWeightRecords       = "weightRecords"
)

var AllKeys = []string{
	KeyWorkouts,
	KeyScheduledWorkouts,
	KeyCalorieCalculations,
	KeyWeightRecords,
}

// Store keeps serialized collections under string keys.
// Load returns nil data and nil error when the key was never saved.
type Store interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, data []byte) error
}

// LoadCollection reads and decodes the collection under key.
// A missing key gives an empty, non-nil slice.
func LoadCollection[T any](ctx context.Context, s Store, key string) (_ []T, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.loadCollection")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	data, err := s.Load(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("load [%s]: %w", key, err)
	}

	items := make([]T, 0)
	if len(data) == 0 {
		return items, nil
	}

	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decode [%s]: %w", key, err)
	}

	return items, nil
}

func SaveCollection[T any](ctx context.Context, s Store, key string, items []T) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "store.saveCollection")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if items == nil {
		items = []T{}
	}

	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode [%s]: %w", key, err)
	}

	if err := s.Save(ctx, key, data); err != nil {
		return fmt.Errorf("save [%s]: %w", key, err)
	}

	return nil
}
