package backup

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/2beens/fittrack/internal/store"
	"github.com/2beens/fittrack/internal/telemetry/tracing"
)

const fileNameLayout = "20060102-150405"

// Snapshot holds every stored collection as raw JSON, keyed by collection key.
type Snapshot struct {
	CreatedAt   time.Time                  `json:"createdAt"`
	Collections map[string]json.RawMessage `json:"collections"`
}

func FileName(createdAt time.Time) string {
	return fmt.Sprintf("fittrack-backup-%s.json", createdAt.UTC().Format(fileNameLayout))
}

// BuildSnapshot reads all known collections from the store.
// Collections never saved end up as empty JSON arrays.
func BuildSnapshot(ctx context.Context, st store.Store, now time.Time) (_ *Snapshot, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "backup.buildSnapshot")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	snapshot := &Snapshot{
		CreatedAt:   now,
		Collections: make(map[string]json.RawMessage, len(store.AllKeys)),
	}

	for _, key := range store.AllKeys {
		data, err := st.Load(ctx, key)
		if err != nil {
			return nil, fmt.Errorf("load collection [%s]: %w", key, err)
		}

		data = bytes.TrimSpace(data)
		if len(data) == 0 {
			data = []byte("[]")
		}
		if !json.Valid(data) {
			return nil, fmt.Errorf("collection [%s] holds invalid json", key)
		}

		snapshot.Collections[key] = data
	}

	return snapshot, nil
}

// Restore writes every collection of the snapshot back to the store.
// Unknown collection keys are rejected before anything is written.
func Restore(ctx context.Context, st store.Store, snapshot *Snapshot) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "backup.restore")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	known := make(map[string]bool, len(store.AllKeys))
	for _, key := range store.AllKeys {
		known[key] = true
	}
	for key, data := range snapshot.Collections {
		if !known[key] {
			return fmt.Errorf("unknown collection [%s]", key)
		}
		if !json.Valid(data) {
			return fmt.Errorf("collection [%s] holds invalid json", key)
		}
	}

	for _, key := range store.AllKeys {
		data, ok := snapshot.Collections[key]
		if !ok {
			continue
		}
		if err := st.Save(ctx, key, data); err != nil {
			return fmt.Errorf("save collection [%s]: %w", key, err)
		}
	}

	return nil
}
