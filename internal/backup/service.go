package backup

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/2beens/fittrack/internal/store"
	"github.com/2beens/fittrack/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=backup_test

type uploader interface {
	Upload(ctx context.Context, name string, data []byte) (string, error)
	Prune(ctx context.Context, keep int) (int, error)
}

type Result struct {
	FileName string
	FileID   string
	Pruned   int
}

type Service struct {
	store    store.Store
	uploader uploader
	keep     int
}

// NewService creates a backup service. keep is the number of backups left
// on the remote side after each run, 0 keeps all of them.
func NewService(st store.Store, uploader uploader, keep int) *Service {
	return &Service{
		store:    st,
		uploader: uploader,
		keep:     keep,
	}
}

func (s *Service) Run(ctx context.Context, now time.Time) (_ *Result, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "backup.run")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	snapshot, err := BuildSnapshot(ctx, s.store, now)
	if err != nil {
		return nil, fmt.Errorf("build snapshot: %w", err)
	}

	data, err := json.Marshal(snapshot)
	if err != nil {
		return nil, fmt.Errorf("marshal snapshot: %w", err)
	}

	name := FileName(now)
	log.Printf("uploading backup %s (%d bytes) ...", name, len(data))

	fileID, err := s.uploader.Upload(ctx, name, data)
	if err != nil {
		return nil, fmt.Errorf("upload: %w", err)
	}

	res := &Result{
		FileName: name,
		FileID:   fileID,
	}

	pruned, err := s.uploader.Prune(ctx, s.keep)
	if err != nil {
		// backup itself is done at this point
		log.Errorf("prune old backups: %s", err)
		return res, nil
	}
	res.Pruned = pruned

	return res, nil
}
