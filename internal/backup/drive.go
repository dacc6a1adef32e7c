package backup

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/2beens/fittrack/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

const (
	DefaultFolderName = "fittrack-backup"
	folderMimeType    = "application/vnd.google-apps.folder"
	backupMimeType    = "application/json"
)

type GoogleDriveBackupService struct {
	service    *drive.Service
	folderName string
	folderID   string
}

// NewGoogleDriveBackupService connects to drive and makes sure the backups folder exists.
// Production callers pass option.WithCredentialsJSON.
func NewGoogleDriveBackupService(
	ctx context.Context,
	folderName string,
	opts ...option.ClientOption,
) (*GoogleDriveBackupService, error) {
	// https://github.com/googleapis/google-api-go-client/blob/main/drive/v3/drive-gen.go
	driveService, err := drive.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve drive client: %w", err)
	}

	if folderName == "" {
		folderName = DefaultFolderName
	}

	s := &GoogleDriveBackupService{
		service:    driveService,
		folderName: folderName,
	}

	folderID, err := s.findFolder(ctx)
	if err != nil {
		return nil, fmt.Errorf("find backups folder: %w", err)
	}

	if folderID == "" {
		log.Println("backups folder not found, creating ...")
		folderID, err = s.createFolder(ctx)
		if err != nil {
			return nil, fmt.Errorf("create backups folder: %w", err)
		}
		log.Printf("new backups folder created: %s", folderID)
	} else {
		log.Debugf("found backups folder ID: %s", folderID)
	}

	s.folderID = folderID

	return s, nil
}

func (s *GoogleDriveBackupService) FolderID() string {
	return s.folderID
}

func (s *GoogleDriveBackupService) findFolder(ctx context.Context) (string, error) {
	query := fmt.Sprintf("mimeType = '%s' and trashed = false and name = '%s'", folderMimeType, s.folderName)
	folders, err := s.service.
		Files.List().
		Q(query).
		Fields("files(id, name)").
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("unable to retrieve files: %w", err)
	}

	switch len(folders.Files) {
	case 0:
		return "", nil
	case 1:
		return folders.Files[0].Id, nil
	default:
		log.Warnf("found %d backups folders named [%s], will take the first one: %s", len(folders.Files), s.folderName, folders.Files[0].Id)
		return folders.Files[0].Id, nil
	}
}

func (s *GoogleDriveBackupService) createFolder(ctx context.Context) (string, error) {
	folderMeta := &drive.File{
		Name:     s.folderName,
		MimeType: folderMimeType,
	}

	created, err := s.service.
		Files.Create(folderMeta).
		Fields("id").
		Context(ctx).
		Do()
	if err != nil {
		return "", err
	}

	return created.Id, nil
}

// Upload stores data as a new file in the backups folder and returns the file ID.
func (s *GoogleDriveBackupService) Upload(ctx context.Context, name string, data []byte) (_ string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "backup.drive.upload")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	fileMeta := &drive.File{
		Name:     name,
		MimeType: backupMimeType,
		Parents:  []string{s.folderID},
	}

	created, err := s.service.
		Files.Create(fileMeta).
		Fields("id, parents").
		Media(bytes.NewReader(data)).
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("%s: create backup file: %w", name, err)
	}

	return created.Id, nil
}

// List returns the backup files, oldest first.
func (s *GoogleDriveBackupService) List(ctx context.Context) ([]*drive.File, error) {
	query := fmt.Sprintf("'%s' in parents and mimeType != '%s' and trashed = false", s.folderID, folderMimeType)
	backups, err := s.service.
		Files.List().
		Q(query).
		Fields("files(id, name, createdTime)").
		Context(ctx).
		Do()
	if err != nil {
		return nil, err
	}

	files := backups.Files
	sort.SliceStable(files, func(i, j int) bool {
		return fileCreatedAt(files[i]).Before(fileCreatedAt(files[j]))
	})

	return files, nil
}

// Prune deletes the oldest backups so that at most keep remain.
// keep <= 0 disables pruning.
func (s *GoogleDriveBackupService) Prune(ctx context.Context, keep int) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "backup.drive.prune")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if keep <= 0 {
		return 0, nil
	}

	files, err := s.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("list backups: %w", err)
	}
	if len(files) <= keep {
		return 0, nil
	}

	deleted := 0
	for _, file := range files[:len(files)-keep] {
		if err := s.service.Files.Delete(file.Id).Context(ctx).Do(); err != nil {
			return deleted, fmt.Errorf("delete backup %s (%s): %w", file.Name, file.Id, err)
		}
		log.Debugf("old backup deleted: %s (%s)", file.Name, file.Id)
		deleted++
	}

	return deleted, nil
}

func fileCreatedAt(f *drive.File) time.Time {
	createdAt, err := time.Parse(time.RFC3339, f.CreatedTime)
	if err != nil {
		log.Tracef("error parsing created at for file %s: %s", f.Name, err)
		return time.Time{}
	}
	return createdAt
}
