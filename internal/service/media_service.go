package service

import (
	"context"
	"io"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/robinboard/api/internal/dto"
	"github.com/robinboard/api/internal/models"
	"github.com/robinboard/api/internal/realtime"
	appErrors "github.com/robinboard/api/pkg/errors"
)

type mediaRepository interface {
	Captions(ctx context.Context) (map[string]string, error)
	Create(ctx context.Context, filename string) error
	UpsertCaption(ctx context.Context, filename, caption string) error
	Delete(ctx context.Context, filename string) error
}

type mediaStorage interface {
	SaveStream(filename string, r io.Reader) (string, error)
	List() ([]string, error)
	Delete(filename string) error
}

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9_.-]`)

// MediaService manages the slider uploads. The uploads directory is the
// source of truth for existence; the metadata rows only carry captions.
type MediaService struct {
	repo      mediaRepository
	store     mediaStorage
	publisher realtime.Publisher
	logger    *zap.Logger
	urlPrefix string
}

// NewMediaService constructs a MediaService.
func NewMediaService(repo mediaRepository, store mediaStorage, publisher realtime.Publisher, logger *zap.Logger, urlPrefix string) *MediaService {
	if publisher == nil {
		publisher = realtime.Nop{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if urlPrefix == "" {
		urlPrefix = "/static/uploads"
	}
	return &MediaService{repo: repo, store: store, publisher: publisher, logger: logger, urlPrefix: urlPrefix}
}

// List enumerates the uploads directory filtered to allowed extensions,
// sorted by filename, each entry annotated with its stored caption.
func (s *MediaService) List(ctx context.Context) ([]dto.MediaItem, error) {
	names, err := s.store.List()
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Yükleme klasörü okunamadı")
	}
	captions, err := s.repo.Captions(ctx)
	if err != nil {
		return nil, storeUnavailable(err)
	}

	items := make([]dto.MediaItem, 0, len(names))
	for _, name := range names {
		kind, ok := models.MediaTypeFor(name)
		if !ok {
			continue
		}
		items = append(items, dto.MediaItem{
			Name: name,
			// Relative paths so reverse-proxy TLS termination cannot
			// downgrade URLs.
			URL:     s.urlPrefix + "/" + name,
			Caption: captions[name],
			Type:    kind,
		})
	}
	return items, nil
}

// Upload stores the file under a token-prefixed unique name, creates its
// metadata row and broadcasts the change. Repeated uploads of the same
// original name always yield distinct stored names.
func (s *MediaService) Upload(ctx context.Context, originalName string, r io.Reader) (string, error) {
	if originalName == "" {
		return "", appErrors.Clone(appErrors.ErrValidation, "Dosya seçilmedi")
	}
	if _, ok := models.MediaTypeFor(originalName); !ok {
		return "", appErrors.Clone(appErrors.ErrValidation, "Desteklenmeyen dosya türü")
	}

	unique := uploadToken() + "-" + sanitizeFilename(originalName)
	if _, err := s.store.SaveStream(unique, r); err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Dosya kaydedilemedi")
	}
	if err := s.repo.Create(ctx, unique); err != nil {
		return "", storeUnavailable(err)
	}

	s.publisher.Broadcast(realtime.EventMediaChanged, dto.MediaEvent{Action: "upload", Filename: unique})
	return unique, nil
}

// UpdateCaption upserts the caption for a filename. Whether the file
// still exists on disk is not checked; listing ignores orphan rows.
func (s *MediaService) UpdateCaption(ctx context.Context, filename, caption string) error {
	if err := s.repo.UpsertCaption(ctx, filename, caption); err != nil {
		return storeUnavailable(err)
	}
	s.publisher.Broadcast(realtime.EventMediaChanged, dto.MediaEvent{Action: "update", Filename: filename})
	return nil
}

// Delete removes the file best-effort and the metadata unconditionally.
// A disk removal failure is logged and swallowed; the metadata row is
// authoritative for listings either way.
func (s *MediaService) Delete(ctx context.Context, filename string) error {
	if filename == "" {
		return appErrors.Clone(appErrors.ErrValidation, "Dosya adı eksik")
	}
	if err := s.store.Delete(filename); err != nil {
		s.logger.Warn("failed to remove uploaded file", zap.String("filename", filename), zap.Error(err))
	}
	if err := s.repo.Delete(ctx, filename); err != nil {
		return storeUnavailable(err)
	}
	s.publisher.Broadcast(realtime.EventMediaChanged, dto.MediaEvent{Action: "delete", Filename: filename})
	return nil
}

// uploadToken returns the 8-hex-char uniqueness prefix.
func uploadToken() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}

// sanitizeFilename strips path components and characters outside
// [A-Za-z0-9_.-], mirroring the usual secure-filename behaviour.
func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, " ", "_")
	name = unsafeFilenameChars.ReplaceAllString(name, "")
	name = strings.TrimLeft(name, ".-")
	if name == "" {
		name = "dosya"
	}
	return name
}
