package upload

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"awards-board/internal/config"
	"awards-board/internal/metrics"
	"awards-board/internal/service/results"
	"awards-board/internal/tournament"
	appErr "awards-board/pkg/errors"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Computer interface {
	Compute(raw []byte) *tournament.Result
}

type Publisher interface {
	Publish(ctx context.Context, entry results.Entry) error
}

// Recorder counts upload outcomes.
type Recorder interface {
	ObserveUpload(outcome string)
}

type Service struct {
	engine     Computer
	publisher  Publisher
	recorder   Recorder
	maxBytes   int64
	extensions []string
	log        *zap.Logger
}

type Outcome struct {
	UploadID string             `json:"upload_id"`
	Result   *tournament.Result `json:"results"`
}

// NewService accepts a nil recorder.
func NewService(engine Computer, publisher Publisher, recorder Recorder, conf config.UploadConfig, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	exts := make([]string, 0, len(conf.Extensions))
	for _, e := range conf.Extensions {
		e = strings.ToLower(strings.TrimSpace(e))
		if e != "" && !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		if e != "" {
			exts = append(exts, e)
		}
	}
	return &Service{
		engine:     engine,
		publisher:  publisher,
		recorder:   recorder,
		maxBytes:   conf.MaxBytes,
		extensions: exts,
		log:        log,
	}
}

func (s *Service) MaxBytes() int64 {
	return s.maxBytes
}

// Validate checks the file name and content without computing anything.
func (s *Service) Validate(filename string, data []byte) error {
	if !s.allowed(filename) {
		return fmt.Errorf("%w: %q", appErr.ErrUnsupportedFile, filepath.Ext(filename))
	}
	if len(data) == 0 {
		return appErr.ErrEmptyUpload
	}
	if s.maxBytes > 0 && int64(len(data)) > s.maxBytes {
		return fmt.Errorf("%w: %d bytes", appErr.ErrUploadTooLarge, len(data))
	}
	if mt := mimetype.Detect(data); !mt.Is("text/plain") && !strings.HasPrefix(mt.String(), "text/") {
		return fmt.Errorf("%w: detected %s", appErr.ErrNotText, mt.String())
	}
	return nil
}

// Process computes and publishes a result for an uploaded hand history.
func (s *Service) Process(ctx context.Context, filename string, data []byte) (*Outcome, error) {
	if err := s.Validate(filename, data); err != nil {
		s.observe(metrics.OutcomeRejected)
		s.log.Info("upload rejected", zap.String("filename", filename), zap.Error(err))
		return nil, err
	}

	id := uuid.NewString()
	log := s.log.With(zap.String("uploadID", id), zap.String("filename", filename))
	log.Info("processing upload", zap.Int("bytes", len(data)))

	res := s.engine.Compute(data)
	if err := s.publisher.Publish(ctx, results.Entry{UploadID: id, Filename: filename, Result: res}); err != nil {
		log.Error("publishing result failed", zap.Error(err))
		s.observe(metrics.OutcomeFailed)
		return nil, err
	}
	s.observe(metrics.OutcomePublished)
	return &Outcome{UploadID: id, Result: res}, nil
}

func (s *Service) observe(outcome string) {
	if s.recorder != nil {
		s.recorder.ObserveUpload(outcome)
	}
}

func (s *Service) allowed(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		return false
	}
	for _, e := range s.extensions {
		if e == ext {
			return true
		}
	}
	return false
}
