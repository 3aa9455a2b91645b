package services

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/filedrop/internal/client/client"
	"github.com/dmitrijs2005/filedrop/internal/client/models"
	"github.com/dmitrijs2005/filedrop/internal/client/savers"
	"github.com/dmitrijs2005/filedrop/internal/common"
	"github.com/dmitrijs2005/filedrop/internal/logging"
	"golang.org/x/sync/errgroup"
)

// DefaultPreviewConcurrency bounds PreviewMany.
const DefaultPreviewConcurrency = 4

// PreviewResult is the outcome for one code of PreviewMany.
type PreviewResult struct {
	Code string
	View models.PreviewView
	Err  error
}

// DownloadResult describes a completed download.
type DownloadResult struct {
	Code        string
	ContentType string
	Saved       models.SavedFile
}

// LookupService is the stateless download side of the workflow. Calls share
// no state and may run concurrently.
type LookupService interface {
	SetCodeInput(raw string) models.DownloadCode
	Preview(ctx context.Context, code string) (models.PreviewView, error)
	PreviewMany(ctx context.Context, codes []string) ([]PreviewResult, error)
	Download(ctx context.Context, code string) (DownloadResult, error)
	Health(ctx context.Context) (models.HealthStatus, error)
}

// LookupOption configures the lookup service.
type LookupOption func(*lookupService)

// WithLocation sets the time zone upload dates are shown in.
func WithLocation(loc *time.Location) LookupOption {
	return func(s *lookupService) { s.loc = loc }
}

// WithDateLayout sets the time.Format layout for upload dates.
func WithDateLayout(layout string) LookupOption {
	return func(s *lookupService) { s.dateLayout = layout }
}

// WithPreviewConcurrency bounds how many previews PreviewMany runs at once.
func WithPreviewConcurrency(n int) LookupOption {
	return func(s *lookupService) { s.concurrency = n }
}

// WithLookupLogger sets the logger.
func WithLookupLogger(l logging.Logger) LookupOption {
	return func(s *lookupService) { s.logger = l }
}

type lookupService struct {
	client      client.Client
	saver       savers.Saver
	logger      logging.Logger
	loc         *time.Location
	dateLayout  string
	concurrency int
}

// NewLookupService returns a lookup service saving downloads with saver.
func NewLookupService(c client.Client, saver savers.Saver, opts ...LookupOption) LookupService {
	s := &lookupService{
		client:      c,
		saver:       saver,
		logger:      logging.Discard(),
		loc:         time.Local,
		concurrency: DefaultPreviewConcurrency,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *lookupService) SetCodeInput(raw string) models.DownloadCode {
	return models.NewDownloadCode(raw)
}

func (s *lookupService) normalize(op, code string) (string, error) {
	n := models.NormalizeCode(code)
	if n == "" {
		return "", client.NewValidationError(op, common.ErrEmptyCode)
	}
	return n, nil
}

func (s *lookupService) Preview(ctx context.Context, code string) (models.PreviewView, error) {
	code, err := s.normalize(client.OpPreview, code)
	if err != nil {
		return models.PreviewView{}, err
	}

	meta, err := s.client.Preview(ctx, code)
	if err != nil {
		s.logger.Warn(ctx, "preview failed", "code", code, "kind", client.KindOf(err), "error", err)
		return models.PreviewView{}, err
	}

	s.logger.Info(ctx, "preview loaded", "code", code, "file", meta.Filename)
	return models.NewPreviewView(meta, s.loc, s.dateLayout), nil
}

func (s *lookupService) PreviewMany(ctx context.Context, codes []string) ([]PreviewResult, error) {
	results := make([]PreviewResult, len(codes))

	g, gctx := errgroup.WithContext(ctx)
	if s.concurrency > 0 {
		g.SetLimit(s.concurrency)
	}

	// Per-code failures stay in results; only the caller's ctx stops the batch.
	for i, code := range codes {
		g.Go(func() error {
			results[i].Code = models.NormalizeCode(code)
			if err := gctx.Err(); err != nil {
				results[i].Err = err
				return nil
			}
			results[i].View, results[i].Err = s.Preview(gctx, code)
			return nil
		})
	}
	_ = g.Wait()

	return results, ctx.Err()
}

func (s *lookupService) Download(ctx context.Context, code string) (DownloadResult, error) {
	code, err := s.normalize(client.OpDownload, code)
	if err != nil {
		return DownloadResult{}, err
	}

	dl, err := s.client.Download(ctx, code)
	if err != nil {
		s.logger.Warn(ctx, "download failed", "code", code, "kind", client.KindOf(err), "error", err)
		return DownloadResult{}, err
	}
	defer dl.Body.Close()

	saved, err := s.saver.Save(ctx, dl.Filename, dl.ContentType, dl.Body)
	if err != nil {
		s.logger.Error(ctx, "saving download failed", "code", code, "file", dl.Filename, "error", err)
		return DownloadResult{}, fmt.Errorf("save %s: %w", dl.Filename, err)
	}

	s.logger.Info(ctx, "download saved", "code", code, "location", saved.Location, "bytes", saved.Size)
	return DownloadResult{Code: code, ContentType: dl.ContentType, Saved: saved}, nil
}

func (s *lookupService) Health(ctx context.Context) (models.HealthStatus, error) {
	h, err := s.client.Health(ctx)
	if err != nil {
		s.logger.Warn(ctx, "health check failed", "error", err)
		return models.HealthStatus{}, err
	}
	s.logger.Debug(ctx, "health", "status", h.Status, "database", h.Database)
	return h, nil
}
