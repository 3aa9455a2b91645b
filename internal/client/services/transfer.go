package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/filedrop/internal/client/client"
	"github.com/dmitrijs2005/filedrop/internal/client/clipboard"
	"github.com/dmitrijs2005/filedrop/internal/client/models"
	"github.com/dmitrijs2005/filedrop/internal/common"
	"github.com/dmitrijs2005/filedrop/internal/logging"
)

// Operation names reported in events.
const (
	OpSelect = "select"
	OpCopy   = "copy"
)

// DefaultCopiedFeedback is how long the "copied" affordance stays on.
const DefaultCopiedFeedback = 2 * time.Second

// TransferService is the upload side of the workflow:
// Idle -> FileSelected -> Uploading -> UploadSucceeded | UploadFailed.
type TransferService interface {
	SelectFile(f models.PendingFile) error
	BeginUpload(ctx context.Context) (models.UploadOutcome, error)
	CopyCode(ctx context.Context) error
	Reset()
	State() models.WorkflowState
	// Subscribe registers fn for all future events and returns a function
	// that removes it. fn runs synchronously; it may call State but must
	// not call methods that change the workflow.
	Subscribe(fn func(Event)) (unsubscribe func())
	// Close stops background timers and waits for them to exit.
	Close()
}

// TransferOption configures the transfer service.
type TransferOption func(*transferService)

// WithMaxUploadSize sets the advisory size limit checked on selection.
func WithMaxUploadSize(n int64) TransferOption {
	return func(s *transferService) { s.maxSize = n }
}

// WithAnimator replaces the progress animator.
func WithAnimator(a *ProgressAnimator) TransferOption {
	return func(s *transferService) { s.animator = a }
}

// WithCopiedFeedback sets how long after a copy EventCopyReverted fires.
func WithCopiedFeedback(d time.Duration) TransferOption {
	return func(s *transferService) { s.copiedFeedback = d }
}

// WithTransferLogger sets the logger.
func WithTransferLogger(l logging.Logger) TransferOption {
	return func(s *transferService) { s.logger = l }
}

type transferService struct {
	client    client.Client
	clipboard clipboard.Clipboard
	logger    logging.Logger

	maxSize        int64
	animator       *ProgressAnimator
	copiedFeedback time.Duration

	// mu guards state, gen and pending. emitMu serializes delivery.
	mu      sync.Mutex
	emitMu  sync.Mutex
	state   models.WorkflowState
	gen     uint64
	pending []Event

	events broker

	bgCtx     context.Context
	bgCancel  context.CancelFunc
	wg        sync.WaitGroup
	copyTimer *time.Timer
}

// NewTransferService returns a service in the Idle state.
func NewTransferService(c client.Client, cb clipboard.Clipboard, opts ...TransferOption) TransferService {
	ctx, cancel := context.WithCancel(context.Background())
	s := &transferService{
		client:         c,
		clipboard:      cb,
		logger:         logging.Discard(),
		maxSize:        common.MaxUploadSize,
		animator:       NewProgressAnimator(),
		copiedFeedback: DefaultCopiedFeedback,
		state:          models.IdleState(),
		bgCtx:          ctx,
		bgCancel:       cancel,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *transferService) Subscribe(fn func(Event)) func() {
	return s.events.subscribe(fn)
}

func (s *transferService) State() models.WorkflowState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// commit queues events and delivers everything pending. It must be called
// with s.mu held and releases it.
func (s *transferService) commit(events ...Event) {
	s.pending = append(s.pending, events...)
	s.mu.Unlock()
	s.flush()
}

// flush delivers queued events in order. emitMu is never acquired while
// holding mu, so subscribers may call State.
func (s *transferService) flush() {
	s.emitMu.Lock()
	defer s.emitMu.Unlock()

	for {
		s.mu.Lock()
		batch := s.pending
		s.pending = nil
		s.mu.Unlock()

		if len(batch) == 0 {
			return
		}
		s.events.publish(batch...)
	}
}

func (s *transferService) stateEvent() Event {
	return Event{Kind: EventStateChanged, State: s.state}
}

func (s *transferService) SelectFile(f models.PendingFile) error {
	s.mu.Lock()

	if s.state.Status.IsActive() {
		s.mu.Unlock()
		return client.NewValidationError(OpSelect, common.ErrUploadInProcess)
	}

	if f.Size > s.maxSize {
		err := client.NewValidationError(OpSelect, fmt.Errorf("%w (%s)", common.ErrFileTooLarge, models.FormatFileSize(f.Size)))
		s.logger.Warn(context.Background(), "file rejected", "file", f.Name, "size", f.Size, "limit", s.maxSize)

		s.gen++
		s.state = models.IdleState()
		s.commit(
			Event{Kind: EventError, Op: OpSelect, State: s.state, Message: err.Error()},
			s.stateEvent(),
		)
		return err
	}

	s.gen++
	file := f
	s.state = models.WorkflowState{
		Status:    models.UploadStateFileSelected,
		File:      &file,
		SizeLabel: models.FormatFileSize(f.Size),
	}
	s.logger.Info(context.Background(), "file selected", "file", f.Name, "size", f.Size, "mime", f.MimeType)
	s.commit(s.stateEvent())
	return nil
}

func (s *transferService) BeginUpload(ctx context.Context) (models.UploadOutcome, error) {
	s.mu.Lock()

	switch s.state.Status {
	case models.UploadStateFileSelected:
	case models.UploadStateUploading:
		s.mu.Unlock()
		return models.UploadOutcome{}, client.NewValidationError(client.OpUpload, common.ErrUploadInProcess)
	default:
		s.mu.Unlock()
		return models.UploadOutcome{}, client.NewValidationError(client.OpUpload, common.ErrNoFileSelected)
	}

	s.gen++
	gen := s.gen
	file := *s.state.File
	s.state.Status = models.UploadStateUploading
	s.state.Progress = 0
	s.logger.Info(ctx, "upload started", "file", file.Name, "size", file.Size)
	s.commit(s.stateEvent())

	s.startProgress(gen)

	code, err := s.client.Upload(ctx, file)

	s.mu.Lock()
	if s.gen != gen {
		s.mu.Unlock()
		s.logger.Warn(ctx, "upload result discarded after reset", "file", file.Name, "error", err)
		if err != nil {
			return models.UploadOutcome{ErrorMessage: err.Error()}, err
		}
		return models.UploadOutcome{Success: true, DownloadCode: code}, nil
	}

	if err != nil {
		s.logger.Error(ctx, "upload failed", "file", file.Name, "kind", client.KindOf(err), "error", err)

		failed := s.state
		failed.Status = models.UploadStateFailed
		failed.Error = err.Error()

		s.gen++
		s.state = models.IdleState()
		s.commit(
			Event{Kind: EventStateChanged, State: failed},
			Event{Kind: EventError, Op: client.OpUpload, State: failed, Message: err.Error()},
			s.stateEvent(),
		)
		return models.UploadOutcome{ErrorMessage: err.Error()}, err
	}

	s.state.Status = models.UploadStateSucceeded
	s.state.Code = code
	s.logger.Info(ctx, "upload succeeded", "file", file.Name, "code", code)
	s.commit(
		s.stateEvent(),
		Event{Kind: EventUploadSucceeded, Op: client.OpUpload, State: s.state, Message: code},
	)
	return models.UploadOutcome{Success: true, DownloadCode: code}, nil
}

// startProgress runs the animator for upload pass gen. Steps from a pass
// that was reset or superseded are dropped and end the animation.
func (s *transferService) startProgress(gen uint64) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.animator.Run(s.bgCtx, func(p float64) bool {
			s.mu.Lock()
			if s.gen != gen {
				s.mu.Unlock()
				return false
			}
			s.state.Progress = p
			s.commit(Event{Kind: EventProgress, State: s.state})
			return true
		})
	}()
}

func (s *transferService) CopyCode(ctx context.Context) error {
	s.mu.Lock()
	code := s.state.Code
	ok := s.state.Status == models.UploadStateSucceeded && code != ""
	s.mu.Unlock()

	if !ok {
		return client.NewValidationError(OpCopy, common.ErrNoDownloadCode)
	}

	if err := s.clipboard.WriteText(ctx, code); err != nil {
		s.logger.Warn(ctx, "copy to clipboard failed", "error", err)
		s.mu.Lock()
		s.commit(Event{Kind: EventError, Op: OpCopy, State: s.state, Message: err.Error()})
		return fmt.Errorf("copy code: %w", err)
	}

	s.mu.Lock()
	if s.copyTimer != nil {
		s.copyTimer.Stop()
	}
	if s.bgCtx.Err() == nil {
		s.copyTimer = time.AfterFunc(s.copiedFeedback, s.revertCopied)
	}
	s.commit(Event{Kind: EventCopied, Op: OpCopy, State: s.state, Message: code})
	return nil
}

func (s *transferService) revertCopied() {
	s.mu.Lock()
	if s.bgCtx.Err() != nil {
		s.mu.Unlock()
		return
	}
	s.commit(Event{Kind: EventCopyReverted, Op: OpCopy, State: s.state})
}

func (s *transferService) Reset() {
	s.mu.Lock()
	s.gen++
	s.state = models.IdleState()
	s.logger.Info(context.Background(), "workflow reset")
	s.commit(s.stateEvent())
}

func (s *transferService) Close() {
	s.mu.Lock()
	s.bgCancel()
	if s.copyTimer != nil {
		s.copyTimer.Stop()
	}
	s.mu.Unlock()

	s.wg.Wait()
}
