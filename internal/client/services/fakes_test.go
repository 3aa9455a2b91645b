package services

import (
	"context"
	"io"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/dmitrijs2005/filedrop/internal/client/client"
	"github.com/dmitrijs2005/filedrop/internal/client/models"
)

// fakeClient implements client.Client with per-method hooks.
type fakeClient struct {
	uploadFn   func(ctx context.Context, f models.PendingFile) (string, error)
	previewFn  func(ctx context.Context, code string) (models.FileMetadata, error)
	downloadFn func(ctx context.Context, code string) (*client.Download, error)
	healthFn   func(ctx context.Context) (models.HealthStatus, error)

	uploads   atomic.Int32
	previews  atomic.Int32
	downloads atomic.Int32
}

func (f *fakeClient) Upload(ctx context.Context, file models.PendingFile) (string, error) {
	f.uploads.Add(1)
	if f.uploadFn == nil {
		return "CODE1", nil
	}
	return f.uploadFn(ctx, file)
}

func (f *fakeClient) Preview(ctx context.Context, code string) (models.FileMetadata, error) {
	f.previews.Add(1)
	if f.previewFn == nil {
		return models.FileMetadata{}, nil
	}
	return f.previewFn(ctx, code)
}

func (f *fakeClient) Download(ctx context.Context, code string) (*client.Download, error) {
	f.downloads.Add(1)
	return f.downloadFn(ctx, code)
}

func (f *fakeClient) Health(ctx context.Context) (models.HealthStatus, error) {
	return f.healthFn(ctx)
}

// trackingBody records whether it was closed.
type trackingBody struct {
	io.Reader
	closed atomic.Bool
}

func newTrackingBody(s string) *trackingBody {
	return &trackingBody{Reader: strings.NewReader(s)}
}

func (b *trackingBody) Close() error {
	b.closed.Store(true)
	return nil
}

// fakeSaver keeps saved payloads in memory.
type fakeSaver struct {
	mu    sync.Mutex
	saved map[string]string
	err   error
}

func (s *fakeSaver) Save(ctx context.Context, name, contentType string, r io.Reader) (models.SavedFile, error) {
	if s.err != nil {
		return models.SavedFile{}, s.err
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return models.SavedFile{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saved == nil {
		s.saved = make(map[string]string)
	}
	s.saved[name] = string(data)
	return models.SavedFile{Filename: name, Location: "mem://" + name, Size: int64(len(data))}, nil
}

func (s *fakeSaver) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.saved)
}

// recorder collects events from a TransferService.
type recorder struct {
	mu     sync.Mutex
	events []Event
}

func record(t *testing.T, svc TransferService) *recorder {
	t.Helper()
	r := &recorder{}
	unsub := svc.Subscribe(func(e Event) {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.events = append(r.events, e)
	})
	t.Cleanup(unsub)
	return r
}

func (r *recorder) all() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Event(nil), r.events...)
}

func (r *recorder) kinds() []EventKind {
	var out []EventKind
	for _, e := range r.all() {
		out = append(out, e.Kind)
	}
	return out
}

func (r *recorder) has(kind EventKind) bool {
	for _, e := range r.all() {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

func (r *recorder) progress() []float64 {
	var out []float64
	for _, e := range r.all() {
		if e.Kind == EventProgress {
			out = append(out, e.State.Progress)
		}
	}
	return out
}

func (r *recorder) statuses() []models.UploadState {
	var out []models.UploadState
	for _, e := range r.all() {
		if e.Kind == EventStateChanged {
			out = append(out, e.State.Status)
		}
	}
	return out
}
