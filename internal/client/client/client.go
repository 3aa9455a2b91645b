package client

import (
	"context"
	"io"

	"github.com/dmitrijs2005/filedrop/internal/client/models"
)

// Operation names used in errors and logs.
const (
	OpUpload   = "upload"
	OpPreview  = "preview"
	OpDownload = "download"
	OpHealth   = "health"
)

// Client is the contract of the external file-sharing API.
type Client interface {
	// Upload sends the file and returns the issued download code.
	Upload(ctx context.Context, file models.PendingFile) (string, error)
	// Preview returns metadata for code.
	Preview(ctx context.Context, code string) (models.FileMetadata, error)
	// Download opens the file behind code. The caller must close Body.
	Download(ctx context.Context, code string) (*Download, error)
	// Health reports API and storage health.
	Health(ctx context.Context) (models.HealthStatus, error)
}

// Download is an open file stream returned by the API.
type Download struct {
	Filename    string
	ContentType string
	// Size is -1 when the server did not announce a length.
	Size int64
	Body io.ReadCloser
}
