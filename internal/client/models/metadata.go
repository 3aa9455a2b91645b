package models

import (
	"strings"
	"time"
)

// FileMetadata describes the file behind a download code, as returned by
// the preview endpoint.
type FileMetadata struct {
	Filename      string
	FileSize      int64
	MimeType      string
	UploadDate    string
	DownloadCount int64
	PreviewURL    string
}

// FileKind is a coarse category derived from the mime type.
type FileKind string

const (
	FileKindImage  FileKind = "image"
	FileKindVideo  FileKind = "video"
	FileKindAudio  FileKind = "audio"
	FileKindPDF    FileKind = "pdf"
	FileKindText   FileKind = "text"
	FileKindBinary FileKind = "binary"
)

// KindOf classifies a mime type.
func KindOf(mimeType string) FileKind {
	m := strings.ToLower(mimeType)
	switch {
	case strings.HasPrefix(m, "image/"):
		return FileKindImage
	case strings.HasPrefix(m, "video/"):
		return FileKindVideo
	case strings.HasPrefix(m, "audio/"):
		return FileKindAudio
	case strings.Contains(m, "pdf"):
		return FileKindPDF
	case strings.HasPrefix(m, "text/"):
		return FileKindText
	default:
		return FileKindBinary
	}
}

// PreviewView is FileMetadata prepared for display.
type PreviewView struct {
	Filename      string
	Size          string
	MimeType      string
	Uploaded      string
	DownloadCount int64
	Kind          FileKind

	// ImageURL is set only when the API supplied a preview URL and the
	// file is an image.
	ImageURL string
}

// NewPreviewView renders m, formatting timestamps in loc with dateLayout.
func NewPreviewView(m FileMetadata, loc *time.Location, dateLayout string) PreviewView {
	v := PreviewView{
		Filename:      m.Filename,
		Size:          FormatFileSize(m.FileSize),
		MimeType:      m.MimeType,
		Uploaded:      FormatUploadDate(m.UploadDate, loc, dateLayout),
		DownloadCount: m.DownloadCount,
		Kind:          KindOf(m.MimeType),
	}
	if m.PreviewURL != "" && strings.HasPrefix(m.MimeType, "image/") {
		v.ImageURL = m.PreviewURL
	}
	return v
}

// HealthStatus is the API health report.
type HealthStatus struct {
	Status    string
	Database  string
	Timestamp string
}

// Healthy reports whether the API said it is fully operational.
func (h HealthStatus) Healthy() bool {
	return h.Status == "healthy"
}

// SavedFile describes where a downloaded file ended up.
type SavedFile struct {
	Filename string
	Location string
	Size     int64
}
