package models

import (
	"bytes"
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"
)

// PendingFile is the file selected for upload.
type PendingFile struct {
	Name     string
	Size     int64
	MimeType string

	// Open returns a fresh reader over the raw file bytes.
	Open func() (io.ReadCloser, error)
}

// PendingFileFromPath describes the regular file at path. The mime type comes
// from the extension, falling back to sniffing the content. It may be empty.
func PendingFileFromPath(path string) (PendingFile, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return PendingFile{}, fmt.Errorf("stat %s: %w", path, err)
	}
	if !fi.Mode().IsRegular() {
		return PendingFile{}, fmt.Errorf("%s is not a regular file", path)
	}

	return PendingFile{
		Name:     fi.Name(),
		Size:     fi.Size(),
		MimeType: detectMimeType(path),
		Open: func() (io.ReadCloser, error) {
			return os.Open(path)
		},
	}, nil
}

func detectMimeType(path string) string {
	if mt := mime.TypeByExtension(filepath.Ext(path)); mt != "" {
		return mt
	}
	mt, err := mimetype.DetectFile(path)
	if err != nil || mt.Is("application/octet-stream") {
		return ""
	}
	return mt.String()
}

// PendingFileFromBytes wraps an in-memory payload.
func PendingFileFromBytes(name, mimeType string, data []byte) PendingFile {
	return PendingFile{
		Name:     name,
		Size:     int64(len(data)),
		MimeType: mimeType,
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(data)), nil
		},
	}
}

// UploadOutcome is the interpreted result of one upload attempt.
// DownloadCode is set iff Success; ErrorMessage is set iff !Success.
type UploadOutcome struct {
	Success      bool
	DownloadCode string
	ErrorMessage string
}
