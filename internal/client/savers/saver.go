// Package savers implements the save-as sinks a downloaded file is written to.
package savers

import (
	"context"
	"io"

	"github.com/dmitrijs2005/filedrop/internal/client/models"
)

// Saver persists a downloaded stream under the suggested name.
type Saver interface {
	Save(ctx context.Context, name, contentType string, r io.Reader) (models.SavedFile, error)
}

// ctxReader stops a copy once ctx is done.
type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (c ctxReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}
