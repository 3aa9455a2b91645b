package savers

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/filedrop/internal/client/models"
	"github.com/dmitrijs2005/filedrop/internal/filex"
)

// LocalSaver writes files into a directory. Data goes to a hidden temp file
// first and is renamed into place only after a complete copy, so a failed
// download never leaves a partial file behind.
type LocalSaver struct {
	Dir string
}

// NewLocalSaver returns a saver rooted at dir.
func NewLocalSaver(dir string) *LocalSaver {
	return &LocalSaver{Dir: dir}
}

func (s *LocalSaver) Save(ctx context.Context, name, _ string, r io.Reader) (models.SavedFile, error) {
	safe, err := filex.SafeFileName(name)
	if err != nil {
		return models.SavedFile{}, err
	}

	dir, err := filex.EnsureDir(s.Dir)
	if err != nil {
		return models.SavedFile{}, err
	}

	tmp, err := os.CreateTemp(dir, ".filedrop-*.part")
	if err != nil {
		return models.SavedFile{}, fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	n, err := io.Copy(tmp, ctxReader{ctx: ctx, r: r})
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return models.SavedFile{}, fmt.Errorf("write %s: %w", safe, err)
	}

	dst, err := filex.UniquePath(dir, safe)
	if err != nil {
		return models.SavedFile{}, err
	}
	if err := os.Rename(tmpName, dst); err != nil {
		return models.SavedFile{}, fmt.Errorf("rename to %s: %w", dst, err)
	}
	committed = true

	return models.SavedFile{
		Filename: filepath.Base(dst),
		Location: dst,
		Size:     n,
	}, nil
}
