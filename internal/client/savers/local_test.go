package savers

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dmitrijs2005/filedrop/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingReader struct {
	data string
	err  error
	done bool
}

func (f *failingReader) Read(p []byte) (int, error) {
	if !f.done {
		f.done = true
		return copy(p, f.data), nil
	}
	return 0, f.err
}

func dirEntries(t *testing.T, dir string) []string {
	t.Helper()
	ents, err := os.ReadDir(dir)
	require.NoError(t, err)
	names := make([]string, 0, len(ents))
	for _, e := range ents {
		names = append(names, e.Name())
	}
	return names
}

func TestLocalSaver_Save(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "downloads")
	s := NewLocalSaver(dir)

	got, err := s.Save(context.Background(), "report.pdf", "application/pdf", strings.NewReader("%PDF"))
	require.NoError(t, err)

	assert.Equal(t, "report.pdf", got.Filename)
	assert.Equal(t, int64(4), got.Size)

	data, err := os.ReadFile(got.Location)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(data))
	assert.Equal(t, []string{"report.pdf"}, dirEntries(t, dir))
}

func TestLocalSaver_DoesNotOverwrite(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	s := NewLocalSaver(dir)

	first, err := s.Save(context.Background(), "a.txt", "", strings.NewReader("one"))
	require.NoError(t, err)
	second, err := s.Save(context.Background(), "a.txt", "", strings.NewReader("two"))
	require.NoError(t, err)

	assert.Equal(t, "a.txt", first.Filename)
	assert.Equal(t, "a (1).txt", second.Filename)
}

func TestLocalSaver_StripsDirectories(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	got, err := NewLocalSaver(dir).Save(context.Background(), "../../etc/passwd", "", strings.NewReader("x"))
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "passwd"), got.Location)
}

func TestLocalSaver_RemovesTempOnFailure(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	boom := errors.New("connection reset")

	_, err := NewLocalSaver(dir).Save(context.Background(), "big.bin", "", &failingReader{data: "partial", err: boom})
	require.ErrorIs(t, err, boom)
	assert.Empty(t, dirEntries(t, dir))
}

func TestLocalSaver_CanceledContext(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewLocalSaver(dir).Save(ctx, "a.txt", "", strings.NewReader("data"))
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, dirEntries(t, dir))
}

func TestLocalSaver_InvalidName(t *testing.T) {
	t.Parallel()

	_, err := NewLocalSaver(t.TempDir()).Save(context.Background(), "..", "", io.LimitReader(strings.NewReader(""), 0))
	require.ErrorIs(t, err, common.ErrInvalidFileName)
}
