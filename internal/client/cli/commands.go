package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/filedrop/internal/client/models"
	"github.com/dmitrijs2005/filedrop/internal/common"
)

var errUsage = errors.New("usage")

func usage(text string) error {
	return fmt.Errorf("%w: %s", errUsage, text)
}

// Select picks the local file at the path given in args.
func (a *App) Select(ctx context.Context, args []string) error {
	path := strings.Join(args, " ")
	if path == "" {
		return usage("select <path>")
	}

	f, err := models.PendingFileFromPath(path)
	if err != nil {
		return err
	}
	return a.transfer.SelectFile(f)
}

// Upload sends the selected file.
func (a *App) Upload(ctx context.Context) error {
	a.mu.Lock()
	a.bar.start()
	a.mu.Unlock()

	_, err := a.transfer.BeginUpload(ctx)
	return err
}

// Send is select followed by upload.
func (a *App) Send(ctx context.Context, args []string) error {
	if err := a.Select(ctx, args); err != nil {
		return err
	}
	return a.Upload(ctx)
}

// Copy puts the download code on the clipboard.
func (a *App) Copy(ctx context.Context) error {
	if err := a.transfer.CopyCode(ctx); err != nil {
		return err
	}
	a.println("Code copied to clipboard.")
	return nil
}

// Reset returns the upload workflow to idle.
func (a *App) Reset(ctx context.Context) error {
	a.transfer.Reset()
	a.println("Ready for a new file.")
	return nil
}

// Status prints the upload state and the current code input.
func (a *App) Status(ctx context.Context) error {
	st := a.transfer.State()

	a.mu.Lock()
	code := a.code
	a.mu.Unlock()

	var b strings.Builder
	fmt.Fprintf(&b, "Upload: %s\n", st.Status)
	if st.File != nil {
		fmt.Fprintf(&b, "  File:     %s (%s)\n", st.File.Name, st.SizeLabel)
	}
	if st.Status == models.UploadStateUploading || st.Status == models.UploadStateSucceeded {
		fmt.Fprintf(&b, "  Progress: %.0f%%\n", st.Progress)
	}
	if st.Code != "" {
		fmt.Fprintf(&b, "  Code:     %s\n", st.Code)
	}
	if !code.IsEmpty() {
		fmt.Fprintf(&b, "Lookup code: %s\n", code.Normalized)
	}

	a.printf("%s", b.String())
	return nil
}

// Code records a download code for later preview and download.
func (a *App) Code(ctx context.Context, args []string) error {
	raw := strings.Join(args, " ")

	a.mu.Lock()
	a.code = a.lookup.SetCodeInput(raw)
	code := a.code
	a.mu.Unlock()

	if code.IsEmpty() {
		return common.ErrEmptyCode
	}
	a.println("Code:", code.Normalized)
	return nil
}

// codeFrom uses args when given, the recorded code otherwise.
func (a *App) codeFrom(args []string) string {
	if len(args) > 0 {
		return a.lookup.SetCodeInput(strings.Join(args, " ")).Normalized
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.code.Normalized
}

// Preview shows the metadata behind a code.
func (a *App) Preview(ctx context.Context, args []string) error {
	view, err := a.lookup.Preview(ctx, a.codeFrom(args))
	if err != nil {
		return err
	}
	a.printf("%s", renderPreview(view))
	return nil
}

// Download saves the file behind a code.
func (a *App) Download(ctx context.Context, args []string) error {
	res, err := a.lookup.Download(ctx, a.codeFrom(args))
	if err != nil {
		return err
	}
	a.printf("Saved %s to %s (%s)\n", res.Saved.Filename, res.Saved.Location, models.FormatFileSize(res.Saved.Size))
	return nil
}

// Health reports whether the API is up.
func (a *App) Health(ctx context.Context) error {
	h, err := a.lookup.Health(ctx)
	if err != nil {
		return err
	}
	a.printf("API: %s, database: %s, at %s\n", h.Status, h.Database, h.Timestamp)
	return nil
}
