package cli

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/filedrop/internal/client/models"
	"github.com/dmitrijs2005/filedrop/internal/client/services"
)

// onEvent renders workflow events. Errors are not printed here: the command
// that caused them returns them to the REPL.
func (a *App) onEvent(e services.Event) {
	a.mu.Lock()
	defer a.mu.Unlock()

	switch e.Kind {
	case services.EventStateChanged:
		switch e.State.Status {
		case models.UploadStateFileSelected:
			a.bar.interrupt(a.out)
			fmt.Fprintf(a.out, "Selected %s (%s)\n", e.State.File.Name, e.State.SizeLabel)
		case models.UploadStateUploading:
			a.bar.interrupt(a.out)
			fmt.Fprintf(a.out, "Uploading %s...\n", e.State.File.Name)
		case models.UploadStateIdle:
			a.copied = false
		}

	case services.EventProgress:
		a.bar.draw(a.out, e.State.Progress)

	case services.EventUploadSucceeded:
		a.bar.interrupt(a.out)
		fmt.Fprintf(a.out, "Upload complete. Download code: %s (type 'copy' to copy it)\n", e.State.Code)

	case services.EventError:
		a.bar.interrupt(a.out)

	case services.EventCopied:
		a.copied = true

	case services.EventCopyReverted:
		a.copied = false
	}
}

func renderPreview(v models.PreviewView) string {
	var b strings.Builder
	fmt.Fprintf(&b, "File:      %s\n", v.Filename)
	fmt.Fprintf(&b, "Size:      %s\n", v.Size)
	fmt.Fprintf(&b, "Type:      %s (%s)\n", v.MimeType, v.Kind)
	if v.Uploaded != "" {
		fmt.Fprintf(&b, "Uploaded:  %s\n", v.Uploaded)
	}
	fmt.Fprintf(&b, "Downloads: %d\n", v.DownloadCount)
	if v.ImageURL != "" {
		fmt.Fprintf(&b, "Image:     %s\n", v.ImageURL)
	}
	return b.String()
}
