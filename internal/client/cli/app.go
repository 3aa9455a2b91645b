package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"sync"

	"github.com/dmitrijs2005/filedrop/internal/client/client"
	"github.com/dmitrijs2005/filedrop/internal/client/clipboard"
	"github.com/dmitrijs2005/filedrop/internal/client/config"
	"github.com/dmitrijs2005/filedrop/internal/client/models"
	"github.com/dmitrijs2005/filedrop/internal/client/savers"
	"github.com/dmitrijs2005/filedrop/internal/client/services"
	"github.com/dmitrijs2005/filedrop/internal/logging"
	"golang.org/x/term"
)

// isTerminal is a test seam for term.IsTerminal.
var isTerminal = term.IsTerminal

// App is the terminal front-end. It renders workflow events and turns REPL
// commands into service calls.
type App struct {
	transfer services.TransferService
	lookup   services.LookupService

	// mu guards everything below; events arrive from the progress goroutine.
	mu     sync.Mutex
	out    io.Writer
	bar    progressBar
	code   models.DownloadCode
	copied bool

	unsubscribe func()
}

// NewApp wires the API client, clipboard, save-as sink and services from cfg.
func NewApp(cfg *config.Config, logger logging.Logger, out io.Writer) (*App, error) {
	api, err := client.NewHTTPClient(cfg.APIBaseURL,
		client.WithHTTPClient(&http.Client{Timeout: cfg.HTTPTimeout}),
		client.WithLogger(logger),
	)
	if err != nil {
		return nil, err
	}

	var saver savers.Saver
	if cfg.UseS3() {
		saver = savers.NewS3Saver(savers.S3Config{
			Bucket:       cfg.S3Bucket,
			Prefix:       cfg.S3Prefix,
			Region:       cfg.S3Region,
			BaseEndpoint: cfg.S3BaseEndpoint,
			AccessKey:    cfg.S3AccessKey,
			SecretKey:    cfg.S3SecretKey,
		})
	} else {
		saver = savers.NewLocalSaver(cfg.DownloadDir)
	}

	animator := services.NewProgressAnimator()
	animator.Tick = cfg.ProgressTick

	transfer := services.NewTransferService(api, clipboard.Detect(),
		services.WithMaxUploadSize(cfg.MaxUploadSize),
		services.WithAnimator(animator),
		services.WithCopiedFeedback(cfg.CopiedFeedback),
		services.WithTransferLogger(logger),
	)
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}
	lookup := services.NewLookupService(api, saver,
		services.WithLocation(loc),
		services.WithDateLayout(cfg.DateLayout),
		services.WithLookupLogger(logger),
	)

	fancy := false
	if f, ok := out.(*os.File); ok {
		fancy = isTerminal(int(f.Fd()))
	}

	return newApp(transfer, lookup, out, fancy), nil
}

func newApp(transfer services.TransferService, lookup services.LookupService, out io.Writer, fancy bool) *App {
	a := &App{
		transfer: transfer,
		lookup:   lookup,
		out:      out,
		bar:      progressBar{fancy: fancy, width: 30},
	}
	a.unsubscribe = transfer.Subscribe(a.onEvent)
	return a
}

// Run starts the REPL on in and blocks until EOF or "exit".
func (a *App) Run(ctx context.Context, in io.Reader) {
	defer a.Close()

	a.println("filedrop client (type 'help' for commands)")
	runREPL(ctx, a, a.status, bufio.NewScanner(in))
}

// Close detaches from the services and stops their timers.
func (a *App) Close() {
	a.unsubscribe()
	a.transfer.Close()
}

func (a *App) printf(format string, args ...any) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.bar.interrupt(a.out)
	fmt.Fprintf(a.out, format, args...)
}

func (a *App) println(args ...any) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.bar.interrupt(a.out)
	fmt.Fprintln(a.out, args...)
}

// status is the short state summary shown in the prompt.
func (a *App) status() string {
	st := a.transfer.State()

	a.mu.Lock()
	copied := a.copied
	a.mu.Unlock()

	switch st.Status {
	case models.UploadStateFileSelected:
		return fmt.Sprintf("%s, %s", st.File.Name, st.SizeLabel)
	case models.UploadStateUploading:
		return fmt.Sprintf("uploading %.0f%%", st.Progress)
	case models.UploadStateSucceeded:
		if copied {
			return "code " + st.Code + ", copied"
		}
		return "code " + st.Code
	default:
		return "idle"
	}
}
