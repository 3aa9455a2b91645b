// Package clipboard provides access to the system clipboard and an
// in-memory stand-in for headless environments and tests.
package clipboard

import (
	"context"
	"errors"
	"sync"

	"github.com/atotto/clipboard"
)

// ErrUnsupported is returned when no clipboard utility is available.
var ErrUnsupported = errors.New("clipboard is not available on this system")

// Clipboard accepts text to copy.
type Clipboard interface {
	WriteText(ctx context.Context, text string) error
}

var (
	clipboardUnsupported = func() bool { return clipboard.Unsupported }
	writeAll             = clipboard.WriteAll
)

// System is the OS clipboard (xclip/xsel/wl-copy on Linux, pbcopy on macOS).
type System struct{}

func (System) WriteText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if clipboardUnsupported() {
		return ErrUnsupported
	}
	return writeAll(text)
}

// Memory keeps the last copied text in memory.
type Memory struct {
	mu   sync.Mutex
	text string
	n    int
}

func (m *Memory) WriteText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.text = text
	m.n++
	return nil
}

// Text returns the last copied text.
func (m *Memory) Text() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text
}

// Writes returns how many times WriteText succeeded.
func (m *Memory) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.n
}

// Detect returns System when the platform supports it and a Memory
// clipboard otherwise.
func Detect() Clipboard {
	if clipboardUnsupported() {
		return &Memory{}
	}
	return System{}
}
