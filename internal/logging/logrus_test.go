package logging

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogrus(t *testing.T) (*LogrusLogger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	l := logrus.New()
	l.SetOutput(&buf)
	l.SetLevel(logrus.DebugLevel)
	l.SetFormatter(&logrus.TextFormatter{DisableColors: true, DisableTimestamp: true})
	return NewLogrusLogger(logrus.NewEntry(l)), &buf
}

func TestLogrusLogger_LevelsAndFields(t *testing.T) {
	log, buf := newTestLogrus(t)
	ctx := context.Background()

	log.Debug(ctx, "dbg", "a", 1)
	log.Info(ctx, "inf", "b", 2)
	log.Warn(ctx, "wrn", "c", 3)
	log.Error(ctx, "err", "d", 4)

	out := buf.String()
	for _, s := range []string{
		"level=debug", "msg=dbg", "a=1",
		"level=info", "msg=inf", "b=2",
		"level=warning", "msg=wrn", "c=3",
		"level=error", "msg=err", "d=4",
	} {
		assert.Contains(t, out, s)
	}
}

func TestLogrusLogger_With(t *testing.T) {
	log, buf := newTestLogrus(t)

	log.With("request_id", "abc").Info(context.Background(), "hello", "k", "v")

	out := buf.String()
	assert.Contains(t, out, "request_id=abc")
	assert.Contains(t, out, "k=v")
}

func TestFields_DanglingValue(t *testing.T) {
	f := fields([]any{"a", 1, "orphan"})
	assert.Equal(t, 1, f["a"])
	assert.Equal(t, "orphan", f["!BADKEY"])
}

func TestNew_Formats(t *testing.T) {
	ctx := context.Background()

	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		l, err := New(FormatText, "debug", &buf)
		require.NoError(t, err)
		l.Debug(ctx, "visible")
		assert.Contains(t, buf.String(), "msg=visible")
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		l, err := New(FormatJSON, "info", &buf)
		require.NoError(t, err)
		l.Debug(ctx, "hidden")
		l.Info(ctx, "shown", "n", 1)
		out := buf.String()
		assert.NotContains(t, out, "hidden")
		assert.True(t, strings.Contains(out, `"msg":"shown"`), out)
	})

	t.Run("logrus", func(t *testing.T) {
		var buf bytes.Buffer
		l, err := New(FormatLogrus, "warn", &buf)
		require.NoError(t, err)
		l.Info(ctx, "hidden")
		l.Warn(ctx, "shown")
		out := buf.String()
		assert.NotContains(t, out, "hidden")
		assert.Contains(t, out, "shown")
	})

	t.Run("bad format", func(t *testing.T) {
		_, err := New("xml", "", &bytes.Buffer{})
		require.Error(t, err)
	})

	t.Run("bad level", func(t *testing.T) {
		_, err := New(FormatText, "loud", &bytes.Buffer{})
		require.Error(t, err)
	})
}
