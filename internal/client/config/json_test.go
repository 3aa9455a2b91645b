package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	b, err := json.Marshal(data)
	require.NoError(t, err)
	return writeFile(t, dir, name, string(b))
}

func Test_parseJSON(t *testing.T) {
	dir := t.TempDir()
	full := writeTempJSON(t, dir, "full.json", map[string]any{
		"api_base_url":     "https://files.example/api",
		"max_upload_size":  1024,
		"progress_tick":    "100ms",
		"copied_feedback":  int64(time.Second),
		"http_timeout":     "30s",
		"download_dir":     "/tmp/dl",
		"date_layout":      "02.01.2006",
		"timezone":         "UTC",
		"s3_bucket":        "drops",
		"s3_prefix":        "in/",
		"s3_region":        "eu-central-1",
		"s3_base_endpoint": "http://127.0.0.1:9000",
		"s3_access_key":    "ak",
		"s3_secret_key":    "sk",
		"log_level":        "debug",
		"log_format":       "json",
	})

	t.Run("loads every field", func(t *testing.T) {
		var cfg Config
		cfg.LoadDefaults()
		require.NoError(t, parseJSON(&cfg, []string{"-config", full}))

		want := Config{
			APIBaseURL:     "https://files.example/api",
			MaxUploadSize:  1024,
			ProgressTick:   100 * time.Millisecond,
			CopiedFeedback: time.Second,
			HTTPTimeout:    30 * time.Second,
			DownloadDir:    "/tmp/dl",
			DateLayout:     "02.01.2006",
			TimeZone:       "UTC",
			S3Bucket:       "drops",
			S3Prefix:       "in/",
			S3Region:       "eu-central-1",
			S3BaseEndpoint: "http://127.0.0.1:9000",
			S3AccessKey:    "ak",
			S3SecretKey:    "sk",
			LogLevel:       "debug",
			LogFormat:      "json",
		}
		assert.Equal(t, want, cfg)
		assert.True(t, cfg.UseS3())
	})

	t.Run("partial file keeps earlier values", func(t *testing.T) {
		partial := writeTempJSON(t, dir, "partial.json", map[string]any{"log_level": "error"})

		var cfg Config
		cfg.LoadDefaults()
		require.NoError(t, parseJSON(&cfg, []string{"-c=" + partial}))

		assert.Equal(t, "error", cfg.LogLevel)
		assert.Equal(t, "http://127.0.0.1:8000/api", cfg.APIBaseURL)
	})

	t.Run("no flag, no changes", func(t *testing.T) {
		cfg := Config{APIBaseURL: "http://keep"}
		require.NoError(t, parseJSON(&cfg, nil))
		assert.Equal(t, "http://keep", cfg.APIBaseURL)
	})

	t.Run("invalid JSON", func(t *testing.T) {
		bad := writeFile(t, dir, "bad.json", `{ this is not valid json`)
		require.Error(t, parseJSON(&Config{}, []string{"-c", bad}))
	})

	t.Run("missing file", func(t *testing.T) {
		require.Error(t, parseJSON(&Config{}, []string{"-c", filepath.Join(dir, "nope.json")}))
	})
}
