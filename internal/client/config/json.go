package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/filedrop/internal/flagx"
	"github.com/dmitrijs2005/filedrop/internal/timex"
)

// JsonConfig is the on-disk form of Config. Pointer fields distinguish
// "absent" from zero so a partial file only overrides what it names.
type JsonConfig struct {
	APIBaseURL     *string         `json:"api_base_url"`
	MaxUploadSize  *int64          `json:"max_upload_size"`
	ProgressTick   *timex.Duration `json:"progress_tick"`
	CopiedFeedback *timex.Duration `json:"copied_feedback"`
	HTTPTimeout    *timex.Duration `json:"http_timeout"`
	DownloadDir    *string         `json:"download_dir"`
	DateLayout     *string         `json:"date_layout"`
	TimeZone       *string         `json:"timezone"`
	S3Bucket       *string         `json:"s3_bucket"`
	S3Prefix       *string         `json:"s3_prefix"`
	S3Region       *string         `json:"s3_region"`
	S3BaseEndpoint *string         `json:"s3_base_endpoint"`
	S3AccessKey    *string         `json:"s3_access_key"`
	S3SecretKey    *string         `json:"s3_secret_key"`
	LogLevel       *string         `json:"log_level"`
	LogFormat      *string         `json:"log_format"`
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

// parseJSON overlays cfg with the file named by -c or -config, if any.
func parseJSON(cfg *Config, args []string) error {
	path := flagx.ConfigPath(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	setString(&cfg.APIBaseURL, jc.APIBaseURL)
	if jc.MaxUploadSize != nil {
		cfg.MaxUploadSize = *jc.MaxUploadSize
	}
	if jc.ProgressTick != nil {
		cfg.ProgressTick = jc.ProgressTick.Duration
	}
	if jc.CopiedFeedback != nil {
		cfg.CopiedFeedback = jc.CopiedFeedback.Duration
	}
	if jc.HTTPTimeout != nil {
		cfg.HTTPTimeout = jc.HTTPTimeout.Duration
	}
	setString(&cfg.DownloadDir, jc.DownloadDir)
	setString(&cfg.DateLayout, jc.DateLayout)
	setString(&cfg.TimeZone, jc.TimeZone)
	setString(&cfg.S3Bucket, jc.S3Bucket)
	setString(&cfg.S3Prefix, jc.S3Prefix)
	setString(&cfg.S3Region, jc.S3Region)
	setString(&cfg.S3BaseEndpoint, jc.S3BaseEndpoint)
	setString(&cfg.S3AccessKey, jc.S3AccessKey)
	setString(&cfg.S3SecretKey, jc.S3SecretKey)
	setString(&cfg.LogLevel, jc.LogLevel)
	setString(&cfg.LogFormat, jc.LogFormat)

	return nil
}
