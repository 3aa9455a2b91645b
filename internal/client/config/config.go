package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/dmitrijs2005/filedrop/internal/client/models"
	"github.com/dmitrijs2005/filedrop/internal/common"
	"github.com/dmitrijs2005/filedrop/internal/logging"
)

// Config holds runtime settings for the filedrop client.
//
// Units: ProgressTick, CopiedFeedback and HTTPTimeout are time.Duration;
// MaxUploadSize is in bytes. HTTPTimeout of zero means no client-side limit.
// DateLayout is a time.Format layout and TimeZone an IANA name, empty for
// the local zone.
type Config struct {
	APIBaseURL     string
	MaxUploadSize  int64
	ProgressTick   time.Duration
	CopiedFeedback time.Duration
	HTTPTimeout    time.Duration

	DownloadDir string

	DateLayout string
	TimeZone   string

	S3Bucket       string
	S3Prefix       string
	S3Region       string
	S3BaseEndpoint string
	S3AccessKey    string
	S3SecretKey    string

	LogLevel  string
	LogFormat string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:8000/api"
	c.MaxUploadSize = common.MaxUploadSize
	c.ProgressTick = 200 * time.Millisecond
	c.CopiedFeedback = 2 * time.Second
	c.HTTPTimeout = 0
	c.DownloadDir = "downloads"
	c.DateLayout = models.DateLayout
	c.TimeZone = ""
	c.S3Region = "us-east-1"
	c.LogLevel = "info"
	c.LogFormat = logging.FormatText
}

// UseS3 reports whether downloads go to a bucket instead of DownloadDir.
func (c *Config) UseS3() bool {
	return c.S3Bucket != ""
}

// Location resolves TimeZone.
func (c *Config) Location() (*time.Location, error) {
	if c.TimeZone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("time zone %q: %w", c.TimeZone, err)
	}
	return loc, nil
}

// Validate checks values that would otherwise fail later and less clearly.
func (c *Config) Validate() error {
	var errs []error

	u, err := url.Parse(c.APIBaseURL)
	switch {
	case err != nil:
		errs = append(errs, fmt.Errorf("api url: %w", err))
	case u.Scheme != "http" && u.Scheme != "https":
		errs = append(errs, fmt.Errorf("api url %q: scheme must be http or https", c.APIBaseURL))
	}
	if c.MaxUploadSize <= 0 {
		errs = append(errs, fmt.Errorf("max upload size must be positive, got %d", c.MaxUploadSize))
	}
	if c.ProgressTick <= 0 {
		errs = append(errs, fmt.Errorf("progress tick must be positive, got %s", c.ProgressTick))
	}
	if c.HTTPTimeout < 0 {
		errs = append(errs, fmt.Errorf("http timeout must not be negative, got %s", c.HTTPTimeout))
	}
	if c.DateLayout == "" {
		errs = append(errs, errors.New("date layout must not be empty"))
	}
	if _, err := c.Location(); err != nil {
		errs = append(errs, err)
	}
	switch c.LogFormat {
	case logging.FormatText, logging.FormatJSON, logging.FormatLogrus:
	default:
		errs = append(errs, fmt.Errorf("unknown log format %q", c.LogFormat))
	}

	return errors.Join(errs...)
}

// Load builds a Config from defaults, then the environment (with an
// optional dotenv file), then a JSON file, then flags. Later sources take
// precedence over earlier ones. args excludes the program name.
func Load(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseEnv(cfg, args); err != nil {
		return nil, err
	}
	if err := parseJSON(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadConfig is Load over os.Args. It panics on error.
func LoadConfig() *Config {
	cfg, err := Load(os.Args[1:])
	if err != nil {
		panic(err)
	}
	return cfg
}
