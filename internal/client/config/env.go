package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/dmitrijs2005/filedrop/internal/flagx"
	"github.com/joho/godotenv"
)

// EnvPrefix prefixes every environment variable the client reads.
const EnvPrefix = "FILEDROP_"

// DefaultEnvFile is read when present and no -env flag is given.
const DefaultEnvFile = ".env"

var lookupEnv = os.LookupEnv

// parseEnv overlays cfg with FILEDROP_* variables. Values from the process
// environment win over values from the dotenv file.
func parseEnv(cfg *Config, args []string) error {
	file := map[string]string{}

	path := flagx.EnvPath(args)
	explicit := path != ""
	if !explicit {
		path = DefaultEnvFile
	}

	vals, err := godotenv.Read(path)
	switch {
	case err == nil:
		file = vals
	case !explicit && errors.Is(err, fs.ErrNotExist):
	default:
		return fmt.Errorf("read env file %s: %w", path, err)
	}

	get := func(name string) (string, bool) {
		if v, ok := lookupEnv(EnvPrefix + name); ok {
			return v, true
		}
		v, ok := file[EnvPrefix+name]
		return v, ok
	}

	str := func(name string, dst *string) {
		if v, ok := get(name); ok {
			*dst = v
		}
	}
	var errs []error
	dur := func(name string, dst *time.Duration) {
		if v, ok := get(name); ok {
			d, err := time.ParseDuration(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s%s: %w", EnvPrefix, name, err))
				return
			}
			*dst = d
		}
	}

	str("API_URL", &cfg.APIBaseURL)
	if v, ok := get("MAX_UPLOAD_SIZE"); ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("%sMAX_UPLOAD_SIZE: %w", EnvPrefix, err))
		} else {
			cfg.MaxUploadSize = n
		}
	}
	dur("PROGRESS_TICK", &cfg.ProgressTick)
	dur("COPIED_FEEDBACK", &cfg.CopiedFeedback)
	dur("HTTP_TIMEOUT", &cfg.HTTPTimeout)
	str("DOWNLOAD_DIR", &cfg.DownloadDir)
	str("DATE_LAYOUT", &cfg.DateLayout)
	str("TIMEZONE", &cfg.TimeZone)
	str("S3_BUCKET", &cfg.S3Bucket)
	str("S3_PREFIX", &cfg.S3Prefix)
	str("S3_REGION", &cfg.S3Region)
	str("S3_ENDPOINT", &cfg.S3BaseEndpoint)
	str("S3_ACCESS_KEY", &cfg.S3AccessKey)
	str("S3_SECRET_KEY", &cfg.S3SecretKey)
	str("LOG_LEVEL", &cfg.LogLevel)
	str("LOG_FORMAT", &cfg.LogFormat)

	return errors.Join(errs...)
}
