package config

import (
	"flag"
	"io"

	"github.com/dmitrijs2005/filedrop/internal/flagx"
)

var knownFlags = []string{"-a", "-d", "-m", "-t", "-b", "-l", "-f"}

// parseFlags overlays cfg with command-line flags.
//
//	-a string     API base URL
//	-d string     download directory
//	-m int        advisory max upload size in bytes
//	-t duration   HTTP client timeout (0 = none)
//	-b string     S3 bucket for downloads
//	-l string     log level
//	-f string     log format: text, json or logrus
//
// Other flags in args are ignored so the loaders can share one argument list.
func parseFlags(cfg *Config, args []string) error {
	fs := flag.NewFlagSet("filedrop", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "API base URL")
	fs.StringVar(&cfg.DownloadDir, "d", cfg.DownloadDir, "download directory")
	fs.Int64Var(&cfg.MaxUploadSize, "m", cfg.MaxUploadSize, "max upload size in bytes")
	fs.DurationVar(&cfg.HTTPTimeout, "t", cfg.HTTPTimeout, "HTTP client timeout")
	fs.StringVar(&cfg.S3Bucket, "b", cfg.S3Bucket, "S3 bucket for downloads")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.LogFormat, "f", cfg.LogFormat, "log format")

	return fs.Parse(flagx.FilterArgs(args, knownFlags))
}
