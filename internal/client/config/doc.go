// Package config loads runtime configuration for the filedrop client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. FILEDROP_* environment variables, also read from a dotenv file
//     (".env" when present, or the file given with -env). The process
//     environment wins over the file.
//  3. Optional JSON file selected with -c or -config.
//  4. Command-line flags (see parseFlags).
//
// # JSON schema
//
// Durations use timex.Duration, so they can be strings like "200ms" or
// integer nanoseconds. Absent keys keep the earlier value:
//
//	{
//	  "api_base_url": "http://127.0.0.1:8000/api",
//	  "max_upload_size": 104857600,
//	  "progress_tick": "200ms",
//	  "copied_feedback": "2s",
//	  "download_dir": "downloads",
//	  "date_layout": "2006-01-02 15:04:05",
//	  "timezone": "Europe/Riga",
//	  "s3_bucket": "",
//	  "log_format": "text"
//	}
//
// # Environment
//
//	FILEDROP_API_URL, FILEDROP_MAX_UPLOAD_SIZE, FILEDROP_PROGRESS_TICK,
//	FILEDROP_COPIED_FEEDBACK, FILEDROP_HTTP_TIMEOUT, FILEDROP_DOWNLOAD_DIR,
//	FILEDROP_DATE_LAYOUT, FILEDROP_TIMEZONE,
//	FILEDROP_S3_BUCKET, FILEDROP_S3_PREFIX, FILEDROP_S3_REGION,
//	FILEDROP_S3_ENDPOINT, FILEDROP_S3_ACCESS_KEY, FILEDROP_S3_SECRET_KEY,
//	FILEDROP_LOG_LEVEL, FILEDROP_LOG_FORMAT
package config
