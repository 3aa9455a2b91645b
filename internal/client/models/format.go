package models

import (
	"math"
	"strconv"
	"time"
)

var sizeUnits = []string{"Bytes", "KB", "MB", "GB"}

// FormatFileSize renders bytes with base-1024 units, rounded to at most two
// decimals with trailing zeros dropped: 0 -> "0 Bytes", 1536 -> "1.5 KB".
// Sizes of 1024 GB and more stay in GB.
func FormatFileSize(bytes int64) string {
	if bytes <= 0 {
		return "0 Bytes"
	}

	i := 0
	for v := bytes; v >= 1024 && i < len(sizeUnits)-1; v /= 1024 {
		i++
	}

	scaled := float64(bytes) / math.Pow(1024, float64(i))
	rounded := math.Round(scaled*100) / 100

	return strconv.FormatFloat(rounded, 'f', -1, 64) + " " + sizeUnits[i]
}

// DateLayout is the default display layout for upload timestamps.
const DateLayout = "2006-01-02 15:04:05"

var uploadDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
}

// FormatUploadDate renders an API timestamp in loc using layout (DateLayout
// when empty). Timestamps without a zone are taken to be in loc already.
// Unparseable input is returned as is.
func FormatUploadDate(raw string, loc *time.Location, layout string) string {
	if raw == "" {
		return ""
	}
	if loc == nil {
		loc = time.Local
	}
	if layout == "" {
		layout = DateLayout
	}

	for _, layout := range uploadDateLayouts {
		if t, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return t.In(loc).Format(layout)
		}
	}
	return raw
}
