package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatFileSize(t *testing.T) {
	tests := []struct {
		bytes int64
		want  string
	}{
		{0, "0 Bytes"},
		{-5, "0 Bytes"},
		{1, "1 Bytes"},
		{1023, "1023 Bytes"},
		{1024, "1 KB"},
		{1536, "1.5 KB"},
		{1048575, "1024 KB"},
		{1048576, "1 MB"},
		{2097152, "2 MB"},
		{1234567, "1.18 MB"},
		{104857600, "100 MB"},
		{157286400, "150 MB"},
		{1073741824, "1 GB"},
		{5 * 1024 * 1073741824, "5120 GB"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatFileSize(tt.bytes))
		})
	}
}

func TestFormatUploadDate(t *testing.T) {
	utc := time.UTC
	berlin := time.FixedZone("CET", 3600)

	tests := []struct {
		name string
		raw    string
		loc    *time.Location
		layout string
		want   string
	}{
		{name: "python isoformat with micros", raw: "2025-03-01T10:20:30.123456", loc: utc, want: "2025-03-01 10:20:30"},
		{name: "no fraction", raw: "2025-03-01T10:20:30", loc: utc, want: "2025-03-01 10:20:30"},
		{name: "zoned converts", raw: "2025-03-01T10:20:30Z", loc: berlin, want: "2025-03-01 11:20:30"},
		{name: "space separated", raw: "2025-03-01 10:20:30", loc: utc, want: "2025-03-01 10:20:30"},
		{name: "garbage passes through", raw: "yesterday", loc: utc, want: "yesterday"},
		{name: "empty", raw: "", loc: utc, want: ""},
		{name: "custom layout", raw: "2025-03-01T10:20:30", loc: utc, layout: "02.01.2006 15:04", want: "01.03.2025 10:20"},
		{name: "custom layout in zone", raw: "2025-03-01T23:30:00Z", loc: berlin, layout: "Jan 2, 2006 3:04 PM", want: "Mar 2, 2025 12:30 AM"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatUploadDate(tt.raw, tt.loc, tt.layout))
		})
	}
}
