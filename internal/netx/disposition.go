package netx

import (
	"mime"
	"regexp"
)

var quotedFilename = regexp.MustCompile(`filename="([^"]+)"`)

// FilenameFromContentDisposition extracts the suggested filename from a
// Content-Disposition header value. It returns fallback when the header is
// absent, unparseable or names no file.
func FilenameFromContentDisposition(header, fallback string) string {
	if header == "" {
		return fallback
	}

	if _, params, err := mime.ParseMediaType(header); err == nil {
		if name := params["filename"]; name != "" {
			return name
		}
		return fallback
	}

	// ParseMediaType is strict about the disposition type; servers in the
	// wild still send a usable quoted filename.
	if m := quotedFilename.FindStringSubmatch(header); m != nil {
		return m[1]
	}
	return fallback
}
