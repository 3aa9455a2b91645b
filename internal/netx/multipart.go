// Package netx holds HTTP wire helpers for talking to the file-sharing API.
package netx

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"strings"
)

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// MultipartFile streams r as a single file part of a multipart/form-data body.
//
// It returns the body reader and the Content-Type value (with the boundary
// generated by the multipart writer) that must accompany it. The body is
// produced lazily through a pipe, so the whole file is never held in memory.
// Closing the returned reader aborts the producer.
func MultipartFile(field, filename, contentType string, r io.Reader) (io.ReadCloser, string) {
	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)

	if contentType == "" {
		contentType = "application/octet-stream"
	}

	go func() {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
			quoteEscaper.Replace(field), quoteEscaper.Replace(filename)))
		h.Set("Content-Type", contentType)

		part, err := mw.CreatePart(h)
		if err == nil {
			_, err = io.Copy(part, r)
		}
		if err == nil {
			err = mw.Close()
		}
		pw.CloseWithError(err)
	}()

	return pr, mw.FormDataContentType()
}
