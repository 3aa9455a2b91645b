package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/dmitrijs2005/filedrop/internal/client/models"
	"github.com/dmitrijs2005/filedrop/internal/common"
	"github.com/dmitrijs2005/filedrop/internal/logging"
	"github.com/dmitrijs2005/filedrop/internal/netx"
	"github.com/google/uuid"
)

// HTTPClient talks to the file-sharing API over HTTP.
type HTTPClient struct {
	baseURL      *url.URL
	http         *http.Client
	logger       logging.Logger
	newRequestID func() string
}

// Option configures an HTTPClient.
type Option func(*HTTPClient)

// WithHTTPClient replaces the underlying *http.Client. Its Timeout, if any,
// is the only time bound applied to requests besides the caller's context.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) { c.http = hc }
}

// WithLogger sets the logger.
func WithLogger(l logging.Logger) Option {
	return func(c *HTTPClient) { c.logger = l }
}

// WithRequestIDs overrides the request id generator.
func WithRequestIDs(fn func() string) Option {
	return func(c *HTTPClient) { c.newRequestID = fn }
}

// NewHTTPClient returns a client rooted at baseURL, e.g. "http://127.0.0.1:8000/api".
func NewHTTPClient(baseURL string, opts ...Option) (*HTTPClient, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("base url %q: scheme must be http or https", baseURL)
	}

	c := &HTTPClient{
		baseURL:      u,
		http:         &http.Client{},
		logger:       logging.Discard(),
		newRequestID: uuid.NewString,
	}
	for _, o := range opts {
		o(c)
	}
	return c, nil
}

func (c *HTTPClient) endpoint(elem ...string) string {
	return c.baseURL.JoinPath(elem...).String()
}

// resolve turns a server-relative URL into an absolute one.
func (c *HTTPClient) resolve(ref string) string {
	if ref == "" {
		return ""
	}
	u, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	return c.baseURL.ResolveReference(u).String()
}

// do sends req with a fresh request id and classifies transport failures.
func (c *HTTPClient) do(req *http.Request, op string) (*http.Response, logging.Logger, error) {
	id := c.newRequestID()
	req.Header.Set(common.RequestIDHeaderName, id)
	log := c.logger.With("op", op, "request_id", id)

	log.Debug(req.Context(), "api request", "method", req.Method, "url", req.URL.String())

	resp, err := c.http.Do(req)
	if err != nil {
		log.Warn(req.Context(), "api transport failure", "error", err)
		return nil, log, &Error{Kind: KindTransport, Op: op, Message: err.Error(), Err: err}
	}

	log.Debug(req.Context(), "api response", "status", resp.StatusCode)
	return resp, log, nil
}

func isSuccess(status int) bool {
	return status >= 200 && status <= 299
}

func statusError(op string, status int) *Error {
	return &Error{Kind: KindServerStatus, Op: op, Status: status, Message: fmt.Sprintf("Server error: %d", status)}
}

func readBody(op string, resp *http.Response) ([]byte, error) {
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Kind: KindTransport, Op: op, Status: resp.StatusCode, Message: err.Error(), Err: err}
	}
	return data, nil
}

func emptyResponse(op string, status int) *Error {
	return &Error{Kind: KindEmptyResponse, Op: op, Status: status, Message: "Empty response from server"}
}

func malformed(op string, status int, err error) *Error {
	return &Error{Kind: KindMalformedResponse, Op: op, Status: status, Message: err.Error(), Err: err}
}

// Upload posts the file as multipart/form-data and interprets the answer in
// this order: transport failure, non-2xx status, blank body, unparseable
// body, falsy success flag. Each produces a distinct *Error.
func (c *HTTPClient) Upload(ctx context.Context, file models.PendingFile) (string, error) {
	if file.Open == nil {
		return "", NewValidationError(OpUpload, common.ErrNoFileSelected)
	}
	src, err := file.Open()
	if err != nil {
		return "", NewValidationError(OpUpload, fmt.Errorf("open %s: %w", file.Name, err))
	}
	defer src.Close()

	body, contentType := netx.MultipartFile("file", file.Name, file.MimeType, src)
	defer body.Close()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint("upload"), body)
	if err != nil {
		return "", &Error{Kind: KindTransport, Op: OpUpload, Message: err.Error(), Err: err}
	}
	req.Header.Set("Content-Type", contentType)

	resp, log, err := c.do(req, OpUpload)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		return "", statusError(OpUpload, resp.StatusCode)
	}

	data, err := readBody(OpUpload, resp)
	if err != nil {
		return "", err
	}

	if strings.TrimSpace(string(data)) == "" {
		return "", emptyResponse(OpUpload, resp.StatusCode)
	}

	env, err := parseEnvelope(data)
	if err != nil {
		return "", malformed(OpUpload, resp.StatusCode, err)
	}

	if !env.truthy("success") {
		return "", &Error{Kind: KindApplication, Op: OpUpload, Status: resp.StatusCode, Message: env.failureMessage("Upload failed")}
	}

	code := env.text("download_code")
	if code == "" || code == "null" {
		return "", malformed(OpUpload, resp.StatusCode, fmt.Errorf("response has no download code"))
	}

	log.Info(ctx, "file uploaded", "file", file.Name, "size", file.Size, "code", code)
	return code, nil
}

// Preview fetches metadata for code. Transport, status and blank-body
// failures come first, as for Upload. After that only an explicit
// "success": false is a failure: the endpoint may omit the flag on success.
func (c *HTTPClient) Preview(ctx context.Context, code string) (models.FileMetadata, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint("preview", code), nil)
	if err != nil {
		return models.FileMetadata{}, &Error{Kind: KindTransport, Op: OpPreview, Message: err.Error(), Err: err}
	}

	resp, _, err := c.do(req, OpPreview)
	if err != nil {
		return models.FileMetadata{}, err
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		return models.FileMetadata{}, statusError(OpPreview, resp.StatusCode)
	}

	data, err := readBody(OpPreview, resp)
	if err != nil {
		return models.FileMetadata{}, err
	}

	if strings.TrimSpace(string(data)) == "" {
		return models.FileMetadata{}, emptyResponse(OpPreview, resp.StatusCode)
	}

	env, err := parseEnvelope(data)
	if err != nil {
		return models.FileMetadata{}, malformed(OpPreview, resp.StatusCode, err)
	}

	if env.explicitlyFalse("success") {
		return models.FileMetadata{}, &Error{Kind: KindApplication, Op: OpPreview, Status: resp.StatusCode, Message: env.failureMessage("Preview failed")}
	}

	return models.FileMetadata{
		Filename:      env.text("filename"),
		FileSize:      env.number("file_size"),
		MimeType:      env.text("mime_type"),
		UploadDate:    env.text("upload_date"),
		DownloadCount: env.number("download_count"),
		PreviewURL:    c.resolve(env.text("preview_url")),
	}, nil
}

// Download opens the file behind code. On a non-2xx answer the (possibly
// empty) body is parsed for a detail or message.
func (c *HTTPClient) Download(ctx context.Context, code string) (*Download, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint("download", code), nil)
	if err != nil {
		return nil, &Error{Kind: KindTransport, Op: OpDownload, Message: err.Error(), Err: err}
	}

	resp, _, err := c.do(req, OpDownload)
	if err != nil {
		return nil, err
	}

	if isSuccess(resp.StatusCode) {
		return &Download{
			Filename:    netx.FilenameFromContentDisposition(resp.Header.Get("Content-Disposition"), common.DefaultDownloadName),
			ContentType: resp.Header.Get("Content-Type"),
			Size:        resp.ContentLength,
			Body:        resp.Body,
		}, nil
	}
	defer resp.Body.Close()

	data, err := readBody(OpDownload, resp)
	if err != nil {
		return nil, err
	}

	env, err := parseEnvelope(data)
	if err != nil {
		return nil, malformed(OpDownload, resp.StatusCode, err)
	}

	return nil, &Error{Kind: KindServerStatus, Op: OpDownload, Status: resp.StatusCode, Message: env.failureMessage("Download failed")}
}

// Health queries the API health endpoint.
func (c *HTTPClient) Health(ctx context.Context) (models.HealthStatus, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint("health"), nil)
	if err != nil {
		return models.HealthStatus{}, &Error{Kind: KindTransport, Op: OpHealth, Message: err.Error(), Err: err}
	}

	resp, _, err := c.do(req, OpHealth)
	if err != nil {
		return models.HealthStatus{}, err
	}
	defer resp.Body.Close()

	data, err := readBody(OpHealth, resp)
	if err != nil {
		return models.HealthStatus{}, err
	}

	env, err := parseEnvelope(data)

	if !isSuccess(resp.StatusCode) {
		e := statusError(OpHealth, resp.StatusCode)
		if err == nil && env.truthy("detail") {
			e.Message = fmt.Sprintf("%s (%s)", e.Message, env.text("detail"))
		}
		return models.HealthStatus{}, e
	}

	if err != nil {
		return models.HealthStatus{}, malformed(OpHealth, resp.StatusCode, err)
	}

	if len(env) == 0 {
		return models.HealthStatus{}, emptyResponse(OpHealth, resp.StatusCode)
	}

	return models.HealthStatus{
		Status:    env.text("status"),
		Database:  env.text("database"),
		Timestamp: env.text("timestamp"),
	}, nil
}
