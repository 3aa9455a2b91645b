package savers

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dmitrijs2005/filedrop/internal/client/models"
	"github.com/dmitrijs2005/filedrop/internal/filex"
)

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	putObject = func(c *s3.Client, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
		return c.PutObject(ctx, in, optFns...)
	}
)

// S3Config locates the bucket downloads are copied into.
type S3Config struct {
	Bucket       string
	Prefix       string
	Region       string
	BaseEndpoint string
	AccessKey    string
	SecretKey    string
}

// S3Saver uploads downloaded files to an S3-compatible bucket (AWS, MinIO).
// The stream is spooled to a temp file so the object can be sent with a
// known length.
type S3Saver struct {
	cfg     S3Config
	tempDir string
}

// NewS3Saver returns a saver for cfg. Temp files go to os.TempDir().
func NewS3Saver(cfg S3Config) *S3Saver {
	return &S3Saver{cfg: cfg}
}

func (s *S3Saver) client(ctx context.Context) (*s3.Client, error) {
	opts := []func(*config.LoadOptions) error{config.WithRegion(s.cfg.Region)}
	if s.cfg.AccessKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(s.cfg.AccessKey, s.cfg.SecretKey, "")))
	}

	cfg, err := loadDefaultAWSConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return newS3ClientFromConfig(cfg, func(o *s3.Options) {
		if s.cfg.BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(s.cfg.BaseEndpoint)
			o.UsePathStyle = true
		}
	}), nil
}

func (s *S3Saver) objectKey(name string) string {
	prefix := strings.Trim(s.cfg.Prefix, "/")
	if prefix == "" {
		return name
	}
	return path.Join(prefix, name)
}

func (s *S3Saver) Save(ctx context.Context, name, contentType string, r io.Reader) (models.SavedFile, error) {
	if s.cfg.Bucket == "" {
		return models.SavedFile{}, fmt.Errorf("s3 saver: bucket is not configured")
	}

	safe, err := filex.SafeFileName(name)
	if err != nil {
		return models.SavedFile{}, err
	}

	tmp, err := os.CreateTemp(s.tempDir, "filedrop-s3-*")
	if err != nil {
		return models.SavedFile{}, fmt.Errorf("create temp file: %w", err)
	}
	defer func() {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
	}()

	n, err := io.Copy(tmp, ctxReader{ctx: ctx, r: r})
	if err != nil {
		return models.SavedFile{}, fmt.Errorf("spool %s: %w", safe, err)
	}
	if _, err := tmp.Seek(0, io.SeekStart); err != nil {
		return models.SavedFile{}, fmt.Errorf("rewind %s: %w", safe, err)
	}

	c, err := s.client(ctx)
	if err != nil {
		return models.SavedFile{}, err
	}

	key := s.objectKey(safe)
	in := &s3.PutObjectInput{
		Bucket:        aws.String(s.cfg.Bucket),
		Key:           aws.String(key),
		Body:          tmp,
		ContentLength: aws.Int64(n),
	}
	if contentType != "" {
		in.ContentType = aws.String(contentType)
	}

	if _, err := putObject(c, ctx, in); err != nil {
		return models.SavedFile{}, fmt.Errorf("put s3://%s/%s: %w", s.cfg.Bucket, key, err)
	}

	return models.SavedFile{
		Filename: safe,
		Location: fmt.Sprintf("s3://%s/%s", s.cfg.Bucket, key),
		Size:     n,
	}, nil
}
