// Package objectstore is the S3 adapter behind [ports.ObjectStore]. Task files
// live in one bucket; the SDK sends every request through the instrumented
// [httpclient.Client], so the SDK's own retryer is disabled.
package objectstore

import (
	"context"
	"io"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/jsamuelsen11/taskflow-service/internal/platform/config"
	"github.com/jsamuelsen11/taskflow-service/internal/ports"
)

// Compile-time interface check.
var _ ports.ObjectStore = (*Store)(nil)

// Store reads and writes task files in a single bucket.
type Store struct {
	client   *s3.Client
	presign  *s3.PresignClient
	bucket   string
	region   string
	endpoint string
	logger   *slog.Logger
}

// New builds a Store for cfg. httpClient is normally an [httpclient.Client];
// Endpoint, when set, points at an S3-compatible server such as MinIO.
// Without static keys requests are sent unsigned.
func New(cfg config.StorageConfig, httpClient s3.HTTPClient, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	var creds aws.CredentialsProvider = aws.AnonymousCredentials{}
	if cfg.AccessKeyID != "" {
		creds = credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")
	}

	opts := s3.Options{
		Region:                     cfg.Region,
		UsePathStyle:               cfg.UsePathStyle,
		Credentials:                creds,
		HTTPClient:                 httpClient,
		Retryer:                    aws.NopRetryer{},
		RequestChecksumCalculation: aws.RequestChecksumCalculationWhenRequired,
		ResponseChecksumValidation: aws.ResponseChecksumValidationWhenRequired,
	}
	endpoint := strings.TrimRight(cfg.Endpoint, "/")
	if endpoint != "" {
		opts.BaseEndpoint = aws.String(endpoint)
	}

	client := s3.New(opts)
	return &Store{
		client:   client,
		presign:  s3.NewPresignClient(client),
		bucket:   cfg.Bucket,
		region:   cfg.Region,
		endpoint: endpoint,
		logger:   logger,
	}
}

// Put uploads body under key and returns the object's public URL.
func (s *Store) Put(ctx context.Context, key string, body io.ReadSeeker, size int64, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentType),
	})
	if err != nil {
		return "", s.fail(ctx, "put object", key, err)
	}
	return s.objectURL(key), nil
}

// Delete removes the object at key. S3 treats a missing key as deleted.
func (s *Store) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return s.fail(ctx, "delete object", key, err)
	}
	return nil
}

// PresignGet signs a GET for key valid for ttl. No request is sent.
func (s *Store) PresignGet(ctx context.Context, key string, ttl time.Duration) (string, error) {
	req, err := s.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(ttl))
	if err != nil {
		return "", s.fail(ctx, "presign get", key, err)
	}
	return req.URL, nil
}

// objectURL mirrors the address S3 serves the object from: path style under
// a custom endpoint, virtual-hosted style on AWS.
func (s *Store) objectURL(key string) string {
	path := (&url.URL{Path: key}).EscapedPath()
	if s.endpoint != "" {
		return s.endpoint + "/" + s.bucket + "/" + path
	}
	return "https://" + s.bucket + ".s3." + s.region + ".amazonaws.com/" + path
}

func (s *Store) fail(ctx context.Context, op, key string, err error) error {
	err = translateError(op, err)
	s.logger.ErrorContext(ctx, "object store call failed",
		slog.String("operation", op),
		slog.String("key", key),
		slog.String("error", err.Error()),
	)
	return err
}
