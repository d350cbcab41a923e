package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"manutencao_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// S3BlobStore stores service order attachments in an S3 bucket (or an
// S3-compatible emulator such as MinIO or LocalStack).
//
// Supported env vars:
//   - ATTACHMENTS_BUCKET (default: fleet-attachments)
//   - S3_ENDPOINT (optional; e.g. http://localstack:4566)
//   - BLOB_PUBLIC_BASE_URL (optional; base of the public URLs returned by
//     Upload; defaults to the virtual-hosted S3 URL for the bucket)
type S3BlobStore struct {
	client  *s3.Client
	bucket  string
	baseURL string
}

var _ interfaces.IBlobStore = (*S3BlobStore)(nil)

func NewS3BlobStore(cfg aws.Config) *S3BlobStore {
	endpoint := os.Getenv("S3_ENDPOINT")
	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			// Emulators route by path, not by bucket subdomain.
			o.UsePathStyle = true
		}
	})

	bucket := getenvDefault("ATTACHMENTS_BUCKET", "fleet-attachments")
	baseURL := os.Getenv("BLOB_PUBLIC_BASE_URL")
	if baseURL == "" {
		if endpoint != "" {
			baseURL = fmt.Sprintf("%s/%s", strings.TrimSuffix(endpoint, "/"), bucket)
		} else {
			baseURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", bucket, cfg.Region)
		}
	}

	return &S3BlobStore{
		client:  client,
		bucket:  bucket,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

// Upload stores the object under key and returns its public URL.
func (s *S3BlobStore) Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	input := &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   body,
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		return "", err
	}
	return s.baseURL + "/" + key, nil
}

// Delete removes the object the URL points at. Deleting an object that no
// longer exists is not an error, so orphan cleanup can be retried freely.
func (s *S3BlobStore) Delete(ctx context.Context, url string) error {
	key, ok := s.keyFromURL(url)
	if !ok {
		log.Printf("[s3blobstore] skipping delete of foreign url %q", url)
		return nil
	}

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var nsk *types.NoSuchKey
		if errors.As(err, &nsk) {
			return nil
		}
		return err
	}
	return nil
}

func (s *S3BlobStore) keyFromURL(url string) (string, bool) {
	if !strings.HasPrefix(url, s.baseURL+"/") {
		return "", false
	}
	key := strings.TrimPrefix(url, s.baseURL+"/")
	if key == "" {
		return "", false
	}
	return key, true
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
