package storage

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awscreds "github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dabson254/lapor-hilang/internal/config"
	"github.com/google/uuid"
)

const MaxPhotoSize = 5 * 1024 * 1024

// PhotoStore uploads report photos to S3-compatible blob storage. When the
// bucket is not configured or the upstream is unreachable it degrades to a
// local directory served under /uploads; the request never fails for an
// upstream fault.
type PhotoStore struct {
	client   *s3.Client
	bucket   string
	region   string
	baseURL  string
	localDir string
}

func NewPhotoStore(cfg *config.Config) *PhotoStore {
	store := &PhotoStore{
		bucket:   cfg.S3Bucket,
		region:   cfg.S3Region,
		baseURL:  strings.TrimRight(cfg.S3PublicURL, "/"),
		localDir: cfg.UploadDir,
	}

	if cfg.S3Bucket != "" && cfg.S3AccessKey != "" && cfg.S3SecretKey != "" {
		opts := s3.Options{
			Region:      cfg.S3Region,
			Credentials: awscreds.NewStaticCredentialsProvider(cfg.S3AccessKey, cfg.S3SecretKey, ""),
		}
		if cfg.S3Endpoint != "" {
			opts.BaseEndpoint = aws.String(cfg.S3Endpoint)
			opts.UsePathStyle = true
		}
		store.client = s3.New(opts)
		slog.Info("photo storage using s3", "bucket", cfg.S3Bucket)
	} else {
		slog.Warn("photo storage running in local mode", "dir", cfg.UploadDir)
	}

	return store
}

// Save stores the photo and returns its public URL.
func (p *PhotoStore) Save(ctx context.Context, filename string, content []byte, contentType string) (string, error) {
	key := objectKey(filename)

	if p.client != nil {
		url, err := p.uploadS3(ctx, key, content, contentType)
		if err == nil {
			return url, nil
		}
		slog.Error("s3 upload failed, falling back to local storage", "action", "photo_upload", "error", err)
	}

	return p.saveLocal(key, content)
}

func (p *PhotoStore) uploadS3(ctx context.Context, key string, content []byte, contentType string) (string, error) {
	_, err := p.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(p.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(content),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("put object: %w", err)
	}

	if p.baseURL != "" {
		return p.baseURL + "/" + key, nil
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", p.bucket, p.region, key), nil
}

func (p *PhotoStore) saveLocal(key string, content []byte) (string, error) {
	if err := os.MkdirAll(p.localDir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}
	path := filepath.Join(p.localDir, key)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return "", fmt.Errorf("write local file: %w", err)
	}
	return "/uploads/" + key, nil
}

// objectKey builds a collision-free object name, keeping the original
// extension so content sniffing keeps working downstream.
func objectKey(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	return uuid.NewString() + ext
}

// ValidImageType reports whether the multipart content type is an image.
func ValidImageType(contentType string) bool {
	return strings.HasPrefix(contentType, "image/")
}
