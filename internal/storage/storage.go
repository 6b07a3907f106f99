package storage

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	appconfig "pipeline-crm-backend/internal/config"
	"pipeline-crm-backend/internal/logger"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// Provider defines the interface for case document storage operations
type Provider interface {
	Upload(ctx context.Context, file *multipart.FileHeader, key string) (*Result, error)
	UploadReader(ctx context.Context, reader io.Reader, key string, contentType string, size int64) (*Result, error)
	Delete(ctx context.Context, key string) error
	Get(ctx context.Context, key string) (io.ReadCloser, string, error)
	GetSignedURL(ctx context.Context, key string, expiration time.Duration) (string, error)
	IsConfigured() bool
}

// Result contains information about a stored file
type Result struct {
	Key      string
	FileName string
	FileSize int64
	MimeType string
}

// Initialize selects the storage provider from configuration. An S3 bucket
// with credentials gets the S3 provider; anything else falls back to the
// local filesystem so development setups work without cloud access.
func Initialize(cfg *appconfig.Config, log *logger.Logger) Provider {
	if cfg.StorageBucket != "" && cfg.StorageAccessKey != "" && cfg.StorageSecretKey != "" {
		s3Provider, err := NewS3Storage(cfg)
		if err != nil {
			log.WithComponent("storage").Warnf("S3 storage init failed, falling back to local: %v", err)
			return NewLocalStorage(cfg.UploadDir)
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if _, err := s3Provider.client.HeadBucket(ctx, &s3.HeadBucketInput{
			Bucket: aws.String(cfg.StorageBucket),
		}); err != nil {
			log.WithComponent("storage").Warnf("S3 bucket check failed, falling back to local: %v", err)
			return NewLocalStorage(cfg.UploadDir)
		}

		log.WithComponent("storage").Infof("storage provider ready (S3 bucket: %s)", cfg.StorageBucket)
		return s3Provider
	}

	log.WithComponent("storage").Infof("storage provider ready (local path: %s)", cfg.UploadDir)
	return NewLocalStorage(cfg.UploadDir)
}

// S3Storage implements Provider for any S3-compatible object store
type S3Storage struct {
	client    *s3.Client
	presigner *s3.PresignClient
	bucket    string
}

// NewS3Storage creates a new S3 storage provider
func NewS3Storage(cfg *appconfig.Config) (*S3Storage, error) {
	creds := credentials.NewStaticCredentialsProvider(
		cfg.StorageAccessKey,
		cfg.StorageSecretKey,
		"",
	)

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithCredentialsProvider(creds),
		awsconfig.WithRegion(cfg.StorageRegion),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.StorageEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.StorageEndpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Storage{
		client:    client,
		presigner: s3.NewPresignClient(client),
		bucket:    cfg.StorageBucket,
	}, nil
}

// IsConfigured returns true if the S3 client and bucket are set
func (p *S3Storage) IsConfigured() bool {
	return p.client != nil && p.bucket != ""
}

// Upload uploads a multipart file to the bucket
func (p *S3Storage) Upload(ctx context.Context, file *multipart.FileHeader, key string) (*Result, error) {
	src, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer src.Close()

	contentType := file.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	return p.UploadReader(ctx, src, key, contentType, file.Size)
}

// UploadReader uploads content from a reader to the bucket
func (p *S3Storage) UploadReader(ctx context.Context, reader io.Reader, key string, contentType string, size int64) (*Result, error) {
	_, err := p.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(p.bucket),
		Key:           aws.String(key),
		Body:          reader,
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(size),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload object: %w", err)
	}

	return &Result{
		Key:      key,
		FileName: filepath.Base(key),
		FileSize: size,
		MimeType: contentType,
	}, nil
}

// Delete removes an object from the bucket
func (p *S3Storage) Delete(ctx context.Context, key string) error {
	_, err := p.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(p.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete object: %w", err)
	}
	return nil
}

// Get retrieves an object and returns a reader with its content type
func (p *S3Storage) Get(ctx context.Context, key string) (io.ReadCloser, string, error) {
	result, err := p.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(p.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, "", fmt.Errorf("failed to get object: %w", err)
	}

	contentType := "application/octet-stream"
	if result.ContentType != nil {
		contentType = *result.ContentType
	}
	return result.Body, contentType, nil
}

// GetSignedURL generates a presigned URL for temporary access
func (p *S3Storage) GetSignedURL(ctx context.Context, key string, expiration time.Duration) (string, error) {
	presignedReq, err := p.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(p.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(expiration))
	if err != nil {
		return "", fmt.Errorf("failed to generate signed URL: %w", err)
	}
	return presignedReq.URL, nil
}

// LocalStorage implements Provider for the local filesystem
type LocalStorage struct {
	baseDir string
}

// NewLocalStorage creates a new local storage provider
func NewLocalStorage(baseDir string) *LocalStorage {
	return &LocalStorage{baseDir: baseDir}
}

// IsConfigured returns true (local storage is always available)
func (l *LocalStorage) IsConfigured() bool {
	return true
}

// Upload saves a multipart file to the local filesystem
func (l *LocalStorage) Upload(ctx context.Context, file *multipart.FileHeader, key string) (*Result, error) {
	src, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer src.Close()

	contentType := file.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	return l.UploadReader(ctx, src, key, contentType, file.Size)
}

// UploadReader saves content from a reader to the local filesystem
func (l *LocalStorage) UploadReader(ctx context.Context, reader io.Reader, key string, contentType string, size int64) (*Result, error) {
	fullPath := filepath.Join(l.baseDir, key)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	dst, err := os.Create(fullPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	written, err := io.Copy(dst, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to save file: %w", err)
	}

	return &Result{
		Key:      key,
		FileName: filepath.Base(key),
		FileSize: written,
		MimeType: contentType,
	}, nil
}

// Delete removes a file from the local filesystem
func (l *LocalStorage) Delete(ctx context.Context, key string) error {
	fullPath := filepath.Join(l.baseDir, key)
	if err := os.Remove(fullPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

// Get opens a local file and detects its content type from the extension
func (l *LocalStorage) Get(ctx context.Context, key string) (io.ReadCloser, string, error) {
	fullPath := filepath.Join(l.baseDir, key)

	file, err := os.Open(fullPath)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open file: %w", err)
	}

	contentType := "application/octet-stream"
	switch strings.ToLower(filepath.Ext(key)) {
	case ".pdf":
		contentType = "application/pdf"
	case ".png":
		contentType = "image/png"
	case ".jpg", ".jpeg":
		contentType = "image/jpeg"
	case ".doc":
		contentType = "application/msword"
	case ".docx":
		contentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	}

	return file, contentType, nil
}

// GetSignedURL for local storage returns the file path, no signing needed
func (l *LocalStorage) GetSignedURL(ctx context.Context, key string, expiration time.Duration) (string, error) {
	return "/" + filepath.Join(l.baseDir, key), nil
}

// GenerateCaseFileKey creates a storage key for a case document:
// cases/<caso_id>/<8-hex>_<filename>
func GenerateCaseFileKey(casoID, originalFilename string) string {
	short := strings.ReplaceAll(uuid.New().String(), "-", "")[:8]
	return filepath.Join("cases", casoID, fmt.Sprintf("%s_%s", short, sanitizeKeyName(originalFilename)))
}

func sanitizeKeyName(name string) string {
	name = filepath.Base(name)
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	if b.Len() == 0 {
		return "file"
	}
	return b.String()
}
