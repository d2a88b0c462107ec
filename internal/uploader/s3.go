package uploader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/rs/zerolog/log"
)

// S3Uploader implements Uploader for S3-compatible storage (AWS S3, Cloudflare R2, MinIO)
type S3Uploader struct {
	client  *s3.Client
	bucket  string
	baseURL string
}

// S3Config contains configuration for S3-compatible storage
type S3Config struct {
	// Endpoint is a custom S3-compatible endpoint URL. Empty means AWS S3.
	Endpoint string

	// Region of the bucket (e.g., "us-east-1", "auto" for R2)
	Region string

	Bucket string

	// AccessKeyID and SecretAccessKey fall back to S3_ACCESS_KEY_ID /
	// S3_SECRET_ACCESS_KEY, then AWS_ACCESS_KEY_ID / AWS_SECRET_ACCESS_KEY.
	AccessKeyID     string
	SecretAccessKey string

	// BaseURL is the public URL base for published files
	BaseURL string
}

func firstEnv(names ...string) string {
	for _, name := range names {
		if v := os.Getenv(name); v != "" {
			return v
		}
	}
	return ""
}

// NewS3Uploader creates a new S3-compatible uploader
func NewS3Uploader(ctx context.Context, cfg S3Config) (*S3Uploader, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("missing bucket name")
	}

	accessKey := cfg.AccessKeyID
	if accessKey == "" {
		accessKey = firstEnv("S3_ACCESS_KEY_ID", "AWS_ACCESS_KEY_ID")
	}
	secretKey := cfg.SecretAccessKey
	if secretKey == "" {
		secretKey = firstEnv("S3_SECRET_ACCESS_KEY", "AWS_SECRET_ACCESS_KEY")
	}
	if accessKey == "" || secretKey == "" {
		return nil, fmt.Errorf("missing credentials: set S3_ACCESS_KEY_ID/S3_SECRET_ACCESS_KEY or AWS_ACCESS_KEY_ID/AWS_SECRET_ACCESS_KEY")
	}

	awsCfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(cfg.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(accessKey, secretKey, "")),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	var client *s3.Client
	if cfg.Endpoint != "" {
		client = s3.NewFromConfig(awsCfg, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		})
	} else {
		client = s3.NewFromConfig(awsCfg)
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		if cfg.Endpoint != "" {
			baseURL = fmt.Sprintf("%s/%s", strings.TrimSuffix(cfg.Endpoint, "/"), cfg.Bucket)
		} else {
			baseURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
		}
	}

	log.Info().
		Str("bucket", cfg.Bucket).
		Str("region", cfg.Region).
		Str("endpoint", cfg.Endpoint).
		Str("baseURL", baseURL).
		Msg("S3 uploader initialized")

	return &S3Uploader{
		client:  client,
		bucket:  cfg.Bucket,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}, nil
}

// Upload puts an object into the bucket
func (u *S3Uploader) Upload(ctx context.Context, key string, content io.Reader, contentType string) error {
	log.Debug().Str("key", key).Str("contentType", contentType).Msg("Uploading to S3")

	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        content,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", key, err)
	}
	return nil
}

// Exists checks whether key is present in the bucket
func (u *S3Uploader) Exists(ctx context.Context, key string) (bool, error) {
	_, err := u.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(u.bucket),
		Key:    aws.String(key),
	})
	if err == nil {
		return true, nil
	}

	var notFound *types.NotFound
	if errors.As(err, &notFound) || strings.Contains(err.Error(), "StatusCode: 404") {
		return false, nil
	}
	return false, fmt.Errorf("failed to check existence of %s: %w", key, err)
}

// GetURL returns the public URL for key
func (u *S3Uploader) GetURL(key string) string {
	return fmt.Sprintf("%s/%s", u.baseURL, key)
}

// Delete removes key from the bucket
func (u *S3Uploader) Delete(ctx context.Context, key string) error {
	log.Debug().Str("key", key).Msg("Deleting from S3")

	_, err := u.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(u.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}
