// Package storage puts uploaded post images into an S3 bucket and returns their public URL.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"blog-api/config"
	"blog-api/logger"
)

var (
	ErrEmptyImage       = errors.New("image is empty")
	ErrUnsupportedImage = errors.New("image must be an image/* content type")
)

// Image is one binary image received from a client.
type Image struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// putObjectAPI is the subset of *s3.Client used for uploads.
type putObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Uploader stores images under <KeyPrefix><uuid><ext>.
type S3Uploader struct {
	client        putObjectAPI
	bucket        string
	region        string
	keyPrefix     string
	publicBaseURL string
}

// NewS3Uploader builds a client from the AWS default credential chain.
func NewS3Uploader(ctx context.Context, cfg config.StorageConfig) (*S3Uploader, error) {
	opts := []func(*awsconfig.LoadOptions) error{}
	if cfg.Region != "" {
		opts = append(opts, awsconfig.WithRegion(cfg.Region))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return newS3Uploader(s3.NewFromConfig(awsCfg), cfg), nil
}

func newS3Uploader(client putObjectAPI, cfg config.StorageConfig) *S3Uploader {
	return &S3Uploader{
		client:        client,
		bucket:        cfg.Bucket,
		region:        cfg.Region,
		keyPrefix:     cfg.KeyPrefix,
		publicBaseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
	}
}

// Upload writes img to the bucket and returns the URL clients should use to fetch it.
func (u *S3Uploader) Upload(ctx context.Context, img Image) (string, error) {
	if img.Body == nil || img.Size == 0 {
		return "", ErrEmptyImage
	}
	contentType := img.ContentType
	if contentType == "" {
		contentType = mime.TypeByExtension(strings.ToLower(path.Ext(img.Filename)))
	}
	if !strings.HasPrefix(contentType, "image/") {
		return "", ErrUnsupportedImage
	}

	key := u.objectKey(img.Filename)
	input := &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        img.Body,
		ContentType: aws.String(contentType),
	}
	if img.Size > 0 {
		input.ContentLength = aws.Int64(img.Size)
	}

	if _, err := u.client.PutObject(ctx, input); err != nil {
		logger.ErrorWithFields("failed to upload image", logger.Fields{
			"bucket": u.bucket,
			"key":    key,
			"error":  err.Error(),
		})
		return "", fmt.Errorf("failed to upload image: %w", err)
	}

	logger.DebugWithFields("image uploaded", logger.Fields{"bucket": u.bucket, "key": key})
	return u.publicURL(key), nil
}

func (u *S3Uploader) objectKey(filename string) string {
	return u.keyPrefix + uuid.NewString() + strings.ToLower(path.Ext(filename))
}

func (u *S3Uploader) publicURL(key string) string {
	if u.publicBaseURL != "" {
		return u.publicBaseURL + "/" + key
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", u.bucket, u.region, key)
}
