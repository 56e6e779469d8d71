package storage

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Config holds settings for the S3-compatible photo bucket.
type Config struct {
	AccessKeyID     string
	SecretAccessKey string
	Region          string
	Bucket          string
	Endpoint        string // optional, for S3-compatible providers
	PublicBaseURL   string // optional, overrides the default object URL
}

// PhotoStore stores profile photos in an S3-compatible bucket.
type PhotoStore struct {
	client *s3.Client
	cfg    Config
}

// NewPhotoStore creates an S3 client for the configured bucket.
func NewPhotoStore(ctx context.Context, cfg Config) (*PhotoStore, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	var client *s3.Client
	if cfg.Endpoint != "" {
		// S3-compatible providers need a custom endpoint and path-style addressing
		client = s3.NewFromConfig(awsCfg, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		})
	} else {
		client = s3.NewFromConfig(awsCfg)
	}

	return &PhotoStore{client: client, cfg: cfg}, nil
}

// Put uploads an object and returns its public URL.
func (ps *PhotoStore) Put(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	_, err := ps.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(ps.cfg.Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", key, err)
	}
	return ps.URL(key), nil
}

// Delete removes an object. Missing objects are not an error.
func (ps *PhotoStore) Delete(ctx context.Context, key string) error {
	_, err := ps.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(ps.cfg.Bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}

// URL returns the public URL for an object key.
func (ps *PhotoStore) URL(key string) string {
	if ps.cfg.PublicBaseURL != "" {
		return ps.cfg.PublicBaseURL + "/" + key
	}
	if ps.cfg.Endpoint != "" {
		return fmt.Sprintf("%s/%s/%s", ps.cfg.Endpoint, ps.cfg.Bucket, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", ps.cfg.Bucket, ps.cfg.Region, key)
}

// HealthCheck verifies the bucket is reachable.
func (ps *PhotoStore) HealthCheck(ctx context.Context) error {
	_, err := ps.client.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
		Bucket:  aws.String(ps.cfg.Bucket),
		MaxKeys: aws.Int32(1),
	})
	if err != nil {
		return fmt.Errorf("failed to access bucket %s: %w", ps.cfg.Bucket, err)
	}
	return nil
}
