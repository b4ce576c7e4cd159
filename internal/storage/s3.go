package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"

	aws "github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Store implements Store on an S3-compatible backend (AWS S3 or MinIO).
// Single bucket, keys map to object keys directly.
type S3Store struct {
	client    *s3.Client
	bucket    string
	region    string
	endpoint  string // optional custom endpoint (MinIO); implies path-style URLs
	pathStyle bool
}

// S3Config holds explicit construction parameters (mostly for tests). Prod
// configuration comes from the environment via OpenS3FromEnv.
type S3Config struct {
	Region    string
	Bucket    string
	Endpoint  string
	PathStyle bool
}

func NewS3(ctx context.Context, cfg S3Config) (*S3Store, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("s3 bucket required")
	}
	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, err
	}
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.PathStyle {
			o.UsePathStyle = true
		}
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})
	return &S3Store{
		client:    client,
		bucket:    cfg.Bucket,
		region:    region,
		endpoint:  strings.TrimSuffix(cfg.Endpoint, "/"),
		pathStyle: cfg.PathStyle,
	}, nil
}

// OpenS3FromEnv constructs an S3 store from process environment:
//
//	BLOB_S3_BUCKET     (required)
//	BLOB_S3_REGION     (default us-east-1)
//	BLOB_S3_ENDPOINT   (optional, for MinIO)
//	BLOB_S3_PATH_STYLE (true|false, default false)
//	AWS_ACCESS_KEY_ID / AWS_SECRET_ACCESS_KEY via the default chain
func OpenS3FromEnv(ctx context.Context) (*S3Store, error) {
	bucket := os.Getenv("BLOB_S3_BUCKET")
	if bucket == "" {
		return nil, fmt.Errorf("BLOB_S3_BUCKET required for s3 driver")
	}
	return NewS3(ctx, S3Config{
		Bucket:    bucket,
		Region:    os.Getenv("BLOB_S3_REGION"),
		Endpoint:  os.Getenv("BLOB_S3_ENDPOINT"),
		PathStyle: strings.EqualFold(os.Getenv("BLOB_S3_PATH_STYLE"), "true"),
	})
}

func (s *S3Store) Driver() Driver { return DriverS3 }

func (s *S3Store) Put(ctx context.Context, key string, r io.Reader, contentType string) (Info, error) {
	input := &s3.PutObjectInput{Bucket: &s.bucket, Key: &key, Body: r}
	if contentType != "" {
		input.ContentType = &contentType
	}
	if _, err := s.client.PutObject(ctx, input); err != nil {
		return Info{}, err
	}
	head, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{Bucket: &s.bucket, Key: &key})
	if err != nil {
		return Info{}, err
	}
	info := Info{Key: key, URL: s.publicURL(key), ContentType: contentType}
	if head.ContentLength != nil {
		info.Size = *head.ContentLength
	}
	return info, nil
}

func (s *S3Store) Delete(ctx context.Context, key string) (bool, error) {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{Bucket: &s.bucket, Key: &key})
	if err != nil {
		return false, err
	}
	return true, nil
}

// publicURL builds the object's public reference. With a custom endpoint we
// use path-style (endpoint/bucket/key); otherwise the virtual-hosted AWS
// form.
func (s *S3Store) publicURL(key string) string {
	if s.endpoint != "" {
		return fmt.Sprintf("%s/%s/%s", s.endpoint, s.bucket, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key)
}

func (s *S3Store) KeyFromURL(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("invalid blob url %q: %w", rawURL, err)
	}
	path := strings.TrimPrefix(u.Path, "/")
	if s.endpoint != "" || s.pathStyle {
		// path-style: first segment is the bucket
		if rest, ok := strings.CutPrefix(path, s.bucket+"/"); ok {
			return rest, nil
		}
		return "", fmt.Errorf("blob url %q does not reference bucket %q", rawURL, s.bucket)
	}
	if path == "" {
		return "", fmt.Errorf("blob url %q has no object key", rawURL)
	}
	return path, nil
}
