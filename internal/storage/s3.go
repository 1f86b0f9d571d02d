package storage

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"io"
	"log"
	"mime/multipart"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"

	"github.com/yrfilms/studio-backend/internal/config"
)

type S3Uploader struct {
	client  *s3.Client
	bucket  string
	region  string
	baseURL string
}

func NewS3Uploader(cfg *config.Config) *S3Uploader {
	awsCfg := aws.Config{
		Region: cfg.S3Region,
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey,
			cfg.S3SecretKey,
			"",
		),
	}

	return &S3Uploader{
		client:  s3.NewFromConfig(awsCfg),
		bucket:  cfg.S3Bucket,
		region:  cfg.S3Region,
		baseURL: cfg.S3BaseURL,
	}
}

func (u *S3Uploader) Store(
	ctx context.Context,
	file *multipart.FileHeader,
	folder string,
) (*UploadResult, error) {

	if err := ValidateFile(file); err != nil {
		return nil, err
	}

	contentType := file.Header.Get("Content-Type")

	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, err
	}

	key := folder + "/" + uuid.NewString() + allowedTypes[contentType]

	if _, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	}); err != nil {
		return nil, fmt.Errorf("s3 upload failed: %w", err)
	}

	result := &UploadResult{
		URL: u.publicURL(key),
		Key: key,
	}

	// Dimension probe and thumbnail are best-effort: a file that the
	// decoders reject is still served as uploaded.
	if cfg, _, err := image.DecodeConfig(bytes.NewReader(data)); err == nil {
		result.Width = cfg.Width
		result.Height = cfg.Height
	}

	if thumb, err := makeThumbnail(data); err == nil {
		thumbKey := thumbKeyFor(key)
		if _, err := u.client.PutObject(ctx, &s3.PutObjectInput{
			Bucket:      aws.String(u.bucket),
			Key:         aws.String(thumbKey),
			Body:        bytes.NewReader(thumb),
			ContentType: aws.String("image/webp"),
		}); err == nil {
			result.Thumb = u.publicURL(thumbKey)
		} else {
			log.Printf("thumbnail upload failed for %s: %v", key, err)
		}
	}

	return result, nil
}

func (u *S3Uploader) Remove(ctx context.Context, key string) error {
	// The thumbnail shares the original's key; drop it first so a failed
	// original delete still leaves both behind together.
	if _, err := u.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(u.bucket),
		Key:    aws.String(thumbKeyFor(key)),
	}); err != nil {
		log.Printf("thumbnail delete failed for %s: %v", key, err)
	}

	if _, err := u.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(u.bucket),
		Key:    aws.String(key),
	}); err != nil {
		return fmt.Errorf("s3 delete failed: %w", err)
	}
	return nil
}

func (u *S3Uploader) publicURL(key string) string {
	if u.baseURL != "" {
		return fmt.Sprintf("%s/%s", strings.TrimSuffix(u.baseURL, "/"), key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", u.bucket, u.region, key)
}

func thumbKeyFor(key string) string {
	return key + ".thumb.webp"
}
