package aws

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/HackathonFIAPX/hackathon-fiapx-admin/internal/domain/repositories"
)

// S3Handler issues presigned URLs so clients talk to S3 directly: PUT into
// the upload bucket, GET from the bucket where processed zips land.
type S3Handler struct {
	presigner    *s3.PresignClient
	uploadBucket string
	zipBucket    string
}

func NewS3Handler(client *s3.Client, uploadBucket, zipBucket string) *S3Handler {
	return &S3Handler{
		presigner:    s3.NewPresignClient(client),
		uploadBucket: uploadBucket,
		zipBucket:    zipBucket,
	}
}

func (h *S3Handler) PresignedUploadURL(ctx context.Context, params repositories.UploadParams) (*repositories.PresignedUpload, error) {
	key := fmt.Sprintf("%s/%s.%s", params.UploadType, params.FileName, params.FileType)

	expiresIn := params.ExpiresIn
	if expiresIn <= 0 {
		expiresIn = time.Hour
	}

	req, err := h.presigner.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(h.uploadBucket),
		Key:           aws.String(key),
		ContentType:   aws.String("video/" + params.FileType),
		ContentLength: aws.Int64(params.ContentLength),
	}, s3.WithPresignExpires(expiresIn))
	if err != nil {
		return nil, fmt.Errorf("failed to presign upload for %s: %w", key, err)
	}

	return &repositories.PresignedUpload{
		URL: req.URL,
		Key: key,
	}, nil
}

func (h *S3Handler) PresignedDownloadURL(ctx context.Context, key string, expiresIn time.Duration) (string, error) {
	if expiresIn <= 0 {
		expiresIn = time.Hour
	}

	req, err := h.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(h.zipBucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(expiresIn))
	if err != nil {
		return "", fmt.Errorf("failed to presign download for %s: %w", key, err)
	}

	return req.URL, nil
}
