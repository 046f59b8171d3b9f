package storage

import (
	"context"
	"fmt"
	"path"

	"makecut/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

type S3Storage struct {
	client     *s3.Client
	bucketName string
	region     string
}

func NewS3Storage(ctx context.Context, bucketName, region string) (*S3Storage, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("could not load AWS config: %w", err)
	}
	return &S3Storage{
		client:     s3.NewFromConfig(cfg),
		bucketName: bucketName,
		region:     region,
	}, nil
}

func (s *S3Storage) Store(ctx context.Context, asset *entities.MediaAsset, folder string) (*entities.StoredAssetRef, error) {
	src, err := asset.Open()
	if err != nil {
		return nil, fmt.Errorf("could not open asset: %w", err)
	}
	defer src.Close()

	// The key is prefixed with a fresh UUID so identical filenames never
	// collide; downstream treats the whole key as opaque.
	key := path.Join(folder, uuid.New().String()+"_"+asset.Filename)

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucketName),
		Key:           aws.String(key),
		Body:          src,
		ContentType:   aws.String(asset.MIMEType),
		ContentLength: aws.Int64(asset.Size),
	})
	if err != nil {
		return nil, fmt.Errorf("S3 upload failed: %w", err)
	}

	return &entities.StoredAssetRef{
		PublicID:  key,
		SecureURL: fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucketName, s.region, key),
		Bytes:     asset.Size,
	}, nil
}
