package storage

import (
	"context"
	"fmt"
	"io"
	"path"

	"makecut/internal/domain/entities"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
	"google.golang.org/api/option"
)

type GCSStorage struct {
	client     *storage.Client
	bucketName string
}

// NewGCSStorage builds a GCS-backed media store. credentialsJSON may be empty,
// in which case ambient application-default credentials are used.
func NewGCSStorage(ctx context.Context, bucketName string, credentialsJSON []byte) (*GCSStorage, error) {
	var opts []option.ClientOption
	if len(credentialsJSON) > 0 {
		opts = append(opts, option.WithCredentialsJSON(credentialsJSON))
	}
	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("storage.NewClient: %w", err)
	}
	return &GCSStorage{client: client, bucketName: bucketName}, nil
}

func (g *GCSStorage) Store(ctx context.Context, asset *entities.MediaAsset, folder string) (*entities.StoredAssetRef, error) {
	src, err := asset.Open()
	if err != nil {
		return nil, fmt.Errorf("could not open asset: %w", err)
	}
	defer src.Close()

	objectName := path.Join(folder, uuid.New().String()+"_"+asset.Filename)
	wc := g.client.Bucket(g.bucketName).Object(objectName).NewWriter(ctx)
	wc.ContentType = asset.MIMEType

	if _, err := io.Copy(wc, src); err != nil {
		wc.Close()
		return nil, fmt.Errorf("io.Copy: %w", err)
	}
	if err := wc.Close(); err != nil {
		return nil, fmt.Errorf("Writer.Close: %w", err)
	}

	return &entities.StoredAssetRef{
		PublicID:  objectName,
		SecureURL: fmt.Sprintf("https://storage.googleapis.com/%s/%s", g.bucketName, objectName),
		Bytes:     asset.Size,
	}, nil
}

func (g *GCSStorage) Close() error {
	return g.client.Close()
}
