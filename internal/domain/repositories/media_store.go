package repositories

import (
	"context"

	"makecut/internal/domain/entities"
)

// MediaStore streams a validated asset to a remote object/video store in one
// call. No chunking, no resume, no internal retry or timeout: a transport
// failure mid-stream fails the call, and deadlines are the caller's job via
// ctx. The remote store is the system of record for the stored object.
type MediaStore interface {
	Store(ctx context.Context, asset *entities.MediaAsset, folder string) (*entities.StoredAssetRef, error)
}
