package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"makecut/internal/domain/entities"

	"github.com/google/uuid"
)

// LocalStorage keeps uploads on the local disk. Development only; derived
// URLs composed against it point at files no transformation service fronts.
type LocalStorage struct {
	BasePath string
}

func NewLocalStorage(basePath string) *LocalStorage {
	return &LocalStorage{BasePath: basePath}
}

func (l *LocalStorage) Store(ctx context.Context, asset *entities.MediaAsset, folder string) (*entities.StoredAssetRef, error) {
	src, err := asset.Open()
	if err != nil {
		return nil, fmt.Errorf("could not open asset: %w", err)
	}
	defer src.Close()

	name := uuid.New().String() + "_" + asset.Filename
	fullPath := filepath.Join(l.BasePath, folder, name)
	if err := os.MkdirAll(filepath.Dir(fullPath), os.ModePerm); err != nil {
		return nil, fmt.Errorf("could not create folder: %w", err)
	}

	outFile, err := os.Create(fullPath)
	if err != nil {
		return nil, fmt.Errorf("could not create file: %w", err)
	}
	defer outFile.Close()

	if _, err := io.Copy(outFile, src); err != nil {
		return nil, fmt.Errorf("could not write file: %w", err)
	}

	return &entities.StoredAssetRef{
		PublicID:  filepath.ToSlash(filepath.Join(folder, name)),
		SecureURL: fullPath,
		Bytes:     asset.Size,
	}, nil
}
