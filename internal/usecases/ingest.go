package usecases

import (
	"io"
	"mime/multipart"
	"os"

	"makecut/internal/domain/entities"
	"makecut/pkg/errors"
	"makecut/pkg/helper"
)

// IngestService validates and buffers one multipart video file. The size
// ceiling is checked before anything leaves the process; assets above the
// memory limit are spilled to a temp file instead of held in RAM.
type IngestService interface {
	Ingest(fileHeader *multipart.FileHeader) (*entities.MediaAsset, error)
	MaxFileSize() int64
}

type ingestService struct {
	maxFileSize int64
	memoryLimit int64
	tempDir     string
}

func NewIngestService(maxFileSize, memoryLimit int64, tempDir string) IngestService {
	return &ingestService{
		maxFileSize: maxFileSize,
		memoryLimit: memoryLimit,
		tempDir:     tempDir,
	}
}

func (s *ingestService) MaxFileSize() int64 {
	return s.maxFileSize
}

func (s *ingestService) Ingest(fileHeader *multipart.FileHeader) (*entities.MediaAsset, error) {
	if fileHeader == nil {
		return nil, errors.ErrMissingFile(nil)
	}
	if fileHeader.Size > s.maxFileSize {
		return nil, errors.ErrPayloadTooLarge(s.maxFileSize)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, errors.ErrInternal(err)
	}
	defer file.Close()

	asset := &entities.MediaAsset{
		Filename: helper.SanitizeFilename(fileHeader.Filename),
		Size:     fileHeader.Size,
		MIMEType: fileHeader.Header.Get("Content-Type"),
	}
	// Browsers that don't know the type send octet-stream; fall back to the
	// extension in that case too.
	if asset.MIMEType == "" || asset.MIMEType == "application/octet-stream" {
		asset.MIMEType = helper.GetMimeTypeFromExtension(asset.Filename)
	}

	if fileHeader.Size <= s.memoryLimit {
		data, err := io.ReadAll(io.LimitReader(file, s.maxFileSize+1))
		if err != nil {
			return nil, errors.ErrInternal(err)
		}
		// The declared size can lie; re-check what actually arrived.
		if int64(len(data)) > s.maxFileSize {
			return nil, errors.ErrPayloadTooLarge(s.maxFileSize)
		}
		asset.Data = data
		asset.Size = int64(len(data))
		return asset, nil
	}

	tmp, err := os.CreateTemp(s.tempDir, "ingest-*")
	if err != nil {
		return nil, errors.ErrInternal(err)
	}
	written, err := io.Copy(tmp, io.LimitReader(file, s.maxFileSize+1))
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(tmp.Name())
		return nil, errors.ErrInternal(err)
	}
	if written > s.maxFileSize {
		os.Remove(tmp.Name())
		return nil, errors.ErrPayloadTooLarge(s.maxFileSize)
	}

	asset.TempPath = tmp.Name()
	asset.Size = written
	return asset, nil
}
