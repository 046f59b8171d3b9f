package usecases

import (
	"context"
	"log"
	"mime/multipart"

	"makecut/internal/domain/dto"
	"makecut/internal/domain/entities"
	"makecut/internal/domain/repositories"
	"makecut/pkg/errors"
	"makecut/pkg/helper"
)

// VideoService is the request pipeline: ingest -> remote store -> URL
// composition -> aggregation. The store call is the only network suspension;
// everything after it is pure. No stage retries, no stage runs twice.
type VideoService interface {
	Upload(ctx context.Context, fileHeader *multipart.FileHeader) (*dto.UploadResponse, error)
	CutSingle(ctx context.Context, fileHeader *multipart.FileHeader, cut entities.CutSpec) (*dto.CutVideoResponse, error)
	CutMultiple(ctx context.Context, fileHeader *multipart.FileHeader, cuts []entities.CutSpec) (*dto.MultiCutResponse, error)
	VideoInfo(fileHeader *multipart.FileHeader) (*dto.VideoInfoResponse, error)
	GenerateSubtitles(fileHeader *multipart.FileHeader) (*dto.SubtitlesResponse, error)
}

type videoService struct {
	ingest  IngestService
	store   repositories.MediaStore
	builder *CutURLBuilder
	folder  string
}

func NewVideoService(ingest IngestService, store repositories.MediaStore, builder *CutURLBuilder, folder string) VideoService {
	return &videoService{
		ingest:  ingest,
		store:   store,
		builder: builder,
		folder:  folder,
	}
}

func (s *videoService) Upload(ctx context.Context, fileHeader *multipart.FileHeader) (*dto.UploadResponse, error) {
	ref, release, err := s.ingestAndStore(ctx, fileHeader)
	if err != nil {
		return nil, err
	}
	defer release()

	return &dto.UploadResponse{
		Success:     true,
		PublicID:    ref.PublicID,
		DownloadURL: ref.SecureURL,
	}, nil
}

func (s *videoService) CutSingle(ctx context.Context, fileHeader *multipart.FileHeader, cut entities.CutSpec) (*dto.CutVideoResponse, error) {
	// Reject a bad range before paying for the upload.
	if err := ValidateCut(cut); err != nil {
		return nil, err
	}

	ref, release, err := s.ingestAndStore(ctx, fileHeader)
	if err != nil {
		return nil, err
	}
	defer release()

	url, err := s.builder.ComposeCutURL(ref, cut)
	if err != nil {
		return nil, err
	}

	return &dto.CutVideoResponse{
		Success:     true,
		DownloadURL: url,
		Duration:    cut.EndTime - cut.StartTime,
	}, nil
}

func (s *videoService) CutMultiple(ctx context.Context, fileHeader *multipart.FileHeader, cuts []entities.CutSpec) (*dto.MultiCutResponse, error) {
	if len(cuts) == 0 {
		return nil, errors.ErrInvalidRequest("At least one cut is required")
	}

	ref, release, err := s.ingestAndStore(ctx, fileHeader)
	if err != nil {
		return nil, err
	}
	defer release()

	results, err := CutMany(s.builder, ref, cuts)
	if err != nil {
		return nil, err
	}

	return &dto.MultiCutResponse{Success: true, Results: results}, nil
}

func (s *videoService) VideoInfo(fileHeader *multipart.FileHeader) (*dto.VideoInfoResponse, error) {
	asset, err := s.ingest.Ingest(fileHeader)
	if err != nil {
		return nil, err
	}
	defer asset.Release()

	return &dto.VideoInfoResponse{
		Success:  true,
		Duration: simulateDuration(asset.Size),
		Filename: asset.Filename,
		FileSize: asset.Size,
	}, nil
}

func (s *videoService) GenerateSubtitles(fileHeader *multipart.FileHeader) (*dto.SubtitlesResponse, error) {
	asset, err := s.ingest.Ingest(fileHeader)
	if err != nil {
		return nil, err
	}
	defer asset.Release()

	// Transcription is delegated in production; this endpoint returns canned
	// cues spread over the simulated duration.
	duration := simulateDuration(asset.Size)
	texts := []string{
		"Welcome to MakeCut.",
		"Your video is being prepared.",
		"Cut, trim and share in seconds.",
	}
	step := duration / float64(len(texts))
	cues := make([]dto.SubtitleCue, 0, len(texts))
	for i, text := range texts {
		cues = append(cues, dto.SubtitleCue{
			Index: i + 1,
			Start: float64(i) * step,
			End:   float64(i+1) * step,
			Text:  text,
		})
	}

	return &dto.SubtitlesResponse{Success: true, Language: "en", Cues: cues}, nil
}

func (s *videoService) ingestAndStore(ctx context.Context, fileHeader *multipart.FileHeader) (*entities.StoredAssetRef, func(), error) {
	asset, err := s.ingest.Ingest(fileHeader)
	if err != nil {
		return nil, nil, err
	}

	if !helper.IsVideoFile(asset.Filename) {
		log.Printf("upload %q has no recognized video extension, storing anyway", asset.Filename)
	}

	ref, err := s.store.Store(ctx, asset, s.folder)
	if err != nil {
		asset.Release()
		if _, ok := err.(*errors.APIError); ok {
			return nil, nil, err
		}
		return nil, nil, errors.ErrRemoteService(err)
	}

	return ref, asset.Release, nil
}

// simulateDuration derives a stable fake duration from the upload size. The
// backend never decodes media, so real duration is not locally knowable.
func simulateDuration(size int64) float64 {
	return float64(30 + size%270)
}
