package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"makecut/internal/domain/entities"
)

// MediaAPIStorage streams uploads to the remote media-transformation service.
// One request per asset, no chunking or resume; a mid-stream transport error
// fails the call. No timeout is set here: the caller bounds the call through
// ctx, and cancelling ctx (client disconnect) abandons the upload. The remote
// side may still have persisted the object in that case, which is accepted.
type MediaAPIStorage struct {
	baseURL   string
	cloudName string
	apiKey    string
	apiSecret string
	client    *http.Client
}

func NewMediaAPIStorage(baseURL, cloudName, apiKey, apiSecret string) *MediaAPIStorage {
	return &MediaAPIStorage{
		baseURL:   baseURL,
		cloudName: cloudName,
		apiKey:    apiKey,
		apiSecret: apiSecret,
		client:    &http.Client{},
	}
}

type uploadAck struct {
	PublicID  string `json:"public_id"`
	SecureURL string `json:"secure_url"`
	Bytes     int64  `json:"bytes"`
	Format    string `json:"format"`
	Error     struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (m *MediaAPIStorage) Store(ctx context.Context, asset *entities.MediaAsset, folder string) (*entities.StoredAssetRef, error) {
	src, err := asset.Open()
	if err != nil {
		return nil, fmt.Errorf("could not open asset: %w", err)
	}
	defer src.Close()

	// Pipe the multipart body so the asset is never held in memory twice.
	pr, pw := io.Pipe()
	writer := multipart.NewWriter(pw)
	go func() {
		part, err := writer.CreateFormFile("file", asset.Filename)
		if err != nil {
			pw.CloseWithError(err)
			return
		}
		if _, err := io.Copy(part, src); err != nil {
			pw.CloseWithError(err)
			return
		}
		writer.WriteField("folder", folder)
		writer.WriteField("api_key", m.apiKey)
		pw.CloseWithError(writer.Close())
	}()

	endpoint := fmt.Sprintf("%s/v1/%s/video/upload", m.baseURL, m.cloudName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, pr)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.SetBasicAuth(m.apiKey, m.apiSecret)

	resp, err := m.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("media store upload failed: %w", err)
	}
	defer resp.Body.Close()

	var ack uploadAck
	if err := json.NewDecoder(resp.Body).Decode(&ack); err != nil {
		return nil, fmt.Errorf("media store returned unreadable response (status %d): %w", resp.StatusCode, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Surface the remote diagnostic as-is.
		msg := ack.Error.Message
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return nil, fmt.Errorf("media store rejected upload (status %d): %s", resp.StatusCode, msg)
	}
	if ack.PublicID == "" {
		return nil, fmt.Errorf("media store ack is missing a public id")
	}

	return &entities.StoredAssetRef{
		PublicID:  ack.PublicID,
		SecureURL: ack.SecureURL,
		Bytes:     ack.Bytes,
		Format:    ack.Format,
	}, nil
}
