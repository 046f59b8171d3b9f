package dto

import "makecut/internal/domain/entities"

type UploadResponse struct {
	Success     bool   `json:"success"`
	PublicID    string `json:"publicId"`
	DownloadURL string `json:"downloadUrl"`
}

type CutVideoResponse struct {
	Success     bool    `json:"success"`
	DownloadURL string  `json:"downloadUrl"`
	Duration    float64 `json:"duration"`
}

type MultiCutResponse struct {
	Success bool                 `json:"success"`
	Results []entities.CutResult `json:"results"`
}

type VideoInfoResponse struct {
	Success  bool    `json:"success"`
	Duration float64 `json:"duration"`
	Filename string  `json:"filename"`
	FileSize int64   `json:"fileSize"`
}

type SubtitleCue struct {
	Index int     `json:"index"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

type SubtitlesResponse struct {
	Success  bool          `json:"success"`
	Language string        `json:"language"`
	Cues     []SubtitleCue `json:"cues"`
}

type InfoResponse struct {
	Message   string `json:"message"`
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}
