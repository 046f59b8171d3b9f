package entities

import (
	"bytes"
	"io"
	"os"
)

// MediaAsset holds one uploaded binary for the lifetime of a single request.
// Small uploads stay in memory; anything above the ingest memory threshold is
// buffered to a temp file instead. Release must be called once the request is
// done with the asset.
type MediaAsset struct {
	Filename string
	MIMEType string
	Size     int64

	Data     []byte
	TempPath string
}

// Open returns a fresh reader over the asset bytes.
func (a *MediaAsset) Open() (io.ReadCloser, error) {
	if a.TempPath != "" {
		return os.Open(a.TempPath)
	}
	return io.NopCloser(bytes.NewReader(a.Data)), nil
}

// Release drops the buffered bytes and removes the temp file, if any.
func (a *MediaAsset) Release() {
	a.Data = nil
	if a.TempPath != "" {
		os.Remove(a.TempPath)
		a.TempPath = ""
	}
}

// StoredAssetRef is the remote store's acknowledgment of an upload. PublicID
// is store-assigned and opaque: nothing here parses it, URL composition only
// interpolates it.
type StoredAssetRef struct {
	PublicID  string
	SecureURL string
	Bytes     int64
	Format    string
}

// CutSpec is one requested time-range extraction, offsets in seconds.
type CutSpec struct {
	StartTime float64 `json:"startTime"`
	EndTime   float64 `json:"endTime"`
	Name      string  `json:"name,omitempty"`
}

// CutResult is the per-cut outcome. Exactly one of DownloadURL and Reason is
// populated.
type CutResult struct {
	Success     bool    `json:"success"`
	Name        string  `json:"name"`
	DownloadURL string  `json:"downloadUrl,omitempty"`
	Reason      string  `json:"reason,omitempty"`
	Duration    float64 `json:"duration,omitempty"`
}
