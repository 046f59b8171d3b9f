package usecases

import (
	"bytes"
	"mime/multipart"
	"os"
	"testing"

	"makecut/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeFileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("video", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(int64(len(content)) + 1<<20)
	require.NoError(t, err)
	t.Cleanup(func() { form.RemoveAll() })
	return form.File["video"][0]
}

func TestIngestSmallFileStaysInMemory(t *testing.T) {
	svc := NewIngestService(1024, 512, t.TempDir())
	fh := makeFileHeader(t, "clip.mp4", []byte("tiny video payload"))

	asset, err := svc.Ingest(fh)
	require.NoError(t, err)
	defer asset.Release()

	assert.Equal(t, "clip.mp4", asset.Filename)
	assert.Equal(t, "video/mp4", asset.MIMEType)
	assert.Equal(t, int64(18), asset.Size)
	assert.NotEmpty(t, asset.Data)
	assert.Empty(t, asset.TempPath)
}

func TestIngestLargeFileBuffersToDisk(t *testing.T) {
	tempDir := t.TempDir()
	svc := NewIngestService(4096, 16, tempDir)
	content := bytes.Repeat([]byte("x"), 1000)
	fh := makeFileHeader(t, "big.mp4", content)

	asset, err := svc.Ingest(fh)
	require.NoError(t, err)

	assert.Empty(t, asset.Data)
	require.NotEmpty(t, asset.TempPath)
	info, err := os.Stat(asset.TempPath)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), info.Size())

	rc, err := asset.Open()
	require.NoError(t, err)
	rc.Close()

	asset.Release()
	_, err = os.Stat(asset.TempPath)
	assert.True(t, os.IsNotExist(err) || asset.TempPath == "")
}

func TestIngestRejectsOversizedFile(t *testing.T) {
	svc := NewIngestService(1024, 512, t.TempDir())
	fh := makeFileHeader(t, "huge.mp4", bytes.Repeat([]byte("y"), 2048))

	_, err := svc.Ingest(fh)
	require.Error(t, err)

	ae, ok := err.(*errors.APIError)
	require.True(t, ok)
	assert.Equal(t, errors.CodePayloadTooLarge, ae.Code)
	// The configured ceiling is reported, not the received size.
	assert.Equal(t, "1KB", ae.MaxSize)
}

func TestIngestRejectsMissingFile(t *testing.T) {
	svc := NewIngestService(1024, 512, t.TempDir())

	_, err := svc.Ingest(nil)
	require.Error(t, err)

	ae, ok := err.(*errors.APIError)
	require.True(t, ok)
	assert.Equal(t, errors.CodeMissingFile, ae.Code)
}

func TestIngestFallsBackToExtensionMime(t *testing.T) {
	svc := NewIngestService(1024, 512, t.TempDir())
	fh := makeFileHeader(t, "noidea.bin", []byte("???"))

	asset, err := svc.Ingest(fh)
	require.NoError(t, err)
	defer asset.Release()

	// multipart sets application/octet-stream on parts without an explicit
	// type, so either path lands on the same answer here.
	assert.Equal(t, "application/octet-stream", asset.MIMEType)
}
