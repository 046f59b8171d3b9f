package storage

import (
	"context"
	"os"
	"testing"

	"makecut/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStore(t *testing.T) {
	base := t.TempDir()
	store := NewLocalStorage(base)
	asset := &entities.MediaAsset{
		Filename: "clip.mp4",
		Size:     7,
		Data:     []byte("payload"),
	}

	ref, err := store.Store(context.Background(), asset, "makecut")
	require.NoError(t, err)
	assert.NotEmpty(t, ref.PublicID)
	assert.Contains(t, ref.PublicID, "makecut/")
	assert.Contains(t, ref.PublicID, "clip.mp4")

	content, err := os.ReadFile(ref.SecureURL)
	require.NoError(t, err)
	assert.Equal(t, "payload", string(content))
}

func TestLocalStoreKeysNeverCollide(t *testing.T) {
	base := t.TempDir()
	store := NewLocalStorage(base)
	asset := &entities.MediaAsset{Filename: "clip.mp4", Data: []byte("a")}

	first, err := store.Store(context.Background(), asset, "makecut")
	require.NoError(t, err)
	second, err := store.Store(context.Background(), asset, "makecut")
	require.NoError(t, err)
	assert.NotEqual(t, first.PublicID, second.PublicID)
}
