package usecases

import (
	"testing"

	"makecut/internal/domain/entities"
	"makecut/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCutManyPartialFailure(t *testing.T) {
	builder := NewCutURLBuilder("https://res.mediastore.example.com", "demo")
	ref := &entities.StoredAssetRef{PublicID: "abc123"}

	cuts := []entities.CutSpec{
		{StartTime: 0, EndTime: 5},
		{StartTime: 5, EndTime: 5},
		{StartTime: 10, EndTime: 17},
	}

	results, err := CutMany(builder, ref, cuts)
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.True(t, results[0].Success)
	assert.NotEmpty(t, results[0].DownloadURL)
	assert.Empty(t, results[0].Reason)
	assert.Equal(t, 5.0, results[0].Duration)

	assert.False(t, results[1].Success)
	assert.Empty(t, results[1].DownloadURL)
	assert.Equal(t, errors.CodeInvalidCutRange, results[1].Reason)

	assert.True(t, results[2].Success)
	assert.Equal(t, 7.0, results[2].Duration)
}

func TestCutManyKeepsInputOrder(t *testing.T) {
	builder := NewCutURLBuilder("https://res.mediastore.example.com", "demo")
	ref := &entities.StoredAssetRef{PublicID: "abc123"}

	cuts := []entities.CutSpec{
		{StartTime: 0, EndTime: 1, Name: "intro"},
		{StartTime: 9, EndTime: 3, Name: "broken"},
		{StartTime: 2, EndTime: 4},
	}

	results, err := CutMany(builder, ref, cuts)
	require.NoError(t, err)
	require.Len(t, results, 3)

	// Callers correlate by position; names are informational and defaulted.
	assert.Equal(t, "intro", results[0].Name)
	assert.Equal(t, "broken", results[1].Name)
	assert.Equal(t, "cut_3", results[2].Name)
	assert.False(t, results[1].Success)
}

func TestCutManyOneSuccessIsEnough(t *testing.T) {
	builder := NewCutURLBuilder("https://res.mediastore.example.com", "demo")
	ref := &entities.StoredAssetRef{PublicID: "abc123"}

	cuts := []entities.CutSpec{
		{StartTime: 0, EndTime: 5},
		{StartTime: 5, EndTime: 5},
		{StartTime: 10, EndTime: 7},
	}

	results, err := CutMany(builder, ref, cuts)
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.True(t, results[0].Success)
	assert.False(t, results[1].Success)
	assert.False(t, results[2].Success)
}

func TestCutManyAllFailed(t *testing.T) {
	builder := NewCutURLBuilder("https://res.mediastore.example.com", "demo")
	ref := &entities.StoredAssetRef{PublicID: "abc123"}

	cuts := []entities.CutSpec{
		{StartTime: 5, EndTime: 5, Name: "a"},
		{StartTime: 9, EndTime: 3, Name: "b"},
	}

	results, err := CutMany(builder, ref, cuts)
	assert.Nil(t, results)
	require.Error(t, err)

	ae, ok := err.(*errors.APIError)
	require.True(t, ok)
	assert.Equal(t, errors.CodeAllCutsFailed, ae.Code)
	// Every individual reason rides along.
	require.NotNil(t, ae.Err)
	assert.Contains(t, ae.Err.Error(), "a: "+errors.CodeInvalidCutRange)
	assert.Contains(t, ae.Err.Error(), "b: "+errors.CodeInvalidCutRange)
}

func TestCutManyEmptyInput(t *testing.T) {
	builder := NewCutURLBuilder("https://res.mediastore.example.com", "demo")
	ref := &entities.StoredAssetRef{PublicID: "abc123"}

	results, err := CutMany(builder, ref, nil)
	require.NoError(t, err)
	assert.Empty(t, results)
}
