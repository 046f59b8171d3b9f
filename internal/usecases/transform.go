package usecases

import (
	"fmt"
	"math"
	"strings"

	"makecut/internal/domain/entities"
	"makecut/pkg/errors"
)

// CutURLBuilder composes derived-asset retrieval URLs. The remote store parses
// the transformation segment positionally, so the parameter order is fixed:
// start offset, end offset, quality, format. Composition is pure; the same
// (ref, cut) always yields a byte-identical URL, so callers may cache by
// (PublicID, start, end).
type CutURLBuilder struct {
	base string
}

// NewCutURLBuilder takes the delivery host and the tenant cloud name, e.g.
// https://res.mediastore.example.com + demo ->
// https://res.mediastore.example.com/demo/video/upload.
func NewCutURLBuilder(deliveryURL, cloudName string) *CutURLBuilder {
	base := strings.TrimRight(deliveryURL, "/")
	if cloudName != "" {
		base += "/" + cloudName
	}
	return &CutURLBuilder{base: base + "/video/upload"}
}

// ComposeCutURL builds the retrieval URL for one cut. End offsets past the
// real asset duration pass through uninterpreted; the remote store clamps.
func (b *CutURLBuilder) ComposeCutURL(ref *entities.StoredAssetRef, cut entities.CutSpec) (string, error) {
	if err := ValidateCut(cut); err != nil {
		return "", err
	}
	// Offsets are fixed-point with two decimals ("12.50", never "12.5"):
	// the remote grammar requires it for round-trip stability.
	segment := fmt.Sprintf("so_%.2f,eo_%.2f,q_auto,f_mp4", cut.StartTime, cut.EndTime)
	return fmt.Sprintf("%s/%s/%s.mp4", b.base, segment, ref.PublicID), nil
}

// ValidateCut enforces what is locally knowable: finite offsets, non-negative
// start, end strictly after start. Asset duration is not locally knowable and
// is deliberately not checked.
func ValidateCut(cut entities.CutSpec) error {
	if math.IsNaN(cut.StartTime) || math.IsInf(cut.StartTime, 0) ||
		math.IsNaN(cut.EndTime) || math.IsInf(cut.EndTime, 0) {
		return errors.ErrInvalidCutRange("Cut offsets must be finite numbers")
	}
	if cut.StartTime < 0 {
		return errors.ErrInvalidCutRange("Start offset must not be negative")
	}
	if cut.EndTime <= cut.StartTime {
		return errors.ErrInvalidCutRange("End offset must be greater than start offset")
	}
	return nil
}
