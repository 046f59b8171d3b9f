package usecases

import (
	"fmt"

	"makecut/internal/domain/entities"
	"makecut/pkg/errors"
)

// CutMany runs the URL composer over every cut. A failing cut becomes a
// CutResult with Success=false and does not abort the rest; results keep the
// input order so callers can correlate by position. Only when every cut fails
// does the call itself fail.
func CutMany(builder *CutURLBuilder, ref *entities.StoredAssetRef, cuts []entities.CutSpec) ([]entities.CutResult, error) {
	results := make([]entities.CutResult, 0, len(cuts))
	succeeded := 0
	reasons := make([]string, 0)

	for i, cut := range cuts {
		name := cut.Name
		if name == "" {
			name = fmt.Sprintf("cut_%d", i+1)
		}

		url, err := builder.ComposeCutURL(ref, cut)
		if err != nil {
			reason := errors.CodeInternal
			if ae, ok := err.(*errors.APIError); ok {
				reason = ae.Code
			}
			results = append(results, entities.CutResult{
				Success: false,
				Name:    name,
				Reason:  reason,
			})
			reasons = append(reasons, fmt.Sprintf("%s: %s", name, reason))
			continue
		}

		results = append(results, entities.CutResult{
			Success:     true,
			Name:        name,
			DownloadURL: url,
			Duration:    cut.EndTime - cut.StartTime,
		})
		succeeded++
	}

	if len(cuts) > 0 && succeeded == 0 {
		return nil, errors.ErrAllCutsFailed(reasons)
	}
	return results, nil
}
