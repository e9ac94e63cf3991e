package converter

import (
	"patient-health-api/internal/delivery/dto"
	"patient-health-api/internal/domain/entity"
)

// HealthCoverageToResponse converts a HealthCoverage entity to HealthCoverageResponse DTO
func HealthCoverageToResponse(coverage *entity.HealthCoverage) *dto.HealthCoverageResponse {
	if coverage == nil {
		return nil
	}

	return &dto.HealthCoverageResponse{
		ID:             coverage.ID,
		Name:           coverage.Name,
		IdentityNumber: coverage.IdentityNumber,
		Type:           int(coverage.Type),
		SType:          coverage.SType,
		PatientID:      coverage.PatientID,
		CreatedAt:      coverage.CreatedAt,
		UpdatedAt:      coverage.UpdatedAt,
	}
}

// HealthCoveragesToPartition splits coverages into mutuals and supplementals.
// Both lists are non-nil so they encode as [] rather than null.
func HealthCoveragesToPartition(coverages []entity.HealthCoverage) *dto.HealthCoverageListResponse {
	result := &dto.HealthCoverageListResponse{
		Mutuals:       []dto.HealthCoverageResponse{},
		Supplementals: []dto.HealthCoverageResponse{},
	}
	for i := range coverages {
		resp := *HealthCoverageToResponse(&coverages[i])
		if coverages[i].Type == entity.CoverageTypeMutual {
			result.Mutuals = append(result.Mutuals, resp)
		} else {
			result.Supplementals = append(result.Supplementals, resp)
		}
	}
	return result
}
