package dto

import "github.com/fact-data/factstock_backend/internal/core/domain"

// GradeResponse defines the data returned for one crop grade.
type GradeResponse struct {
	GradeID  string `json:"gradeID"`
	CropName string `json:"cropName"`
	Pool     string `json:"pool"`
}

// ToGradeResponses converts domain products to grade DTOs.
func ToGradeResponses(ps []domain.Product) []GradeResponse {
	responses := make([]GradeResponse, len(ps))
	for i, p := range ps {
		responses[i] = GradeResponse{
			GradeID:  p.ProductID,
			CropName: p.CropName,
			Pool:     string(p.Pool),
		}
	}
	return responses
}
