package dto

import (
	"time"

	"github.com/fact-data/factstock_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateProcessingRequest is the payload for recording a processing run.
type CreateProcessingRequest struct {
	OperationDate time.Time       `json:"operationDate" binding:"required"`
	OutputGradeID string          `json:"outputGradeID" binding:"required"`
	Quantity      decimal.Decimal `json:"quantity" binding:"required"`
}

// ProcessingResponse defines the data returned for a processing record.
type ProcessingResponse struct {
	ProcessingID  string          `json:"processingID"`
	OperationDate string          `json:"operationDate"`
	FactoryID     string          `json:"factoryID"`
	OutputGradeID string          `json:"outputGradeID"`
	Quantity      decimal.Decimal `json:"quantity"`
	CreatedAt     time.Time       `json:"createdAt"`
	CreatedBy     string          `json:"createdBy"`
}

// ToProcessingResponse converts a domain Processing to its response DTO.
func ToProcessingResponse(p *domain.Processing) ProcessingResponse {
	return ProcessingResponse{
		ProcessingID:  p.ProcessingID,
		OperationDate: p.OperationDate.Format("2006-01-02"),
		FactoryID:     p.FactoryID,
		OutputGradeID: p.OutputGradeID,
		Quantity:      p.Quantity,
		CreatedAt:     p.CreatedAt,
		CreatedBy:     p.CreatedBy,
	}
}

// ToProcessingResponses converts a slice of domain processings to DTOs.
func ToProcessingResponses(ps []domain.Processing) []ProcessingResponse {
	responses := make([]ProcessingResponse, len(ps))
	for i := range ps {
		responses[i] = ToProcessingResponse(&ps[i])
	}
	return responses
}
