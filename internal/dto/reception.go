package dto

import (
	"time"

	"github.com/fact-data/factstock_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateReceptionRequest is the payload for recording a crop delivery.
type CreateReceptionRequest struct {
	OperationDate time.Time       `json:"operationDate" binding:"required"`
	GradeID       string          `json:"gradeID" binding:"required"`
	SupplyUnitID  string          `json:"supplyUnitID"`
	Quantity      decimal.Decimal `json:"quantity" binding:"required"`
}

// ReceptionResponse defines the data returned for a reception record.
type ReceptionResponse struct {
	ReceptionID   string          `json:"receptionID"`
	OperationDate string          `json:"operationDate"`
	FactoryID     string          `json:"factoryID"`
	GradeID       string          `json:"gradeID"`
	SupplyUnitID  string          `json:"supplyUnitID,omitempty"`
	Quantity      decimal.Decimal `json:"quantity"`
	CreatedAt     time.Time       `json:"createdAt"`
	CreatedBy     string          `json:"createdBy"`
}

// ReceptionSummaryResponse is one bucket of the reception rollup.
type ReceptionSummaryResponse struct {
	FactoryID     string          `json:"factoryID"`
	FactoryName   string          `json:"factoryName"`
	GradeID       string          `json:"gradeID"`
	GradeName     string          `json:"gradeName"`
	PeriodStart   string          `json:"periodStart"`
	TotalQuantity decimal.Decimal `json:"totalQuantity"`
}

// ToReceptionResponse converts a domain Reception to its response DTO.
func ToReceptionResponse(r *domain.Reception) ReceptionResponse {
	return ReceptionResponse{
		ReceptionID:   r.ReceptionID,
		OperationDate: r.OperationDate.Format("2006-01-02"),
		FactoryID:     r.FactoryID,
		GradeID:       r.GradeID,
		SupplyUnitID:  r.SupplyUnitID,
		Quantity:      r.Quantity,
		CreatedAt:     r.CreatedAt,
		CreatedBy:     r.CreatedBy,
	}
}

// ToReceptionResponses converts a slice of domain receptions to DTOs.
func ToReceptionResponses(rs []domain.Reception) []ReceptionResponse {
	responses := make([]ReceptionResponse, len(rs))
	for i := range rs {
		responses[i] = ToReceptionResponse(&rs[i])
	}
	return responses
}

// ToReceptionSummaryResponses converts summary rows to DTOs.
func ToReceptionSummaryResponses(rows []domain.ReceptionSummaryRow) []ReceptionSummaryResponse {
	responses := make([]ReceptionSummaryResponse, len(rows))
	for i, row := range rows {
		responses[i] = ReceptionSummaryResponse{
			FactoryID:     row.FactoryID,
			FactoryName:   row.FactoryName,
			GradeID:       row.GradeID,
			GradeName:     row.GradeName,
			PeriodStart:   row.PeriodStart.Format("2006-01-02"),
			TotalQuantity: row.TotalQuantity,
		}
	}
	return responses
}
