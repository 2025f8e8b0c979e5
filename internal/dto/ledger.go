package dto

import (
	"time"

	"github.com/fact-data/factstock_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateManualEntryRequest is the payload for a manual stock transaction.
// Manual entries are the only ledger writes an operator makes directly.
type CreateManualEntryRequest struct {
	TransactionDate time.Time       `json:"transactionDate" binding:"required"`
	ProductID       string          `json:"productID" binding:"required"`
	StockPool       string          `json:"stockPool" binding:"required,oneof=UNPROCESSED PROCESSED"`
	Direction       string          `json:"direction" binding:"required,oneof=IN OUT"`
	Quantity        decimal.Decimal `json:"quantity" binding:"required"`
	Description     string          `json:"description"`
}

// UpdateManualEntryRequest is the payload for a manual correction of an
// existing ledger row. Nil fields are left unchanged.
type UpdateManualEntryRequest struct {
	TransactionDate *time.Time       `json:"transactionDate"`
	Quantity        *decimal.Decimal `json:"quantity"`
	Description     *string          `json:"description"`
}

// ListEntriesParams holds the filters and pagination of a ledger listing.
type ListEntriesParams struct {
	FactoryID *string
	From      *time.Time
	To        *time.Time
	Limit     int
	NextToken *string
}

// LedgerEntryResponse defines the data returned for one ledger entry.
type LedgerEntryResponse struct {
	EntryID         string          `json:"entryID"`
	TransactionDate string          `json:"transactionDate"`
	FactoryID       string          `json:"factoryID"`
	ProductID       string          `json:"productID"`
	StockPool       string          `json:"stockPool"`
	Direction       string          `json:"direction"`
	Source          string          `json:"source"`
	Quantity        decimal.Decimal `json:"quantity"`
	Description     string          `json:"description"`
	CreatedAt       time.Time       `json:"createdAt"`
	LastUpdatedAt   time.Time       `json:"lastUpdatedAt"`
}

// ListEntriesResponse is a page of ledger entries plus the next-page token.
type ListEntriesResponse struct {
	Entries   []LedgerEntryResponse `json:"entries"`
	NextToken *string               `json:"nextToken,omitempty"`
}

// ToLedgerEntryResponse converts a domain LedgerEntry to its response DTO.
func ToLedgerEntryResponse(e *domain.LedgerEntry) LedgerEntryResponse {
	return LedgerEntryResponse{
		EntryID:         e.EntryID,
		TransactionDate: e.TransactionDate.Format("2006-01-02"),
		FactoryID:       e.FactoryID,
		ProductID:       e.ProductID,
		StockPool:       string(e.StockPool),
		Direction:       string(e.Direction),
		Source:          string(e.Source),
		Quantity:        e.Quantity,
		Description:     e.Description,
		CreatedAt:       e.CreatedAt,
		LastUpdatedAt:   e.LastUpdatedAt,
	}
}

// ToLedgerEntryResponses converts a slice of domain entries to response DTOs.
func ToLedgerEntryResponses(entries []domain.LedgerEntry) []LedgerEntryResponse {
	responses := make([]LedgerEntryResponse, len(entries))
	for i := range entries {
		responses[i] = ToLedgerEntryResponse(&entries[i])
	}
	return responses
}
