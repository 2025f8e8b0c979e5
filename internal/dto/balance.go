package dto

import (
	"github.com/fact-data/factstock_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// StockBalanceResponse is the derived net stock for one ledger group.
type StockBalanceResponse struct {
	FactoryID   string          `json:"factoryID"`
	ProductID   string          `json:"productID"`
	StockPool   string          `json:"stockPool"`
	NetQuantity decimal.Decimal `json:"netQuantity"`
	Negative    bool            `json:"negative"`
}

// ToStockBalanceResponses converts domain balances to DTOs.
func ToStockBalanceResponses(bs []domain.StockBalance) []StockBalanceResponse {
	responses := make([]StockBalanceResponse, len(bs))
	for i, b := range bs {
		responses[i] = StockBalanceResponse{
			FactoryID:   b.FactoryID,
			ProductID:   b.ProductID,
			StockPool:   string(b.StockPool),
			NetQuantity: b.NetQuantity,
			Negative:    b.Negative(),
		}
	}
	return responses
}
