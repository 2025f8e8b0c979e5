package domain

import "github.com/shopspring/decimal"

// StockBalance is the derived net stock for one (factory, product, pool)
// group. Balances are never stored; they are always recomputable from the
// ledger alone.
type StockBalance struct {
	FactoryID   string          `json:"factoryID"`
	ProductID   string          `json:"productID"`
	StockPool   StockPool       `json:"stockPool"`
	NetQuantity decimal.Decimal `json:"netQuantity"`
}

// Negative reports whether the derived balance has gone below zero.
// A negative unprocessed balance usually signals data-entry lag (a
// processing run recorded before its receptions), so it is surfaced as an
// alert condition rather than blocked.
func (b StockBalance) Negative() bool {
	return b.NetQuantity.IsNegative()
}

// PoolSummary maps a crop name to the total quantity held in one pool.
type PoolSummary map[string]decimal.Decimal
