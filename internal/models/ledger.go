package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockPool mirrors domain.StockPool at the persistence boundary.
type StockPool string

const (
	Unprocessed StockPool = "UNPROCESSED"
	Processed   StockPool = "PROCESSED"
)

// Direction mirrors domain.Direction at the persistence boundary.
type Direction string

const (
	In  Direction = "IN"
	Out Direction = "OUT"
)

// EntrySource mirrors domain.EntrySource at the persistence boundary.
type EntrySource string

const (
	SourceReception  EntrySource = "RECEPTION"
	SourceProcessing EntrySource = "PROCESSING"
	SourceManual     EntrySource = "MANUAL"
)

// LedgerEntry is a row of the ledger_entry table. The natural key
// (transaction_date, factory_id, product_id, stock_pool, direction, source)
// carries a unique constraint; upserts merge quantities additively.
type LedgerEntry struct {
	EntryID         string          `db:"entry_id"`
	TransactionDate time.Time       `db:"transaction_date"`
	FactoryID       string          `db:"factory_id"`
	ProductID       string          `db:"product_id"`
	StockPool       StockPool       `db:"stock_pool"`
	Direction       Direction       `db:"direction"`
	Source          EntrySource     `db:"source"`
	Quantity        decimal.Decimal `db:"quantity"`
	Description     string          `db:"description"`
	AuditFields
}
