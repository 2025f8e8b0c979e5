package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// StockPool identifies one of the two inventory buckets.
type StockPool string

const (
	Unprocessed StockPool = "UNPROCESSED"
	Processed   StockPool = "PROCESSED"
)

// Direction indicates whether an entry adds to or removes from a pool.
type Direction string

const (
	In  Direction = "IN"
	Out Direction = "OUT"
)

// EntrySource identifies the kind of event that produced a ledger entry.
type EntrySource string

const (
	SourceReception  EntrySource = "RECEPTION"
	SourceProcessing EntrySource = "PROCESSING"
	SourceManual     EntrySource = "MANUAL"
)

// EntryKey is the natural key of a ledger entry. At most one row may exist
// per key; repeat events for the same key merge additively.
type EntryKey struct {
	TransactionDate time.Time
	FactoryID       string
	ProductID       string
	StockPool       StockPool
	Direction       Direction
	Source          EntrySource
}

// LedgerEntry is a signed quantity movement against a stock pool.
// Quantity is always non-negative; Direction carries the sign.
type LedgerEntry struct {
	EntryID         string          `json:"entryID"`
	TransactionDate time.Time       `json:"transactionDate"` // calendar date, no time component
	FactoryID       string          `json:"factoryID"`
	ProductID       string          `json:"productID"`
	StockPool       StockPool       `json:"stockPool"`
	Direction       Direction       `json:"direction"`
	Source          EntrySource     `json:"source"`
	Quantity        decimal.Decimal `json:"quantity"`
	Description     string          `json:"description"`
	AuditFields
}

// Key returns the natural key used for idempotent merge.
func (e LedgerEntry) Key() EntryKey {
	return EntryKey{
		TransactionDate: NormalizeDate(e.TransactionDate),
		FactoryID:       e.FactoryID,
		ProductID:       e.ProductID,
		StockPool:       e.StockPool,
		Direction:       e.Direction,
		Source:          e.Source,
	}
}

// SignedQuantity is the entry's effect on the pool balance: +Quantity for
// IN, -Quantity for OUT.
func (e LedgerEntry) SignedQuantity() decimal.Decimal {
	if e.Direction == Out {
		return e.Quantity.Neg()
	}
	return e.Quantity
}

// NormalizeDate truncates a timestamp to its calendar date in UTC.
// Ledger natural keys compare dates, never times.
func NormalizeDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// EntryDescription renders the stored description for a ledger entry from
// its prefix and the current merged total. The store recomputes the same
// shape in SQL when an upsert merges into an existing row.
func EntryDescription(prefix string, total decimal.Decimal) string {
	return fmt.Sprintf("%s (%s kg)", prefix, total.String())
}

// ReceptionDescriptionPrefix is the description prefix for reception entries.
func ReceptionDescriptionPrefix(date time.Time) string {
	return fmt.Sprintf("Total crop received on %s", NormalizeDate(date).Format("2006-01-02"))
}

// ProcessingDebitPrefix is the description prefix for the unprocessed-pool
// debit side of a processing run.
func ProcessingDebitPrefix(date time.Time) string {
	return fmt.Sprintf("Total crop processed on %s", NormalizeDate(date).Format("2006-01-02"))
}

// ProcessingCreditPrefix is the description prefix for the processed-pool
// credit side of a processing run.
func ProcessingCreditPrefix(date time.Time) string {
	return fmt.Sprintf("Total rubber produced on %s", NormalizeDate(date).Format("2006-01-02"))
}

// ManualDescriptionPrefix is the description prefix for manual adjustments.
func ManualDescriptionPrefix(date time.Time) string {
	return fmt.Sprintf("Manual stock adjustment on %s", NormalizeDate(date).Format("2006-01-02"))
}

// DescriptionPrefix returns the description prefix matching the entry's
// source and direction. The store reuses it to recompute the description
// when an upsert merges quantities.
func (e LedgerEntry) DescriptionPrefix() string {
	switch e.Source {
	case SourceReception:
		return ReceptionDescriptionPrefix(e.TransactionDate)
	case SourceProcessing:
		if e.Direction == Out {
			return ProcessingDebitPrefix(e.TransactionDate)
		}
		return ProcessingCreditPrefix(e.TransactionDate)
	default:
		return ManualDescriptionPrefix(e.TransactionDate)
	}
}

// GradeMap is the static translation from a processed-output grade to the
// raw-input grade it consumes. Configuration data, never derived.
type GradeMap map[string]string

// InputFor resolves the input grade consumed by the given output grade.
func (m GradeMap) InputFor(outputGradeID string) (string, bool) {
	in, ok := m[outputGradeID]
	return in, ok
}
