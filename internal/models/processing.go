package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Processing is a row of the processing table.
type Processing struct {
	ProcessingID  string          `db:"processing_id"`
	OperationDate time.Time       `db:"operation_date"`
	FactoryID     string          `db:"factory_id"`
	OutputGradeID string          `db:"output_grade_id"`
	Quantity      decimal.Decimal `db:"quantity"`
	AuditFields
}
