package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Processing is one crop-to-rubber processing run. It owns exactly two
// ledger entries created together: OUT on the UNPROCESSED pool for the
// grade-mapped input grade, and IN on the PROCESSED pool for the output
// grade. Both carry the run's quantity.
type Processing struct {
	ProcessingID  string          `json:"processingID"`
	OperationDate time.Time       `json:"operationDate"`
	FactoryID     string          `json:"factoryID"`
	OutputGradeID string          `json:"outputGradeID"`
	Quantity      decimal.Decimal `json:"quantity"`
	AuditFields
}
