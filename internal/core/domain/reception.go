package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Reception is one physical delivery of raw crop into a factory.
// It owns exactly one ledger entry: IN on the UNPROCESSED pool, keyed by
// (operation date, factory, grade).
type Reception struct {
	ReceptionID   string          `json:"receptionID"`
	OperationDate time.Time       `json:"operationDate"`
	FactoryID     string          `json:"factoryID"`
	GradeID       string          `json:"gradeID"` // raw-crop product id
	SupplyUnitID  string          `json:"supplyUnitID,omitempty"`
	Quantity      decimal.Decimal `json:"quantity"`
	AuditFields
}

// ReceptionSummaryRow is one bucket of the period rollup over receptions.
type ReceptionSummaryRow struct {
	FactoryID     string          `json:"factoryID"`
	FactoryName   string          `json:"factoryName"`
	GradeID       string          `json:"gradeID"`
	GradeName     string          `json:"gradeName"`
	PeriodStart   time.Time       `json:"periodStart"`
	TotalQuantity decimal.Decimal `json:"totalQuantity"`
}

// SummaryPeriod is the bucket width of a reception rollup.
type SummaryPeriod string

const (
	PeriodDay   SummaryPeriod = "day"
	PeriodWeek  SummaryPeriod = "week"
	PeriodMonth SummaryPeriod = "month"
	PeriodYear  SummaryPeriod = "year"
)

// Valid reports whether p is one of the supported rollup periods.
func (p SummaryPeriod) Valid() bool {
	switch p {
	case PeriodDay, PeriodWeek, PeriodMonth, PeriodYear:
		return true
	}
	return false
}
