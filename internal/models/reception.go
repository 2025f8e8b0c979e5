package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Reception is a row of the reception table.
type Reception struct {
	ReceptionID   string          `db:"reception_id"`
	OperationDate time.Time       `db:"operation_date"`
	FactoryID     string          `db:"factory_id"`
	GradeID       string          `db:"grade_id"`
	SupplyUnitID  *string         `db:"supply_unit_id"` // nullable
	Quantity      decimal.Decimal `db:"quantity"`
	AuditFields
}
