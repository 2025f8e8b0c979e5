package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ShippingOrder is a row of the shipping_order table.
type ShippingOrder struct {
	ContractNo  string    `db:"contract_no"`
	OrderDate   time.Time `db:"order_date"`
	Buyer       string    `db:"buyer"`
	Period      string    `db:"period"`
	Destination string    `db:"destination"`
	AuditFields
}

// OrderDetail is a row of the order_detail table.
type OrderDetail struct {
	DetailID   string          `db:"detail_id"`
	ContractNo string          `db:"contract_no"`
	ClassName  string          `db:"class_name"`
	GradeID    string          `db:"grade_id"`
	Packing    string          `db:"packing"`
	Quantity   decimal.Decimal `db:"quantity"`
	AuditFields
}

// Loading is a row of the loading table.
type Loading struct {
	LoadingID   string          `db:"loading_id"`
	ContractNo  string          `db:"contract_no"`
	FactoryID   string          `db:"factory_id"`
	LoadingDate time.Time       `db:"loading_date"`
	DepartDate  time.Time       `db:"depart_date"`
	Vessel      string          `db:"vessel"`
	ContainerNo string          `db:"container_no"`
	SealNo      string          `db:"seal_no"`
	TallyNo     string          `db:"tally_no"`
	Quantity    decimal.Decimal `db:"quantity"`
	AuditFields
}
