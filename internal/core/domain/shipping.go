package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ShippingOrder is a sales contract against which loadings accumulate.
type ShippingOrder struct {
	ContractNo  string    `json:"contractNo"`
	OrderDate   time.Time `json:"orderDate"`
	Buyer       string    `json:"buyer"`
	Period      string    `json:"period"`
	Destination string    `json:"destination"`
	AuditFields
}

// OrderDetail is one line of a shipping order. The contract's ordered
// quantity is the sum of its detail quantities.
type OrderDetail struct {
	DetailID   string          `json:"detailID"`
	ContractNo string          `json:"contractNo"`
	ClassName  string          `json:"className"`
	GradeID    string          `json:"gradeID"`
	Packing    string          `json:"packing"`
	Quantity   decimal.Decimal `json:"quantity"`
	AuditFields
}

// Loading is one shipment loading event consuming a contract's quota.
// Loadings do not touch the stock ledger; they reconcile against the
// contract's ordered quantity instead.
type Loading struct {
	LoadingID   string          `json:"loadingID"`
	ContractNo  string          `json:"contractNo"`
	FactoryID   string          `json:"factoryID"`
	LoadingDate time.Time       `json:"loadingDate"`
	DepartDate  time.Time       `json:"departDate"`
	Vessel      string          `json:"vessel"`
	ContainerNo string          `json:"containerNo"`
	SealNo      string          `json:"sealNo"`
	TallyNo     string          `json:"tallyNo"`
	Quantity    decimal.Decimal `json:"quantity"`
	AuditFields
}

// ContractBalance reconciles a contract's ordered quantity against its
// cumulative loaded quantity.
type ContractBalance struct {
	ContractNo string          `json:"contractNo"`
	OrderedQty decimal.Decimal `json:"orderedQty"`
	LoadedQty  decimal.Decimal `json:"loadedQty"`
	Remaining  decimal.Decimal `json:"remaining"`
}
