package dto

import (
	"time"

	"github.com/fact-data/factstock_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateOrderRequest is the payload for registering a sales contract.
type CreateOrderRequest struct {
	ContractNo  string    `json:"contractNo" binding:"required"`
	OrderDate   time.Time `json:"orderDate" binding:"required"`
	Buyer       string    `json:"buyer" binding:"required"`
	Period      string    `json:"period"`
	Destination string    `json:"destination"`
}

// CreateOrderDetailRequest is the payload for one contract line.
type CreateOrderDetailRequest struct {
	ClassName string          `json:"className"`
	GradeID   string          `json:"gradeID" binding:"required"`
	Packing   string          `json:"packing"`
	Quantity  decimal.Decimal `json:"quantity" binding:"required"`
}

// CreateLoadingRequest is the payload for recording a shipment loading.
type CreateLoadingRequest struct {
	ContractNo  string          `json:"contractNo" binding:"required"`
	LoadingDate time.Time       `json:"loadingDate" binding:"required"`
	DepartDate  time.Time       `json:"departDate"`
	Vessel      string          `json:"vessel"`
	ContainerNo string          `json:"containerNo"`
	SealNo      string          `json:"sealNo"`
	TallyNo     string          `json:"tallyNo"`
	Quantity    decimal.Decimal `json:"quantity" binding:"required"`
}

// OrderResponse defines the data returned for a shipping order.
type OrderResponse struct {
	ContractNo  string    `json:"contractNo"`
	OrderDate   string    `json:"orderDate"`
	Buyer       string    `json:"buyer"`
	Period      string    `json:"period"`
	Destination string    `json:"destination"`
	CreatedAt   time.Time `json:"createdAt"`
}

// OrderDetailResponse defines the data returned for one contract line.
type OrderDetailResponse struct {
	DetailID   string          `json:"detailID"`
	ContractNo string          `json:"contractNo"`
	ClassName  string          `json:"className"`
	GradeID    string          `json:"gradeID"`
	Packing    string          `json:"packing"`
	Quantity   decimal.Decimal `json:"quantity"`
}

// LoadingResponse defines the data returned for a loading record.
type LoadingResponse struct {
	LoadingID   string          `json:"loadingID"`
	ContractNo  string          `json:"contractNo"`
	FactoryID   string          `json:"factoryID"`
	LoadingDate string          `json:"loadingDate"`
	DepartDate  string          `json:"departDate"`
	Vessel      string          `json:"vessel"`
	ContainerNo string          `json:"containerNo"`
	SealNo      string          `json:"sealNo"`
	TallyNo     string          `json:"tallyNo"`
	Quantity    decimal.Decimal `json:"quantity"`
}

// ContractBalanceResponse reconciles a contract's quota and consumption.
type ContractBalanceResponse struct {
	ContractNo string          `json:"contractNo"`
	OrderedQty decimal.Decimal `json:"orderedQty"`
	LoadedQty  decimal.Decimal `json:"loadedQty"`
	Remaining  decimal.Decimal `json:"remaining"`
}

// ToOrderResponse converts a domain ShippingOrder to its response DTO.
func ToOrderResponse(o *domain.ShippingOrder) OrderResponse {
	return OrderResponse{
		ContractNo:  o.ContractNo,
		OrderDate:   o.OrderDate.Format("2006-01-02"),
		Buyer:       o.Buyer,
		Period:      o.Period,
		Destination: o.Destination,
		CreatedAt:   o.CreatedAt,
	}
}

// ToOrderResponses converts a slice of domain orders to DTOs.
func ToOrderResponses(os []domain.ShippingOrder) []OrderResponse {
	responses := make([]OrderResponse, len(os))
	for i := range os {
		responses[i] = ToOrderResponse(&os[i])
	}
	return responses
}

// ToOrderDetailResponse converts a domain OrderDetail to its response DTO.
func ToOrderDetailResponse(d *domain.OrderDetail) OrderDetailResponse {
	return OrderDetailResponse{
		DetailID:   d.DetailID,
		ContractNo: d.ContractNo,
		ClassName:  d.ClassName,
		GradeID:    d.GradeID,
		Packing:    d.Packing,
		Quantity:   d.Quantity,
	}
}

// ToOrderDetailResponses converts a slice of domain details to DTOs.
func ToOrderDetailResponses(ds []domain.OrderDetail) []OrderDetailResponse {
	responses := make([]OrderDetailResponse, len(ds))
	for i := range ds {
		responses[i] = ToOrderDetailResponse(&ds[i])
	}
	return responses
}

// ToLoadingResponse converts a domain Loading to its response DTO.
func ToLoadingResponse(l *domain.Loading) LoadingResponse {
	return LoadingResponse{
		LoadingID:   l.LoadingID,
		ContractNo:  l.ContractNo,
		FactoryID:   l.FactoryID,
		LoadingDate: l.LoadingDate.Format("2006-01-02"),
		DepartDate:  l.DepartDate.Format("2006-01-02"),
		Vessel:      l.Vessel,
		ContainerNo: l.ContainerNo,
		SealNo:      l.SealNo,
		TallyNo:     l.TallyNo,
		Quantity:    l.Quantity,
	}
}

// ToLoadingResponses converts a slice of domain loadings to DTOs.
func ToLoadingResponses(ls []domain.Loading) []LoadingResponse {
	responses := make([]LoadingResponse, len(ls))
	for i := range ls {
		responses[i] = ToLoadingResponse(&ls[i])
	}
	return responses
}

// ToContractBalanceResponse converts a domain ContractBalance to its DTO.
func ToContractBalanceResponse(b *domain.ContractBalance) ContractBalanceResponse {
	return ContractBalanceResponse{
		ContractNo: b.ContractNo,
		OrderedQty: b.OrderedQty,
		LoadedQty:  b.LoadedQty,
		Remaining:  b.Remaining,
	}
}
