package mapping

import (
	"github.com/fact-data/factstock_backend/internal/core/domain"
	"github.com/fact-data/factstock_backend/internal/models"
)

// ToModelShippingOrder converts a domain ShippingOrder to a model ShippingOrder
func ToModelShippingOrder(d domain.ShippingOrder) models.ShippingOrder {
	return models.ShippingOrder{
		ContractNo:  d.ContractNo,
		OrderDate:   d.OrderDate,
		Buyer:       d.Buyer,
		Period:      d.Period,
		Destination: d.Destination,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainShippingOrder converts a model ShippingOrder to a domain ShippingOrder
func ToDomainShippingOrder(m models.ShippingOrder) domain.ShippingOrder {
	return domain.ShippingOrder{
		ContractNo:  m.ContractNo,
		OrderDate:   m.OrderDate,
		Buyer:       m.Buyer,
		Period:      m.Period,
		Destination: m.Destination,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelOrderDetail converts a domain OrderDetail to a model OrderDetail
func ToModelOrderDetail(d domain.OrderDetail) models.OrderDetail {
	return models.OrderDetail{
		DetailID:    d.DetailID,
		ContractNo:  d.ContractNo,
		ClassName:   d.ClassName,
		GradeID:     d.GradeID,
		Packing:     d.Packing,
		Quantity:    d.Quantity,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainOrderDetail converts a model OrderDetail to a domain OrderDetail
func ToDomainOrderDetail(m models.OrderDetail) domain.OrderDetail {
	return domain.OrderDetail{
		DetailID:    m.DetailID,
		ContractNo:  m.ContractNo,
		ClassName:   m.ClassName,
		GradeID:     m.GradeID,
		Packing:     m.Packing,
		Quantity:    m.Quantity,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelLoading converts a domain Loading to a model Loading
func ToModelLoading(d domain.Loading) models.Loading {
	return models.Loading{
		LoadingID:   d.LoadingID,
		ContractNo:  d.ContractNo,
		FactoryID:   d.FactoryID,
		LoadingDate: domain.NormalizeDate(d.LoadingDate),
		DepartDate:  domain.NormalizeDate(d.DepartDate),
		Vessel:      d.Vessel,
		ContainerNo: d.ContainerNo,
		SealNo:      d.SealNo,
		TallyNo:     d.TallyNo,
		Quantity:    d.Quantity,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainLoading converts a model Loading to a domain Loading
func ToDomainLoading(m models.Loading) domain.Loading {
	return domain.Loading{
		LoadingID:   m.LoadingID,
		ContractNo:  m.ContractNo,
		FactoryID:   m.FactoryID,
		LoadingDate: m.LoadingDate,
		DepartDate:  m.DepartDate,
		Vessel:      m.Vessel,
		ContainerNo: m.ContainerNo,
		SealNo:      m.SealNo,
		TallyNo:     m.TallyNo,
		Quantity:    m.Quantity,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainLoadingSlice converts a slice of model loadings to domain loadings
func ToDomainLoadingSlice(ms []models.Loading) []domain.Loading {
	ds := make([]domain.Loading, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLoading(m)
	}
	return ds
}
