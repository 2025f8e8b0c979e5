package mapping

import (
	"github.com/fact-data/factstock_backend/internal/core/domain"
	"github.com/fact-data/factstock_backend/internal/models"
)

// ToModelReception converts a domain Reception to a model Reception
func ToModelReception(d domain.Reception) models.Reception {
	m := models.Reception{
		ReceptionID:   d.ReceptionID,
		OperationDate: domain.NormalizeDate(d.OperationDate),
		FactoryID:     d.FactoryID,
		GradeID:       d.GradeID,
		Quantity:      d.Quantity,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
	if d.SupplyUnitID != "" {
		su := d.SupplyUnitID
		m.SupplyUnitID = &su
	}
	return m
}

// ToDomainReception converts a model Reception to a domain Reception
func ToDomainReception(m models.Reception) domain.Reception {
	d := domain.Reception{
		ReceptionID:   m.ReceptionID,
		OperationDate: m.OperationDate,
		FactoryID:     m.FactoryID,
		GradeID:       m.GradeID,
		Quantity:      m.Quantity,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
	if m.SupplyUnitID != nil {
		d.SupplyUnitID = *m.SupplyUnitID
	}
	return d
}

// ToDomainReceptionSlice converts a slice of model receptions to domain receptions
func ToDomainReceptionSlice(ms []models.Reception) []domain.Reception {
	ds := make([]domain.Reception, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainReception(m)
	}
	return ds
}
