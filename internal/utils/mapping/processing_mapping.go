package mapping

import (
	"github.com/fact-data/factstock_backend/internal/core/domain"
	"github.com/fact-data/factstock_backend/internal/models"
)

// ToModelProcessing converts a domain Processing to a model Processing
func ToModelProcessing(d domain.Processing) models.Processing {
	return models.Processing{
		ProcessingID:  d.ProcessingID,
		OperationDate: domain.NormalizeDate(d.OperationDate),
		FactoryID:     d.FactoryID,
		OutputGradeID: d.OutputGradeID,
		Quantity:      d.Quantity,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainProcessing converts a model Processing to a domain Processing
func ToDomainProcessing(m models.Processing) domain.Processing {
	return domain.Processing{
		ProcessingID:  m.ProcessingID,
		OperationDate: m.OperationDate,
		FactoryID:     m.FactoryID,
		OutputGradeID: m.OutputGradeID,
		Quantity:      m.Quantity,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainProcessingSlice converts a slice of model processings to domain processings
func ToDomainProcessingSlice(ms []models.Processing) []domain.Processing {
	ds := make([]domain.Processing, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainProcessing(m)
	}
	return ds
}
