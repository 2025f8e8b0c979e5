package pgsql

import (
	"context"
	"errors"

	"github.com/fact-data/factstock_backend/internal/apperrors"
	"github.com/fact-data/factstock_backend/internal/core/domain"
	portsrepo "github.com/fact-data/factstock_backend/internal/core/ports/repositories"
	"github.com/fact-data/factstock_backend/internal/models"
	"github.com/fact-data/factstock_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxReceptionRepository struct {
	BaseRepository
	ledgerRepo portsrepo.LedgerWriter
}

// newPgxReceptionRepository creates a new repository for reception data.
func newPgxReceptionRepository(pool *pgxpool.Pool, ledgerRepo portsrepo.LedgerWriter) portsrepo.ReceptionRepositoryFacade {
	return &PgxReceptionRepository{
		BaseRepository: BaseRepository{Pool: pool},
		ledgerRepo:     ledgerRepo,
	}
}

// Ensure PgxReceptionRepository implements portsrepo.ReceptionRepositoryFacade
var _ portsrepo.ReceptionRepositoryFacade = (*PgxReceptionRepository)(nil)

// SaveReception persists the reception record and upserts its ledger entry
// within one database transaction. A reception must never exist without its
// ledger movement; any failure rolls back both writes.
func (r *PgxReceptionRepository) SaveReception(ctx context.Context, reception domain.Reception, entry domain.LedgerEntry) (*domain.LedgerEntry, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, apperrors.NewAtomicityError("save reception", err)
	}
	// Ignored if the transaction commits successfully
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelReception(reception)
	query := `
		INSERT INTO reception (
			reception_id, operation_date, factory_id, grade_id, supply_unit_id, quantity,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err = tx.Exec(ctx, query,
		m.ReceptionID,
		m.OperationDate,
		m.FactoryID,
		m.GradeID,
		m.SupplyUnitID,
		m.Quantity,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, apperrors.ErrReferenceNotFound
		}
		return nil, apperrors.NewAtomicityError("insert reception "+m.ReceptionID, err)
	}

	storedEntry, err := r.ledgerRepo.UpsertEntryInTx(ctx, tx, entry)
	if err != nil {
		if errors.Is(err, apperrors.ErrReferenceNotFound) {
			return nil, err
		}
		return nil, apperrors.NewAtomicityError("upsert ledger entry for reception "+m.ReceptionID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, apperrors.NewAtomicityError("commit reception "+m.ReceptionID, err)
	}

	return storedEntry, nil
}

const receptionColumns = `
	reception_id, operation_date, factory_id, grade_id, supply_unit_id, quantity,
	created_at, created_by, last_updated_at, last_updated_by`

func scanReception(row pgx.Row) (models.Reception, error) {
	var m models.Reception
	err := row.Scan(
		&m.ReceptionID,
		&m.OperationDate,
		&m.FactoryID,
		&m.GradeID,
		&m.SupplyUnitID,
		&m.Quantity,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// FindReceptionByID retrieves a reception record by its ID.
func (r *PgxReceptionRepository) FindReceptionByID(ctx context.Context, receptionID string) (*domain.Reception, error) {
	query := `SELECT` + receptionColumns + ` FROM reception WHERE reception_id = $1;`

	m, err := scanReception(r.Pool.QueryRow(ctx, query, receptionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find reception by ID "+receptionID, err)
	}

	d := mapping.ToDomainReception(m)
	return &d, nil
}

// ListReceptions retrieves reception records, optionally for one factory,
// most recent first.
func (r *PgxReceptionRepository) ListReceptions(ctx context.Context, factoryID *string) ([]domain.Reception, error) {
	query := `SELECT` + receptionColumns + ` FROM reception`
	args := []interface{}{}
	if factoryID != nil {
		query += ` WHERE factory_id = $1`
		args = append(args, *factoryID)
	}
	query += ` ORDER BY operation_date DESC, created_at DESC;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query receptions", err)
	}
	defer rows.Close()

	receptions := []models.Reception{}
	for rows.Next() {
		m, scanErr := scanReception(rows)
		if scanErr != nil {
			return nil, apperrors.NewAppError(500, "failed to scan reception row", scanErr)
		}
		receptions = append(receptions, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating reception rows", err)
	}

	return mapping.ToDomainReceptionSlice(receptions), nil
}

// SummarizeReceptions rolls received quantities up into calendar buckets per
// factory and grade. The period name is passed to DATE_TRUNC as a parameter;
// the service validates it against the supported set first.
func (r *PgxReceptionRepository) SummarizeReceptions(ctx context.Context, period domain.SummaryPeriod, factoryID *string) ([]domain.ReceptionSummaryRow, error) {
	query := `
		SELECT r.factory_id, f.name, r.grade_id, p.crop_name,
		       DATE_TRUNC($1, r.operation_date) AS period_start,
		       SUM(r.quantity) AS total_quantity
		FROM reception r
		JOIN factory f ON f.factory_id = r.factory_id
		JOIN product p ON p.product_id = r.grade_id
	`
	args := []interface{}{string(period)}
	if factoryID != nil {
		query += ` WHERE r.factory_id = $2`
		args = append(args, *factoryID)
	}
	query += `
		GROUP BY r.factory_id, f.name, r.grade_id, p.crop_name, period_start
		ORDER BY period_start DESC, r.factory_id, r.grade_id;
	`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query reception summary", err)
	}
	defer rows.Close()

	summary := []domain.ReceptionSummaryRow{}
	for rows.Next() {
		var row domain.ReceptionSummaryRow
		if err := rows.Scan(
			&row.FactoryID,
			&row.FactoryName,
			&row.GradeID,
			&row.GradeName,
			&row.PeriodStart,
			&row.TotalQuantity,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan reception summary row", err)
		}
		summary = append(summary, row)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating reception summary rows", err)
	}

	return summary, nil
}

// DeleteReception removes the reception record only. Its ledger entry stays;
// correcting stock is an explicit manual entry.
func (r *PgxReceptionRepository) DeleteReception(ctx context.Context, receptionID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM reception WHERE reception_id = $1;`, receptionID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete reception "+receptionID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("reception " + receptionID + " not found for delete")
	}
	return nil
}
