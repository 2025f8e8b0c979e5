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

type PgxProcessingRepository struct {
	BaseRepository
	ledgerRepo portsrepo.LedgerWriter
}

// newPgxProcessingRepository creates a new repository for processing data.
func newPgxProcessingRepository(pool *pgxpool.Pool, ledgerRepo portsrepo.LedgerWriter) portsrepo.ProcessingRepositoryFacade {
	return &PgxProcessingRepository{
		BaseRepository: BaseRepository{Pool: pool},
		ledgerRepo:     ledgerRepo,
	}
}

// Ensure PgxProcessingRepository implements portsrepo.ProcessingRepositoryFacade
var _ portsrepo.ProcessingRepositoryFacade = (*PgxProcessingRepository)(nil)

// SaveProcessing persists the processing record plus its two ledger entries
// (unprocessed debit, processed credit) in one database transaction. A
// partial commit would silently create or destroy stock, so any failure
// rolls back all three writes.
func (r *PgxProcessingRepository) SaveProcessing(ctx context.Context, processing domain.Processing, debit domain.LedgerEntry, credit domain.LedgerEntry) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return apperrors.NewAtomicityError("save processing", err)
	}
	// Ignored if the transaction commits successfully
	defer r.Rollback(ctx, tx)

	m := mapping.ToModelProcessing(processing)
	query := `
		INSERT INTO processing (
			processing_id, operation_date, factory_id, output_grade_id, quantity,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err = tx.Exec(ctx, query,
		m.ProcessingID,
		m.OperationDate,
		m.FactoryID,
		m.OutputGradeID,
		m.Quantity,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return apperrors.ErrReferenceNotFound
		}
		return apperrors.NewAtomicityError("insert processing "+m.ProcessingID, err)
	}

	if _, err := r.ledgerRepo.UpsertEntryInTx(ctx, tx, debit); err != nil {
		if errors.Is(err, apperrors.ErrReferenceNotFound) {
			return err
		}
		return apperrors.NewAtomicityError("upsert debit entry for processing "+m.ProcessingID, err)
	}

	if _, err := r.ledgerRepo.UpsertEntryInTx(ctx, tx, credit); err != nil {
		if errors.Is(err, apperrors.ErrReferenceNotFound) {
			return err
		}
		return apperrors.NewAtomicityError("upsert credit entry for processing "+m.ProcessingID, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return apperrors.NewAtomicityError("commit processing "+m.ProcessingID, err)
	}

	return nil
}

const processingColumns = `
	processing_id, operation_date, factory_id, output_grade_id, quantity,
	created_at, created_by, last_updated_at, last_updated_by`

func scanProcessing(row pgx.Row) (models.Processing, error) {
	var m models.Processing
	err := row.Scan(
		&m.ProcessingID,
		&m.OperationDate,
		&m.FactoryID,
		&m.OutputGradeID,
		&m.Quantity,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// FindProcessingByID retrieves a processing record by its ID.
func (r *PgxProcessingRepository) FindProcessingByID(ctx context.Context, processingID string) (*domain.Processing, error) {
	query := `SELECT` + processingColumns + ` FROM processing WHERE processing_id = $1;`

	m, err := scanProcessing(r.Pool.QueryRow(ctx, query, processingID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find processing by ID "+processingID, err)
	}

	d := mapping.ToDomainProcessing(m)
	return &d, nil
}

// ListProcessings retrieves processing records, optionally for one factory,
// most recent first.
func (r *PgxProcessingRepository) ListProcessings(ctx context.Context, factoryID *string) ([]domain.Processing, error) {
	query := `SELECT` + processingColumns + ` FROM processing`
	args := []interface{}{}
	if factoryID != nil {
		query += ` WHERE factory_id = $1`
		args = append(args, *factoryID)
	}
	query += ` ORDER BY operation_date DESC, created_at DESC;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query processings", err)
	}
	defer rows.Close()

	processings := []models.Processing{}
	for rows.Next() {
		m, scanErr := scanProcessing(rows)
		if scanErr != nil {
			return nil, apperrors.NewAppError(500, "failed to scan processing row", scanErr)
		}
		processings = append(processings, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating processing rows", err)
	}

	return mapping.ToDomainProcessingSlice(processings), nil
}
