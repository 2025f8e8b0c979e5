package pgsql

import (
	"context"
	"errors"
	"strconv"

	"github.com/fact-data/factstock_backend/internal/apperrors"
	"github.com/fact-data/factstock_backend/internal/core/domain"
	portsrepo "github.com/fact-data/factstock_backend/internal/core/ports/repositories"
	"github.com/fact-data/factstock_backend/internal/models"
	"github.com/fact-data/factstock_backend/internal/utils/mapping"
	"github.com/fact-data/factstock_backend/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxLedgerRepository struct {
	BaseRepository
}

// newPgxLedgerRepository creates a new repository for ledger entry data.
func newPgxLedgerRepository(pool *pgxpool.Pool) portsrepo.LedgerRepositoryFacade {
	return &PgxLedgerRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxLedgerRepository implements portsrepo.LedgerRepositoryFacade
var _ portsrepo.LedgerRepositoryFacade = (*PgxLedgerRepository)(nil)

const ledgerEntryColumns = `
	entry_id, transaction_date, factory_id, product_id, stock_pool, direction, source,
	quantity, description, created_at, created_by, last_updated_at, last_updated_by`

// upsertQuery inserts an entry or merges it additively into the row holding
// its natural key. The merged description is recomputed inside the statement
// from the prefix and the new total, so the whole merge stays one atomic
// write with no read-modify-write window.
const upsertQuery = `
	INSERT INTO ledger_entry (
		entry_id, transaction_date, factory_id, product_id, stock_pool, direction, source,
		quantity, description, created_at, created_by, last_updated_at, last_updated_by
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	ON CONFLICT (transaction_date, factory_id, product_id, stock_pool, direction, source)
	DO UPDATE SET
		quantity        = ledger_entry.quantity + EXCLUDED.quantity,
		description     = $14 || ' (' || trim_scale(ledger_entry.quantity + EXCLUDED.quantity)::text || ' kg)',
		last_updated_at = EXCLUDED.last_updated_at,
		last_updated_by = EXCLUDED.last_updated_by
	RETURNING` + ledgerEntryColumns + `;`

// rowQuerier is satisfied by both *pgxpool.Pool and pgx.Tx so the upsert can
// run standalone or inside a recorder's transaction.
type rowQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func scanLedgerEntry(row pgx.Row) (models.LedgerEntry, error) {
	var m models.LedgerEntry
	err := row.Scan(
		&m.EntryID,
		&m.TransactionDate,
		&m.FactoryID,
		&m.ProductID,
		&m.StockPool,
		&m.Direction,
		&m.Source,
		&m.Quantity,
		&m.Description,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxLedgerRepository) upsertEntry(ctx context.Context, q rowQuerier, entry domain.LedgerEntry, descriptionPrefix string) (*domain.LedgerEntry, error) {
	m := mapping.ToModelLedgerEntry(entry)

	row := q.QueryRow(ctx, upsertQuery,
		m.EntryID,
		m.TransactionDate,
		m.FactoryID,
		m.ProductID,
		m.StockPool,
		m.Direction,
		m.Source,
		m.Quantity,
		m.Description,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		descriptionPrefix,
	)

	stored, err := scanLedgerEntry(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			// FK violation on factory_id or product_id
			return nil, apperrors.ErrReferenceNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to upsert ledger entry for factory "+m.FactoryID, err)
	}

	domainEntry := mapping.ToDomainLedgerEntry(stored)
	return &domainEntry, nil
}

// UpsertEntry inserts the entry, or merges it additively into the row
// holding its natural key.
func (r *PgxLedgerRepository) UpsertEntry(ctx context.Context, entry domain.LedgerEntry) (*domain.LedgerEntry, error) {
	return r.upsertEntry(ctx, r.Pool, entry, entry.DescriptionPrefix())
}

// UpsertEntryInTx is UpsertEntry running on a caller-owned transaction.
func (r *PgxLedgerRepository) UpsertEntryInTx(ctx context.Context, tx pgx.Tx, entry domain.LedgerEntry) (*domain.LedgerEntry, error) {
	return r.upsertEntry(ctx, tx, entry, entry.DescriptionPrefix())
}

// FindEntryByID retrieves a ledger entry by its ID.
func (r *PgxLedgerRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.LedgerEntry, error) {
	query := `SELECT` + ledgerEntryColumns + ` FROM ledger_entry WHERE entry_id = $1;`

	m, err := scanLedgerEntry(r.Pool.QueryRow(ctx, query, entryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find ledger entry by ID "+entryID, err)
	}

	domainEntry := mapping.ToDomainLedgerEntry(m)
	return &domainEntry, nil
}

// ListEntries retrieves a keyset-paginated list of ledger entries, most
// recent transaction date first.
func (r *PgxLedgerRepository) ListEntries(ctx context.Context, filter portsrepo.LedgerEntryFilter, limit int, nextToken *string) ([]domain.LedgerEntry, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	// Fetch one extra item to determine if there's a next page.
	fetchLimit := limit + 1

	baseQuery := `SELECT` + ledgerEntryColumns + ` FROM ledger_entry WHERE 1=1`

	args := []interface{}{}
	if filter.FactoryID != nil {
		args = append(args, *filter.FactoryID)
		baseQuery += ` AND factory_id = $` + strconv.Itoa(len(args))
	}
	if filter.From != nil {
		args = append(args, domain.NormalizeDate(*filter.From))
		baseQuery += ` AND transaction_date >= $` + strconv.Itoa(len(args))
	}
	if filter.To != nil {
		args = append(args, domain.NormalizeDate(*filter.To))
		baseQuery += ` AND transaction_date <= $` + strconv.Itoa(len(args))
	}

	if nextToken != nil && *nextToken != "" {
		lastDate, lastCreatedAt, decodeErr := pagination.DecodeToken(*nextToken)
		if decodeErr != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", decodeErr)
		}
		// Tuple comparison keeps the cursor stable across equal dates
		args = append(args, lastDate, lastCreatedAt)
		baseQuery += ` AND (transaction_date, created_at) < ($` + strconv.Itoa(len(args)-1) + `, $` + strconv.Itoa(len(args)) + `)`
	}

	orderByClause := ` ORDER BY transaction_date DESC, created_at DESC`
	args = append(args, fetchLimit)
	query := baseQuery + orderByClause + ` LIMIT $` + strconv.Itoa(len(args)) + `;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query ledger entries", err)
	}
	defer rows.Close()

	modelEntries := make([]models.LedgerEntry, 0, fetchLimit)
	for rows.Next() {
		m, scanErr := scanLedgerEntry(rows)
		if scanErr != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan ledger entry row", scanErr)
		}
		modelEntries = append(modelEntries, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating ledger entry rows", err)
	}

	var nextTokenVal *string
	results := modelEntries
	if len(modelEntries) > limit {
		last := modelEntries[limit-1]
		token := pagination.EncodeToken(last.TransactionDate, last.CreatedAt)
		nextTokenVal = &token
		results = modelEntries[:limit]
	}

	return mapping.ToDomainLedgerEntrySlice(results), nextTokenVal, nil
}

// UpdateEntry rewrites a ledger row in place. No merge semantics: an update
// that lands on another row's natural key is a conflict, not a merge.
func (r *PgxLedgerRepository) UpdateEntry(ctx context.Context, entry domain.LedgerEntry) (*domain.LedgerEntry, error) {
	m := mapping.ToModelLedgerEntry(entry)

	query := `
		UPDATE ledger_entry
		SET transaction_date = $2,
		    product_id       = $3,
		    stock_pool       = $4,
		    direction        = $5,
		    quantity         = $6,
		    description      = $7,
		    last_updated_at  = $8,
		    last_updated_by  = $9
		WHERE entry_id = $1
		RETURNING` + ledgerEntryColumns + `;`

	stored, err := scanLedgerEntry(r.Pool.QueryRow(ctx, query,
		m.EntryID,
		m.TransactionDate,
		m.ProductID,
		m.StockPool,
		m.Direction,
		m.Quantity,
		m.Description,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("ledger entry " + m.EntryID + " not found for update")
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505":
				// Unique violation: updated row collides with another natural key
				return nil, apperrors.ErrDuplicate
			case "23503":
				return nil, apperrors.ErrReferenceNotFound
			}
		}
		return nil, apperrors.NewAppError(500, "failed to update ledger entry "+m.EntryID, err)
	}

	domainEntry := mapping.ToDomainLedgerEntry(stored)
	return &domainEntry, nil
}

// DeleteEntry removes a ledger row.
func (r *PgxLedgerRepository) DeleteEntry(ctx context.Context, entryID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM ledger_entry WHERE entry_id = $1;`, entryID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete ledger entry "+entryID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("ledger entry " + entryID + " not found for delete")
	}
	return nil
}
