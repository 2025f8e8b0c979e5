package pgsql

import (
	portsrepo "github.com/fact-data/factstock_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	ledgerRepo := newPgxLedgerRepository(dbPool)
	balanceRepo := newPgxBalanceRepository(dbPool)
	receptionRepo := newPgxReceptionRepository(dbPool, ledgerRepo)
	processingRepo := newPgxProcessingRepository(dbPool, ledgerRepo)
	shippingRepo := newPgxShippingRepository(dbPool)
	refDataRepo := newPgxRefDataRepository(dbPool)

	return portsrepo.RepositoryProvider{
		LedgerRepo:     ledgerRepo,
		BalanceRepo:    balanceRepo,
		ReceptionRepo:  receptionRepo,
		ProcessingRepo: processingRepo,
		ShippingRepo:   shippingRepo,
		RefDataRepo:    refDataRepo,
	}
}
