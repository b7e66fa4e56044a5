package pgsql

import (
	portsrepo "github.com/SscSPs/pos_billing_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ProductRepo:   newPgxProductRepository(dbPool),
		CustomerRepo:  newPgxCustomerRepository(dbPool),
		InvoiceRepo:   newPgxInvoiceRepository(dbPool),
		DayCloseRepo:  newPgxDayCloseRepository(dbPool),
		ReportingRepo: newReportingRepository(dbPool),
	}
}
