package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	ProductRepo   ProductRepositoryWithTx
	CustomerRepo  CustomerRepositoryWithTx
	InvoiceRepo   InvoiceRepositoryWithTx
	DayCloseRepo  DayCloseRepositoryWithTx
	ReportingRepo ReportingRepository
}
