package services

import (
	portsrepo "github.com/SscSPs/pos_billing_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pos_billing_app/internal/core/ports/services"
	"github.com/SscSPs/pos_billing_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Billing = NewBillingService(repos.InvoiceRepo, repos.ProductRepo, repos.CustomerRepo, cfg.ShopLocation)
	// Cart checkout goes through the same commit protocol as direct invoice commits.
	container.Carts = NewCartSessionService(repos.ProductRepo, container.Billing)
	container.Customer = NewCustomerService(repos.CustomerRepo)
	container.Inventory = NewInventoryService(repos.ProductRepo, cfg.LowStockDefault)
	container.DayClose = NewDayCloseService(repos.DayCloseRepo, cfg.ShopLocation)
	container.Reporting = NewReportingService(repos.ReportingRepo, cfg.ShopLocation)

	return container
}
