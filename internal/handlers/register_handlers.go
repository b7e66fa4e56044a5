package handlers

import (
	"github.com/SscSPs/pos_billing_app/cmd/docs"
	portssvc "github.com/SscSPs/pos_billing_app/internal/core/ports/services"
	"github.com/SscSPs/pos_billing_app/internal/middleware"
	"github.com/SscSPs/pos_billing_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	apiMiddleware ...gin.HandlerFunc,
) {
	r.GET("/health", getHealth)

	setupAPIV1Routes(r, cfg, services, apiMiddleware...)

	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	service *portssvc.ServiceContainer,
	apiMiddleware ...gin.HandlerFunc,
) {
	v1 := r.Group("/api/v1", append(apiMiddleware, middleware.AuthMiddleware(cfg.JWTSecret))...)

	RegisterCartRoutes(v1, service.Carts)
	RegisterInvoiceRoutes(v1, service.Billing)
	RegisterCustomerRoutes(v1, service.Customer, service.Billing)
	RegisterProductRoutes(v1, service.Inventory)
	RegisterDayCloseRoutes(v1, service.DayClose, cfg.ShopLocation)
	RegisterReportingRoutes(v1, service.Reporting, cfg.ShopLocation)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
