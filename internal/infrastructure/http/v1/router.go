// Package v1 provides HTTP API version 1.
package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/Nethupa05/NS-Stores-Backend/internal/domain/audit"
	"github.com/Nethupa05/NS-Stores-Backend/internal/domain/auth"
	"github.com/Nethupa05/NS-Stores-Backend/internal/domain/catalogs/product"
	"github.com/Nethupa05/NS-Stores-Backend/internal/domain/catalogs/supplier"
	"github.com/Nethupa05/NS-Stores-Backend/internal/domain/orders/quotation"
	"github.com/Nethupa05/NS-Stores-Backend/internal/domain/orders/reservation"
	"github.com/Nethupa05/NS-Stores-Backend/internal/domain/reports"
	"github.com/Nethupa05/NS-Stores-Backend/internal/infrastructure/http/v1/handlers"
	"github.com/Nethupa05/NS-Stores-Backend/internal/infrastructure/http/v1/middleware"
	"github.com/Nethupa05/NS-Stores-Backend/internal/infrastructure/storage/postgres"
	"github.com/Nethupa05/NS-Stores-Backend/internal/infrastructure/storage/postgres/auth_repo"
	"github.com/Nethupa05/NS-Stores-Backend/internal/infrastructure/storage/postgres/catalog_repo"
	"github.com/Nethupa05/NS-Stores-Backend/internal/infrastructure/storage/postgres/order_repo"
	"github.com/Nethupa05/NS-Stores-Backend/internal/infrastructure/storage/postgres/report_repo"
	"github.com/Nethupa05/NS-Stores-Backend/pkg/logger"
)

// RouterConfig holds router dependencies.
type RouterConfig struct {
	Pool      *postgres.Pool
	TxManager *postgres.TxManager
	Logger    *logger.Logger
	JWT       *auth.JWTService
	Recorder  audit.Recorder
	History   audit.Historian
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Global middleware, order matters.
	router.Use(middleware.Recovery())
	router.Use(middleware.Trace())
	router.Use(middleware.Logger(cfg.Logger))
	router.Use(middleware.ErrorHandler())

	recorder := cfg.Recorder
	if recorder == nil {
		recorder = audit.Nop{}
	}

	// Repositories.
	userRepo := auth_repo.NewUserRepo(cfg.TxManager)
	productRepo := catalog_repo.NewProductRepo(cfg.TxManager)
	supplierRepo := catalog_repo.NewSupplierRepo(cfg.TxManager)
	quotationRepo := order_repo.NewQuotationRepo(cfg.TxManager)
	reservationRepo := order_repo.NewReservationRepo(cfg.TxManager)

	// Services.
	authService := auth.NewService(userRepo, cfg.JWT, auth.DefaultServiceConfig())
	productService := product.NewService(productRepo, recorder)
	supplierService := supplier.NewService(supplierRepo, recorder)
	quotationService := quotation.NewService(quotationRepo, recorder)
	reservationService := reservation.NewService(reservationRepo, recorder)
	reportService := reports.NewService(
		report_repo.NewProductReportRepo(cfg.TxManager),
		report_repo.NewSupplierReportRepo(cfg.TxManager),
		report_repo.NewUserReportRepo(cfg.TxManager),
		report_repo.NewQuotationReportRepo(cfg.TxManager),
		report_repo.NewReservationReportRepo(cfg.TxManager),
	)

	// Handlers.
	base := handlers.NewBaseHandler()
	healthHandler := handlers.NewHealthHandler(cfg.Pool.Pool)
	authHandler := handlers.NewAuthHandler(base, authService)
	productHandler := handlers.NewProductHandler(base, productService)
	supplierHandler := handlers.NewSupplierHandler(base, supplierService)
	quotationHandler := handlers.NewQuotationHandler(base, quotationService)
	reservationHandler := handlers.NewReservationHandler(base, reservationService)
	reportsHandler := handlers.NewReportsHandler(base, reportService)

	// Health endpoints, no auth.
	health := router.Group("/health")
	{
		health.GET("/live", healthHandler.Live)
		health.GET("/ready", healthHandler.Ready)
	}

	v1 := router.Group("/api/v1")
	{
		// Public auth endpoints.
		authGroup := v1.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
		}

		// Everything else requires a valid token.
		protected := v1.Group("")
		protected.Use(middleware.Auth(cfg.JWT))

		protected.GET("/auth/me", authHandler.Me)
		protected.GET("/users", middleware.RequireRole(string(auth.RoleAdmin)), authHandler.ListUsers)

		if cfg.History != nil {
			auditHandler := handlers.NewAuditHandler(base, cfg.History)
			protected.GET("/audit/:entityType/:id",
				middleware.RequireRole(string(auth.RoleAdmin)), auditHandler.EntityHistory)
		}

		products := protected.Group("/products")
		{
			products.POST("", productHandler.Create)
			products.GET("", productHandler.List)
			products.GET("/:id", productHandler.Get)
			products.PUT("/:id", productHandler.Update)
			products.DELETE("/:id", productHandler.Delete)
		}

		suppliers := protected.Group("/suppliers")
		{
			suppliers.POST("", supplierHandler.Create)
			suppliers.GET("", supplierHandler.List)
			suppliers.GET("/:id", supplierHandler.Get)
			suppliers.PUT("/:id", supplierHandler.Update)
			suppliers.DELETE("/:id", supplierHandler.Delete)
		}

		quotations := protected.Group("/quotations")
		{
			quotations.POST("", quotationHandler.Create)
			quotations.GET("", quotationHandler.List)
			quotations.GET("/:id", quotationHandler.Get)
			quotations.PATCH("/:id/status", quotationHandler.UpdateStatus)
			quotations.DELETE("/:id", quotationHandler.Delete)
		}

		reservations := protected.Group("/reservations")
		{
			reservations.POST("", reservationHandler.Create)
			reservations.GET("", reservationHandler.List)
			reservations.GET("/:id", reservationHandler.Get)
			reservations.PATCH("/:id/status", reservationHandler.UpdateStatus)
			reservations.DELETE("/:id", reservationHandler.Delete)
		}

		reportsGroup := protected.Group("/reports")
		{
			reportsGroup.GET("/products", reportsHandler.Products)
			reportsGroup.GET("/suppliers", reportsHandler.Suppliers)
			reportsGroup.GET("/users", reportsHandler.Users)
			reportsGroup.GET("/quotations", reportsHandler.Quotations)
			reportsGroup.GET("/reservations", reportsHandler.Reservations)
			reportsGroup.GET("/dashboard", reportsHandler.Dashboard)
		}
	}

	return router
}
