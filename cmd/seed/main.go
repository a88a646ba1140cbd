// Command seed populates the database with an admin account and a
// small demo data set for local development.
package main

import (
	"context"
	"os"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Nethupa05/NS-Stores-Backend/internal/config"
	"github.com/Nethupa05/NS-Stores-Backend/internal/core/id"
	"github.com/Nethupa05/NS-Stores-Backend/internal/domain/audit"
	"github.com/Nethupa05/NS-Stores-Backend/internal/domain/auth"
	"github.com/Nethupa05/NS-Stores-Backend/internal/domain/catalogs/product"
	"github.com/Nethupa05/NS-Stores-Backend/internal/domain/catalogs/supplier"
	"github.com/Nethupa05/NS-Stores-Backend/internal/domain/orders/quotation"
	"github.com/Nethupa05/NS-Stores-Backend/internal/domain/orders/reservation"
	"github.com/Nethupa05/NS-Stores-Backend/internal/infrastructure/storage/postgres"
	"github.com/Nethupa05/NS-Stores-Backend/internal/infrastructure/storage/postgres/auth_repo"
	"github.com/Nethupa05/NS-Stores-Backend/internal/infrastructure/storage/postgres/catalog_repo"
	"github.com/Nethupa05/NS-Stores-Backend/internal/infrastructure/storage/postgres/order_repo"
	"github.com/Nethupa05/NS-Stores-Backend/pkg/logger"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load(".")
	if err != nil {
		logger.Fatal(ctx, "load config failed", "error", err)
	}

	pool, err := postgres.NewPool(ctx, postgres.DefaultPoolConfig(cfg.Database.DSN))
	if err != nil {
		logger.Fatal(ctx, "connect database failed", "error", err)
	}
	defer pool.Close()

	txManager := postgres.NewTxManager(pool)

	if err := seed(ctx, txManager); err != nil {
		logger.Error(ctx, "seed failed", "error", err)
		os.Exit(1)
	}
	logger.Info(ctx, "seed completed")
}

func seed(ctx context.Context, txManager *postgres.TxManager) error {
	userRepo := auth_repo.NewUserRepo(txManager)
	productRepo := catalog_repo.NewProductRepo(txManager)
	supplierRepo := catalog_repo.NewSupplierRepo(txManager)
	quotationRepo := order_repo.NewQuotationRepo(txManager)
	reservationRepo := order_repo.NewReservationRepo(txManager)

	authService := auth.NewService(userRepo, nil, auth.DefaultServiceConfig())
	supplierService := supplier.NewService(supplierRepo, audit.Nop{})
	productService := product.NewService(productRepo, audit.Nop{})
	quotationService := quotation.NewService(quotationRepo, audit.Nop{})
	reservationService := reservation.NewService(reservationRepo, audit.Nop{})

	// All data lands inside one transaction so a partial seed never
	// leaves the database half-filled.
	return txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		if _, err := authService.Register(ctx, auth.RegisterRequest{
			FullName: "Store Admin",
			Email:    "admin@ns-stores.local",
			Password: "admin12345",
			Role:     auth.RoleAdmin,
		}); err != nil {
			return err
		}

		now := time.Now().UTC()
		acme := supplier.NewSupplier("Acme Distribution", "Colombo", now.AddDate(-1, 0, 0), now.AddDate(1, 0, 0))
		lanka := supplier.NewSupplier("Lanka Traders", "Kandy", now.AddDate(0, -6, 0), now.AddDate(0, 0, 20))
		for _, s := range []*supplier.Supplier{acme, lanka} {
			if err := supplierService.Create(ctx, s); err != nil {
				return err
			}
		}

		products := []*product.Product{
			newProduct("SKU-1001", "Steel Bolt M8", "Hardware", "2.50", 500, 50, &acme.ID),
			newProduct("SKU-1002", "Steel Nut M8", "Hardware", "1.20", 30, 50, &acme.ID),
			newProduct("SKU-2001", "Wall Paint 5L", "Paint", "38.00", 0, 10, &lanka.ID),
			newProduct("SKU-3001", "Work Gloves", "Safety", "7.90", 120, 20, nil),
		}
		for _, p := range products {
			if err := productService.Create(ctx, p); err != nil {
				return err
			}
		}

		quotes := []*quotation.Quotation{
			quotation.NewQuotation("Hardware", decimal.RequireFromString("300")),
			quotation.NewQuotation("Hardware", decimal.RequireFromString("150")),
			quotation.NewQuotation("Paint", decimal.RequireFromString("200")),
			quotation.NewQuotation("Safety", decimal.RequireFromString("100")),
		}
		for i, q := range quotes {
			if err := quotationService.Create(ctx, q); err != nil {
				return err
			}
			if i < 2 {
				if _, err := quotationService.UpdateStatus(ctx, q.ID, quotation.StatusCompleted); err != nil {
					return err
				}
			}
		}

		reservations := []*reservation.Reservation{
			reservation.NewReservation("alice@example.com"),
			reservation.NewReservation("bob@example.com"),
		}
		for _, r := range reservations {
			if err := reservationService.Create(ctx, r); err != nil {
				return err
			}
		}

		return nil
	})
}

func newProduct(sku, name, category, price string, stock, minStock int, supplierID *id.ID) *product.Product {
	p := product.NewProduct(sku, name, category, decimal.RequireFromString(price))
	p.Stock = stock
	p.MinStock = minStock
	p.SupplierID = supplierID
	return p
}
