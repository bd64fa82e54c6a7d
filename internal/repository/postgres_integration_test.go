//go:build integration
// +build integration

package repository

import (
	"os"
	"strings"
	"testing"

	"github.com/circuitaura/storefront/internal/constants"
	"github.com/circuitaura/storefront/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// setupPostgresIntegrationDB opens the PostgreSQL integration test database.
func setupPostgresIntegrationDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := strings.TrimSpace(os.Getenv("TEST_POSTGRES_DSN"))
	if dsn == "" {
		t.Skip("skip postgres integration test: TEST_POSTGRES_DSN is empty")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open postgres failed: %v", err)
	}

	cleanupModels := []interface{}{
		&models.OrderItem{},
		&models.Order{},
		&models.Product{},
		&models.Kit{},
		&models.User{},
	}
	_ = db.Migrator().DropTable(cleanupModels...)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Kit{},
		&models.Order{},
		&models.OrderItem{},
	); err != nil {
		t.Fatalf("migrate postgres models failed: %v", err)
	}

	t.Cleanup(func() {
		_ = db.Migrator().DropTable(cleanupModels...)
		sqlDB, err := db.DB()
		if err == nil {
			_ = sqlDB.Close()
		}
	})

	return db
}

func TestPostgresCatalogSearchIsCaseInsensitive(t *testing.T) {
	db := setupPostgresIntegrationDB(t)

	productRepo := NewProductRepository(db)
	product := &models.Product{
		Name:        "Oscilloscope OS-100",
		Description: "entry level bench scope",
		Price:       models.NewMoneyFromDecimal(decimal.NewFromInt(4999)),
		IsActive:    true,
	}
	if err := productRepo.Create(product); err != nil {
		t.Fatalf("create product failed: %v", err)
	}

	rows, total, err := productRepo.List(CatalogListFilter{Page: 1, PageSize: 10, Search: "oscilloscope"})
	if err != nil {
		t.Fatalf("product search lower failed: %v", err)
	}
	if total != 1 || len(rows) != 1 {
		t.Fatalf("product search lower want 1 got total=%d len=%d", total, len(rows))
	}

	rows, total, err = productRepo.List(CatalogListFilter{Page: 1, PageSize: 10, Search: "BENCH SCOPE"})
	if err != nil {
		t.Fatalf("product search upper failed: %v", err)
	}
	if total != 1 || len(rows) != 1 {
		t.Fatalf("product search upper want 1 got total=%d len=%d", total, len(rows))
	}

	kitRepo := NewKitRepository(db)
	kit := &models.Kit{
		Name:        "Weather Station Kit",
		Description: "build a connected sensor node",
		Price:       models.NewMoneyFromDecimal(decimal.NewFromInt(2499)),
		IsActive:    true,
	}
	if err := kitRepo.Create(kit); err != nil {
		t.Fatalf("create kit failed: %v", err)
	}

	kitRows, kitTotal, err := kitRepo.List(CatalogListFilter{Page: 1, PageSize: 10, Search: "weather"})
	if err != nil {
		t.Fatalf("kit search failed: %v", err)
	}
	if kitTotal != 1 || len(kitRows) != 1 {
		t.Fatalf("kit search want 1 got total=%d len=%d", kitTotal, len(kitRows))
	}
}

func TestPostgresOrderAdminFilters(t *testing.T) {
	db := setupPostgresIntegrationDB(t)
	repo := NewOrderRepository(db)

	user := &models.User{
		Name:         "Integration Buyer",
		Email:        "buyer@example.com",
		PasswordHash: "x",
		Locale:       "en-US",
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create user failed: %v", err)
	}

	pending := &models.Order{
		OrderNo:         "PG-ORDER-001",
		UserID:          user.ID,
		Status:          constants.OrderStatusPending,
		Currency:        "INR",
		TotalAmount:     models.NewMoneyFromDecimal(decimal.NewFromInt(549)),
		ReceiverName:    "Integration Buyer",
		ReceiverPhone:   "9876543210",
		ReceiverPincode: "560001",
		ReceiverCity:    "Bengaluru",
		ReceiverAddress: "12 MG Road",
	}
	shipped := &models.Order{
		OrderNo:         "PG-ORDER-002",
		UserID:          user.ID,
		Status:          constants.OrderStatusShipped,
		Currency:        "INR",
		TotalAmount:     models.NewMoneyFromDecimal(decimal.NewFromInt(899)),
		ReceiverName:    "Integration Buyer",
		ReceiverPhone:   "9876543210",
		ReceiverPincode: "560001",
		ReceiverCity:    "Bengaluru",
		ReceiverAddress: "12 MG Road",
	}
	for _, order := range []*models.Order{pending, shipped} {
		if err := repo.Create(order, []models.OrderItem{{
			ItemID:    1,
			ItemKind:  constants.ItemKindProduct,
			Name:      "Digital Multimeter DM-830",
			UnitPrice: order.TotalAmount,
			Quantity:  1,
			Subtotal:  order.TotalAmount,
		}}); err != nil {
			t.Fatalf("create order %s failed: %v", order.OrderNo, err)
		}
	}

	rows, total, err := repo.ListAdmin(OrderListFilter{Page: 1, PageSize: 10, Status: constants.OrderStatusShipped})
	if err != nil {
		t.Fatalf("list by status failed: %v", err)
	}
	if total != 1 || len(rows) != 1 || rows[0].OrderNo != "PG-ORDER-002" {
		t.Fatalf("status filter want PG-ORDER-002 got total=%d", total)
	}

	rows, total, err = repo.ListAdmin(OrderListFilter{Page: 1, PageSize: 10, OrderNo: "PG-ORDER-001"})
	if err != nil {
		t.Fatalf("list by order_no failed: %v", err)
	}
	if total != 1 || len(rows) != 1 || rows[0].Status != constants.OrderStatusPending {
		t.Fatalf("order_no filter want pending order got total=%d", total)
	}
	if len(rows[0].Items) != 1 {
		t.Fatalf("order items should be preloaded, got %d", len(rows[0].Items))
	}

	email, locale, err := repo.ResolveReceiverByOrderID(rows[0].ID)
	if err != nil {
		t.Fatalf("resolve receiver failed: %v", err)
	}
	if email != "buyer@example.com" || locale != "en-US" {
		t.Fatalf("receiver want buyer@example.com/en-US got %s/%s", email, locale)
	}
}
