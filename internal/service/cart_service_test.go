package service

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/circuitaura/storefront/internal/constants"
	"github.com/circuitaura/storefront/internal/models"
	"github.com/circuitaura/storefront/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func openServiceTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	return db
}

func setupCartServiceTest(t *testing.T) (*CartService, *gorm.DB) {
	t.Helper()
	db := openServiceTestDB(t)
	if err := db.AutoMigrate(&models.Product{}, &models.Kit{}, &models.CartItem{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	svc := NewCartService(
		repository.NewCartRepository(db),
		repository.NewProductRepository(db),
		repository.NewKitRepository(db),
		"INR",
	)
	return svc, db
}

func createCartTestProduct(t *testing.T, db *gorm.DB, name string, price string, active bool) *models.Product {
	t.Helper()
	product := &models.Product{
		Name:     name,
		Price:    models.NewMoneyFromDecimal(decimal.RequireFromString(price)),
		IsActive: active,
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	return product
}

func createCartTestKit(t *testing.T, db *gorm.DB, name string, price string, active bool) *models.Kit {
	t.Helper()
	kit := &models.Kit{
		Name:     name,
		Price:    models.NewMoneyFromDecimal(decimal.RequireFromString(price)),
		IsActive: active,
	}
	if err := db.Create(kit).Error; err != nil {
		t.Fatalf("create kit failed: %v", err)
	}
	return kit
}

func TestAddItemMergesQuantity(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	product := createCartTestProduct(t, db, "ESP32 DevKit", "450.00", true)
	userID := uint(1)

	if err := svc.AddItem(userID, product.ID, constants.ItemKindProduct, 2); err != nil {
		t.Fatalf("first add failed: %v", err)
	}
	if err := svc.AddItem(userID, product.ID, constants.ItemKindProduct, 3); err != nil {
		t.Fatalf("second add failed: %v", err)
	}

	summary, err := svc.GetCart(userID)
	if err != nil {
		t.Fatalf("get cart failed: %v", err)
	}
	if len(summary.Lines) != 1 {
		t.Fatalf("expected a single merged line, got %d", len(summary.Lines))
	}
	if summary.Lines[0].Quantity != 5 {
		t.Fatalf("expected merged quantity 5, got %d", summary.Lines[0].Quantity)
	}
}

func TestAddItemKeepsProductAndKitLinesApart(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	product := createCartTestProduct(t, db, "Soldering Iron", "899.00", true)
	kit := createCartTestKit(t, db, "Line Follower Kit", "1499.00", true)
	// Force the same row ID for both kinds so only item_kind separates them.
	if product.ID != kit.ID {
		kit.ID = product.ID
		if err := db.Save(kit).Error; err != nil {
			t.Fatalf("align kit id failed: %v", err)
		}
	}
	userID := uint(7)

	if err := svc.AddItem(userID, product.ID, constants.ItemKindProduct, 1); err != nil {
		t.Fatalf("add product failed: %v", err)
	}
	if err := svc.AddItem(userID, kit.ID, constants.ItemKindKit, 1); err != nil {
		t.Fatalf("add kit failed: %v", err)
	}

	summary, err := svc.GetCart(userID)
	if err != nil {
		t.Fatalf("get cart failed: %v", err)
	}
	if len(summary.Lines) != 2 {
		t.Fatalf("expected two lines, got %d", len(summary.Lines))
	}
}

func TestAddItemRejectsBadInput(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	product := createCartTestProduct(t, db, "Breadboard", "120.00", true)
	delisted := createCartTestProduct(t, db, "Old Sensor", "60.00", false)

	if err := svc.AddItem(1, product.ID, constants.ItemKindProduct, 0); !errors.Is(err, ErrQuantityInvalid) {
		t.Fatalf("expected quantity error, got %v", err)
	}
	if err := svc.AddItem(1, product.ID, "bundle", 1); !errors.Is(err, ErrItemKindInvalid) {
		t.Fatalf("expected kind error, got %v", err)
	}
	if err := svc.AddItem(1, delisted.ID, constants.ItemKindProduct, 1); !errors.Is(err, ErrItemNotAvailable) {
		t.Fatalf("expected availability error, got %v", err)
	}
}

func TestSetQuantityReplacesAndRemoves(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	product := createCartTestProduct(t, db, "Jumper Wires", "80.00", true)
	userID := uint(3)

	if err := svc.AddItem(userID, product.ID, constants.ItemKindProduct, 4); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := svc.SetQuantity(userID, product.ID, constants.ItemKindProduct, 2); err != nil {
		t.Fatalf("set quantity failed: %v", err)
	}

	summary, err := svc.GetCart(userID)
	if err != nil {
		t.Fatalf("get cart failed: %v", err)
	}
	if len(summary.Lines) != 1 || summary.Lines[0].Quantity != 2 {
		t.Fatalf("expected quantity replaced with 2, got %+v", summary.Lines)
	}

	// Zero removes the line instead of erroring.
	if err := svc.SetQuantity(userID, product.ID, constants.ItemKindProduct, 0); err != nil {
		t.Fatalf("set zero failed: %v", err)
	}
	summary, err = svc.GetCart(userID)
	if err != nil {
		t.Fatalf("get cart failed: %v", err)
	}
	if len(summary.Lines) != 0 {
		t.Fatalf("expected empty cart, got %d lines", len(summary.Lines))
	}
}

func TestGetCartDropsDelistedItemsAndTotals(t *testing.T) {
	svc, db := setupCartServiceTest(t)
	keep := createCartTestProduct(t, db, "Multimeter", "1250.50", true)
	gone := createCartTestProduct(t, db, "Clearance LED Pack", "99.00", true)
	userID := uint(9)

	if err := svc.AddItem(userID, keep.ID, constants.ItemKindProduct, 2); err != nil {
		t.Fatalf("add keep failed: %v", err)
	}
	if err := svc.AddItem(userID, gone.ID, constants.ItemKindProduct, 1); err != nil {
		t.Fatalf("add gone failed: %v", err)
	}

	if err := db.Model(&models.Product{}).Where("id = ?", gone.ID).Update("is_active", false).Error; err != nil {
		t.Fatalf("delist product failed: %v", err)
	}

	summary, err := svc.GetCart(userID)
	if err != nil {
		t.Fatalf("get cart failed: %v", err)
	}
	if len(summary.Lines) != 1 {
		t.Fatalf("expected delisted line dropped, got %d lines", len(summary.Lines))
	}
	if summary.TotalQuantity != 2 {
		t.Fatalf("expected total quantity 2, got %d", summary.TotalQuantity)
	}
	if got := summary.TotalAmount.String(); got != "2501" && got != "2501.00" {
		t.Fatalf("expected total 2501.00, got %s", got)
	}
	if summary.Currency != "INR" {
		t.Fatalf("expected INR currency, got %s", summary.Currency)
	}

	var count int64
	if err := db.Model(&models.CartItem{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		t.Fatalf("count cart rows failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected delisted row removed from storage, got %d rows", count)
	}
}
