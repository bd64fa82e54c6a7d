package service

import (
	"errors"
	"testing"

	"github.com/circuitaura/storefront/internal/models"
	"github.com/circuitaura/storefront/internal/repository"

	"github.com/shopspring/decimal"
)

func setupProductServiceTest(t *testing.T) (*ProductService, *ResourceService) {
	t.Helper()
	db := openServiceTestDB(t)
	if err := db.AutoMigrate(&models.Product{}, &models.Resource{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	return NewProductService(repository.NewProductRepository(db)), NewResourceService(repository.NewResourceRepository(db))
}

func TestProductCreateValidation(t *testing.T) {
	svc, _ := setupProductServiceTest(t)

	if _, err := svc.Create(ProductInput{Name: "  ", Price: decimal.NewFromInt(10)}); err == nil {
		t.Fatalf("expected rejection for blank name")
	}
	if _, err := svc.Create(ProductInput{Name: "Diode Pack", Price: decimal.NewFromInt(-1)}); !errors.Is(err, ErrPriceInvalid) {
		t.Fatalf("expected price rejection, got %v", err)
	}

	product, err := svc.Create(ProductInput{
		Name:     "Diode Pack",
		Price:    decimal.RequireFromString("49.999"),
		Features: []string{"1N4007", "Pack of 20"},
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if !product.IsActive {
		t.Fatalf("expected new products to default to active")
	}
	if !product.Price.Decimal.Equal(decimal.RequireFromString("50")) {
		t.Fatalf("expected price rounded to 2dp, got %s", product.Price.Decimal)
	}
}

func TestProductPublicListingHidesDelisted(t *testing.T) {
	svc, _ := setupProductServiceTest(t)

	inactive := false
	if _, err := svc.Create(ProductInput{Name: "Hidden Sensor", Price: decimal.NewFromInt(75), IsActive: &inactive}); err != nil {
		t.Fatalf("create hidden failed: %v", err)
	}
	visible, err := svc.Create(ProductInput{Name: "OLED Display", Price: decimal.NewFromInt(220)})
	if err != nil {
		t.Fatalf("create visible failed: %v", err)
	}

	list, total, err := svc.ListPublic("", 1, 20)
	if err != nil {
		t.Fatalf("public list failed: %v", err)
	}
	if total != 1 || len(list) != 1 || list[0].ID != visible.ID {
		t.Fatalf("expected only the active product, got total=%d len=%d", total, len(list))
	}

	adminList, adminTotal, err := svc.ListAdmin("", 1, 20)
	if err != nil {
		t.Fatalf("admin list failed: %v", err)
	}
	if adminTotal != 2 || len(adminList) != 2 {
		t.Fatalf("expected console to see both products, got total=%d", adminTotal)
	}

	searched, _, err := svc.ListPublic("oled", 1, 20)
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(searched) != 1 {
		t.Fatalf("expected case-insensitive search hit, got %d", len(searched))
	}
}

func TestResourceTypeValidation(t *testing.T) {
	_, svc := setupProductServiceTest(t)

	if _, err := svc.Create(ResourceInput{ResourceType: "podcast", Title: "Ohm's Law"}); !errors.Is(err, ErrResourceTypeInvalid) {
		t.Fatalf("expected type rejection, got %v", err)
	}

	created, err := svc.Create(ResourceInput{
		ResourceType: "Tutorial",
		Title:        "Soldering Basics",
		ReadTime:     "8 min read",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.ResourceType != "tutorial" {
		t.Fatalf("expected normalized type, got %s", created.ResourceType)
	}

	if _, _, err := svc.List("podcast", 1, 10); !errors.Is(err, ErrResourceTypeInvalid) {
		t.Fatalf("expected list filter rejection, got %v", err)
	}
	list, total, err := svc.List("tutorial", 1, 10)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 1 || len(list) != 1 {
		t.Fatalf("expected one tutorial, got %d", total)
	}
}
