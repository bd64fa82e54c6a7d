package repository

import (
	"testing"

	"github.com/circuitaura/storefront/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupProductRepositoryTest(t *testing.T) (*GormProductRepository, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Product{}); err != nil {
		t.Fatalf("migrate product failed: %v", err)
	}
	return NewProductRepository(db), db
}

func createTestProduct(t *testing.T, repo *GormProductRepository, name string, active bool, sortOrder int) *models.Product {
	t.Helper()
	product := &models.Product{
		Name:        name,
		Description: "bench essential",
		Price:       models.NewMoneyFromDecimal(decimal.NewFromInt(100)),
		IsActive:    active,
		SortOrder:   sortOrder,
	}
	if err := repo.Create(product); err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	return product
}

func TestProductListOnlyActiveFilter(t *testing.T) {
	repo, _ := setupProductRepositoryTest(t)
	createTestProduct(t, repo, "Multimeter", true, 10)
	createTestProduct(t, repo, "Retired Sensor", false, 20)

	products, total, err := repo.List(CatalogListFilter{Page: 1, PageSize: 10, OnlyActive: true})
	if err != nil {
		t.Fatalf("list active failed: %v", err)
	}
	if total != 1 || len(products) != 1 {
		t.Fatalf("active list want 1 got total=%d len=%d", total, len(products))
	}
	if products[0].Name != "Multimeter" {
		t.Fatalf("active product want Multimeter got %s", products[0].Name)
	}

	_, total, err = repo.List(CatalogListFilter{Page: 1, PageSize: 10})
	if err != nil {
		t.Fatalf("list all failed: %v", err)
	}
	if total != 2 {
		t.Fatalf("full list total want 2 got %d", total)
	}
}

func TestProductListSearchMatchesNameAndDescription(t *testing.T) {
	repo, _ := setupProductRepositoryTest(t)
	createTestProduct(t, repo, "Soldering Iron", true, 10)
	createTestProduct(t, repo, "Jumper Wires", true, 20)

	products, total, err := repo.List(CatalogListFilter{Page: 1, PageSize: 10, Search: "soldering"})
	if err != nil {
		t.Fatalf("list search failed: %v", err)
	}
	if total != 1 || len(products) != 1 {
		t.Fatalf("search want 1 got total=%d len=%d", total, len(products))
	}

	_, total, err = repo.List(CatalogListFilter{Page: 1, PageSize: 10, Search: "bench essential"})
	if err != nil {
		t.Fatalf("list search description failed: %v", err)
	}
	if total != 2 {
		t.Fatalf("description search total want 2 got %d", total)
	}
}

func TestProductListOrdersBySortOrderDesc(t *testing.T) {
	repo, _ := setupProductRepositoryTest(t)
	createTestProduct(t, repo, "Low Priority", true, 1)
	createTestProduct(t, repo, "High Priority", true, 100)

	products, _, err := repo.List(CatalogListFilter{Page: 1, PageSize: 10})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("list len want 2 got %d", len(products))
	}
	if products[0].Name != "High Priority" {
		t.Fatalf("first product want High Priority got %s", products[0].Name)
	}
}

func TestProductGetActiveByIDSkipsUnlisted(t *testing.T) {
	repo, _ := setupProductRepositoryTest(t)
	active := createTestProduct(t, repo, "Listed", true, 0)
	inactive := createTestProduct(t, repo, "Unlisted", false, 0)

	got, err := repo.GetActiveByID(active.ID)
	if err != nil {
		t.Fatalf("get active failed: %v", err)
	}
	if got == nil || got.ID != active.ID {
		t.Fatalf("active product should be returned")
	}

	got, err = repo.GetActiveByID(inactive.ID)
	if err != nil {
		t.Fatalf("get inactive failed: %v", err)
	}
	if got != nil {
		t.Fatalf("inactive product should not be visible")
	}
}

func TestProductDeleteIsSoft(t *testing.T) {
	repo, db := setupProductRepositoryTest(t)
	product := createTestProduct(t, repo, "To Remove", true, 0)

	if err := repo.Delete(product.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	got, err := repo.GetByID(product.ID)
	if err != nil {
		t.Fatalf("get after delete failed: %v", err)
	}
	if got != nil {
		t.Fatalf("deleted product should not be found")
	}

	var count int64
	if err := db.Unscoped().Model(&models.Product{}).Where("id = ?", product.ID).Count(&count).Error; err != nil {
		t.Fatalf("unscoped count failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("soft-deleted row should remain, count=%d", count)
	}
}
