package service

import (
	"strings"

	"github.com/circuitaura/storefront/internal/models"
	"github.com/circuitaura/storefront/internal/repository"

	"github.com/shopspring/decimal"
)

// ProductService handles the component catalog.
type ProductService struct {
	repo repository.ProductRepository
}

// NewProductService creates the product service.
func NewProductService(repo repository.ProductRepository) *ProductService {
	return &ProductService{repo: repo}
}

// ProductInput is the create/update payload.
type ProductInput struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Features    []string
	Included    []string
	ImageURL    string
	IsActive    *bool
	SortOrder   int
}

// ListPublic returns active products for the storefront.
func (s *ProductService) ListPublic(search string, page, pageSize int) ([]models.Product, int64, error) {
	filter := repository.CatalogListFilter{
		Page:       page,
		PageSize:   pageSize,
		Search:     search,
		OnlyActive: true,
	}
	return s.repo.List(filter)
}

// GetPublicByID returns one active product.
func (s *ProductService) GetPublicByID(id uint) (*models.Product, error) {
	product, err := s.repo.GetActiveByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrNotFound
	}
	return product, nil
}

// ListAdmin returns all products for the console, listed or not.
func (s *ProductService) ListAdmin(search string, page, pageSize int) ([]models.Product, int64, error) {
	filter := repository.CatalogListFilter{
		Page:       page,
		PageSize:   pageSize,
		Search:     search,
		OnlyActive: false,
	}
	return s.repo.List(filter)
}

// GetAdminByID returns one product regardless of listing state.
func (s *ProductService) GetAdminByID(id uint) (*models.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrNotFound
	}
	return product, nil
}

// Create adds a product.
func (s *ProductService) Create(input ProductInput) (*models.Product, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrItemNotAvailable
	}
	price := input.Price.Round(2)
	if price.LessThan(decimal.Zero) {
		return nil, ErrPriceInvalid
	}

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	product := &models.Product{
		Name:        name,
		Description: strings.TrimSpace(input.Description),
		Price:       models.NewMoneyFromDecimal(price),
		Features:    models.StringArray(input.Features),
		Included:    models.StringArray(input.Included),
		ImageURL:    strings.TrimSpace(input.ImageURL),
		IsActive:    isActive,
		SortOrder:   input.SortOrder,
	}
	if err := s.repo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

// Update replaces a product's editable fields.
func (s *ProductService) Update(id uint, input ProductInput) (*models.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrNotFound
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrItemNotAvailable
	}
	price := input.Price.Round(2)
	if price.LessThan(decimal.Zero) {
		return nil, ErrPriceInvalid
	}

	product.Name = name
	product.Description = strings.TrimSpace(input.Description)
	product.Price = models.NewMoneyFromDecimal(price)
	product.Features = models.StringArray(input.Features)
	product.Included = models.StringArray(input.Included)
	product.ImageURL = strings.TrimSpace(input.ImageURL)
	if input.IsActive != nil {
		product.IsActive = *input.IsActive
	}
	product.SortOrder = input.SortOrder

	if err := s.repo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

// Delete removes a product from the catalog.
func (s *ProductService) Delete(id uint) error {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return ErrNotFound
	}
	return s.repo.Delete(id)
}
