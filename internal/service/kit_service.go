package service

import (
	"strings"

	"github.com/circuitaura/storefront/internal/models"
	"github.com/circuitaura/storefront/internal/repository"

	"github.com/shopspring/decimal"
)

// KitService handles the project-kit catalog.
type KitService struct {
	repo repository.KitRepository
}

// NewKitService creates the kit service.
func NewKitService(repo repository.KitRepository) *KitService {
	return &KitService{repo: repo}
}

// KitInput is the create/update payload.
type KitInput struct {
	Name        string
	Description string
	Price       decimal.Decimal
	Features    []string
	Included    []string
	ImageURL    string
	PDFURL      string
	IsActive    *bool
	SortOrder   int
}

// ListPublic returns active kits for the storefront.
func (s *KitService) ListPublic(search string, page, pageSize int) ([]models.Kit, int64, error) {
	filter := repository.CatalogListFilter{
		Page:       page,
		PageSize:   pageSize,
		Search:     search,
		OnlyActive: true,
	}
	return s.repo.List(filter)
}

// GetPublicByID returns one active kit.
func (s *KitService) GetPublicByID(id uint) (*models.Kit, error) {
	kit, err := s.repo.GetActiveByID(id)
	if err != nil {
		return nil, err
	}
	if kit == nil {
		return nil, ErrNotFound
	}
	return kit, nil
}

// ListAdmin returns all kits for the console.
func (s *KitService) ListAdmin(search string, page, pageSize int) ([]models.Kit, int64, error) {
	filter := repository.CatalogListFilter{
		Page:       page,
		PageSize:   pageSize,
		Search:     search,
		OnlyActive: false,
	}
	return s.repo.List(filter)
}

// GetAdminByID returns one kit regardless of listing state.
func (s *KitService) GetAdminByID(id uint) (*models.Kit, error) {
	kit, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if kit == nil {
		return nil, ErrNotFound
	}
	return kit, nil
}

// Create adds a kit.
func (s *KitService) Create(input KitInput) (*models.Kit, error) {
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

	kit := &models.Kit{
		Name:        name,
		Description: strings.TrimSpace(input.Description),
		Price:       models.NewMoneyFromDecimal(price),
		Features:    models.StringArray(input.Features),
		Included:    models.StringArray(input.Included),
		ImageURL:    strings.TrimSpace(input.ImageURL),
		PDFURL:      strings.TrimSpace(input.PDFURL),
		IsActive:    isActive,
		SortOrder:   input.SortOrder,
	}
	if err := s.repo.Create(kit); err != nil {
		return nil, err
	}
	return kit, nil
}

// Update replaces a kit's editable fields.
func (s *KitService) Update(id uint, input KitInput) (*models.Kit, error) {
	kit, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if kit == nil {
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

	kit.Name = name
	kit.Description = strings.TrimSpace(input.Description)
	kit.Price = models.NewMoneyFromDecimal(price)
	kit.Features = models.StringArray(input.Features)
	kit.Included = models.StringArray(input.Included)
	kit.ImageURL = strings.TrimSpace(input.ImageURL)
	kit.PDFURL = strings.TrimSpace(input.PDFURL)
	if input.IsActive != nil {
		kit.IsActive = *input.IsActive
	}
	kit.SortOrder = input.SortOrder

	if err := s.repo.Update(kit); err != nil {
		return nil, err
	}
	return kit, nil
}

// Delete removes a kit from the catalog.
func (s *KitService) Delete(id uint) error {
	kit, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if kit == nil {
		return ErrNotFound
	}
	return s.repo.Delete(id)
}
