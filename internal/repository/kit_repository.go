package repository

import (
	"errors"

	"github.com/circuitaura/storefront/internal/models"

	"gorm.io/gorm"
)

// KitRepository is the kit data access interface.
type KitRepository interface {
	List(filter CatalogListFilter) ([]models.Kit, int64, error)
	GetByID(id uint) (*models.Kit, error)
	GetActiveByID(id uint) (*models.Kit, error)
	Create(kit *models.Kit) error
	Update(kit *models.Kit) error
	Delete(id uint) error
}

// GormKitRepository is the GORM implementation.
type GormKitRepository struct {
	db *gorm.DB
}

// NewKitRepository creates a kit repository.
func NewKitRepository(db *gorm.DB) *GormKitRepository {
	return &GormKitRepository{db: db}
}

// List returns kits matching the filter.
func (r *GormKitRepository) List(filter CatalogListFilter) ([]models.Kit, int64, error) {
	query := r.db.Model(&models.Kit{})

	if filter.OnlyActive {
		query = query.Where("is_active = ?", true)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		op := likeOperator(r.db)
		query = query.Where("name "+op+" ? OR description "+op+" ?", like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	var kits []models.Kit
	if err := query.Order("sort_order DESC, id DESC").Find(&kits).Error; err != nil {
		return nil, 0, err
	}
	return kits, total, nil
}

// GetByID fetches a kit by ID.
func (r *GormKitRepository) GetByID(id uint) (*models.Kit, error) {
	var kit models.Kit
	if err := r.db.First(&kit, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &kit, nil
}

// GetActiveByID fetches a listed kit by ID.
func (r *GormKitRepository) GetActiveByID(id uint) (*models.Kit, error) {
	var kit models.Kit
	if err := r.db.Where("id = ? AND is_active = ?", id, true).First(&kit).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &kit, nil
}

// Create inserts a kit.
func (r *GormKitRepository) Create(kit *models.Kit) error {
	return r.db.Create(kit).Error
}

// Update saves a kit.
func (r *GormKitRepository) Update(kit *models.Kit) error {
	return r.db.Save(kit).Error
}

// Delete soft-deletes a kit.
func (r *GormKitRepository) Delete(id uint) error {
	return r.db.Delete(&models.Kit{}, id).Error
}
