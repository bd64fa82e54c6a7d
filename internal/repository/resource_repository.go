package repository

import (
	"errors"

	"github.com/circuitaura/storefront/internal/models"

	"gorm.io/gorm"
)

// ResourceRepository is the learning-hub data access interface.
type ResourceRepository interface {
	List(filter ResourceListFilter) ([]models.Resource, int64, error)
	GetByID(id uint) (*models.Resource, error)
	Create(resource *models.Resource) error
	Update(resource *models.Resource) error
	Delete(id uint) error
}

// GormResourceRepository is the GORM implementation.
type GormResourceRepository struct {
	db *gorm.DB
}

// NewResourceRepository creates a resource repository.
func NewResourceRepository(db *gorm.DB) *GormResourceRepository {
	return &GormResourceRepository{db: db}
}

// List returns resources matching the filter.
func (r *GormResourceRepository) List(filter ResourceListFilter) ([]models.Resource, int64, error) {
	query := r.db.Model(&models.Resource{})

	if filter.Type != "" {
		query = query.Where("resource_type = ?", filter.Type)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	var resources []models.Resource
	if err := query.Order("id DESC").Find(&resources).Error; err != nil {
		return nil, 0, err
	}
	return resources, total, nil
}

// GetByID fetches a resource by ID.
func (r *GormResourceRepository) GetByID(id uint) (*models.Resource, error) {
	var resource models.Resource
	if err := r.db.First(&resource, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &resource, nil
}

// Create inserts a resource.
func (r *GormResourceRepository) Create(resource *models.Resource) error {
	return r.db.Create(resource).Error
}

// Update saves a resource.
func (r *GormResourceRepository) Update(resource *models.Resource) error {
	return r.db.Save(resource).Error
}

// Delete soft-deletes a resource.
func (r *GormResourceRepository) Delete(id uint) error {
	return r.db.Delete(&models.Resource{}, id).Error
}
