package service

import (
	"strings"

	"github.com/circuitaura/storefront/internal/constants"
	"github.com/circuitaura/storefront/internal/models"
	"github.com/circuitaura/storefront/internal/repository"
)

// ResourceService handles learning-hub entries.
type ResourceService struct {
	repo repository.ResourceRepository
}

// NewResourceService creates the resource service.
func NewResourceService(repo repository.ResourceRepository) *ResourceService {
	return &ResourceService{repo: repo}
}

// ResourceInput is the create/update payload.
type ResourceInput struct {
	ResourceType string
	Title        string
	Description  string
	ReadTime     string
	FileURL      string
	VideoURL     string
	PDFURL       string
}

// List returns resources, optionally filtered by type.
func (s *ResourceService) List(resourceType string, page, pageSize int) ([]models.Resource, int64, error) {
	normalized := strings.ToLower(strings.TrimSpace(resourceType))
	if normalized != "" && !isResourceTypeSupported(normalized) {
		return nil, 0, ErrResourceTypeInvalid
	}
	filter := repository.ResourceListFilter{
		Page:     page,
		PageSize: pageSize,
		Type:     normalized,
	}
	return s.repo.List(filter)
}

// GetByID returns one resource.
func (s *ResourceService) GetByID(id uint) (*models.Resource, error) {
	resource, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if resource == nil {
		return nil, ErrNotFound
	}
	return resource, nil
}

// Create adds a resource.
func (s *ResourceService) Create(input ResourceInput) (*models.Resource, error) {
	normalized := strings.ToLower(strings.TrimSpace(input.ResourceType))
	if !isResourceTypeSupported(normalized) {
		return nil, ErrResourceTypeInvalid
	}
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrNotFound
	}

	resource := &models.Resource{
		ResourceType: normalized,
		Title:        title,
		Description:  strings.TrimSpace(input.Description),
		ReadTime:     strings.TrimSpace(input.ReadTime),
		FileURL:      strings.TrimSpace(input.FileURL),
		VideoURL:     strings.TrimSpace(input.VideoURL),
		PDFURL:       strings.TrimSpace(input.PDFURL),
	}
	if err := s.repo.Create(resource); err != nil {
		return nil, err
	}
	return resource, nil
}

// Update replaces a resource's editable fields.
func (s *ResourceService) Update(id uint, input ResourceInput) (*models.Resource, error) {
	resource, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if resource == nil {
		return nil, ErrNotFound
	}

	normalized := strings.ToLower(strings.TrimSpace(input.ResourceType))
	if !isResourceTypeSupported(normalized) {
		return nil, ErrResourceTypeInvalid
	}
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrNotFound
	}

	resource.ResourceType = normalized
	resource.Title = title
	resource.Description = strings.TrimSpace(input.Description)
	resource.ReadTime = strings.TrimSpace(input.ReadTime)
	resource.FileURL = strings.TrimSpace(input.FileURL)
	resource.VideoURL = strings.TrimSpace(input.VideoURL)
	resource.PDFURL = strings.TrimSpace(input.PDFURL)

	if err := s.repo.Update(resource); err != nil {
		return nil, err
	}
	return resource, nil
}

// Delete removes a resource.
func (s *ResourceService) Delete(id uint) error {
	resource, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if resource == nil {
		return ErrNotFound
	}
	return s.repo.Delete(id)
}

func isResourceTypeSupported(resourceType string) bool {
	switch resourceType {
	case constants.ResourceTypeTutorial, constants.ResourceTypeVideo, constants.ResourceTypeDownload:
		return true
	default:
		return false
	}
}
