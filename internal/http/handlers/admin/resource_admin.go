package admin

import (
	"errors"

	"github.com/circuitaura/storefront/internal/http/response"
	"github.com/circuitaura/storefront/internal/service"

	"github.com/gin-gonic/gin"
)

// ResourceUpsertRequest is the create/update body for a learning-hub
// entry.
type ResourceUpsertRequest struct {
	ResourceType string `json:"resource_type" binding:"required"`
	Title        string `json:"title" binding:"required"`
	Description  string `json:"description"`
	ReadTime     string `json:"read_time"`
	FileURL      string `json:"file_url"`
	VideoURL     string `json:"video_url"`
	PDFURL       string `json:"pdf_url"`
}

func (r ResourceUpsertRequest) toServiceInput() service.ResourceInput {
	return service.ResourceInput{
		ResourceType: r.ResourceType,
		Title:        r.Title,
		Description:  r.Description,
		ReadTime:     r.ReadTime,
		FileURL:      r.FileURL,
		VideoURL:     r.VideoURL,
		PDFURL:       r.PDFURL,
	}
}

func respondResourceSaveError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrResourceTypeInvalid):
		respondError(c, response.CodeBadRequest, "error.resource_type_invalid", nil)
	case errors.Is(err, service.ErrNotFound):
		respondError(c, response.CodeNotFound, "error.resource_not_found", nil)
	default:
		respondError(c, response.CodeInternal, "error.catalog_save_failed", err)
	}
}

// AdminListResources lists learning-hub entries for the console.
func (h *Handler) AdminListResources(c *gin.Context) {
	page, pageSize := parsePagination(c)
	resources, total, err := h.ResourceService.List(c.Query("type"), page, pageSize)
	if err != nil {
		if errors.Is(err, service.ErrResourceTypeInvalid) {
			respondError(c, response.CodeBadRequest, "error.resource_type_invalid", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.catalog_fetch_failed", err)
		return
	}
	respondPage(c, resources, page, pageSize, total)
}

// AdminGetResource returns one learning-hub entry.
func (h *Handler) AdminGetResource(c *gin.Context) {
	id, ok := parsePathID(c)
	if !ok {
		return
	}

	resource, err := h.ResourceService.GetByID(id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "error.resource_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.catalog_fetch_failed", err)
		return
	}
	response.Success(c, gin.H{"resource": resource})
}

// AdminCreateResource creates a learning-hub entry.
func (h *Handler) AdminCreateResource(c *gin.Context) {
	var req ResourceUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	resource, err := h.ResourceService.Create(req.toServiceInput())
	if err != nil {
		respondResourceSaveError(c, err)
		return
	}
	response.Success(c, gin.H{"resource": resource})
}

// AdminUpdateResource updates a learning-hub entry.
func (h *Handler) AdminUpdateResource(c *gin.Context) {
	id, ok := parsePathID(c)
	if !ok {
		return
	}

	var req ResourceUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	resource, err := h.ResourceService.Update(id, req.toServiceInput())
	if err != nil {
		respondResourceSaveError(c, err)
		return
	}
	response.Success(c, gin.H{"resource": resource})
}

// AdminDeleteResource removes a learning-hub entry.
func (h *Handler) AdminDeleteResource(c *gin.Context) {
	id, ok := parsePathID(c)
	if !ok {
		return
	}

	if err := h.ResourceService.Delete(id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "error.resource_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.catalog_delete_failed", err)
		return
	}
	response.Success(c, gin.H{"deleted": true})
}
