package public

import (
	"errors"

	"github.com/circuitaura/storefront/internal/http/response"
	"github.com/circuitaura/storefront/internal/service"

	"github.com/gin-gonic/gin"
)

// ListResources returns learning-hub entries, optionally filtered by type.
func (h *Handler) ListResources(c *gin.Context) {
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

// GetResource returns one learning-hub entry.
func (h *Handler) GetResource(c *gin.Context) {
	id, ok := parseCatalogID(c)
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
