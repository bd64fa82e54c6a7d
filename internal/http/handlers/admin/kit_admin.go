package admin

import (
	"errors"

	"github.com/circuitaura/storefront/internal/http/response"
	"github.com/circuitaura/storefront/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// KitUpsertRequest is the create/update body for a kit.
type KitUpsertRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Features    []string `json:"features"`
	Included    []string `json:"included"`
	ImageURL    string   `json:"image_url"`
	PDFURL      string   `json:"pdf_url"`
	IsActive    *bool    `json:"is_active"`
	SortOrder   int      `json:"sort_order"`
}

func (r KitUpsertRequest) toServiceInput() service.KitInput {
	return service.KitInput{
		Name:        r.Name,
		Description: r.Description,
		Price:       decimal.NewFromFloat(r.Price),
		Features:    r.Features,
		Included:    r.Included,
		ImageURL:    r.ImageURL,
		PDFURL:      r.PDFURL,
		IsActive:    r.IsActive,
		SortOrder:   r.SortOrder,
	}
}

// AdminListKits lists kits including delisted ones.
func (h *Handler) AdminListKits(c *gin.Context) {
	page, pageSize := parsePagination(c)
	kits, total, err := h.KitService.ListAdmin(c.Query("search"), page, pageSize)
	if err != nil {
		respondError(c, response.CodeInternal, "error.catalog_fetch_failed", err)
		return
	}
	respondPage(c, kits, page, pageSize, total)
}

// AdminGetKit returns one kit regardless of listing state.
func (h *Handler) AdminGetKit(c *gin.Context) {
	id, ok := parsePathID(c)
	if !ok {
		return
	}

	kit, err := h.KitService.GetAdminByID(id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "error.kit_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.catalog_fetch_failed", err)
		return
	}
	response.Success(c, gin.H{"kit": kit})
}

// AdminCreateKit creates a kit.
func (h *Handler) AdminCreateKit(c *gin.Context) {
	var req KitUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	kit, err := h.KitService.Create(req.toServiceInput())
	if err != nil {
		respondCatalogSaveError(c, err, "error.kit_not_found")
		return
	}
	response.Success(c, gin.H{"kit": kit})
}

// AdminUpdateKit updates a kit in place.
func (h *Handler) AdminUpdateKit(c *gin.Context) {
	id, ok := parsePathID(c)
	if !ok {
		return
	}

	var req KitUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	kit, err := h.KitService.Update(id, req.toServiceInput())
	if err != nil {
		respondCatalogSaveError(c, err, "error.kit_not_found")
		return
	}
	response.Success(c, gin.H{"kit": kit})
}

// AdminDeleteKit soft-deletes a kit.
func (h *Handler) AdminDeleteKit(c *gin.Context) {
	id, ok := parsePathID(c)
	if !ok {
		return
	}

	if err := h.KitService.Delete(id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "error.kit_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.catalog_delete_failed", err)
		return
	}
	response.Success(c, gin.H{"deleted": true})
}
