package admin

import (
	"errors"

	"github.com/circuitaura/storefront/internal/http/response"
	"github.com/circuitaura/storefront/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// ProductUpsertRequest is the create/update body for a product.
type ProductUpsertRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Features    []string `json:"features"`
	Included    []string `json:"included"`
	ImageURL    string   `json:"image_url"`
	IsActive    *bool    `json:"is_active"`
	SortOrder   int      `json:"sort_order"`
}

func (r ProductUpsertRequest) toServiceInput() service.ProductInput {
	return service.ProductInput{
		Name:        r.Name,
		Description: r.Description,
		Price:       decimal.NewFromFloat(r.Price),
		Features:    r.Features,
		Included:    r.Included,
		ImageURL:    r.ImageURL,
		IsActive:    r.IsActive,
		SortOrder:   r.SortOrder,
	}
}

func respondCatalogSaveError(c *gin.Context, err error, notFoundKey string) {
	switch {
	case errors.Is(err, service.ErrPriceInvalid):
		respondError(c, response.CodeBadRequest, "error.price_invalid", nil)
	case errors.Is(err, service.ErrItemNotAvailable):
		respondError(c, response.CodeBadRequest, "error.name_required", nil)
	case errors.Is(err, service.ErrNotFound):
		respondError(c, response.CodeNotFound, notFoundKey, nil)
	default:
		respondError(c, response.CodeInternal, "error.catalog_save_failed", err)
	}
}

// AdminListProducts lists products including delisted ones.
func (h *Handler) AdminListProducts(c *gin.Context) {
	page, pageSize := parsePagination(c)
	products, total, err := h.ProductService.ListAdmin(c.Query("search"), page, pageSize)
	if err != nil {
		respondError(c, response.CodeInternal, "error.catalog_fetch_failed", err)
		return
	}
	respondPage(c, products, page, pageSize, total)
}

// AdminGetProduct returns one product regardless of listing state.
func (h *Handler) AdminGetProduct(c *gin.Context) {
	id, ok := parsePathID(c)
	if !ok {
		return
	}

	product, err := h.ProductService.GetAdminByID(id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "error.product_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.catalog_fetch_failed", err)
		return
	}
	response.Success(c, gin.H{"product": product})
}

// AdminCreateProduct creates a product.
func (h *Handler) AdminCreateProduct(c *gin.Context) {
	var req ProductUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	product, err := h.ProductService.Create(req.toServiceInput())
	if err != nil {
		respondCatalogSaveError(c, err, "error.product_not_found")
		return
	}
	response.Success(c, gin.H{"product": product})
}

// AdminUpdateProduct updates a product in place.
func (h *Handler) AdminUpdateProduct(c *gin.Context) {
	id, ok := parsePathID(c)
	if !ok {
		return
	}

	var req ProductUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	product, err := h.ProductService.Update(id, req.toServiceInput())
	if err != nil {
		respondCatalogSaveError(c, err, "error.product_not_found")
		return
	}
	response.Success(c, gin.H{"product": product})
}

// AdminDeleteProduct soft-deletes a product. Existing order snapshots are
// untouched.
func (h *Handler) AdminDeleteProduct(c *gin.Context) {
	id, ok := parsePathID(c)
	if !ok {
		return
	}

	if err := h.ProductService.Delete(id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "error.product_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.catalog_delete_failed", err)
		return
	}
	response.Success(c, gin.H{"deleted": true})
}
