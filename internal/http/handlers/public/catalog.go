package public

import (
	"errors"
	"strconv"

	"github.com/circuitaura/storefront/internal/http/response"
	"github.com/circuitaura/storefront/internal/service"

	"github.com/gin-gonic/gin"
)

func parseCatalogID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return 0, false
	}
	return uint(id), true
}

// ListProducts returns active products, search-filtered and paginated.
func (h *Handler) ListProducts(c *gin.Context) {
	page, pageSize := parsePagination(c)
	products, total, err := h.ProductService.ListPublic(c.Query("search"), page, pageSize)
	if err != nil {
		respondError(c, response.CodeInternal, "error.catalog_fetch_failed", err)
		return
	}

	respondPage(c, products, page, pageSize, total)
}

// GetProduct returns one active product.
func (h *Handler) GetProduct(c *gin.Context) {
	id, ok := parseCatalogID(c)
	if !ok {
		return
	}

	product, err := h.ProductService.GetPublicByID(id)
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

// GetProductEnquiry returns prefilled WhatsApp and mailto links asking
// about one product.
func (h *Handler) GetProductEnquiry(c *gin.Context) {
	id, ok := parseCatalogID(c)
	if !ok {
		return
	}

	product, err := h.ProductService.GetPublicByID(id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "error.product_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.catalog_fetch_failed", err)
		return
	}

	links := h.ContactService.BuildEnquiry(product.Name, product.Price, h.Config.Store.Currency)
	response.Success(c, links)
}

// ListKits returns active kits, search-filtered and paginated.
func (h *Handler) ListKits(c *gin.Context) {
	page, pageSize := parsePagination(c)
	kits, total, err := h.KitService.ListPublic(c.Query("search"), page, pageSize)
	if err != nil {
		respondError(c, response.CodeInternal, "error.catalog_fetch_failed", err)
		return
	}

	respondPage(c, kits, page, pageSize, total)
}

// GetKit returns one active kit.
func (h *Handler) GetKit(c *gin.Context) {
	id, ok := parseCatalogID(c)
	if !ok {
		return
	}

	kit, err := h.KitService.GetPublicByID(id)
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

// GetKitEnquiry returns prefilled WhatsApp and mailto links asking about
// one kit.
func (h *Handler) GetKitEnquiry(c *gin.Context) {
	id, ok := parseCatalogID(c)
	if !ok {
		return
	}

	kit, err := h.KitService.GetPublicByID(id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "error.kit_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.catalog_fetch_failed", err)
		return
	}

	links := h.ContactService.BuildEnquiry(kit.Name, kit.Price, h.Config.Store.Currency)
	response.Success(c, links)
}
