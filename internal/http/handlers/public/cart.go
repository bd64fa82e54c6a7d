package public

import (
	"strconv"

	"github.com/circuitaura/storefront/internal/http/response"

	"github.com/gin-gonic/gin"
)

// GetCart returns the hydrated cart with totals. Delisted items have
// already been dropped by the service.
func (h *Handler) GetCart(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	summary, err := h.CartService.GetCart(userID)
	if err != nil {
		respondError(c, response.CodeInternal, "error.cart_fetch_failed", err)
		return
	}

	response.Success(c, summary)
}

// AddCartItemRequest adds quantity to a cart line, merging with any
// existing line for the same item.
type AddCartItemRequest struct {
	ItemID   uint   `json:"item_id" binding:"required"`
	ItemKind string `json:"item_kind" binding:"required"`
	Quantity int    `json:"quantity"`
}

// AddCartItem adds an item to the cart. Omitted quantity means one.
func (h *Handler) AddCartItem(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	if err := h.CartService.AddItem(userID, req.ItemID, req.ItemKind, req.Quantity); err != nil {
		respondWithMappedError(c, err, cartErrorRules, response.CodeInternal, "error.cart_update_failed")
		return
	}

	summary, err := h.CartService.GetCart(userID)
	if err != nil {
		respondError(c, response.CodeInternal, "error.cart_fetch_failed", err)
		return
	}
	response.Success(c, summary)
}

// UpdateCartItemRequest replaces a line's quantity. Zero or less removes
// the line.
type UpdateCartItemRequest struct {
	ItemID   uint   `json:"item_id" binding:"required"`
	ItemKind string `json:"item_kind" binding:"required"`
	Quantity int    `json:"quantity"`
}

// UpdateCartItem sets a cart line's quantity outright.
func (h *Handler) UpdateCartItem(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	if err := h.CartService.SetQuantity(userID, req.ItemID, req.ItemKind, req.Quantity); err != nil {
		respondWithMappedError(c, err, cartErrorRules, response.CodeInternal, "error.cart_update_failed")
		return
	}

	summary, err := h.CartService.GetCart(userID)
	if err != nil {
		respondError(c, response.CodeInternal, "error.cart_fetch_failed", err)
		return
	}
	response.Success(c, summary)
}

// RemoveCartItem deletes one line identified by kind and id in the path.
func (h *Handler) RemoveCartItem(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	itemID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || itemID == 0 {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	if err := h.CartService.RemoveItem(userID, uint(itemID), c.Param("kind")); err != nil {
		respondWithMappedError(c, err, cartErrorRules, response.CodeInternal, "error.cart_update_failed")
		return
	}

	summary, err := h.CartService.GetCart(userID)
	if err != nil {
		respondError(c, response.CodeInternal, "error.cart_fetch_failed", err)
		return
	}
	response.Success(c, summary)
}

// ClearCart empties the cart.
func (h *Handler) ClearCart(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	if err := h.CartService.Clear(userID); err != nil {
		respondError(c, response.CodeInternal, "error.cart_update_failed", err)
		return
	}

	response.Success(c, gin.H{"cleared": true})
}
