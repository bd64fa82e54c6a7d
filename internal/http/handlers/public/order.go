package public

import (
	"strconv"

	"github.com/circuitaura/storefront/internal/http/response"
	"github.com/circuitaura/storefront/internal/service"

	"github.com/gin-gonic/gin"
)

func parseOrderID(c *gin.Context) (uint, bool) {
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || orderID == 0 {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return 0, false
	}
	return uint(orderID), true
}

// CreateOrderRequest is the checkout form. Payment is cash on delivery.
type CreateOrderRequest struct {
	ReceiverName    string `json:"receiver_name" binding:"required"`
	ReceiverPhone   string `json:"receiver_phone" binding:"required"`
	ReceiverPincode string `json:"receiver_pincode" binding:"required"`
	ReceiverCity    string `json:"receiver_city" binding:"required"`
	ReceiverAddress string `json:"receiver_address" binding:"required"`
}

// CreateOrder places a COD order from the current cart.
func (h *Handler) CreateOrder(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	order, err := h.OrderService.PlaceOrder(userID, service.ShippingAddressInput{
		ReceiverName:    req.ReceiverName,
		ReceiverPhone:   req.ReceiverPhone,
		ReceiverPincode: req.ReceiverPincode,
		ReceiverCity:    req.ReceiverCity,
		ReceiverAddress: req.ReceiverAddress,
	})
	if err != nil {
		respondWithMappedError(c, err, orderCreateErrorRules, response.CodeInternal, "error.order_create_failed")
		return
	}

	response.Success(c, gin.H{"order": order})
}

// ListOrders returns the signed-in user's orders, newest first.
func (h *Handler) ListOrders(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	page, pageSize := parsePagination(c)
	orders, total, err := h.OrderService.ListByUser(userID, c.Query("status"), page, pageSize)
	if err != nil {
		respondError(c, response.CodeInternal, "error.order_fetch_failed", err)
		return
	}

	respondPage(c, orders, page, pageSize, total)
}

// GetOrder returns one order with its line snapshots.
func (h *Handler) GetOrder(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	orderID, ok := parseOrderID(c)
	if !ok {
		return
	}

	order, err := h.OrderService.GetByUser(orderID, userID)
	if err != nil {
		respondWithMappedError(c, err, orderLifecycleErrorRules, response.CodeInternal, "error.order_fetch_failed")
		return
	}

	response.Success(c, gin.H{"order": order})
}

// CancelOrder cancels a pending order owned by the caller.
func (h *Handler) CancelOrder(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	orderID, ok := parseOrderID(c)
	if !ok {
		return
	}

	order, err := h.OrderService.CancelOrder(orderID, userID)
	if err != nil {
		respondWithMappedError(c, err, orderLifecycleErrorRules, response.CodeInternal, "error.order_update_failed")
		return
	}

	response.Success(c, gin.H{"order": order})
}

// DeleteOrder removes a cancelled order from the caller's history.
func (h *Handler) DeleteOrder(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	orderID, ok := parseOrderID(c)
	if !ok {
		return
	}

	if err := h.OrderService.DeleteOrder(orderID, userID); err != nil {
		respondWithMappedError(c, err, orderLifecycleErrorRules, response.CodeInternal, "error.order_update_failed")
		return
	}

	response.Success(c, gin.H{"deleted": true})
}
