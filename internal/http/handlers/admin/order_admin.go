package admin

import (
	"errors"
	"strconv"
	"strings"

	"github.com/circuitaura/storefront/internal/http/response"
	"github.com/circuitaura/storefront/internal/models"
	"github.com/circuitaura/storefront/internal/repository"
	"github.com/circuitaura/storefront/internal/service"

	"github.com/gin-gonic/gin"
)

// AdminOrderListItem decorates an order with its owner's account fields.
type AdminOrderListItem struct {
	models.Order
	UserEmail string `json:"user_email,omitempty"`
	UserName  string `json:"user_name,omitempty"`
}

func (h *Handler) decorateOrders(orders []models.Order) []AdminOrderListItem {
	userIDs := make([]uint, 0, len(orders))
	seen := make(map[uint]bool, len(orders))
	for _, order := range orders {
		if order.UserID != 0 && !seen[order.UserID] {
			seen[order.UserID] = true
			userIDs = append(userIDs, order.UserID)
		}
	}

	usersByID := make(map[uint]models.User, len(userIDs))
	if len(userIDs) > 0 {
		users, err := h.UserRepo.ListByIDs(userIDs)
		if err == nil {
			for _, user := range users {
				usersByID[user.ID] = user
			}
		}
	}

	items := make([]AdminOrderListItem, 0, len(orders))
	for _, order := range orders {
		item := AdminOrderListItem{Order: order}
		if user, ok := usersByID[order.UserID]; ok {
			item.UserEmail = user.Email
			item.UserName = user.Name
		}
		items = append(items, item)
	}
	return items
}

// AdminListOrders lists all orders with owner emails, filterable by
// status, user, order number and date range.
func (h *Handler) AdminListOrders(c *gin.Context) {
	page, pageSize := parsePagination(c)

	createdFrom, err := parseTimeNullable(c.Query("created_from"))
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	createdTo, err := parseTimeNullable(c.Query("created_to"))
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	var userID uint
	if raw := strings.TrimSpace(c.Query("user_id")); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			respondError(c, response.CodeBadRequest, "error.bad_request", err)
			return
		}
		userID = uint(parsed)
	}

	orders, total, err := h.OrderService.ListAdmin(repository.OrderListFilter{
		Page:        page,
		PageSize:    pageSize,
		UserID:      userID,
		Status:      strings.TrimSpace(c.Query("status")),
		OrderNo:     strings.TrimSpace(c.Query("order_no")),
		CreatedFrom: createdFrom,
		CreatedTo:   createdTo,
	})
	if err != nil {
		respondError(c, response.CodeInternal, "error.order_fetch_failed", err)
		return
	}

	respondPage(c, h.decorateOrders(orders), page, pageSize, total)
}

// AdminGetOrder returns one order with line snapshots and owner account.
func (h *Handler) AdminGetOrder(c *gin.Context) {
	id, ok := parsePathID(c)
	if !ok {
		return
	}

	order, err := h.OrderService.GetAdminByID(id)
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			respondError(c, response.CodeNotFound, "error.order_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.order_fetch_failed", err)
		return
	}

	items := h.decorateOrders([]models.Order{*order})
	response.Success(c, gin.H{"order": items[0]})
}

// AdminUpdateOrderStatusRequest moves an order along its lifecycle.
type AdminUpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// AdminUpdateOrderStatus applies a lifecycle transition. Illegal jumps are
// rejected; the status email goes out on success.
func (h *Handler) AdminUpdateOrderStatus(c *gin.Context) {
	id, ok := parsePathID(c)
	if !ok {
		return
	}

	var req AdminUpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	order, err := h.OrderService.UpdateOrderStatus(id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOrderNotFound):
			respondError(c, response.CodeNotFound, "error.order_not_found", nil)
		case errors.Is(err, service.ErrOrderStatusInvalid):
			respondError(c, response.CodeBadRequest, "error.order_status_invalid", nil)
		default:
			respondError(c, response.CodeInternal, "error.order_update_failed", err)
		}
		return
	}

	response.Success(c, gin.H{"order": order})
}
