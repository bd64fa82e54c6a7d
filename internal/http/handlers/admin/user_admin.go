package admin

import (
	"errors"

	"github.com/circuitaura/storefront/internal/http/response"
	"github.com/circuitaura/storefront/internal/models"
	"github.com/circuitaura/storefront/internal/repository"
	"github.com/circuitaura/storefront/internal/service"

	"github.com/gin-gonic/gin"
)

func serializeAdminUser(user *models.User) gin.H {
	return gin.H{
		"id":            user.ID,
		"name":          user.Name,
		"email":         user.Email,
		"role":          user.Role,
		"status":        user.Status,
		"theme":         user.Theme,
		"locale":        user.Locale,
		"last_login_at": user.LastLoginAt,
		"created_at":    user.CreatedAt,
	}
}

func respondUserAdminError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrSelfChangeNotAllowed):
		respondError(c, response.CodeBadRequest, "error.self_change_forbidden", nil)
	case errors.Is(err, service.ErrRoleInvalid):
		respondError(c, response.CodeBadRequest, "error.role_invalid", nil)
	case errors.Is(err, service.ErrUserStatusInvalid):
		respondError(c, response.CodeBadRequest, "error.user_status_invalid", nil)
	case errors.Is(err, service.ErrNotFound):
		respondError(c, response.CodeNotFound, "error.user_not_found", nil)
	default:
		respondError(c, response.CodeInternal, "error.internal", err)
	}
}

// AdminListUsers lists accounts, filterable by role, status and keyword.
func (h *Handler) AdminListUsers(c *gin.Context) {
	page, pageSize := parsePagination(c)
	users, total, err := h.UserAdminService.List(repository.UserListFilter{
		Page:     page,
		PageSize: pageSize,
		Keyword:  c.Query("search"),
		Role:     c.Query("role"),
		Status:   c.Query("status"),
	})
	if err != nil {
		respondUserAdminError(c, err)
		return
	}

	items := make([]gin.H, 0, len(users))
	for i := range users {
		items = append(items, serializeAdminUser(&users[i]))
	}
	respondPage(c, items, page, pageSize, total)
}

// AdminGetUser returns one account.
func (h *Handler) AdminGetUser(c *gin.Context) {
	id, ok := parsePathID(c)
	if !ok {
		return
	}

	user, err := h.UserAdminService.GetByID(id)
	if err != nil {
		respondUserAdminError(c, err)
		return
	}
	response.Success(c, gin.H{"user": serializeAdminUser(user)})
}

// AdminUpdateUserStatusRequest enables or disables an account.
type AdminUpdateUserStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// AdminUpdateUserStatus flips an account between active and disabled.
func (h *Handler) AdminUpdateUserStatus(c *gin.Context) {
	adminID, ok := getAdminID(c)
	if !ok {
		return
	}
	id, ok := parsePathID(c)
	if !ok {
		return
	}

	var req AdminUpdateUserStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	user, err := h.UserAdminService.SetStatus(adminID, id, req.Status)
	if err != nil {
		respondUserAdminError(c, err)
		return
	}
	response.Success(c, gin.H{"user": serializeAdminUser(user)})
}

// AdminUpdateUserRoleRequest carries the target role.
type AdminUpdateUserRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

// AdminUpdateUserRole changes an account's role.
func (h *Handler) AdminUpdateUserRole(c *gin.Context) {
	adminID, ok := getAdminID(c)
	if !ok {
		return
	}
	id, ok := parsePathID(c)
	if !ok {
		return
	}

	var req AdminUpdateUserRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	user, err := h.UserAdminService.SetRole(adminID, id, req.Role)
	if err != nil {
		respondUserAdminError(c, err)
		return
	}
	response.Success(c, gin.H{"user": serializeAdminUser(user)})
}
