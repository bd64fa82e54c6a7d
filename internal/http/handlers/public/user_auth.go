package public

import (
	"errors"

	"github.com/circuitaura/storefront/internal/constants"
	"github.com/circuitaura/storefront/internal/http/response"
	"github.com/circuitaura/storefront/internal/i18n"
	"github.com/circuitaura/storefront/internal/models"
	"github.com/circuitaura/storefront/internal/service"

	"github.com/gin-gonic/gin"
)

func serializeUser(user *models.User) gin.H {
	return gin.H{
		"id":            user.ID,
		"name":          user.Name,
		"email":         user.Email,
		"role":          user.Role,
		"theme":         user.Theme,
		"locale":        user.Locale,
		"last_login_at": user.LastLoginAt,
	}
}

func respondWeakPassword(c *gin.Context, err error) {
	locale := i18n.ResolveLocale(c)
	if perr, ok := err.(interface {
		Key() string
		Args() []interface{}
	}); ok {
		msg := i18n.Sprintf(locale, perr.Key(), perr.Args()...)
		respondErrorWithMsg(c, response.CodeBadRequest, msg, nil)
		return
	}
	respondError(c, response.CodeBadRequest, "error.weak_password", nil)
}

func (h *Handler) verifyLoginCaptcha(c *gin.Context, payload CaptchaPayloadRequest) bool {
	if h.CaptchaService == nil {
		return true
	}
	captchaErr := h.CaptchaService.Verify(constants.CaptchaSceneLogin, payload.toServicePayload())
	if captchaErr == nil {
		return true
	}
	switch {
	case errors.Is(captchaErr, service.ErrCaptchaRequired):
		respondError(c, response.CodeBadRequest, "error.captcha_required", nil)
	case errors.Is(captchaErr, service.ErrCaptchaInvalid):
		respondError(c, response.CodeBadRequest, "error.captcha_invalid", nil)
	default:
		respondError(c, response.CodeInternal, "error.internal", captchaErr)
	}
	return false
}

// RegisterRequest is the signup body. An empty admin_key registers a
// regular user.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	AdminKey string `json:"admin_key"`
}

// Register creates an account and signs it in. The admin key is compared
// server-side; clients never learn whether one is configured.
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	user, token, expiresAt, err := h.AuthService.Register(service.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		AdminKey: req.AdminKey,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidEmail):
			respondError(c, response.CodeBadRequest, "error.invalid_email", nil)
		case errors.Is(err, service.ErrEmailExists):
			respondError(c, response.CodeBadRequest, "error.email_exists", nil)
		case errors.Is(err, service.ErrAdminKeyInvalid):
			respondError(c, response.CodeBadRequest, "error.admin_key_invalid", nil)
		case errors.Is(err, service.ErrWeakPassword):
			respondWeakPassword(c, err)
		default:
			respondError(c, response.CodeInternal, "error.register_failed", err)
		}
		return
	}

	response.Success(c, gin.H{
		"user":       serializeUser(user),
		"token":      token,
		"expires_at": expiresAt.Format("2006-01-02T15:04:05Z07:00"),
	})
}

// LoginRequest is the sign-in body.
type LoginRequest struct {
	Email          string                `json:"email" binding:"required"`
	Password       string                `json:"password" binding:"required"`
	RememberMe     bool                  `json:"remember_me"`
	CaptchaPayload CaptchaPayloadRequest `json:"captcha_payload"`
}

// Login signs a user in and switches their stored theme to dark.
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	if !h.verifyLoginCaptcha(c, req.CaptchaPayload) {
		return
	}

	user, token, expiresAt, err := h.AuthService.Login(req.Email, req.Password, req.RememberMe)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			respondError(c, response.CodeUnauthorized, "error.invalid_credentials", nil)
		case errors.Is(err, service.ErrUserDisabled):
			respondError(c, response.CodeUnauthorized, "error.user_disabled", nil)
		default:
			respondError(c, response.CodeInternal, "error.login_failed", err)
		}
		return
	}

	response.Success(c, gin.H{
		"user":       serializeUser(user),
		"token":      token,
		"expires_at": expiresAt.Format("2006-01-02T15:04:05Z07:00"),
	})
}

// Logout resets the stored theme to light. Safe to call repeatedly.
func (h *Handler) Logout(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	if err := h.AuthService.Logout(userID); err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}

	response.Success(c, gin.H{"logged_out": true})
}

// GetProfile returns the signed-in account.
func (h *Handler) GetProfile(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	user, err := h.AuthService.GetUserByID(userID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "error.user_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}

	response.Success(c, gin.H{"user": serializeUser(user)})
}

// UpdateProfileRequest carries partial profile updates; nil fields are
// left unchanged.
type UpdateProfileRequest struct {
	Name   *string `json:"name"`
	Locale *string `json:"locale"`
}

// UpdateProfile updates name and notification locale.
func (h *Handler) UpdateProfile(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	user, err := h.AuthService.UpdateProfile(userID, req.Name, req.Locale)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProfileEmpty):
			respondError(c, response.CodeBadRequest, "error.name_required", nil)
		case errors.Is(err, service.ErrNotFound):
			respondError(c, response.CodeNotFound, "error.user_not_found", nil)
		default:
			respondError(c, response.CodeInternal, "error.profile_update_failed", err)
		}
		return
	}

	response.Success(c, gin.H{"user": serializeUser(user)})
}

// UpdateThemeRequest selects the stored theme.
type UpdateThemeRequest struct {
	Theme string `json:"theme" binding:"required"`
}

// UpdateTheme persists the light/dark preference.
func (h *Handler) UpdateTheme(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	var req UpdateThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	user, err := h.AuthService.UpdateTheme(userID, req.Theme)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrThemeInvalid):
			respondError(c, response.CodeBadRequest, "error.theme_invalid", nil)
		case errors.Is(err, service.ErrNotFound):
			respondError(c, response.CodeNotFound, "error.user_not_found", nil)
		default:
			respondError(c, response.CodeInternal, "error.profile_update_failed", err)
		}
		return
	}

	response.Success(c, gin.H{"theme": user.Theme})
}

// ChangePasswordRequest carries a password rotation.
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

// ChangePassword verifies the old password then revokes all sessions.
func (h *Handler) ChangePassword(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	if err := h.AuthService.ChangePassword(userID, req.OldPassword, req.NewPassword); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidPassword):
			respondError(c, response.CodeBadRequest, "error.old_password_incorrect", nil)
		case errors.Is(err, service.ErrWeakPassword):
			respondWeakPassword(c, err)
		case errors.Is(err, service.ErrNotFound):
			respondError(c, response.CodeNotFound, "error.user_not_found", nil)
		default:
			respondError(c, response.CodeInternal, "error.internal", err)
		}
		return
	}

	response.Success(c, gin.H{"changed": true})
}

// ForgotPasswordRequest asks for a reset code by email.
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required"`
}

// ForgotPassword emails a reset code to an existing account.
func (h *Handler) ForgotPassword(c *gin.Context) {
	var req ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	locale := i18n.ResolveLocale(c)
	if err := h.AuthService.SendResetCode(req.Email, locale); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidEmail):
			respondError(c, response.CodeBadRequest, "error.invalid_email", nil)
		case errors.Is(err, service.ErrNotFound):
			respondError(c, response.CodeNotFound, "error.user_not_found", nil)
		case errors.Is(err, service.ErrVerifyCodeTooFrequent):
			respondError(c, response.CodeTooManyRequests, "error.verify_code_too_frequent", nil)
		case errors.Is(err, service.ErrEmailRecipientRejected):
			respondError(c, response.CodeBadRequest, "error.invalid_email", nil)
		case errors.Is(err, service.ErrEmailServiceDisabled),
			errors.Is(err, service.ErrEmailServiceNotConfigured):
			respondError(c, response.CodeInternal, "error.email_service_disabled", err)
		default:
			respondError(c, response.CodeInternal, "error.verify_code_send_failed", err)
		}
		return
	}

	response.Success(c, gin.H{"sent": true})
}

// ResetPasswordRequest redeems a reset code for a new password.
type ResetPasswordRequest struct {
	Email       string `json:"email" binding:"required"`
	Code        string `json:"code" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

// ResetPassword consumes a reset code and revokes all sessions.
func (h *Handler) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	if err := h.AuthService.ResetPassword(req.Email, req.Code, req.NewPassword); err != nil {
		switch {
		case errors.Is(err, service.ErrVerifyCodeInvalid),
			errors.Is(err, service.ErrVerifyCodeAttemptsExceeded):
			respondError(c, response.CodeBadRequest, "error.verify_code_invalid", nil)
		case errors.Is(err, service.ErrVerifyCodeExpired):
			respondError(c, response.CodeBadRequest, "error.verify_code_expired", nil)
		case errors.Is(err, service.ErrWeakPassword):
			respondWeakPassword(c, err)
		case errors.Is(err, service.ErrNotFound):
			respondError(c, response.CodeNotFound, "error.user_not_found", nil)
		default:
			respondError(c, response.CodeInternal, "error.internal", err)
		}
		return
	}

	response.Success(c, gin.H{"reset": true})
}
