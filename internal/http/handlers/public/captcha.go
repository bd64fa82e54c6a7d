package public

import (
	"errors"

	"github.com/circuitaura/storefront/internal/constants"
	"github.com/circuitaura/storefront/internal/http/response"
	"github.com/circuitaura/storefront/internal/service"

	"github.com/gin-gonic/gin"
)

// GetCaptchaConfig tells the client which scenes need a captcha.
func (h *Handler) GetCaptchaConfig(c *gin.Context) {
	loginRequired := h.CaptchaService != nil && h.CaptchaService.Enabled(constants.CaptchaSceneLogin)
	response.Success(c, gin.H{
		"provider": h.Config.Captcha.Provider,
		"scenes": gin.H{
			"login": loginRequired,
		},
	})
}

// GetImageCaptcha generates an image challenge.
func (h *Handler) GetImageCaptcha(c *gin.Context) {
	if h.CaptchaService == nil {
		respondError(c, response.CodeInternal, "error.captcha_invalid", service.ErrCaptchaConfigInvalid)
		return
	}

	challenge, err := h.CaptchaService.GenerateImageChallenge()
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCaptchaConfigInvalid):
			respondError(c, response.CodeBadRequest, "error.captcha_invalid", nil)
		default:
			respondError(c, response.CodeInternal, "error.internal", err)
		}
		return
	}

	response.Success(c, gin.H{
		"captcha_id":   challenge.CaptchaID,
		"image_base64": challenge.ImageBase64,
	})
}
