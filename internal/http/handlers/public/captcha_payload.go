package public

import (
	"strings"

	"github.com/circuitaura/storefront/internal/service"
)

// CaptchaPayloadRequest is the captcha part of a guarded request body.
// Image provider: captcha_id + captcha_code. Disabled scenes accept an
// empty payload; the service decides whether it is required.
type CaptchaPayloadRequest struct {
	CaptchaID   string `json:"captcha_id"`
	CaptchaCode string `json:"captcha_code"`
}

func (r CaptchaPayloadRequest) toServicePayload() service.CaptchaVerifyPayload {
	return service.CaptchaVerifyPayload{
		CaptchaID:   strings.TrimSpace(r.CaptchaID),
		CaptchaCode: strings.TrimSpace(r.CaptchaCode),
	}
}
