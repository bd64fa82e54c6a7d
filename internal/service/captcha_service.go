package service

import (
	"strings"
	"sync"
	"time"

	"github.com/circuitaura/storefront/internal/config"
	"github.com/circuitaura/storefront/internal/constants"

	"github.com/mojocn/base64Captcha"
)

// CaptchaVerifyPayload is the captcha part of a guarded request.
type CaptchaVerifyPayload struct {
	CaptchaID   string `json:"captcha_id"`
	CaptchaCode string `json:"captcha_code"`
}

// CaptchaImageChallenge is one generated image challenge.
type CaptchaImageChallenge struct {
	CaptchaID   string `json:"captcha_id"`
	ImageBase64 string `json:"image_base64"`
}

// CaptchaService generates and verifies image captchas. Scenes are toggled
// in config; a disabled scene verifies as a no-op.
type CaptchaService struct {
	cfg config.CaptchaConfig

	mu                  sync.Mutex
	imageStore          base64Captcha.Store
	imageStoreMaxStore  int
	imageStoreExpireSec int
}

// NewCaptchaService creates the captcha service.
func NewCaptchaService(cfg config.CaptchaConfig) *CaptchaService {
	return &CaptchaService{cfg: cfg}
}

// Enabled reports whether a scene requires a captcha.
func (s *CaptchaService) Enabled(scene string) bool {
	if s == nil {
		return false
	}
	if strings.ToLower(strings.TrimSpace(s.cfg.Provider)) != constants.CaptchaProviderImage {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(scene)) {
	case constants.CaptchaSceneLogin:
		return s.cfg.Scenes.Login
	default:
		return false
	}
}

// GenerateImageChallenge produces a base64 PNG challenge.
func (s *CaptchaService) GenerateImageChallenge() (*CaptchaImageChallenge, error) {
	if s == nil || strings.ToLower(strings.TrimSpace(s.cfg.Provider)) != constants.CaptchaProviderImage {
		return nil, ErrCaptchaConfigInvalid
	}

	image := resolveCaptchaImageConfig(s.cfg.Image)
	store := s.ensureImageStore(image)
	driver := base64Captcha.NewDriverString(
		image.Height,
		image.Width,
		image.NoiseCount,
		image.ShowLine,
		image.Length,
		"0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ",
		nil,
		base64Captcha.DefaultEmbeddedFonts,
		nil,
	)
	captcha := base64Captcha.NewCaptcha(driver, store)
	id, b64s, _, err := captcha.Generate()
	if err != nil {
		return nil, err
	}

	return &CaptchaImageChallenge{
		CaptchaID:   strings.TrimSpace(id),
		ImageBase64: strings.TrimSpace(b64s),
	}, nil
}

// Verify checks a captcha answer for a scene. Disabled scenes pass.
func (s *CaptchaService) Verify(scene string, payload CaptchaVerifyPayload) error {
	if !s.Enabled(scene) {
		return nil
	}

	captchaID := strings.TrimSpace(payload.CaptchaID)
	captchaCode := strings.TrimSpace(payload.CaptchaCode)
	if captchaID == "" || captchaCode == "" {
		return ErrCaptchaRequired
	}
	store := s.ensureImageStore(resolveCaptchaImageConfig(s.cfg.Image))
	if !store.Verify(captchaID, captchaCode, true) {
		return ErrCaptchaInvalid
	}
	return nil
}

func (s *CaptchaService) ensureImageStore(image config.CaptchaImageConfig) base64Captcha.Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.imageStore != nil && s.imageStoreMaxStore == image.MaxStore && s.imageStoreExpireSec == image.ExpireSeconds {
		return s.imageStore
	}
	s.imageStore = base64Captcha.NewMemoryStore(image.MaxStore, time.Duration(image.ExpireSeconds)*time.Second)
	s.imageStoreMaxStore = image.MaxStore
	s.imageStoreExpireSec = image.ExpireSeconds
	return s.imageStore
}

func resolveCaptchaImageConfig(image config.CaptchaImageConfig) config.CaptchaImageConfig {
	if image.Length < 4 || image.Length > 8 {
		image.Length = 5
	}
	if image.Width <= 0 {
		image.Width = 240
	}
	if image.Height <= 0 {
		image.Height = 80
	}
	if image.NoiseCount < 0 {
		image.NoiseCount = 0
	}
	if image.ShowLine < 0 {
		image.ShowLine = 0
	}
	if image.ExpireSeconds <= 0 {
		image.ExpireSeconds = 300
	}
	if image.MaxStore <= 0 {
		image.MaxStore = 10240
	}
	return image
}
