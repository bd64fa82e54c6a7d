package repository

import (
	"errors"
	"time"

	"github.com/circuitaura/storefront/internal/models"

	"gorm.io/gorm"
)

// EmailVerifyCodeRepository is the one-time code data access interface.
type EmailVerifyCodeRepository interface {
	Create(code *models.EmailVerifyCode) error
	GetLatest(email, purpose string) (*models.EmailVerifyCode, error)
	MarkVerified(id uint, verifiedAt time.Time) error
	IncrementAttempt(id uint) error
}

// GormEmailVerifyCodeRepository is the GORM implementation.
type GormEmailVerifyCodeRepository struct {
	db *gorm.DB
}

// NewEmailVerifyCodeRepository creates a verify-code repository.
func NewEmailVerifyCodeRepository(db *gorm.DB) *GormEmailVerifyCodeRepository {
	return &GormEmailVerifyCodeRepository{db: db}
}

// Create inserts a code record.
func (r *GormEmailVerifyCodeRepository) Create(code *models.EmailVerifyCode) error {
	return r.db.Create(code).Error
}

// GetLatest returns the most recent code for email+purpose.
func (r *GormEmailVerifyCodeRepository) GetLatest(email, purpose string) (*models.EmailVerifyCode, error) {
	var record models.EmailVerifyCode
	if err := r.db.Where("email = ? AND purpose = ?", email, purpose).
		Order("sent_at desc, id desc").
		First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

// MarkVerified stamps a code as consumed.
func (r *GormEmailVerifyCodeRepository) MarkVerified(id uint, verifiedAt time.Time) error {
	return r.db.Model(&models.EmailVerifyCode{}).
		Where("id = ?", id).
		Update("verified_at", verifiedAt).Error
}

// IncrementAttempt bumps the failed attempt counter.
func (r *GormEmailVerifyCodeRepository) IncrementAttempt(id uint) error {
	return r.db.Model(&models.EmailVerifyCode{}).
		Where("id = ?", id).
		UpdateColumn("attempt_count", gorm.Expr("attempt_count + 1")).Error
}
