package models

import (
	"time"

	"gorm.io/gorm"
)

// EmailVerifyCode records an emailed one-time code.
type EmailVerifyCode struct {
	ID           uint           `gorm:"primarykey" json:"id"`           // primary key
	Email        string         `gorm:"index;not null" json:"email"`    // target email
	UserID       *uint          `gorm:"index" json:"user_id"`           // linked account
	Purpose      string         `gorm:"index;not null" json:"purpose"`  // reset
	Code         string         `gorm:"not null" json:"-"`              // code, never serialized
	ExpiresAt    time.Time      `gorm:"index" json:"expires_at"`        // expiry time
	VerifiedAt   *time.Time     `gorm:"index" json:"verified_at"`       // consumed time
	AttemptCount int            `gorm:"default:0" json:"attempt_count"` // failed attempts
	SentAt       time.Time      `gorm:"index" json:"sent_at"`           // send time
	CreatedAt    time.Time      `gorm:"index" json:"created_at"`        // created time
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`                 // soft delete time
}

// TableName sets the table name.
func (EmailVerifyCode) TableName() string {
	return "email_verify_codes"
}
