package models

import (
	"time"

	"gorm.io/gorm"
)

// User is the account table. Customers and admins share it; the role column
// decides which surface an account may reach.
type User struct {
	ID                 uint           `gorm:"primarykey" json:"id"`                           // primary key
	Name               string         `gorm:"not null" json:"name"`                           // display name
	Email              string         `gorm:"uniqueIndex;not null" json:"email"`              // sign-in email
	PasswordHash       string         `gorm:"not null" json:"-"`                              // bcrypt hash, never serialized
	Role               string         `gorm:"type:varchar(20);default:'user'" json:"role"`    // user / admin / support
	Theme              string         `gorm:"type:varchar(20);default:'light'" json:"theme"`  // light / dark
	Locale             string         `gorm:"type:varchar(20);default:'en-US'" json:"locale"` // notification locale
	Status             string         `gorm:"default:'active'" json:"status"`                 // account status
	TokenVersion       uint64         `gorm:"not null;default:0" json:"-"`                    // token version, bumped to revoke all sessions
	TokenInvalidBefore *time.Time     `gorm:"index" json:"-"`                                 // tokens issued before this are rejected
	LastLoginAt        *time.Time     `json:"last_login_at"`                                  // last login time
	CreatedAt          time.Time      `gorm:"index" json:"created_at"`                        // created time
	UpdatedAt          time.Time      `gorm:"index" json:"updated_at"`                        // updated time
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"-"`                                 // soft delete time
}

// TableName sets the table name.
func (User) TableName() string {
	return "users"
}

// IsAdmin reports whether the account has the admin role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == "admin"
}
