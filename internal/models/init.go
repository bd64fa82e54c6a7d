package models

import (
	"strings"

	"github.com/circuitaura/storefront/internal/constants"
	"github.com/circuitaura/storefront/internal/logger"

	"golang.org/x/crypto/bcrypt"
)

// InitDefaultAdmin seeds the first admin account when none exists.
func InitDefaultAdmin(email, password string) error {
	var count int64
	DB.Model(&User{}).Where("role = ?", constants.RoleAdmin).Count(&count)
	if count > 0 {
		return nil
	}

	email = strings.TrimSpace(email)
	if email == "" {
		email = "admin@circuitaura.local"
	}
	if password == "" {
		password = "Admin@123"
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := User{
		Name:         "Administrator",
		Email:        strings.ToLower(email),
		PasswordHash: string(hash),
		Role:         constants.RoleAdmin,
		Theme:        constants.ThemeLight,
		Status:       constants.UserStatusActive,
	}

	if err := DB.Create(&admin).Error; err != nil {
		return err
	}

	if password == "Admin@123" {
		logger.Warnw("default_admin_created_with_default_password", "email", admin.Email)
		logger.Warnw("default_admin_password_change_required", "email", admin.Email)
	} else {
		logger.Warnw("default_admin_created", "email", admin.Email, "password_hidden", true)
	}

	return nil
}
