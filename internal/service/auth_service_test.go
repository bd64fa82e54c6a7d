package service

import (
	"errors"
	"testing"

	"github.com/circuitaura/storefront/internal/config"
	"github.com/circuitaura/storefront/internal/constants"
	"github.com/circuitaura/storefront/internal/models"
	"github.com/circuitaura/storefront/internal/repository"
)

func authTestConfig(adminKey string) *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{
			SecretKey:   "unit-test-secret",
			ExpireHours: 24,
		},
		Security: config.SecurityConfig{
			AdminSignupKey: adminKey,
			PasswordPolicy: config.PasswordPolicyConfig{
				MinLength:      8,
				RequireUpper:   true,
				RequireNumber:  true,
				RequireSpecial: true,
			},
		},
	}
}

func setupAuthServiceTest(t *testing.T, adminKey string) *AuthService {
	t.Helper()
	db := openServiceTestDB(t)
	if err := db.AutoMigrate(&models.User{}, &models.EmailVerifyCode{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	return NewAuthService(
		authTestConfig(adminKey),
		repository.NewUserRepository(db),
		repository.NewEmailVerifyCodeRepository(db),
		nil,
		nil,
	)
}

func TestRegisterDefaultsToUserRole(t *testing.T) {
	svc := setupAuthServiceTest(t, "launch-key")

	user, token, _, err := svc.Register(RegisterInput{
		Name:     "Asha",
		Email:    "asha@example.com",
		Password: "Solder#42pass",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected a session token")
	}
	if user.Role != constants.RoleUser {
		t.Fatalf("expected user role, got %s", user.Role)
	}
	if user.Theme != constants.ThemeDark {
		t.Fatalf("expected dark theme after sign-up, got %s", user.Theme)
	}

	claims, err := svc.ParseJWT(token)
	if err != nil {
		t.Fatalf("parse token failed: %v", err)
	}
	if claims.UserID != user.ID || claims.Role != constants.RoleUser {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestRegisterAdminKeyIsServerAuthoritative(t *testing.T) {
	svc := setupAuthServiceTest(t, "launch-key")

	if _, _, _, err := svc.Register(RegisterInput{
		Email:    "wrong@example.com",
		Password: "Solder#42pass",
		AdminKey: "guessed-key",
	}); !errors.Is(err, ErrAdminKeyInvalid) {
		t.Fatalf("expected admin key rejection, got %v", err)
	}

	admin, _, _, err := svc.Register(RegisterInput{
		Email:    "owner@example.com",
		Password: "Solder#42pass",
		AdminKey: "launch-key",
	})
	if err != nil {
		t.Fatalf("admin register failed: %v", err)
	}
	if admin.Role != constants.RoleAdmin {
		t.Fatalf("expected admin role, got %s", admin.Role)
	}
}

func TestRegisterAdminKeyDisabledWhenUnset(t *testing.T) {
	svc := setupAuthServiceTest(t, "")

	// With no key configured nothing may claim the admin role, not even an
	// empty-string match.
	if _, _, _, err := svc.Register(RegisterInput{
		Email:    "sneaky@example.com",
		Password: "Solder#42pass",
		AdminKey: "anything",
	}); !errors.Is(err, ErrAdminKeyInvalid) {
		t.Fatalf("expected admin key rejection, got %v", err)
	}
}

func TestRegisterRejectsDuplicateAndWeakPasswords(t *testing.T) {
	svc := setupAuthServiceTest(t, "")

	if _, _, _, err := svc.Register(RegisterInput{
		Email:    "asha@example.com",
		Password: "short",
	}); !errors.Is(err, ErrWeakPassword) {
		t.Fatalf("expected weak password rejection, got %v", err)
	}

	if _, _, _, err := svc.Register(RegisterInput{
		Email:    "asha@example.com",
		Password: "Solder#42pass",
	}); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if _, _, _, err := svc.Register(RegisterInput{
		Email:    "Asha@Example.com",
		Password: "Solder#42pass",
	}); !errors.Is(err, ErrEmailExists) {
		t.Fatalf("expected duplicate email rejection, got %v", err)
	}
}

func TestLoginTogglesThemeAndLogoutResetsIt(t *testing.T) {
	svc := setupAuthServiceTest(t, "")

	user, _, _, err := svc.Register(RegisterInput{
		Email:    "asha@example.com",
		Password: "Solder#42pass",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if err := svc.Logout(user.ID); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	loggedOut, err := svc.GetUserByID(user.ID)
	if err != nil {
		t.Fatalf("get user failed: %v", err)
	}
	if loggedOut.Theme != constants.ThemeLight {
		t.Fatalf("expected light theme after logout, got %s", loggedOut.Theme)
	}

	// Logout twice stays a no-op.
	if err := svc.Logout(user.ID); err != nil {
		t.Fatalf("second logout failed: %v", err)
	}

	loggedIn, _, _, err := svc.Login("asha@example.com", "Solder#42pass", false)
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if loggedIn.Theme != constants.ThemeDark {
		t.Fatalf("expected dark theme after login, got %s", loggedIn.Theme)
	}
	if loggedIn.LastLoginAt == nil {
		t.Fatalf("expected last_login_at to be set")
	}

	if _, _, _, err := svc.Login("asha@example.com", "wrong-password", false); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected credential rejection, got %v", err)
	}
	if _, _, _, err := svc.Login("nobody@example.com", "Solder#42pass", false); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected credential rejection for unknown account, got %v", err)
	}
}

func TestChangePasswordRevokesSessions(t *testing.T) {
	svc := setupAuthServiceTest(t, "")

	user, _, _, err := svc.Register(RegisterInput{
		Email:    "asha@example.com",
		Password: "Solder#42pass",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if err := svc.ChangePassword(user.ID, "wrong-old", "Resistor#7new"); !errors.Is(err, ErrInvalidPassword) {
		t.Fatalf("expected old password rejection, got %v", err)
	}
	if err := svc.ChangePassword(user.ID, "Solder#42pass", "Resistor#7new"); err != nil {
		t.Fatalf("change password failed: %v", err)
	}

	updated, err := svc.GetUserByID(user.ID)
	if err != nil {
		t.Fatalf("get user failed: %v", err)
	}
	if updated.TokenVersion != user.TokenVersion+1 {
		t.Fatalf("expected token version bump, got %d", updated.TokenVersion)
	}
	if updated.TokenInvalidBefore == nil {
		t.Fatalf("expected token_invalid_before to be set")
	}

	if _, _, _, err := svc.Login("asha@example.com", "Resistor#7new", false); err != nil {
		t.Fatalf("login with new password failed: %v", err)
	}
}

func TestUpdateTheme(t *testing.T) {
	svc := setupAuthServiceTest(t, "")

	user, _, _, err := svc.Register(RegisterInput{
		Email:    "asha@example.com",
		Password: "Solder#42pass",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	updated, err := svc.UpdateTheme(user.ID, "LIGHT")
	if err != nil {
		t.Fatalf("update theme failed: %v", err)
	}
	if updated.Theme != constants.ThemeLight {
		t.Fatalf("expected light theme, got %s", updated.Theme)
	}

	if _, err := svc.UpdateTheme(user.ID, "sepia"); !errors.Is(err, ErrThemeInvalid) {
		t.Fatalf("expected theme rejection, got %v", err)
	}
}
