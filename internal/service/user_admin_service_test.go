package service

import (
	"errors"
	"testing"

	"github.com/circuitaura/storefront/internal/constants"
	"github.com/circuitaura/storefront/internal/models"
	"github.com/circuitaura/storefront/internal/repository"

	"gorm.io/gorm"
)

func setupUserAdminServiceTest(t *testing.T) (*UserAdminService, *gorm.DB) {
	t.Helper()
	db := openServiceTestDB(t)
	if err := db.AutoMigrate(&models.User{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	return NewUserAdminService(repository.NewUserRepository(db)), db
}

func createAdminTestUser(t *testing.T, db *gorm.DB, email, role string) *models.User {
	t.Helper()
	user := &models.User{
		Name:         "Account " + email,
		Email:        email,
		PasswordHash: "x",
		Role:         role,
		Status:       constants.UserStatusActive,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create user failed: %v", err)
	}
	return user
}

func TestSetRoleAcceptsAllConsoleRoles(t *testing.T) {
	svc, db := setupUserAdminServiceTest(t)
	admin := createAdminTestUser(t, db, "admin@example.com", constants.RoleAdmin)
	target := createAdminTestUser(t, db, "agent@example.com", constants.RoleUser)

	updated, err := svc.SetRole(admin.ID, target.ID, constants.RoleSupport)
	if err != nil {
		t.Fatalf("grant support role failed: %v", err)
	}
	if updated.Role != constants.RoleSupport {
		t.Fatalf("expected support role, got %s", updated.Role)
	}
	if updated.TokenVersion != target.TokenVersion+1 {
		t.Fatalf("expected session revocation to bump token version")
	}
	if updated.TokenInvalidBefore == nil {
		t.Fatalf("expected token_invalid_before to be set")
	}

	if _, err := svc.SetRole(admin.ID, target.ID, constants.RoleAdmin); err != nil {
		t.Fatalf("promote to admin failed: %v", err)
	}
	if _, err := svc.SetRole(admin.ID, target.ID, "owner"); !errors.Is(err, ErrRoleInvalid) {
		t.Fatalf("expected unknown role rejection, got %v", err)
	}
}

func TestSetRoleRejectsSelfChange(t *testing.T) {
	svc, db := setupUserAdminServiceTest(t)
	admin := createAdminTestUser(t, db, "admin@example.com", constants.RoleAdmin)

	if _, err := svc.SetRole(admin.ID, admin.ID, constants.RoleUser); !errors.Is(err, ErrSelfChangeNotAllowed) {
		t.Fatalf("expected self change rejection, got %v", err)
	}
}

func TestSetStatusDisableRevokesSessions(t *testing.T) {
	svc, db := setupUserAdminServiceTest(t)
	admin := createAdminTestUser(t, db, "admin@example.com", constants.RoleAdmin)
	target := createAdminTestUser(t, db, "member@example.com", constants.RoleUser)

	updated, err := svc.SetStatus(admin.ID, target.ID, constants.UserStatusDisabled)
	if err != nil {
		t.Fatalf("disable failed: %v", err)
	}
	if updated.Status != constants.UserStatusDisabled {
		t.Fatalf("expected disabled status, got %s", updated.Status)
	}
	if updated.TokenVersion != target.TokenVersion+1 {
		t.Fatalf("expected session revocation to bump token version")
	}

	if _, err := svc.SetStatus(admin.ID, target.ID, "suspended"); !errors.Is(err, ErrUserStatusInvalid) {
		t.Fatalf("expected unknown status rejection, got %v", err)
	}
	if _, err := svc.SetStatus(admin.ID, admin.ID, constants.UserStatusDisabled); !errors.Is(err, ErrSelfChangeNotAllowed) {
		t.Fatalf("expected self change rejection, got %v", err)
	}
}

func TestUserListRoleFilter(t *testing.T) {
	svc, db := setupUserAdminServiceTest(t)
	createAdminTestUser(t, db, "admin@example.com", constants.RoleAdmin)
	createAdminTestUser(t, db, "agent@example.com", constants.RoleSupport)
	createAdminTestUser(t, db, "member@example.com", constants.RoleUser)

	users, total, err := svc.List(repository.UserListFilter{Page: 1, PageSize: 10, Role: constants.RoleSupport})
	if err != nil {
		t.Fatalf("list support accounts failed: %v", err)
	}
	if total != 1 || len(users) != 1 {
		t.Fatalf("support filter want 1 got total=%d len=%d", total, len(users))
	}
	if users[0].Email != "agent@example.com" {
		t.Fatalf("expected agent account, got %s", users[0].Email)
	}

	if _, _, err := svc.List(repository.UserListFilter{Page: 1, PageSize: 10, Role: "owner"}); !errors.Is(err, ErrRoleInvalid) {
		t.Fatalf("expected unknown role filter rejection, got %v", err)
	}
}
