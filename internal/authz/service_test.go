package authz

import (
	"fmt"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupAuthzServiceTest(t *testing.T) *Service {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	svc, err := NewService(db)
	if err != nil {
		t.Fatalf("new authz service failed: %v", err)
	}
	return svc
}

func TestBootstrapGrantsAdminEverything(t *testing.T) {
	svc := setupAuthzServiceTest(t)
	if err := svc.BootstrapBuiltinRoles(); err != nil {
		t.Fatalf("bootstrap builtin roles failed: %v", err)
	}

	allow, err := svc.EnforceRole("admin", "/api/v1/admin/products/42", "delete")
	if err != nil {
		t.Fatalf("enforce allow failed: %v", err)
	}
	if !allow {
		t.Fatalf("expected admin role to reach the whole admin surface")
	}
}

func TestSupportRoleScopedToOrders(t *testing.T) {
	svc := setupAuthzServiceTest(t)
	if err := svc.BootstrapBuiltinRoles(); err != nil {
		t.Fatalf("bootstrap builtin roles failed: %v", err)
	}

	allow, err := svc.EnforceRole("support", "/api/v1/admin/orders/7", "PATCH")
	if err != nil {
		t.Fatalf("enforce orders patch failed: %v", err)
	}
	if !allow {
		t.Fatalf("expected support role to patch orders")
	}

	allow, err = svc.EnforceRole("support", "/api/v1/admin/products", "POST")
	if err != nil {
		t.Fatalf("enforce products post failed: %v", err)
	}
	if allow {
		t.Fatalf("expected support role denied on catalog writes")
	}
}

func TestEnforceRoleUnknownRoleDenied(t *testing.T) {
	svc := setupAuthzServiceTest(t)
	if err := svc.BootstrapBuiltinRoles(); err != nil {
		t.Fatalf("bootstrap builtin roles failed: %v", err)
	}

	allow, err := svc.EnforceRole("user", "/api/v1/admin/orders", "GET")
	if err != nil {
		t.Fatalf("enforce customer role failed: %v", err)
	}
	if allow {
		t.Fatalf("expected customer role denied on admin surface")
	}
}

func TestNormalizeObject(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{in: "/api/v1/admin/orders/:id", want: "/admin/orders/:id"},
		{in: "/admin/orders/:id", want: "/admin/orders/:id"},
		{in: "admin/orders", want: "/admin/orders"},
		{in: "/api/v1", want: "/"},
		{in: "", want: "/"},
	}
	for _, item := range cases {
		got := NormalizeObject(item.in)
		if got != item.want {
			t.Fatalf("normalize object failed, in=%q want=%q got=%q", item.in, item.want, got)
		}
	}
}
