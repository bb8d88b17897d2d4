package admin

import "testing"

func TestHasRouteAccess(t *testing.T) {
	cases := []struct {
		name     string
		role     Role
		pathname string
		want     bool
	}{
		{"exact_prefix", RoleSystemAdmin, "/account-permission", true},
		{"sub_path", RoleSystemAdmin, "/account-permission/list", true},
		{"global", RoleSystemAdmin, "/global-management", true},
		{"announcement", RoleSystemAdmin, "/announcement-content/review", true},
		{"review_publish_denied", RoleSystemAdmin, "/review-publish", false},
		{"item_status_denied", RoleSystemAdmin, "/item-status", false},
		{"unknown_route", RoleSystemAdmin, "/whatever", false},
		{"inactive_role", RoleLostFoundAdmin, "/review-publish", false},
		{"empty_role", Role(""), "/global-management", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := HasRouteAccess(tc.role, tc.pathname); got != tc.want {
				t.Errorf("HasRouteAccess(%q, %q) = %v, want %v", tc.role, tc.pathname, got, tc.want)
			}
		})
	}
}

func TestNavItems_Order(t *testing.T) {
	items := NavItems(RoleSystemAdmin)
	if len(items) != 3 {
		t.Fatalf("expected 3 nav items, got %d", len(items))
	}
	wantKeys := []string{"/global-management", "/account-permission", "/announcement-content"}
	for i, key := range wantKeys {
		if items[i].Key != key {
			t.Errorf("nav[%d].Key = %q, want %q", i, items[i].Key, key)
		}
		if items[i].Label == "" {
			t.Errorf("nav[%d] missing label", i)
		}
	}
}

func TestDefaultRoute(t *testing.T) {
	if got := DefaultRoute(RoleSystemAdmin); got != "/global-management" {
		t.Errorf("DefaultRoute = %q", got)
	}
	if got := DefaultRoute(RoleLostFoundAdmin); got != "" {
		t.Errorf("inactive role should have no default route, got %q", got)
	}
}

func TestRole_Active(t *testing.T) {
	if !RoleSystemAdmin.Active() {
		t.Error("system_admin should be active")
	}
	if RoleLostFoundAdmin.Active() {
		t.Error("lost_found_admin is decommissioned")
	}
}

func TestResolveRoute(t *testing.T) {
	loggedIn := Identity{
		EmployeeNo: "1001",
		Role:       RoleSystemAdmin,
		Token:      "tok",
		IsLoggedIn: true,
	}

	t.Run("unauthenticated_redirects_login", func(t *testing.T) {
		decision, target := ResolveRoute(Empty(), "/global-management")
		if decision != DecisionRedirectLogin || target != LoginRoute {
			t.Errorf("got (%v, %q)", decision, target)
		}
	})

	t.Run("missing_role_redirects_login", func(t *testing.T) {
		decision, _ := ResolveRoute(Identity{Token: "tok", IsLoggedIn: true}, "/global-management")
		if decision != DecisionRedirectLogin {
			t.Errorf("got %v", decision)
		}
	})

	t.Run("permitted_renders", func(t *testing.T) {
		decision, target := ResolveRoute(loggedIn, "/account-permission/list")
		if decision != DecisionRender || target != "/account-permission/list" {
			t.Errorf("got (%v, %q)", decision, target)
		}
	})

	t.Run("forbidden_redirects_default", func(t *testing.T) {
		decision, target := ResolveRoute(loggedIn, "/review-publish")
		if decision != DecisionRedirectDefault || target != "/global-management" {
			t.Errorf("got (%v, %q)", decision, target)
		}
	})
}
