package main

import (
	"errors"
	"testing"

	"github.com/mao2006/lost-found-admin/internal/domain/admin"
	"github.com/mao2006/lost-found-admin/internal/domain/lostfound"
	"github.com/mao2006/lost-found-admin/internal/infrastructure/backend"
)

func TestPostListKeyParams(t *testing.T) {
	a := backend.PostListRequest{
		Campus:      "朝晖",
		PublishType: lostfound.KindFound,
		Page:        1,
		PageSize:    10,
	}
	b := a
	b.Campus = "屏峰"

	if postListKeyParams(a) == postListKeyParams(b) {
		t.Error("different filters must yield different query identities")
	}
	if postListKeyParams(a) != postListKeyParams(a) {
		t.Error("same filters must yield a stable query identity")
	}
}

func TestDisplayErr(t *testing.T) {
	err := displayErr(&backend.RequestError{Message: "登录已过期", Code: 401})
	if err.Error() != "登录已过期" {
		t.Errorf("got %q", err.Error())
	}
	err = displayErr(errors.New("boom"))
	if err.Error() != "boom" {
		t.Errorf("got %q", err.Error())
	}
}

func TestCommandGroupRoutes(t *testing.T) {
	// 命令组绑定的路由都必须在系统管理员的访问表内
	for _, route := range []string{routeGlobalManagement, routeAccountPermission, routeAnnouncementContent} {
		if !admin.HasRouteAccess(admin.RoleSystemAdmin, route) {
			t.Errorf("route %s is not reachable by system_admin", route)
		}
	}
}
