package admin

import "strings"

// NavItem 导航菜单项，切片顺序即菜单展示顺序。
type NavItem struct {
	Key   string
	Label string
}

var roleLabels = map[Role]string{
	// 下线：普通管理员角色文案（保留注释便于恢复）
	// RoleLostFoundAdmin: "失物招领管理员",
	RoleSystemAdmin: "系统管理员",
}

var navByRole = map[Role][]NavItem{
	// 下线：普通管理员导航（保留注释便于恢复）
	// RoleLostFoundAdmin: {
	// 	{Key: "/review-publish", Label: "审核发布信息"},
	// 	{Key: "/item-status", Label: "管理物品状态"},
	// },
	RoleSystemAdmin: {
		{Key: "/global-management", Label: "全局管理"},
		{Key: "/account-permission", Label: "账号与权限管理"},
		{Key: "/announcement-content", Label: "公告与内容管理"},
	},
}

var defaultRouteByRole = map[Role]string{
	// 下线：普通管理员默认路由（保留注释便于恢复）
	// RoleLostFoundAdmin: "/review-publish",
	RoleSystemAdmin: "/global-management",
}

var allowedPrefixesByRole = map[Role][]string{
	// 下线：普通管理员可访问路由（保留注释便于恢复）
	// RoleLostFoundAdmin: {"/review-publish", "/item-status"},
	RoleSystemAdmin: {"/global-management", "/account-permission", "/announcement-content"},
}

// AllowedPrefixes 返回角色允许访问的路由前缀。
func AllowedPrefixes(role Role) []string {
	return allowedPrefixesByRole[role]
}

// NavItems 返回角色的导航菜单。
func NavItems(role Role) []NavItem {
	return navByRole[role]
}

// DefaultRoute 返回角色登录后的默认路由。
func DefaultRoute(role Role) string {
	return defaultRouteByRole[role]
}

// RoleLabel 返回角色的展示文案，未启用角色返回空串。
func RoleLabel(role Role) string {
	return roleLabels[role]
}

// HasRouteAccess 判断角色能否访问路径：任一允许前缀命中即可。
func HasRouteAccess(role Role, pathname string) bool {
	for _, prefix := range allowedPrefixesByRole[role] {
		if strings.HasPrefix(pathname, prefix) {
			return true
		}
	}
	return false
}
