package admin

// Role 管理端角色。开放枚举：历史上存在过失物招领管理员角色，
// 恢复时只需补回 access.go 里对应的表项，调用方无需改动。
type Role string

const (
	// RoleSystemAdmin 系统管理员，当前唯一启用的角色。
	RoleSystemAdmin Role = "system_admin"

	// RoleLostFoundAdmin 失物招领管理员。下线：保留定义便于恢复。
	RoleLostFoundAdmin Role = "lost_found_admin"
)

// Active 判断角色当前是否启用（即访问表中存在该角色）。
func (r Role) Active() bool {
	_, ok := allowedPrefixesByRole[r]
	return ok
}
