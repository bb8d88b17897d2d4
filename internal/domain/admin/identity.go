package admin

// Identity 当前登录身份。只允许两条写路径：登录时全量替换，
// 登出时全量清空，不存在部分更新，避免出现「有 token 没角色」的中间态。
type Identity struct {
	EmployeeNo string `json:"employeeNo"`
	Role       Role   `json:"role,omitempty"`
	Token      string `json:"token,omitempty"`
	UserID     int64  `json:"userId,omitempty"`
	IsLoggedIn bool   `json:"isLoggedIn"`
}

// Empty 未登录的空身份。
func Empty() Identity {
	return Identity{}
}
