// Package lostfound 定义后端线上词汇与管理端展示词汇之间的纯映射。
// 所有函数无状态、无副作用：wire→UI 方向对未知值兜底，
// UI→wire 方向只对管理端会产生的取值有定义。
package lostfound

import (
	"strings"

	"github.com/mao2006/lost-found-admin/internal/domain/admin"
)

// PublishKind 信息种类：失物（lost）或拾物（found）。
type PublishKind string

const (
	KindLost  PublishKind = "lost"
	KindFound PublishKind = "found"
)

// StatusUnknown 状态缺失时的哨兵值。
const StatusUnknown = "unknown"

var campusToAPI = map[string]string{
	"朝晖":  "ZHAO_HUI",
	"屏峰":  "PING_FENG",
	"莫干山": "MO_GAN_SHAN",
}

// apiToCampus 同时收录线上码与展示名本身，重复套用保持幂等。
var apiToCampus = map[string]string{
	"ZHAO_HUI":    "朝晖",
	"PING_FENG":   "屏峰",
	"MO_GAN_SHAN": "莫干山",
	"朝晖":          "朝晖",
	"屏峰":          "屏峰",
	"莫干山":         "莫干山",
}

var userTypeToRole = map[string]admin.Role{
	// 下线：普通管理员登录映射（保留注释便于恢复）
	// "ADMIN": admin.RoleLostFoundAdmin,
	"SYSTEM_ADMIN": admin.RoleSystemAdmin,
}

var roleToUserType = map[admin.Role]string{
	// 下线：普通管理员反向映射（保留注释便于恢复）
	// admin.RoleLostFoundAdmin: "ADMIN",
	admin.RoleSystemAdmin: "SYSTEM_ADMIN",
}

var accountRoleLabels = map[string]string{
	// 下线：普通管理员身份文案（保留注释便于恢复）
	// "ADMIN": "失物招领管理员",
	// 兼容：历史普通管理员账号统一按学生显示
	"ADMIN":        "学生",
	"STUDENT":      "学生",
	"SYSTEM_ADMIN": "系统管理员",
}

var durationTokens = map[string]string{
	"7d": "7days",
	"1m": "1month",
	"6m": "6months",
	"1y": "1year",
}

// ToPublishKind 归一化历史上出现过的几种线上表示。
// 未识别的值一律按失物处理，不报错。
func ToPublishKind(value any) PublishKind {
	switch v := value.(type) {
	case string:
		if v == "FOUND" || v == "found" || v == "2" {
			return KindFound
		}
	case int:
		if v == 2 {
			return KindFound
		}
	case int64:
		if v == 2 {
			return KindFound
		}
	case float64:
		if v == 2 {
			return KindFound
		}
	}
	return KindLost
}

// ToPublishTypeParam 转换为发布类型的线上参数，空种类返回空串（参数省略）。
func ToPublishTypeParam(kind PublishKind) string {
	switch kind {
	case KindLost:
		return "LOST"
	case KindFound:
		return "FOUND"
	default:
		return ""
	}
}

// ToCampusName 线上校区码转展示名，未知码返回空串。
func ToCampusName(value string) string {
	if value == "" {
		return ""
	}
	return apiToCampus[value]
}

// ToCampusParam 校区展示名转线上码，空值返回空串（参数省略）。
func ToCampusParam(value string) string {
	if value == "" {
		return ""
	}
	return campusToAPI[value]
}

// ToAdminRole 后端用户类型映射为管理端角色，映射不到返回空角色，
// 由上层按「无管理端访问权限」处理而不是崩溃。
func ToAdminRole(userType string) admin.Role {
	if userType == "" {
		return ""
	}
	return userTypeToRole[userType]
}

// ToUserTypeByRole 管理端角色映射回后端用户类型。
func ToUserTypeByRole(role admin.Role) string {
	return roleToUserType[role]
}

// ToAccountRoleLabel 账号身份的展示文案。仅用于展示，
// 未知类型原样透传而不是报错。
func ToAccountRoleLabel(value string) string {
	if value == "" {
		return "-"
	}
	if label, ok := accountRoleLabels[value]; ok {
		return label
	}
	return value
}

// ToDisableDurationParam 禁用时长短码转线上 token。
// 输入由管理端控制，四个取值即全集。
func ToDisableDurationParam(code string) (string, bool) {
	token, ok := durationTokens[code]
	return token, ok
}

// NormalizeDateTime 只接受字符串时间戳，其余类型（含 null）归一为空串，
// 防御后端把可空字段发成别的类型。
func NormalizeDateTime(value any) string {
	if s, ok := value.(string); ok {
		return s
	}
	return ""
}

// NormalizePostStatus 状态串统一小写，缺失归一为 unknown。
func NormalizePostStatus(value string) string {
	if value == "" {
		return StatusUnknown
	}
	return strings.ToLower(value)
}
