// Package query 定义读操作的查询身份（缓存键）与带过期窗口的读缓存。
// 键形如 资源/操作/规范化参数，变更后由调用方显式失效相关键，
// 不做自动依赖追踪。
package query

import (
	"strconv"
	"strings"
)

// Key 查询身份：同一 Key 即同一缓存条目。
type Key string

// NewKey 拼装查询身份，参数已是规范化后的字符串。
func NewKey(resource, op string, params ...string) Key {
	parts := append([]string{resource, op}, params...)
	return Key(strings.Join(parts, "/"))
}

// 键目录：所有读操作的查询身份集中在这里，失效时按名引用。

func AccountList(uid int64) Key {
	if uid > 0 {
		return NewKey("account", "list", strconv.FormatInt(uid, 10))
	}
	return NewKey("account", "list")
}

func AdminPendingList() Key { return NewKey("admin", "pending-list") }

func AdminPendingDetail(postID int64) Key {
	return NewKey("admin", "pending-detail", strconv.FormatInt(postID, 10))
}

func AdminStatistics() Key { return NewKey("admin", "statistics") }

func AnnouncementApprovedList() Key { return NewKey("announcement", "approved-list") }

func AnnouncementReviewList() Key { return NewKey("announcement", "review-list") }

func AuthCurrentUser() Key { return NewKey("auth", "current-user") }

func FeedbackList() Key { return NewKey("feedback", "list") }

func FeedbackDetail(id int64) Key {
	return NewKey("feedback", "detail", strconv.FormatInt(id, 10))
}

// PostList 按序列化后的筛选串区分不同查询。
func PostList(normalizedParams string) Key {
	return NewKey("post", "list", normalizedParams)
}

func SystemConfig() Key { return NewKey("system", "config") }
