package backend

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// AccountListRequest 账号列表筛选，零值字段不发参数。
type AccountListRequest struct {
	Page     int
	PageSize int
	UID      int64
	UserType string
}

// AccountListItem 账号列表行。
type AccountListItem struct {
	ID            int64  `json:"id"`
	UID           int64  `json:"uid"`
	Name          string `json:"name"`
	UserType      string `json:"user_type"`
	FirstLogin    bool   `json:"first_login"`
	CreatedAt     string `json:"created_at"`
	DisabledUntil any    `json:"disabled_until"`
}

// AccountListResponse 账号分页结果。
type AccountListResponse struct {
	List     []AccountListItem `json:"list"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
	Total    int               `json:"total"`
}

// CreateAccountRequest 新建账号。
type CreateAccountRequest struct {
	UID      int64  `json:"uid"`
	Name     string `json:"name"`
	IDCard   string `json:"id_card"`
	Password string `json:"password"`
	UserType string `json:"user_type"`
}

// CreateAccountResponse 新建账号结果。
type CreateAccountResponse struct {
	ID int64 `json:"id"`
}

// DisableAccountRequest 禁用账号，Duration 为线上时长
// token（7days/1month/6months/1year）。
type DisableAccountRequest struct {
	ID       int64  `json:"id"`
	Duration string `json:"duration"`
}

// EnableAccountRequest 解禁账号。
type EnableAccountRequest struct {
	ID int64 `json:"id"`
}

// UpdateAccountRequest 调整账号类型或重置密码。
type UpdateAccountRequest struct {
	ID            int64  `json:"id"`
	UserType      string `json:"user_type"`
	ResetPassword bool   `json:"reset_password"`
}

// SendNotificationRequest 系统通知，is_global 为真时 user_id 省略。
type SendNotificationRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	IsGlobal bool   `json:"is_global"`
	UserID   int64  `json:"user_id,omitempty"`
}

// SendNotificationResponse 通知发送结果。
type SendNotificationResponse struct {
	ID int64 `json:"id"`
}

// AccountList 查询账号列表。
func (c *Client) AccountList(ctx context.Context, req AccountListRequest) (*AccountListResponse, error) {
	params := url.Values{}
	if req.Page > 0 {
		params.Set("page", strconv.Itoa(req.Page))
	}
	if req.PageSize > 0 {
		params.Set("page_size", strconv.Itoa(req.PageSize))
	}
	if req.UID > 0 {
		params.Set("uid", strconv.FormatInt(req.UID, 10))
	}
	if req.UserType != "" {
		params.Set("user_type", req.UserType)
	}
	var res AccountListResponse
	if err := c.call(ctx, http.MethodGet, "/account/list", params, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// CreateAccount 新建账号。
func (c *Client) CreateAccount(ctx context.Context, req CreateAccountRequest) (*CreateAccountResponse, error) {
	var res CreateAccountResponse
	if err := c.call(ctx, http.MethodPost, "/account/create", nil, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// DisableAccount 按时长禁用账号。
func (c *Client) DisableAccount(ctx context.Context, req DisableAccountRequest) error {
	return c.call(ctx, http.MethodPost, "/account/disable", nil, req, nil)
}

// EnableAccount 解禁账号。
func (c *Client) EnableAccount(ctx context.Context, req EnableAccountRequest) error {
	return c.call(ctx, http.MethodPost, "/account/enable", nil, req, nil)
}

// UpdateAccount 更新账号。
func (c *Client) UpdateAccount(ctx context.Context, req UpdateAccountRequest) error {
	return c.call(ctx, http.MethodPost, "/account/update", nil, req, nil)
}

// SendSystemNotification 发送系统通知（全局或定向单个用户）。
func (c *Client) SendSystemNotification(ctx context.Context, req SendNotificationRequest) (*SendNotificationResponse, error) {
	var res SendNotificationResponse
	if err := c.call(ctx, http.MethodPost, "/account/notify", nil, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}
