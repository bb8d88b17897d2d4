package backend

import (
	"context"
	"net/http"
)

// UserLoginRequest 底层用户登录，uid 即学工号。
type UserLoginRequest struct {
	UID      int64  `json:"uid"`
	Password string `json:"password"`
}

// UserLoginResponse 登录结果，user_type 是后端用户类型码。
type UserLoginResponse struct {
	ID         int64  `json:"id"`
	Token      string `json:"token"`
	UserType   string `json:"user_type"`
	NeedUpdate bool   `json:"need_update"`
}

// UserUpdatePasswordRequest 修改密码。
type UserUpdatePasswordRequest struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

// UserUpdatePasswordResponse 修改密码结果，返回新 token。
type UserUpdatePasswordResponse struct {
	Token string `json:"token"`
}

// UserLogin 底层登录接口，管理端校验在 application/auth 叠加。
func (c *Client) UserLogin(ctx context.Context, req UserLoginRequest) (*UserLoginResponse, error) {
	var res UserLoginResponse
	if err := c.call(ctx, http.MethodPost, "/user/login", nil, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// UserUpdatePassword 修改密码。
func (c *Client) UserUpdatePassword(ctx context.Context, req UserUpdatePasswordRequest) (*UserUpdatePasswordResponse, error) {
	var res UserUpdatePasswordResponse
	if err := c.call(ctx, http.MethodPost, "/user/update", nil, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}
