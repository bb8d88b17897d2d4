// Package auth 在底层用户接口之上叠加管理端的登录语义：
// 先做本地校验（不发网络请求），再把后端字段整形成管理端词汇。
package auth

import (
	"context"
	"strconv"
	"strings"

	"github.com/mao2006/lost-found-admin/internal/domain/admin"
	"github.com/mao2006/lost-found-admin/internal/domain/lostfound"
	"github.com/mao2006/lost-found-admin/internal/infrastructure/backend"
)

// UserGateway 底层用户接口，由 backend.Client 实现。
type UserGateway interface {
	UserLogin(ctx context.Context, req backend.UserLoginRequest) (*backend.UserLoginResponse, error)
	UserUpdatePassword(ctx context.Context, req backend.UserUpdatePasswordRequest) (*backend.UserUpdatePasswordResponse, error)
}

// SessionWriter 会话的唯一写入口。
type SessionWriter interface {
	Login(id admin.Identity) error
	Logout() error
}

// Service 登录/改密用例。
type Service struct {
	users   UserGateway
	session SessionWriter
}

// NewService 建立用例，session 可为 nil（只做校验与整形，不落会话）。
func NewService(users UserGateway, session SessionWriter) *Service {
	return &Service{users: users, session: session}
}

// LoginInput 管理端登录入参。
type LoginInput struct {
	EmployeeNo string
	Password   string
}

// LoginResult 登录结果（管理端字段命名）。
type LoginResult struct {
	EmployeeNo         string
	Role               admin.Role
	Token              string
	UserID             int64
	NeedUpdatePassword bool
}

// Login 校验工号、调用底层登录、映射角色并整体写入会话。
// 工号必须是整数，校验失败在任何网络请求之前返回；
// 后端用户类型映射不到管理端角色按无权限处理，不是崩溃。
// 所有失败都以 RequestError 形态向上抛。
func (s *Service) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	employeeNo := strings.TrimSpace(input.EmployeeNo)
	uid, err := strconv.ParseInt(employeeNo, 10, 64)
	if err != nil {
		return nil, &backend.RequestError{Message: "工号格式不正确"}
	}

	res, err := s.users.UserLogin(ctx, backend.UserLoginRequest{
		UID:      uid,
		Password: input.Password,
	})
	if err != nil {
		return nil, err
	}

	role := lostfound.ToAdminRole(res.UserType)
	if role == "" {
		return nil, &backend.RequestError{Message: "当前账号无管理端访问权限"}
	}

	result := &LoginResult{
		EmployeeNo:         employeeNo,
		Role:               role,
		Token:              res.Token,
		UserID:             res.ID,
		NeedUpdatePassword: res.NeedUpdate,
	}
	if s.session != nil {
		if err := s.session.Login(admin.Identity{
			EmployeeNo: result.EmployeeNo,
			Role:       result.Role,
			Token:      result.Token,
			UserID:     result.UserID,
			IsLoggedIn: true,
		}); err != nil {
			return nil, err
		}
	}
	return result, nil
}

// Logout 显式登出，清空会话。
func (s *Service) Logout() error {
	if s.session == nil {
		return nil
	}
	return s.session.Logout()
}

// ResetPasswordInput 修改密码入参。
type ResetPasswordInput struct {
	OldPassword     string
	NewPassword     string
	ConfirmPassword string
}

// ResetPassword 先做两次输入一致性校验（不发网络请求），再调底层接口。
// 返回的新 token 不自动写回会话，与既有行为保持一致。
func (s *Service) ResetPassword(ctx context.Context, input ResetPasswordInput) (string, error) {
	if input.NewPassword != input.ConfirmPassword {
		return "", &backend.RequestError{Message: "两次输入的密码不一致"}
	}
	res, err := s.users.UserUpdatePassword(ctx, backend.UserUpdatePasswordRequest{
		OldPassword: input.OldPassword,
		NewPassword: input.NewPassword,
	})
	if err != nil {
		return "", err
	}
	return res.Token, nil
}
