package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/mao2006/lost-found-admin/internal/domain/admin"
	"github.com/mao2006/lost-found-admin/internal/infrastructure/backend"
)

type fakeGateway struct {
	loginCalls  int
	loginReq    backend.UserLoginRequest
	loginRes    *backend.UserLoginResponse
	loginErr    error
	updateCalls int
	updateRes   *backend.UserUpdatePasswordResponse
	updateErr   error
}

func (f *fakeGateway) UserLogin(_ context.Context, req backend.UserLoginRequest) (*backend.UserLoginResponse, error) {
	f.loginCalls++
	f.loginReq = req
	return f.loginRes, f.loginErr
}

func (f *fakeGateway) UserUpdatePassword(_ context.Context, _ backend.UserUpdatePasswordRequest) (*backend.UserUpdatePasswordResponse, error) {
	f.updateCalls++
	return f.updateRes, f.updateErr
}

type fakeSession struct {
	identity admin.Identity
	logouts  int
}

func (f *fakeSession) Login(id admin.Identity) error {
	f.identity = id
	return nil
}

func (f *fakeSession) Logout() error {
	f.logouts++
	f.identity = admin.Empty()
	return nil
}

func TestLogin_InvalidEmployeeNoFailsBeforeNetwork(t *testing.T) {
	gw := &fakeGateway{}
	svc := NewService(gw, &fakeSession{})

	_, err := svc.Login(context.Background(), LoginInput{EmployeeNo: "abc", Password: "p"})
	var reqErr *backend.RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("expected RequestError, got %v", err)
	}
	if reqErr.Message != "工号格式不正确" {
		t.Errorf("message = %q", reqErr.Message)
	}
	if gw.loginCalls != 0 {
		t.Errorf("network call happened %d times, want 0", gw.loginCalls)
	}
}

func TestLogin_UnmappedUserTypeIsAuthorizationFailure(t *testing.T) {
	gw := &fakeGateway{loginRes: &backend.UserLoginResponse{
		ID: 5, Token: "t", UserType: "STUDENT",
	}}
	sess := &fakeSession{}
	svc := NewService(gw, sess)

	_, err := svc.Login(context.Background(), LoginInput{EmployeeNo: "2021001", Password: "p"})
	var reqErr *backend.RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("expected RequestError, got %v", err)
	}
	if reqErr.Message != "当前账号无管理端访问权限" {
		t.Errorf("message = %q", reqErr.Message)
	}
	if sess.identity.IsLoggedIn {
		t.Error("session must not be written on failure")
	}
}

func TestLogin_SuccessReshapesAndPersists(t *testing.T) {
	gw := &fakeGateway{loginRes: &backend.UserLoginResponse{
		ID: 42, Token: "tok-abc", UserType: "SYSTEM_ADMIN", NeedUpdate: true,
	}}
	sess := &fakeSession{}
	svc := NewService(gw, sess)

	res, err := svc.Login(context.Background(), LoginInput{EmployeeNo: "  2021001 ", Password: "p"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.EmployeeNo != "2021001" {
		t.Errorf("EmployeeNo = %q, want trimmed", res.EmployeeNo)
	}
	if res.Role != admin.RoleSystemAdmin || res.Token != "tok-abc" || res.UserID != 42 || !res.NeedUpdatePassword {
		t.Errorf("got %+v", res)
	}
	if gw.loginReq.UID != 2021001 {
		t.Errorf("wire uid = %d", gw.loginReq.UID)
	}

	want := admin.Identity{
		EmployeeNo: "2021001",
		Role:       admin.RoleSystemAdmin,
		Token:      "tok-abc",
		UserID:     42,
		IsLoggedIn: true,
	}
	if sess.identity != want {
		t.Errorf("session identity = %+v, want %+v", sess.identity, want)
	}
}

func TestLogin_BackendErrorPassesThrough(t *testing.T) {
	backendErr := &backend.RequestError{Message: "密码错误", Code: 4002}
	gw := &fakeGateway{loginErr: backendErr}
	svc := NewService(gw, &fakeSession{})

	_, err := svc.Login(context.Background(), LoginInput{EmployeeNo: "1", Password: "bad"})
	var reqErr *backend.RequestError
	if !errors.As(err, &reqErr) || reqErr != backendErr {
		t.Errorf("expected backend error untouched, got %v", err)
	}
}

func TestResetPassword_MismatchFailsBeforeNetwork(t *testing.T) {
	gw := &fakeGateway{}
	svc := NewService(gw, nil)

	_, err := svc.ResetPassword(context.Background(), ResetPasswordInput{
		OldPassword:     "old",
		NewPassword:     "new1",
		ConfirmPassword: "new2",
	})
	var reqErr *backend.RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("expected RequestError, got %v", err)
	}
	if reqErr.Message != "两次输入的密码不一致" {
		t.Errorf("message = %q", reqErr.Message)
	}
	if gw.updateCalls != 0 {
		t.Errorf("network call happened %d times, want 0", gw.updateCalls)
	}
}

func TestResetPassword_ReturnsNewToken(t *testing.T) {
	gw := &fakeGateway{updateRes: &backend.UserUpdatePasswordResponse{Token: "fresh"}}
	svc := NewService(gw, nil)

	token, err := svc.ResetPassword(context.Background(), ResetPasswordInput{
		OldPassword:     "old",
		NewPassword:     "new",
		ConfirmPassword: "new",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token != "fresh" {
		t.Errorf("token = %q", token)
	}
}

func TestLogout_ClearsSession(t *testing.T) {
	sess := &fakeSession{identity: admin.Identity{IsLoggedIn: true}}
	svc := NewService(&fakeGateway{}, sess)
	if err := svc.Logout(); err != nil {
		t.Fatal(err)
	}
	if sess.logouts != 1 || sess.identity.IsLoggedIn {
		t.Errorf("logout not applied: %+v", sess)
	}
}
