package main

import (
	"fmt"

	"github.com/spf13/cobra"

	appauth "github.com/mao2006/lost-found-admin/internal/application/auth"
	"github.com/mao2006/lost-found-admin/internal/domain/admin"
	"github.com/mao2006/lost-found-admin/internal/infrastructure/session"
)

func newLoginCmd(a *app) *cobra.Command {
	var employeeNo, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "使用工号登录管理端",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.auth.Login(cmd.Context(), appauth.LoginInput{
				EmployeeNo: employeeNo,
				Password:   password,
			})
			if err != nil {
				return displayErr(err)
			}
			fmt.Printf("登录成功：%s（%s）\n", res.EmployeeNo, admin.RoleLabel(res.Role))
			fmt.Printf("默认入口：%s\n", admin.DefaultRoute(res.Role))
			if res.NeedUpdatePassword {
				fmt.Println("提示：当前为初始密码，请尽快执行 lfadmin passwd 修改")
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&employeeNo, "employee-no", "", "工号")
	cmd.Flags().StringVar(&password, "password", "", "密码")
	_ = cmd.MarkFlagRequired("employee-no")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newLogoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "登出并清空本地会话",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.auth.Logout(); err != nil {
				return err
			}
			fmt.Println("已登出")
			return nil
		},
	}
}

func newWhoamiCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "查看当前登录身份",
		RunE: func(cmd *cobra.Command, args []string) error {
			id := a.session.Identity()
			if !id.IsLoggedIn {
				fmt.Println("未登录")
				return nil
			}
			fmt.Printf("工号：%s\n", id.EmployeeNo)
			fmt.Printf("角色：%s（%s）\n", admin.RoleLabel(id.Role), id.Role)
			fmt.Printf("用户 ID：%d\n", id.UserID)
			if exp, ok := session.TokenExpiry(id.Token); ok {
				fmt.Printf("token 过期时间：%s\n", exp.Local().Format("2006-01-02 15:04:05"))
			}
			return nil
		},
	}
}

func newNavCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "nav",
		Short: "查看当前角色的导航菜单",
		RunE: func(cmd *cobra.Command, args []string) error {
			id := a.session.Identity()
			if !id.IsLoggedIn {
				return displayErr(fmt.Errorf("未登录，请先执行 lfadmin login"))
			}
			for _, item := range admin.NavItems(id.Role) {
				fmt.Printf("%-24s %s\n", item.Key, item.Label)
			}
			return nil
		},
	}
}

func newPasswdCmd(a *app) *cobra.Command {
	var oldPassword, newPassword, confirmPassword string
	cmd := &cobra.Command{
		Use:   "passwd",
		Short: "修改当前账号密码",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := a.auth.ResetPassword(cmd.Context(), appauth.ResetPasswordInput{
				OldPassword:     oldPassword,
				NewPassword:     newPassword,
				ConfirmPassword: confirmPassword,
			})
			if err != nil {
				return displayErr(err)
			}
			fmt.Println("密码修改成功，请重新登录")
			return nil
		},
	}
	cmd.Flags().StringVar(&oldPassword, "old", "", "旧密码")
	cmd.Flags().StringVar(&newPassword, "new", "", "新密码")
	cmd.Flags().StringVar(&confirmPassword, "confirm", "", "确认新密码")
	_ = cmd.MarkFlagRequired("old")
	_ = cmd.MarkFlagRequired("new")
	_ = cmd.MarkFlagRequired("confirm")
	return cmd
}

func newHealthCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "后端健康探活",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.client.Health(cmd.Context())
			if err != nil {
				return displayErr(err)
			}
			return printJSON(res)
		},
	}
}
