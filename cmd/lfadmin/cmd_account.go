package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mao2006/lost-found-admin/internal/application/query"
	"github.com/mao2006/lost-found-admin/internal/domain/lostfound"
	"github.com/mao2006/lost-found-admin/internal/infrastructure/backend"
)

func newAccountCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:               "account",
		Short:             "账号与权限管理",
		PersistentPreRunE: a.groupPreRun(routeAccountPermission),
	}
	cmd.AddCommand(
		newAccountListCmd(a),
		newAccountCreateCmd(a),
		newAccountEnableCmd(a),
		newAccountDisableCmd(a),
		newAccountUpdateCmd(a),
		newAccountNotifyCmd(a),
	)
	return cmd
}

func newAccountListCmd(a *app) *cobra.Command {
	var req backend.AccountListRequest
	cmd := &cobra.Command{
		Use:   "list",
		Short: "查询账号列表",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.cachedJSON(cmd.Context(), query.AccountList(req.UID), func(ctx context.Context) (any, error) {
				return a.client.AccountList(ctx, req)
			})
		},
	}
	cmd.Flags().IntVar(&req.Page, "page", 0, "页码")
	cmd.Flags().IntVar(&req.PageSize, "page-size", 0, "每页条数")
	cmd.Flags().Int64Var(&req.UID, "uid", 0, "按学工号过滤")
	cmd.Flags().StringVar(&req.UserType, "user-type", "", "按用户类型过滤（STUDENT/ADMIN/SYSTEM_ADMIN）")
	return cmd
}

func newAccountCreateCmd(a *app) *cobra.Command {
	var req backend.CreateAccountRequest
	cmd := &cobra.Command{
		Use:   "create",
		Short: "新建账号",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.client.CreateAccount(cmd.Context(), req)
			if err != nil {
				return displayErr(err)
			}
			a.cache.InvalidatePrefix("account/")
			fmt.Printf("账号已创建，ID=%d\n", res.ID)
			return nil
		},
	}
	cmd.Flags().Int64Var(&req.UID, "uid", 0, "学工号")
	cmd.Flags().StringVar(&req.Name, "name", "", "姓名")
	cmd.Flags().StringVar(&req.IDCard, "id-card", "", "证件号")
	cmd.Flags().StringVar(&req.Password, "password", "", "初始密码")
	cmd.Flags().StringVar(&req.UserType, "user-type", "STUDENT", "用户类型")
	_ = cmd.MarkFlagRequired("uid")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newAccountEnableCmd(a *app) *cobra.Command {
	var id int64
	cmd := &cobra.Command{
		Use:   "enable",
		Short: "解禁账号",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.client.EnableAccount(cmd.Context(), backend.EnableAccountRequest{ID: id}); err != nil {
				return displayErr(err)
			}
			a.cache.InvalidatePrefix("account/")
			fmt.Println("账号已解禁")
			return nil
		},
	}
	cmd.Flags().Int64Var(&id, "id", 0, "账号 ID")
	_ = cmd.MarkFlagRequired("id")
	return cmd
}

func newAccountDisableCmd(a *app) *cobra.Command {
	var id int64
	var duration string
	cmd := &cobra.Command{
		Use:   "disable",
		Short: "按时长禁用账号",
		RunE: func(cmd *cobra.Command, args []string) error {
			token, ok := lostfound.ToDisableDurationParam(duration)
			if !ok {
				return fmt.Errorf("无效时长 %q，可选：7d/1m/6m/1y", duration)
			}
			if err := a.client.DisableAccount(cmd.Context(), backend.DisableAccountRequest{
				ID:       id,
				Duration: token,
			}); err != nil {
				return displayErr(err)
			}
			a.cache.InvalidatePrefix("account/")
			fmt.Println("账号已禁用")
			return nil
		},
	}
	cmd.Flags().Int64Var(&id, "id", 0, "账号 ID")
	cmd.Flags().StringVar(&duration, "duration", "7d", "禁用时长短码（7d/1m/6m/1y）")
	_ = cmd.MarkFlagRequired("id")
	return cmd
}

func newAccountUpdateCmd(a *app) *cobra.Command {
	var req backend.UpdateAccountRequest
	cmd := &cobra.Command{
		Use:   "update",
		Short: "调整账号类型或重置密码",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.client.UpdateAccount(cmd.Context(), req); err != nil {
				return displayErr(err)
			}
			a.cache.InvalidatePrefix("account/")
			fmt.Println("账号已更新")
			return nil
		},
	}
	cmd.Flags().Int64Var(&req.ID, "id", 0, "账号 ID")
	cmd.Flags().StringVar(&req.UserType, "user-type", "", "用户类型")
	cmd.Flags().BoolVar(&req.ResetPassword, "reset-password", false, "重置为初始密码")
	_ = cmd.MarkFlagRequired("id")
	return cmd
}

func newAccountNotifyCmd(a *app) *cobra.Command {
	var req backend.SendNotificationRequest
	cmd := &cobra.Command{
		Use:   "notify",
		Short: "发送系统通知（全局或定向）",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !req.IsGlobal && req.UserID == 0 {
				return fmt.Errorf("定向通知必须指定 --user-id，或改用 --global")
			}
			res, err := a.client.SendSystemNotification(cmd.Context(), req)
			if err != nil {
				return displayErr(err)
			}
			fmt.Printf("通知已发送，ID=%d\n", res.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&req.Title, "title", "", "通知标题")
	cmd.Flags().StringVar(&req.Content, "content", "", "通知内容")
	cmd.Flags().BoolVar(&req.IsGlobal, "global", false, "发送给全部用户")
	cmd.Flags().Int64Var(&req.UserID, "user-id", 0, "定向用户 ID")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("content")
	return cmd
}
