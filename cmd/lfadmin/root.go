// lfadmin 校园失物招领平台的终端管理端。
// 所有命令经由同一个后端客户端出网，进入资源命令前先过路由守卫。
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	appauth "github.com/mao2006/lost-found-admin/internal/application/auth"
	"github.com/mao2006/lost-found-admin/internal/application/query"
	"github.com/mao2006/lost-found-admin/internal/domain/admin"
	"github.com/mao2006/lost-found-admin/internal/infrastructure/backend"
	"github.com/mao2006/lost-found-admin/internal/infrastructure/config"
	"github.com/mao2006/lost-found-admin/internal/infrastructure/session"
)

// 各命令组对应的管理端路由，与网页端导航一一对应。
const (
	routeGlobalManagement    = "/global-management"
	routeAccountPermission   = "/account-permission"
	routeAnnouncementContent = "/announcement-content"
)

// app 汇集各层依赖，按注入方式传给命令，不做包级单例。
type app struct {
	cfg     config.Config
	logger  *zap.Logger
	session *session.Store
	client  *backend.Client
	auth    *appauth.Service
	cache   *query.Cache
}

func newRootCmd() *cobra.Command {
	a := &app{}
	var cfgPath string

	root := &cobra.Command{
		Use:           "lfadmin",
		Short:         "校园失物招领平台管理端",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cfgPath)
		},
	}
	root.PersistentFlags().StringVar(&cfgPath, "config", "config.yaml", "组态文件路径")

	root.AddCommand(
		newLoginCmd(a),
		newLogoutCmd(a),
		newWhoamiCmd(a),
		newNavCmd(a),
		newPasswdCmd(a),
		newAccountCmd(a),
		newReviewCmd(a),
		newAnnouncementCmd(a),
		newFeedbackCmd(a),
		newPostCmd(a),
		newSystemCmd(a),
		newStatsCmd(a),
		newHealthCmd(a),
	)
	return root
}

func (a *app) init(cfgPath string) error {
	cfg, err := config.LoadFromFile(cfgPath)
	if err != nil {
		return err
	}

	logger := zap.NewNop()
	if cfg.Log.Debug {
		logger, err = zap.NewDevelopment()
		if err != nil {
			return err
		}
	}

	store, err := session.NewStore(cfg.Session.File)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logger
	a.session = store
	a.client = backend.NewClient(cfg.API.BaseURL, cfg.API.Timeout, store, logger)
	a.auth = appauth.NewService(a.client, store)
	a.cache = query.NewCache(0, 0)
	return nil
}

// groupPreRun 资源命令组的前置：子命令定义了自己的 PersistentPreRunE
// 会取代根命令的，所以这里先完成初始化再过路由守卫。
func (a *app) groupPreRun(route string) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if err := a.init(cmd.Flag("config").Value.String()); err != nil {
			return err
		}
		return a.requireRoute(route)
	}
}

// requireRoute 路由守卫：与网页端行为一致，未登录提示登录，
// 无权限提示该角色的默认入口。
func (a *app) requireRoute(route string) error {
	decision, target := admin.ResolveRoute(a.session.Identity(), route)
	switch decision {
	case admin.DecisionRedirectLogin:
		return errors.New("未登录，请先执行 lfadmin login")
	case admin.DecisionRedirectDefault:
		return fmt.Errorf("当前角色无权访问 %s，可用入口：%s", route, target)
	default:
		return nil
	}
}

// cachedJSON 经查询缓存取数并以 JSON 打印。
func (a *app) cachedJSON(ctx context.Context, key query.Key, fetch query.FetchFunc) error {
	v, err := a.cache.Get(ctx, key, fetch)
	if err != nil {
		return displayErr(err)
	}
	return printJSON(v)
}

// displayErr 把归一化错误转成命令行可直接展示的一句话。
func displayErr(err error) error {
	return errors.New(backend.ErrorMessage(err, "请求失败，请稍后重试"))
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
