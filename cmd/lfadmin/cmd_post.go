package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mao2006/lost-found-admin/internal/application/query"
	"github.com/mao2006/lost-found-admin/internal/domain/lostfound"
	"github.com/mao2006/lost-found-admin/internal/infrastructure/backend"
)

func newPostCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:               "post",
		Short:             "失物与招领信息检索",
		PersistentPreRunE: a.groupPreRun(routeGlobalManagement),
	}
	cmd.AddCommand(newPostListCmd(a))
	return cmd
}

func newPostListCmd(a *app) *cobra.Command {
	var req backend.PostListRequest
	var kind string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "按条件查询信息列表",
		RunE: func(cmd *cobra.Command, args []string) error {
			if kind != "" {
				req.PublishType = lostfound.ToPublishKind(kind)
			}
			key := query.PostList(postListKeyParams(req))
			return a.cachedJSON(cmd.Context(), key, func(ctx context.Context) (any, error) {
				return a.client.PostList(ctx, req)
			})
		},
	}
	cmd.Flags().StringVar(&req.Campus, "campus", "", "校区展示名（朝晖/屏峰/莫干山）")
	cmd.Flags().StringVar(&kind, "kind", "", "信息种类（lost/found）")
	cmd.Flags().StringVar(&req.ItemType, "item-type", "", "物品类型")
	cmd.Flags().StringVar(&req.Location, "location", "", "地点关键字")
	cmd.Flags().StringVar(&req.Status, "status", "", "状态")
	cmd.Flags().StringVar(&req.StartTime, "start-time", "", "起始时间")
	cmd.Flags().StringVar(&req.EndTime, "end-time", "", "截止时间")
	cmd.Flags().IntVar(&req.Page, "page", 0, "页码")
	cmd.Flags().IntVar(&req.PageSize, "page-size", 0, "每页条数")
	return cmd
}

// postListKeyParams 把筛选条件压成稳定的串，作为查询身份的一部分。
func postListKeyParams(req backend.PostListRequest) string {
	return strings.Join([]string{
		lostfound.ToCampusParam(req.Campus),
		lostfound.ToPublishTypeParam(req.PublishType),
		req.ItemType,
		req.Location,
		req.Status,
		req.StartTime,
		req.EndTime,
		fmt.Sprintf("%d-%d", req.Page, req.PageSize),
	}, "|")
}
