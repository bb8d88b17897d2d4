package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mao2006/lost-found-admin/internal/application/query"
	"github.com/mao2006/lost-found-admin/internal/infrastructure/backend"
)

func newFeedbackCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:               "feedback",
		Short:             "用户反馈处理",
		PersistentPreRunE: a.groupPreRun(routeGlobalManagement),
	}
	cmd.AddCommand(
		newFeedbackListCmd(a),
		newFeedbackDetailCmd(a),
		newFeedbackProcessCmd(a),
	)
	return cmd
}

func newFeedbackListCmd(a *app) *cobra.Command {
	var req backend.FeedbackListRequest
	var processed bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "查询反馈列表",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("processed") {
				req.Processed = &processed
			}
			return a.cachedJSON(cmd.Context(), query.FeedbackList(), func(ctx context.Context) (any, error) {
				return a.client.FeedbackList(ctx, req)
			})
		},
	}
	cmd.Flags().IntVar(&req.Page, "page", 0, "页码")
	cmd.Flags().IntVar(&req.PageSize, "page-size", 0, "每页条数")
	cmd.Flags().BoolVar(&processed, "processed", false, "按处理状态过滤（不传则不过滤）")
	return cmd
}

func newFeedbackDetailCmd(a *app) *cobra.Command {
	var id int64
	cmd := &cobra.Command{
		Use:   "detail",
		Short: "查询反馈详情",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.cachedJSON(cmd.Context(), query.FeedbackDetail(id), func(ctx context.Context) (any, error) {
				return a.client.FeedbackDetail(ctx, id)
			})
		},
	}
	cmd.Flags().Int64Var(&id, "id", 0, "反馈 ID")
	_ = cmd.MarkFlagRequired("id")
	return cmd
}

func newFeedbackProcessCmd(a *app) *cobra.Command {
	var id int64
	cmd := &cobra.Command{
		Use:   "process",
		Short: "标记反馈已处理",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.client.ProcessFeedback(cmd.Context(), backend.ProcessFeedbackRequest{FeedbackID: id})
			if err != nil {
				return displayErr(err)
			}
			a.cache.InvalidatePrefix("feedback/")
			fmt.Printf("已处理，success=%t\n", res.Success)
			return nil
		},
	}
	cmd.Flags().Int64Var(&id, "id", 0, "反馈 ID")
	_ = cmd.MarkFlagRequired("id")
	return cmd
}
