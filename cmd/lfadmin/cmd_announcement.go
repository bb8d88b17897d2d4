package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mao2006/lost-found-admin/internal/application/query"
	"github.com/mao2006/lost-found-admin/internal/infrastructure/backend"
)

func newAnnouncementCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:               "announcement",
		Short:             "公告与内容管理",
		PersistentPreRunE: a.groupPreRun(routeAnnouncementContent),
	}
	cmd.AddCommand(
		newAnnouncementListCmd(a),
		newAnnouncementReviewListCmd(a),
		newAnnouncementPublishCmd(a),
		newAnnouncementApproveCmd(a),
	)
	return cmd
}

func newAnnouncementListCmd(a *app) *cobra.Command {
	var req backend.AnnouncementListRequest
	cmd := &cobra.Command{
		Use:   "list",
		Short: "查询已发布公告",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.cachedJSON(cmd.Context(), query.AnnouncementApprovedList(), func(ctx context.Context) (any, error) {
				return a.client.AnnouncementList(ctx, req)
			})
		},
	}
	cmd.Flags().IntVar(&req.Page, "page", 0, "页码")
	cmd.Flags().IntVar(&req.PageSize, "page-size", 0, "每页条数")
	return cmd
}

func newAnnouncementReviewListCmd(a *app) *cobra.Command {
	var req backend.AnnouncementListRequest
	cmd := &cobra.Command{
		Use:   "review-list",
		Short: "查询待审核公告",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.cachedJSON(cmd.Context(), query.AnnouncementReviewList(), func(ctx context.Context) (any, error) {
				return a.client.AnnouncementReviewList(ctx, req)
			})
		},
	}
	cmd.Flags().IntVar(&req.Page, "page", 0, "页码")
	cmd.Flags().IntVar(&req.PageSize, "page-size", 0, "每页条数")
	return cmd
}

func newAnnouncementPublishCmd(a *app) *cobra.Command {
	var req backend.PublishAnnouncementRequest
	cmd := &cobra.Command{
		Use:   "publish",
		Short: "发布公告",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.client.PublishAnnouncement(cmd.Context(), req)
			if err != nil {
				return displayErr(err)
			}
			a.cache.InvalidatePrefix("announcement/")
			fmt.Printf("公告已发布，ID=%d\n", res.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&req.Title, "title", "", "公告标题")
	cmd.Flags().StringVar(&req.Content, "content", "", "公告内容")
	cmd.Flags().StringVar(&req.Type, "type", "SYSTEM", "公告类型（SYSTEM/REGION）")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("content")
	return cmd
}

func newAnnouncementApproveCmd(a *app) *cobra.Command {
	var id int64
	cmd := &cobra.Command{
		Use:   "approve",
		Short: "公告审核通过",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.client.ApproveAnnouncement(cmd.Context(), backend.ApproveAnnouncementRequest{ID: id}); err != nil {
				return displayErr(err)
			}
			a.cache.InvalidatePrefix("announcement/")
			fmt.Println("公告已通过")
			return nil
		},
	}
	cmd.Flags().Int64Var(&id, "id", 0, "公告 ID")
	_ = cmd.MarkFlagRequired("id")
	return cmd
}
