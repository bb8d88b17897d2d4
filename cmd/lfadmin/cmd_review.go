package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mao2006/lost-found-admin/internal/application/query"
	"github.com/mao2006/lost-found-admin/internal/infrastructure/backend"
)

func newReviewCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:               "review",
		Short:             "信息审核与处置",
		PersistentPreRunE: a.groupPreRun(routeGlobalManagement),
	}
	cmd.AddCommand(
		newReviewListCmd(a),
		newReviewDetailCmd(a),
		newReviewApproveCmd(a),
		newReviewRejectCmd(a),
		newReviewClaimCmd(a),
		newReviewArchiveCmd(a),
		newReviewDeleteCmd(a),
	)
	return cmd
}

func newReviewListCmd(a *app) *cobra.Command {
	var req backend.PendingListRequest
	cmd := &cobra.Command{
		Use:   "list",
		Short: "查询待审核信息",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.cachedJSON(cmd.Context(), query.AdminPendingList(), func(ctx context.Context) (any, error) {
				return a.client.PendingPostList(ctx, req)
			})
		},
	}
	cmd.Flags().IntVar(&req.Page, "page", 0, "页码")
	cmd.Flags().IntVar(&req.PageSize, "page-size", 0, "每页条数")
	return cmd
}

func newReviewDetailCmd(a *app) *cobra.Command {
	var postID int64
	cmd := &cobra.Command{
		Use:   "detail",
		Short: "查询信息详情",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.cachedJSON(cmd.Context(), query.AdminPendingDetail(postID), func(ctx context.Context) (any, error) {
				return a.client.PostDetail(ctx, postID)
			})
		},
	}
	cmd.Flags().Int64Var(&postID, "post-id", 0, "信息 ID")
	_ = cmd.MarkFlagRequired("post-id")
	return cmd
}

func newReviewApproveCmd(a *app) *cobra.Command {
	var postID int64
	cmd := &cobra.Command{
		Use:   "approve",
		Short: "审核通过",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.client.ApprovePost(cmd.Context(), backend.PostOperationRequest{PostID: postID})
			if err != nil {
				return displayErr(err)
			}
			a.cache.InvalidatePrefix("admin/")
			a.cache.InvalidatePrefix("post/")
			fmt.Printf("已通过，success=%t\n", res.Success)
			return nil
		},
	}
	cmd.Flags().Int64Var(&postID, "post-id", 0, "信息 ID")
	_ = cmd.MarkFlagRequired("post-id")
	return cmd
}

func newReviewRejectCmd(a *app) *cobra.Command {
	var req backend.RejectPostRequest
	cmd := &cobra.Command{
		Use:   "reject",
		Short: "驳回信息",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.client.RejectPost(cmd.Context(), req)
			if err != nil {
				return displayErr(err)
			}
			a.cache.InvalidatePrefix("admin/")
			a.cache.InvalidatePrefix("post/")
			fmt.Printf("已驳回，success=%t\n", res.Success)
			return nil
		},
	}
	cmd.Flags().Int64Var(&req.PostID, "post-id", 0, "信息 ID")
	cmd.Flags().StringVar(&req.Reason, "reason", "", "驳回原因")
	_ = cmd.MarkFlagRequired("post-id")
	_ = cmd.MarkFlagRequired("reason")
	return cmd
}

func newReviewClaimCmd(a *app) *cobra.Command {
	var postID int64
	cmd := &cobra.Command{
		Use:   "claim",
		Short: "标记为已认领",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.client.ClaimPost(cmd.Context(), backend.PostOperationRequest{PostID: postID})
			if err != nil {
				return displayErr(err)
			}
			a.cache.InvalidatePrefix("admin/")
			a.cache.InvalidatePrefix("post/")
			fmt.Printf("已标记认领，success=%t\n", res.Success)
			return nil
		},
	}
	cmd.Flags().Int64Var(&postID, "post-id", 0, "信息 ID")
	_ = cmd.MarkFlagRequired("post-id")
	return cmd
}

func newReviewArchiveCmd(a *app) *cobra.Command {
	var req backend.ArchivePostRequest
	cmd := &cobra.Command{
		Use:   "archive",
		Short: "归档信息",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.client.ArchivePost(cmd.Context(), req)
			if err != nil {
				return displayErr(err)
			}
			a.cache.InvalidatePrefix("admin/")
			a.cache.InvalidatePrefix("post/")
			fmt.Printf("已归档，success=%t\n", res.Success)
			return nil
		},
	}
	cmd.Flags().Int64Var(&req.PostID, "post-id", 0, "信息 ID")
	cmd.Flags().StringVar(&req.ArchiveMethod, "method", "", "归档方式")
	_ = cmd.MarkFlagRequired("post-id")
	return cmd
}

func newReviewDeleteCmd(a *app) *cobra.Command {
	var postID int64
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "删除信息",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.client.DeletePost(cmd.Context(), backend.PostOperationRequest{PostID: postID})
			if err != nil {
				return displayErr(err)
			}
			a.cache.InvalidatePrefix("admin/")
			a.cache.InvalidatePrefix("post/")
			fmt.Printf("已删除，success=%t\n", res.Success)
			return nil
		},
	}
	cmd.Flags().Int64Var(&postID, "post-id", 0, "信息 ID")
	_ = cmd.MarkFlagRequired("post-id")
	return cmd
}
