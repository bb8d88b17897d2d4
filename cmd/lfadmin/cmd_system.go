package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mao2006/lost-found-admin/internal/application/query"
	"github.com/mao2006/lost-found-admin/internal/infrastructure/backend"
)

func newSystemCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:               "system",
		Short:             "平台配置管理",
		PersistentPreRunE: a.groupPreRun(routeGlobalManagement),
	}
	cmd.AddCommand(
		newSystemConfigGetCmd(a),
		newSystemConfigSetCmd(a),
	)
	return cmd
}

func newSystemConfigGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "查看平台配置",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.cachedJSON(cmd.Context(), query.SystemConfig(), func(ctx context.Context) (any, error) {
				return a.client.GetSystemConfig(ctx)
			})
		},
	}
}

// newSystemConfigSetCmd 每次只改一项，config_key 指明改哪项。
func newSystemConfigSetCmd(a *app) *cobra.Command {
	var itemTypes, feedbackTypes []string
	var claimValidityDays, publishLimit int
	cmd := &cobra.Command{
		Use:   "set",
		Short: "更新平台配置的某一项",
		RunE: func(cmd *cobra.Command, args []string) error {
			var req backend.UpdateSystemConfigRequest
			switch {
			case cmd.Flags().Changed("item-types"):
				req.ConfigKey = "item_types"
				req.ItemTypes = itemTypes
			case cmd.Flags().Changed("feedback-types"):
				req.ConfigKey = "feedback_types"
				req.FeedbackTypes = feedbackTypes
			case cmd.Flags().Changed("claim-validity-days"):
				req.ConfigKey = "claim_validity_days"
				req.ClaimValidityDays = &claimValidityDays
			case cmd.Flags().Changed("publish-limit"):
				req.ConfigKey = "publish_limit"
				req.PublishLimit = &publishLimit
			default:
				return fmt.Errorf("必须指定一项要修改的配置")
			}
			if err := a.client.UpdateSystemConfig(cmd.Context(), req); err != nil {
				return displayErr(err)
			}
			a.cache.Invalidate(query.SystemConfig())
			fmt.Println("配置已更新")
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&itemTypes, "item-types", nil, "物品类型列表")
	cmd.Flags().StringSliceVar(&feedbackTypes, "feedback-types", nil, "反馈类型列表")
	cmd.Flags().IntVar(&claimValidityDays, "claim-validity-days", 0, "认领有效天数")
	cmd.Flags().IntVar(&publishLimit, "publish-limit", 0, "每日发布上限")
	return cmd
}

func newStatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:               "stats",
		Short:             "查看管理端统计",
		PersistentPreRunE: a.groupPreRun(routeGlobalManagement),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.cachedJSON(cmd.Context(), query.AdminStatistics(), func(ctx context.Context) (any, error) {
				return a.client.Statistics(ctx)
			})
		},
	}
}
