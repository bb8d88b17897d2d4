package backend

import (
	"context"
	"net/http"
)

// SystemConfig 平台运行配置。
type SystemConfig struct {
	ItemTypes         []string `json:"item_types"`
	FeedbackTypes     []string `json:"feedback_types"`
	ClaimValidityDays int      `json:"claim_validity_days"`
	PublishLimit      int      `json:"publish_limit"`
}

// UpdateSystemConfigRequest 单键更新：config_key 指明本次改哪一项，
// 只带对应字段。
type UpdateSystemConfigRequest struct {
	ConfigKey         string   `json:"config_key"`
	ItemTypes         []string `json:"item_types,omitempty"`
	FeedbackTypes     []string `json:"feedback_types,omitempty"`
	ClaimValidityDays *int     `json:"claim_validity_days,omitempty"`
	PublishLimit      *int     `json:"publish_limit,omitempty"`
}

// GetSystemConfig 读取平台配置。
func (c *Client) GetSystemConfig(ctx context.Context) (*SystemConfig, error) {
	var res SystemConfig
	if err := c.call(ctx, http.MethodGet, "/system/config", nil, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// UpdateSystemConfig 更新平台配置的某一项。
func (c *Client) UpdateSystemConfig(ctx context.Context, req UpdateSystemConfigRequest) error {
	return c.call(ctx, http.MethodPost, "/system/config", nil, req, nil)
}
